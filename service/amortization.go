package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"loan-amortizer/domain"
)

const monthsPerYear = 12

// maxExactAmount keeps row amounts well inside float64 cent resolution.
const maxExactAmount = 1e13

// roundCents rounds half away from zero to 2 decimals.
func roundCents(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// PeriodicRate converts the nominal annual percentage into the monthly rate.
func PeriodicRate(terms domain.LoanTerms) float64 {
	return terms.AnnualRatePercent / 100 / monthsPerYear
}

// PeriodCount is the number of monthly payments over the term.
func PeriodCount(terms domain.LoanTerms) int {
	return terms.TermYears * monthsPerYear
}

// ComputePayment returns the fixed payment, due at the end of each period, that
// fully amortizes the principal. The value is not rounded.
func ComputePayment(terms domain.LoanTerms) (float64, error) {
	if err := validateEngineTerms(terms); err != nil {
		return 0, err
	}

	r := PeriodicRate(terms)
	n := float64(PeriodCount(terms))

	growth := math.Pow(1+r, n)
	if growth-1 == 0 || math.IsInf(growth, 0) {
		return 0, fmt.Errorf("%w: rate %v%% over %d periods cannot be amortized",
			domain.ErrDegenerateLoan, terms.AnnualRatePercent, PeriodCount(terms))
	}

	payment := terms.Principal * r * growth / (growth - 1)
	if math.IsNaN(payment) || math.IsInf(payment, 0) || payment <= 0 {
		return 0, fmt.Errorf("%w: payment is not a finite positive amount", domain.ErrDegenerateLoan)
	}
	if payment > maxExactAmount {
		return 0, fmt.Errorf("%w: monthly payment %v exceeds the largest amount representable to the cent", domain.ErrInvalidInput, payment)
	}
	return payment, nil
}

// BuildSchedule expands a payment produced by ComputePayment for the same terms
// into one row per period. Monetary fields are rounded to cents and the final
// balance is exactly zero.
func BuildSchedule(terms domain.LoanTerms, payment float64) (domain.Schedule, error) {
	if err := validateEngineTerms(terms); err != nil {
		return nil, err
	}
	if math.IsNaN(payment) || math.IsInf(payment, 0) || payment <= 0 || payment > maxExactAmount {
		return nil, fmt.Errorf("%w: payment must be a positive amount up to %.2f, got %v", domain.ErrInvalidInput, maxExactAmount, payment)
	}

	r := PeriodicRate(terms)
	n := PeriodCount(terms)

	// Saldo = capital - suma acumulada de capital pagado, en una sola pasada.
	// The balance is rounded to cents and may only go down; principal is the drop
	// and interest is what remains of the rounded payment.
	principal := decimal.NewFromFloat(terms.Principal).Round(2)
	roundedPayment := decimal.NewFromFloat(payment).Round(2)
	prevBalance := principal
	cumulative := decimal.Zero

	schedule := make(domain.Schedule, n)
	for i := range schedule {
		k := i + 1
		paid := payment - interestPortion(terms.Principal, r, payment, k)
		if math.IsNaN(paid) || math.IsInf(paid, 0) {
			return nil, fmt.Errorf("%w: period %d principal is not finite", domain.ErrDegenerateLoan, k)
		}
		cumulative = cumulative.Add(decimal.NewFromFloat(paid))

		balance := decimal.Min(prevBalance, decimal.Max(decimal.Zero, principal.Sub(cumulative).Round(2)))
		if k == n {
			// El último saldo es exactamente 0.
			balance = decimal.Zero
		}
		principalPaid := prevBalance.Sub(balance)
		interestPaid := decimal.Max(decimal.Zero, roundedPayment.Sub(principalPaid))

		schedule[i] = domain.ScheduleRow{
			Period:           k,
			Payment:          roundedPayment.InexactFloat64(),
			PrincipalPaid:    principalPaid.InexactFloat64(),
			InterestPaid:     interestPaid.InexactFloat64(),
			RemainingBalance: balance.InexactFloat64(),
		}
		prevBalance = balance
	}

	return schedule, nil
}

func validateEngineTerms(terms domain.LoanTerms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	if terms.Principal > maxExactAmount {
		return fmt.Errorf("%w: principal %v exceeds the largest amount representable to the cent", domain.ErrInvalidInput, terms.Principal)
	}
	return nil
}

// interestPortion is the interest share of payment k (1-based) of an ordinary
// annuity, from the balance outstanding after k-1 payments.
func interestPortion(principal, r, payment float64, k int) float64 {
	g := math.Pow(1+r, float64(k-1))
	return principal*r*g - payment*(g-1)
}
