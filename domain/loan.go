package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// LoanTerms are the validated inputs of a calculation. Treat as immutable.
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         int     `json:"term_years"`
}

// Validate checks that every field is a finite, strictly positive number.
func (t LoanTerms) Validate() error {
	if !positive(t.Principal) {
		return fmt.Errorf("%w: principal must be a positive number, got %v", ErrInvalidInput, t.Principal)
	}
	if !positive(t.AnnualRatePercent) {
		return fmt.Errorf("%w: annual rate must be a positive number, got %v", ErrInvalidInput, t.AnnualRatePercent)
	}
	if t.TermYears <= 0 {
		return fmt.Errorf("%w: term must be a positive number of years, got %d", ErrInvalidInput, t.TermYears)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}

type ScheduleRow struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	PrincipalPaid    float64 `json:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// Schedule is ordered by period, 1..n without gaps.
type Schedule []ScheduleRow

// BalancePoint is one (period, remaining balance) pair for plotting.
type BalancePoint struct {
	Period  int
	Balance float64
}

func (s Schedule) TotalPaid() float64 {
	return s.sum(func(r ScheduleRow) float64 { return r.Payment })
}

func (s Schedule) TotalInterest() float64 {
	return s.sum(func(r ScheduleRow) float64 { return r.InterestPaid })
}

func (s Schedule) TotalPrincipal() float64 {
	return s.sum(func(r ScheduleRow) float64 { return r.PrincipalPaid })
}

// BalancePoints returns the remaining balance per period in schedule order.
func (s Schedule) BalancePoints() []BalancePoint {
	points := make([]BalancePoint, len(s))
	for i, r := range s {
		points[i] = BalancePoint{Period: r.Period, Balance: r.RemainingBalance}
	}
	return points
}

// sum adds the rounded cents exactly; float accumulation over hundreds of rows drifts.
func (s Schedule) sum(field func(ScheduleRow) float64) float64 {
	total := decimal.Zero
	for _, r := range s {
		total = total.Add(decimal.NewFromFloat(field(r)))
	}
	return total.Round(2).InexactFloat64()
}

type LoanResult struct {
	Terms          LoanTerms `json:"terms"`
	MonthlyPayment float64   `json:"monthly_payment"`
	TotalPayment   float64   `json:"total_payment"`
	TotalInterest  float64   `json:"total_interest"`
	Schedule       Schedule  `json:"schedule,omitempty"`
}
