package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"loan-amortizer/domain"
	"loan-amortizer/logging"
)

type TermComparisonService struct {
	loanService *LoanService
	logger      *slog.Logger
}

func NewTermComparisonService(loanService *LoanService, logger *slog.Logger) *TermComparisonService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TermComparisonService{
		loanService: loanService,
		logger:      logger.With(logging.FieldComponent, "term_comparison"),
	}
}

// CompareTerms calcula cada plazo candidato en paralelo y resume las opciones.
func (s *TermComparisonService) CompareTerms(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	// Validaciones
	if len(input.TermYears) == 0 {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: no terms to compare", domain.ErrInvalidInput)
	}
	if len(input.TermYears) > MaxComparedTerms {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: at most %d terms can be compared", domain.ErrInvalidInput, MaxComparedTerms)
	}
	if input.MaxMonthlyPayment < 0 {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: maximum monthly payment cannot be negative", domain.ErrInvalidInput)
	}
	seen := make(map[int]bool, len(input.TermYears))
	for _, years := range input.TermYears {
		if years < MinTermYears || years > MaxTermYears {
			return domain.TermComparisonResult{}, fmt.Errorf("%w: term %d must be between %d and %d years", domain.ErrInvalidInput, years, MinTermYears, MaxTermYears)
		}
		if seen[years] {
			return domain.TermComparisonResult{}, fmt.Errorf("%w: duplicated term %d", domain.ErrInvalidInput, years)
		}
		seen[years] = true
	}

	// Each option is an independent pure computation.
	options := make([]domain.TermOption, len(input.TermYears))
	var g errgroup.Group
	for i, years := range input.TermYears {
		g.Go(func() error {
			result, err := s.loanService.CalculateLoan(domain.LoanTerms{
				Principal:         input.Principal,
				AnnualRatePercent: input.AnnualRatePercent,
				TermYears:         years,
			})
			if err != nil {
				return err
			}
			options[i] = domain.TermOption{
				TermYears:      years,
				MonthlyPayment: result.MonthlyPayment,
				TotalInterest:  result.TotalInterest,
				TotalPayment:   result.TotalPayment,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.TermComparisonResult{}, err
	}

	// Filtrar por pago mensual máximo
	affordable := options[:0]
	for _, opt := range options {
		if input.MaxMonthlyPayment > 0 && opt.MonthlyPayment > input.MaxMonthlyPayment {
			s.logger.Debug("term exceeds maximum payment", "term_years", opt.TermYears, "monthly_payment", opt.MonthlyPayment)
			continue
		}
		affordable = append(affordable, opt)
	}
	if len(affordable) == 0 {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errNoAffordableTerm)
	}

	sort.Slice(affordable, func(i, j int) bool {
		return affordable[i].TermYears < affordable[j].TermYears
	})

	lowestInterest, lowestPayment := affordable[0], affordable[0]
	for _, opt := range affordable[1:] {
		if opt.TotalInterest < lowestInterest.TotalInterest {
			lowestInterest = opt
		}
		if opt.MonthlyPayment < lowestPayment.MonthlyPayment {
			lowestPayment = opt
		}
	}

	return domain.TermComparisonResult{
		Options:            affordable,
		LowestInterestTerm: lowestInterest.TermYears,
		LowestPaymentTerm:  lowestPayment.TermYears,
	}, nil
}

var errNoAffordableTerm = errors.New("no term fits the maximum monthly payment")
