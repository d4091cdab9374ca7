package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"loan-amortizer/domain"
	"loan-amortizer/logging"
	"loan-amortizer/repository"
)

type LoanService struct {
	repo   repository.LoanRepository
	cache  repository.CacheRepository
	logger *slog.Logger
}

// NewLoanService creates a new LoanService with the given repository and cache.
// A nil logger falls back to slog.Default().
func NewLoanService(repo repository.LoanRepository,
	cache repository.CacheRepository,
	logger *slog.Logger,
) *LoanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoanService{repo: repo, cache: cache, logger: logger.With(logging.FieldComponent, "loan")}
}

// CalculateLoan computes the payment, the full schedule and its totals.
func (s *LoanService) CalculateLoan(
	terms domain.LoanTerms,
) (domain.LoanResult, error) {

	// Validar entrada
	if err := terms.Validate(); err != nil {
		return domain.LoanResult{}, err
	}
	if terms.Principal > MaxLoanAmount {
		return domain.LoanResult{}, fmt.Errorf("%w: principal exceeds the maximum of $%.2f", domain.ErrInvalidInput, MaxLoanAmount)
	}
	if terms.AnnualRatePercent > MaxInterestRate {
		return domain.LoanResult{}, fmt.Errorf("%w: annual rate exceeds the maximum of %.2f%%", domain.ErrInvalidInput, MaxInterestRate)
	}
	if terms.TermYears > MaxTermYears {
		return domain.LoanResult{}, fmt.Errorf("%w: term exceeds the maximum of %d years", domain.ErrInvalidInput, MaxTermYears)
	}

	key := cacheKey(terms)
	if cached, ok := s.fromCache(key); ok {
		s.logger.Debug("cache hit", "key", key)
		return cached, nil
	}

	payment, err := ComputePayment(terms)
	if err != nil {
		return domain.LoanResult{}, err
	}
	schedule, err := BuildSchedule(terms, payment)
	if err != nil {
		return domain.LoanResult{}, err
	}

	result := domain.LoanResult{
		Terms:          terms,
		MonthlyPayment: roundCents(payment),
		TotalPayment:   schedule.TotalPaid(),
		TotalInterest:  schedule.TotalInterest(),
		Schedule:       schedule,
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(result); err != nil {
		s.logger.Warn("failed to save loan calculation", logging.FieldError, err)
	}
	s.toCache(key, result)

	return result, nil
}

// History lists the calculations made by this process.
func (s *LoanService) History() []domain.LoanResult {
	return s.repo.List()
}

func (s *LoanService) fromCache(key string) (domain.LoanResult, bool) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.LoanResult{}, false
	}
	var result domain.LoanResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("ignoring undecodable cache entry", "key", key, logging.FieldError, err)
		return domain.LoanResult{}, false
	}
	return result, true
}

func (s *LoanService) toCache(key string, result domain.LoanResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode loan calculation", logging.FieldError, err)
		return
	}
	if err := s.cache.Set(key, string(raw)); err != nil {
		s.logger.Warn("failed to cache loan calculation", "key", key, logging.FieldError, err)
	}
}

func cacheKey(terms domain.LoanTerms) string {
	return "loan:" +
		strconv.FormatFloat(terms.Principal, 'g', -1, 64) + ":" +
		strconv.FormatFloat(terms.AnnualRatePercent, 'g', -1, 64) + ":" +
		strconv.Itoa(terms.TermYears)
}
