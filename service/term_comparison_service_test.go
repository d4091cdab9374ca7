package service

import (
	"errors"
	"testing"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
)

func newComparisonService() *TermComparisonService {
	loanService := NewLoanService(repository.NewLoanRepositoryMemory(), repository.NewMockCache(), nil)
	return NewTermComparisonService(loanService, nil)
}

func TestCompareTerms_OK(t *testing.T) {
	svc := newComparisonService()

	result, err := svc.CompareTerms(domain.TermComparisonInput{
		Principal:         300000,
		AnnualRatePercent: 4.5,
		TermYears:         []int{30, 15, 20},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(result.Options))
	}
	for i, want := range []int{15, 20, 30} {
		if result.Options[i].TermYears != want {
			t.Errorf("option %d: expected term %d, got %d", i, want, result.Options[i].TermYears)
		}
	}
	if result.Options[2].MonthlyPayment != 1520.06 {
		t.Errorf("expected 30y payment 1520.06, got %.2f", result.Options[2].MonthlyPayment)
	}
	if result.LowestInterestTerm != 15 {
		t.Errorf("expected lowest interest at 15 years, got %d", result.LowestInterestTerm)
	}
	if result.LowestPaymentTerm != 30 {
		t.Errorf("expected lowest payment at 30 years, got %d", result.LowestPaymentTerm)
	}
}

func TestCompareTerms_MaxMonthlyPaymentFilter(t *testing.T) {
	svc := newComparisonService()

	result, err := svc.CompareTerms(domain.TermComparisonInput{
		Principal:         300000,
		AnnualRatePercent: 4.5,
		TermYears:         []int{10, 15, 30},
		MaxMonthlyPayment: 2000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10y ≈ 3109.15 and 15y ≈ 2294.98 exceed the cap.
	if len(result.Options) != 1 || result.Options[0].TermYears != 30 {
		t.Fatalf("expected only the 30 year option, got %+v", result.Options)
	}
}

func TestCompareTerms_NothingAffordable(t *testing.T) {
	svc := newComparisonService()

	_, err := svc.CompareTerms(domain.TermComparisonInput{
		Principal:         300000,
		AnnualRatePercent: 4.5,
		TermYears:         []int{5},
		MaxMonthlyPayment: 100,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompareTerms_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.TermComparisonInput
	}{
		{"no terms", domain.TermComparisonInput{Principal: 1000, AnnualRatePercent: 5}},
		{"too many terms", domain.TermComparisonInput{Principal: 1000, AnnualRatePercent: 5, TermYears: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}}},
		{"term out of range", domain.TermComparisonInput{Principal: 1000, AnnualRatePercent: 5, TermYears: []int{0}}},
		{"duplicated term", domain.TermComparisonInput{Principal: 1000, AnnualRatePercent: 5, TermYears: []int{5, 5}}},
		{"negative cap", domain.TermComparisonInput{Principal: 1000, AnnualRatePercent: 5, TermYears: []int{5}, MaxMonthlyPayment: -1}},
		{"invalid principal", domain.TermComparisonInput{Principal: 0, AnnualRatePercent: 5, TermYears: []int{5}}},
	}

	svc := newComparisonService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CompareTerms(tt.input); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
