package repository

import (
	"sync"
	"testing"

	"loan-amortizer/domain"
)

func TestLoanRepositoryMemory_SaveList(t *testing.T) {
	repo := NewLoanRepositoryMemory()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Save(domain.LoanResult{Terms: domain.LoanTerms{Principal: float64(i), AnnualRatePercent: 1, TermYears: 1}})
		}()
	}
	wg.Wait()

	list := repo.List()
	if len(list) != 20 {
		t.Fatalf("expected 20 results, got %d", len(list))
	}

	list[0] = domain.LoanResult{}
	if repo.List()[0].Terms.Principal == 0 {
		t.Fatal("List must return a copy")
	}
}

func TestMockCache(t *testing.T) {
	cache := NewMockCache()

	if _, ok := cache.Get("a"); ok {
		t.Fatal("expected miss")
	}
	_ = cache.Set("a", "1")
	if v, ok := cache.Get("a"); !ok || v != "1" {
		t.Fatalf("expected hit with 1, got %q %v", v, ok)
	}
}
