package repository

import (
	"sync"

	"loan-amortizer/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
// Nothing outlives the process.
type LoanRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.LoanResult
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		data: []domain.LoanResult{},
	}
}

// Save stores the loan result in memory.
func (r *LoanRepositoryMemory) Save(result domain.LoanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, result)
	return nil
}

// List returns a copy of the stored results in insertion order.
func (r *LoanRepositoryMemory) List() []domain.LoanResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.LoanResult, len(r.data))
	copy(out, r.data)
	return out
}
