package repository

import "loan-amortizer/domain"

type LoanRepository interface {
	Save(result domain.LoanResult) error
	List() []domain.LoanResult
}
