package domain

import "errors"

var (
	// ErrInvalidInput marks terms that fail validation (non-positive, NaN or infinite values).
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateLoan marks terms the annuity formula cannot amortize.
	ErrDegenerateLoan = errors.New("degenerate loan")
)
