package http

import (
	"log/slog"
	"net/http"

	"loan-amortizer/logging"
	"loan-amortizer/service"
)

// NewRouter wires the loan endpoints behind the rate limiter, then wraps
// everything with request IDs and access logging.
func NewRouter(
	loanService *service.LoanService,
	comparisonService *service.TermComparisonService,
	rateLimiter *RateLimiter,
	logger *slog.Logger,
) http.Handler {
	logger = logger.With(logging.FieldComponent, "http")

	loanHandler := NewLoanHandler(loanService, logger)
	comparisonHandler := NewTermComparisonHandler(comparisonService, logger)

	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(rateLimiter, logger, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/loan/calculate", limited(loanHandler.CalculateLoan))
	mux.Handle("/loan/schedule", limited(loanHandler.Schedule))
	mux.Handle("/loan/chart", limited(loanHandler.Chart))
	mux.Handle("/loan/compare-terms", limited(comparisonHandler.CompareTerms))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	})

	return RequestIDMiddleware(LoggingMiddleware(logger, mux))
}
