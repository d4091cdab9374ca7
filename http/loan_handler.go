package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"loan-amortizer/chart"
	"loan-amortizer/domain"
	"loan-amortizer/logging"
	"loan-amortizer/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(service *service.LoanService, logger *slog.Logger) *LoanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoanHandler{service: service, logger: logger}
}

// loanSummary is the /loan/calculate response: the schedule is left out.
type loanSummary struct {
	Terms          domain.LoanTerms `json:"terms"`
	MonthlyPayment float64          `json:"monthly_payment"`
	TotalPayment   float64          `json:"total_payment"`
	TotalInterest  float64          `json:"total_interest"`
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	result, ok := h.calculate(w, r)
	if !ok {
		return
	}

	writeJSON(w, h.logger, http.StatusOK, loanSummary{
		Terms:          result.Terms,
		MonthlyPayment: result.MonthlyPayment,
		TotalPayment:   result.TotalPayment,
		TotalInterest:  result.TotalInterest,
	})
}

func (h *LoanHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	result, ok := h.calculate(w, r)
	if !ok {
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *LoanHandler) Chart(w http.ResponseWriter, r *http.Request) {
	result, ok := h.calculate(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.RenderBalance(&buf, result); err != nil {
		h.logger.Error("error rendering chart", logging.FieldError, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("error writing chart", logging.FieldError, err)
	}
}

func (h *LoanHandler) calculate(w http.ResponseWriter, r *http.Request) (domain.LoanResult, bool) {
	var terms domain.LoanTerms
	if !decodeJSON(w, r, h.logger, &terms) {
		return domain.LoanResult{}, false
	}

	result, err := h.service.CalculateLoan(terms)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return domain.LoanResult{}, false
	}
	return result, true
}
