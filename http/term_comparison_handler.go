package http

import (
	"log/slog"
	"net/http"

	"loan-amortizer/domain"
	"loan-amortizer/logging"
	"loan-amortizer/service"
)

type TermComparisonHandler struct {
	service *service.TermComparisonService
	logger  *slog.Logger
}

func NewTermComparisonHandler(service *service.TermComparisonService, logger *slog.Logger) *TermComparisonHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TermComparisonHandler{service: service, logger: logger}
}

func (h *TermComparisonHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	var input domain.TermComparisonInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.CompareTerms(input)
	if err != nil {
		h.logger.Debug("error comparing terms", logging.FieldError, err)
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
