package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"loan-amortizer/domain"
	"loan-amortizer/logging"
)

// decodeJSON validates method and Content-Type and decodes the body into dst.
// It writes the error response itself and reports whether the caller may go on.
func decodeJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		logger.Debug("error decoding request body", logging.FieldError, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError maps domain errors to 400 and anything else to 500.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrDegenerateLoan) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.Error("unexpected service error", logging.FieldError, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// writeJSON codifica en buffer primero para evitar escribir header si falla.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("error encoding response", logging.FieldError, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("error writing response", logging.FieldError, err)
	}
}
