package rest

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/labmaint/internal/common"
)

const (
	msgNotAuthenticated = "No autenticado"
	msgForbidden        = "No autorizado"
	msgInvalidJSON      = "JSON inválido"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Mensaje string `json:"mensaje"`
}

type messageIDBody struct {
	Mensaje string `json:"mensaje"`
	ID      int64  `json:"id"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, `{"error":"encoding error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// statusFor maps the sentinel errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorMissingFields), errors.Is(err, common.ErrorNoFields),
		errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": msg}. Unclassified errors are logged and
// returned as 500 with their message.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed",
			"request_id", requestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	respondJSON(w, status, errorBody{Error: err.Error()})
}
