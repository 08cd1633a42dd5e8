package httpapi

import (
	"errors"
	"net/http"

	"wordheist/internal/domain"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every failed response
type APIError struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	Retryable bool   `json:"retryable"`
}

// ErrorEnvelope wraps APIError as {"error": {...}}
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// classify maps an error onto a status and a stable code
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrHintsExhausted):
		return http.StatusPaymentRequired, "hints_exhausted"
	case errors.Is(err, domain.ErrNoWordsRemaining):
		return http.StatusConflict, "no_words_remaining"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, "username_taken"
	case errors.Is(err, domain.ErrConstraintConflict):
		return http.StatusServiceUnavailable, "conflict"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// respondError writes the envelope for err. Internal errors never leak their text.
func respondError(c *gin.Context, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message:   msg,
			Code:      code,
			Retryable: domain.IsRetryable(err),
		},
	})
}
