package handlers

import (
	"errors"
	"net/http"

	"transportpro/internal/domain"
	"transportpro/internal/http/middleware"
	"transportpro/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Unknown errors
// are logged and reported without detail.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case domain.IsInternal(err):
		// InternalError messages are written for clients; the cause is not.
		var ie domain.InternalError
		errors.As(err, &ie)
		utils.LogEventf(middleware.GetRequestID(c), "http", "internal_error", "%s %s: %v: %v", c.Request.Method, c.FullPath(), err, ie.Err)
		respondError(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
	default:
		utils.LogEventf(middleware.GetRequestID(c), "http", "internal_error", "%s %s: %v", c.Request.Method, c.FullPath(), err)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}
