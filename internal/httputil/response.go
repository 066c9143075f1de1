// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/itemsapi/internal/errors"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// errorRule maps one sentinel to a response. An empty message echoes err.Error().
type errorRule struct {
	sentinel error
	status   int
	code     string
	message  string
}

// errorRules is evaluated in order; the first sentinel matched by errors.Is wins.
var errorRules = []errorRule{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "A conflict occurred with existing data"},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
	{apperrors.ErrInactive, http.StatusBadRequest, "inactive", "The requested resource is inactive"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, "bad_request", ""},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Could not validate credentials"},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden", "You don't have permission to access this resource"},
	{apperrors.ErrUnavailable, http.StatusServiceUnavailable, "unavailable", "A required dependency is unavailable"},
}

var internalErrorRule = errorRule{
	status:  http.StatusInternalServerError,
	code:    "internal_error",
	message: "An internal error occurred",
}

func matchRule(err error) errorRule {
	for _, rule := range errorRules {
		if apperrors.Is(err, rule.sentinel) {
			return rule
		}
	}
	return internalErrorRule
}

// HandleErrorGin writes the JSON error response for err.
// 401 responses carry a "WWW-Authenticate: Bearer" challenge. Unknown errors become 500
// without exposing details.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	rule := matchRule(err)
	message := rule.message
	if message == "" {
		message = err.Error()
	}

	if rule.status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}

	// 4xx at debug, 5xx at error.
	if logger != nil {
		level := slog.LevelDebug
		if rule.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c, level, "request failed",
			slog.Int("status_code", rule.status),
			slog.String("error_code", rule.code),
			slog.Any("error", err),
		)
	}

	c.JSON(rule.status, ErrorResponse{Error: rule.code, Message: message})
}

// HandleBadRequestGin writes a 400 for malformed bodies or query parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusBadRequest, "bad_request", err, logger)
}

// HandleValidationErrorGin writes a 422 for bodies or path parameters that fail validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusUnprocessableEntity, "validation_error", err, logger)
}

func writeClientError(c *gin.Context, status int, code string, err error, logger *slog.Logger) {
	if logger != nil {
		logger.DebugContext(c, "request rejected",
			slog.Int("status_code", status),
			slog.String("error_code", code),
			slog.Any("error", err),
		)
	}
	c.JSON(status, ErrorResponse{Error: code, Message: err.Error()})
}
