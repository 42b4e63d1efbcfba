package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ValidationError reports a caller precondition violation (malformed window,
// bad time string, out-of-range weekday). Always raised before data is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a missing upstream entity. Repositories return it
// unchanged; services never mask it.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports an appointment that overlaps an occupying booking.
// It is an expected domain outcome, not a system failure.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps domain errors to HTTP statuses. Callers distinguish
// "conflict" (pick another time) from a system error (retry same request).
func RespondError(c *gin.Context, err error) {
	var ve *ValidationError
	var nfe *NotFoundError
	var ce *ConflictError

	switch {
	case errors.As(err, &ve):
		JSONError(c, http.StatusBadRequest, "Validation failed", ve.Error())
	case errors.As(err, &nfe):
		JSONError(c, http.StatusNotFound, nfe.Error(), "")
	case errors.As(err, &ce):
		JSONError(c, http.StatusConflict, "Time slot is no longer available", ce.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
