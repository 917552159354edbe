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

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a referenced entity is absent.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ForbiddenError reports an identity mismatch against resource ownership
// or role.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// ConflictError reports a write that lost to existing state, such as a
// booking racing for a slot another booking already claimed.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// TransitionError reports a booking status transition the state machine
// does not allow.
type TransitionError struct {
	From  string
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Event, e.From)
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

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
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps a service error onto an HTTP status and writes the
// standard error body. Unknown errors become a 500 with a generic message.
func RespondError(c *gin.Context, err error) {
	var (
		ve *ValidationError
		nf *NotFoundError
		fe *ForbiddenError
		ce *ConflictError
		te *TransitionError
	)
	switch {
	case errors.As(err, &ve):
		JSONError(c, http.StatusBadRequest, ve.Message, "")
	case errors.As(err, &nf):
		JSONError(c, http.StatusNotFound, nf.Error(), "")
	case errors.As(err, &fe):
		JSONError(c, http.StatusForbidden, "Access denied", fe.Message)
	case errors.As(err, &ce):
		JSONError(c, http.StatusConflict, ce.Message, "")
	case errors.As(err, &te):
		JSONError(c, http.StatusConflict, te.Error(), "")
	default:
		GetLogger().Error("request failed", zap.Error(err))
		JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
