package api

import (
	"errors"
	"fmt"
	"net/http"

	"ptgym/internal/logger"

	"github.com/gin-gonic/gin"
)

// Error kinds. Domain errors wrap exactly one of these.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrBadRequest       = errors.New("bad request")
	ErrAlreadyProcessed = errors.New("already processed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
)

// Error carries a client-facing message together with its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return NewError(ErrNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return NewError(ErrConflict, format, args...)
}

func BadRequest(format string, args ...interface{}) *Error {
	return NewError(ErrBadRequest, format, args...)
}

func AlreadyProcessed(format string, args ...interface{}) *Error {
	return NewError(ErrAlreadyProcessed, format, args...)
}

// StatusCode maps an error to the HTTP status the handlers respond with.
// Conflicts are client errors the caller retries explicitly, so they map to 400.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrAlreadyProcessed):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as an ErrorResponse. Errors without a kind are
// logged and hidden behind a generic message.
func RespondError(c *gin.Context, err error) {
	status := StatusCode(err)
	if status == http.StatusInternalServerError {
		logger.WithError(err).Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
		)
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
