package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error carrying the HTTP status used at
// the transport boundary.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two application errors by code and message so that wrapped
// copies created via Wrap compare equal to their sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap returns a copy of the sentinel carrying the underlying cause.
// The sentinel itself is never mutated.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Err:     err,
	}
}

// Credential errors. Each malformation gets a distinct value so callers
// and tests can tell them apart.
var (
	ErrMalformedToken = New(http.StatusUnauthorized, "Malformed authorization header", nil)
	ErrTokenExpired   = New(http.StatusUnauthorized, "Token has expired", nil)
	ErrInvalidToken   = New(http.StatusUnauthorized, "Invalid token", nil)
	ErrMissingSubject = New(http.StatusUnauthorized, "Token missing subject", nil)
)

// Ownership guard errors. NotFound is reported before the owner check, so
// a non-owner probing a nonexistent id sees the same outcome as the owner.
var (
	ErrNotFound  = New(http.StatusNotFound, "Not found", nil)
	ErrForbidden = New(http.StatusForbidden, "Forbidden", nil)
)

// Checkout errors. SerializationConflict is the only retryable one.
var (
	ErrEmptyCart             = New(http.StatusBadRequest, "Cart is empty", nil)
	ErrSerializationConflict = New(http.StatusConflict, "Concurrent update conflict, retry the request", nil)
	ErrStorageFailure        = New(http.StatusInternalServerError, "Storage failure", nil)
)

// ErrConflictingDefault indicates two default-flagged records for the same
// owner were observed inside a transaction. It signals a logic bug, not a
// caller mistake.
var ErrConflictingDefault = New(http.StatusInternalServerError, "Conflicting default records", nil)

// Generic transport errors
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Retryable reports whether the caller may safely retry the request.
func Retryable(err error) bool {
	return errors.Is(err, ErrSerializationConflict)
}

// HandleGin writes err as a JSON response with its transport status.
// Unknown errors are masked as internal server errors so storage internals
// never leak to clients.
func HandleGin(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Wrap(ErrInternalServer, err)
	}
	c.JSON(appErr.Code, appErr)
}

// ErrorMiddleware maps errors attached to the gin context onto JSON
// responses after the handler chain runs.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			HandleGin(c, c.Errors.Last().Err)
			c.Abort()
		}
	}
}
