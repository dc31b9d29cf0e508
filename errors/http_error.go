package errors

import (
	"fmt"
	"net/http"
)

// DefaultHTTPName is the name given to an HTTPError created by NewHTTP.
const DefaultHTTPName = "HttpError"

// HTTPError is a BaseError with an HTTP response layer on top: a status code
// and a sanitized message that is safe to send to clients.
//
// The response message must never repeat internal detail from Message().
// Nothing enforces this; producers are responsible for choosing it.
type HTTPError struct {
	*BaseError
	statusCode      int
	responseMessage string
}

// NewHTTP creates an HTTPError from scratch.
//
// Example:
//
//	err := errors.NewHTTP(http.StatusNotFound, "Not Found", "E_NF", "order 7 missing from shard 3")
func NewHTTP(statusCode int, responseMessage string, code ErrorCode, message string) *HTTPError {
	base := newBase(code, message, nil, nil)
	base.name = DefaultHTTPName
	return &HTTPError{
		BaseError:       base,
		statusCode:      statusCode,
		responseMessage: responseMessage,
	}
}

// AsHTTP adds a response layer to an existing BaseError.
// Every diagnostic field of base passes through unchanged.
// Returns nil if base is nil.
func AsHTTP(base *BaseError, statusCode int, responseMessage string) *HTTPError {
	if base == nil {
		return nil
	}
	return &HTTPError{
		BaseError:       base,
		statusCode:      statusCode,
		responseMessage: responseMessage,
	}
}

// Error returns the string representation of the error.
// Format: "[CODE] message (status)" followed by ": cause" if cause is present.
func (e *HTTPError) Error() string {
	if e == nil || e.BaseError == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s (%d): %v", e.code, e.message, e.statusCode, e.cause)
	}
	return fmt.Sprintf("[%s] %s (%d)", e.code, e.message, e.statusCode)
}

// Kind returns KindHTTP.
func (e *HTTPError) Kind() Kind {
	return KindHTTP
}

// StatusCode returns the HTTP status to respond with.
func (e *HTTPError) StatusCode() int {
	if e == nil {
		return 0
	}
	return e.statusCode
}

// ResponseMessage returns the client-safe message.
func (e *HTTPError) ResponseMessage() string {
	if e == nil {
		return ""
	}
	return e.responseMessage
}

// Base returns the underlying BaseError. Returns nil for a nil *HTTPError.
func (e *HTTPError) Base() *BaseError {
	if e == nil {
		return nil
	}
	return e.BaseError
}

// The BaseError accessors are redeclared so that they stay safe on a nil
// *HTTPError instead of dereferencing it to reach the embedded pointer.

func (e *HTTPError) Name() string                 { return e.Base().Name() }
func (e *HTTPError) Message() string              { return e.Base().Message() }
func (e *HTTPError) Code() ErrorCode              { return e.Base().Code() }
func (e *HTTPError) Severity() Severity           { return e.Base().Severity() }
func (e *HTTPError) Meta() map[string]interface{} { return e.Base().Meta() }
func (e *HTTPError) Stack() string                { return e.Base().Stack() }
func (e *HTTPError) Unwrap() error                { return e.Base().Unwrap() }

// WithName returns a copy of the error with the given name.
func (e *HTTPError) WithName(name string) *HTTPError {
	return e.withBase(e.BaseError.WithName(name))
}

// WithSeverity returns a copy of the error with the given severity.
func (e *HTTPError) WithSeverity(severity Severity) *HTTPError {
	return e.withBase(e.BaseError.WithSeverity(severity))
}

// WithMeta returns a copy of the error with key set in its metadata.
func (e *HTTPError) WithMeta(key string, value interface{}) *HTTPError {
	return e.withBase(e.BaseError.WithMeta(key, value))
}

// WithMetaMap returns a copy of the error with m merged into its metadata.
func (e *HTTPError) WithMetaMap(m map[string]interface{}) *HTTPError {
	return e.withBase(e.BaseError.WithMetaMap(m))
}

// WithCause returns a copy of the error with the given cause.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	return e.withBase(e.BaseError.WithCause(cause))
}

func (e *HTTPError) withBase(base *BaseError) *HTTPError {
	return &HTTPError{
		BaseError:       base,
		statusCode:      e.statusCode,
		responseMessage: e.responseMessage,
	}
}

// NotFound creates a 404 HTTPError with CodeNotFound.
func NotFound(message string) *HTTPError {
	return newHTTP(http.StatusNotFound, CodeNotFound, message)
}

// BadRequest creates a 400 HTTPError with CodeInvalidInput.
func BadRequest(message string) *HTTPError {
	return newHTTP(http.StatusBadRequest, CodeInvalidInput, message)
}

// Unauthorized creates a 401 HTTPError with CodeUnauthorized.
func Unauthorized(message string) *HTTPError {
	return newHTTP(http.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden creates a 403 HTTPError with CodeForbidden.
func Forbidden(message string) *HTTPError {
	return newHTTP(http.StatusForbidden, CodeForbidden, message)
}

// Conflict creates a 409 HTTPError with CodeConflict.
func Conflict(message string) *HTTPError {
	return newHTTP(http.StatusConflict, CodeConflict, message)
}

// Internal creates a 500 HTTPError with CodeInternal.
func Internal(message string) *HTTPError {
	return newHTTP(http.StatusInternalServerError, CodeInternal, message)
}

// newHTTP uses the standard status text as the response message so that the
// diagnostic message never reaches the client.
func newHTTP(status int, code ErrorCode, message string) *HTTPError {
	base := newBase(code, message, nil, nil)
	base.name = DefaultHTTPName
	return &HTTPError{
		BaseError:       base,
		statusCode:      status,
		responseMessage: http.StatusText(status),
	}
}
