package errors

import "fmt"

// DefaultBaseName is the name given to a BaseError created without one.
const DefaultBaseName = "BaseError"

// BaseError is the root member of the taxonomy.
//
// The accessors are safe to call on a nil *BaseError and return zero values.
//
// A BaseError carries a diagnostic message that may contain internal detail,
// an error code, a logging severity, optional metadata and an optional cause.
// It is immutable once created: the With* methods return modified copies.
type BaseError struct {
	name     string
	message  string
	code     ErrorCode
	severity Severity
	meta     map[string]interface{}
	cause    error
	stack    string
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *BaseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Kind returns KindBase.
func (e *BaseError) Kind() Kind {
	return KindBase
}

// Name returns the human label of the error.
func (e *BaseError) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Message returns the diagnostic message. It is not safe to show to clients.
func (e *BaseError) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Code returns the error code.
func (e *BaseError) Code() ErrorCode {
	if e == nil {
		return ""
	}
	return e.code
}

// Severity returns the severity the error should be logged at.
func (e *BaseError) Severity() Severity {
	if e == nil {
		return ""
	}
	return e.severity
}

// Meta returns a copy of the metadata map.
// Returns nil if no metadata has been attached.
func (e *BaseError) Meta() map[string]interface{} {
	if e == nil {
		return nil
	}
	return cloneMeta(e.meta)
}

// Stack returns the call stack captured when the error was created.
func (e *BaseError) Stack() string {
	if e == nil {
		return ""
	}
	return e.stack
}

// Unwrap returns the cause for errors.Is and errors.As compatibility.
func (e *BaseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// WithName returns a copy of the error with the given name.
func (e *BaseError) WithName(name string) *BaseError {
	c := *e
	c.name = name
	return &c
}

// WithSeverity returns a copy of the error with the given severity.
func (e *BaseError) WithSeverity(severity Severity) *BaseError {
	c := *e
	c.severity = severity
	return &c
}

// WithMeta returns a copy of the error with key set in its metadata.
// Existing metadata is preserved.
func (e *BaseError) WithMeta(key string, value interface{}) *BaseError {
	meta := make(map[string]interface{}, len(e.meta)+1)
	for k, v := range e.meta {
		meta[k] = v
	}
	meta[key] = value

	c := *e
	c.meta = meta
	return &c
}

// WithMetaMap returns a copy of the error with m merged into its metadata.
// Keys in m override existing keys.
func (e *BaseError) WithMetaMap(m map[string]interface{}) *BaseError {
	meta := make(map[string]interface{}, len(e.meta)+len(m))
	for k, v := range e.meta {
		meta[k] = v
	}
	for k, v := range m {
		meta[k] = v
	}

	c := *e
	c.meta = meta
	return &c
}

// WithCause returns a copy of the error with the given cause.
func (e *BaseError) WithCause(cause error) *BaseError {
	c := *e
	c.cause = cause
	return &c
}

func cloneMeta(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
