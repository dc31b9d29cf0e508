package errors

import "fmt"

// Wrap creates a BaseError around err.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If err carries a severity of its own, that severity is preserved.
// Otherwise, the default severity for the error code is used.
//
// Returns nil if err is nil or a nil pointer to a taxonomy type. The result
// is a *BaseError, so a nil result returned through an error-typed function
// is a non-nil error; check err first, as in the example below. Dispatch
// treats such values as unclassified.
//
// Example:
//
//	user, err := repo.Find(ctx, id)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeDatabase, "failed to load user")
//	}
func Wrap(err error, code ErrorCode, message string) *BaseError {
	if isNil(err) {
		return nil
	}

	e := newBase(code, message, nil, err)
	if sev, ok := severityOf(err); ok {
		e.severity = sev
	}
	return e
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BaseError {
	if isNil(err) {
		return nil
	}

	e := newBase(code, fmt.Sprintf(format, args...), nil, err)
	if sev, ok := severityOf(err); ok {
		e.severity = sev
	}
	return e
}

// WrapWithMeta wraps an error and attaches metadata in a single operation.
// The map is copied to prevent external mutation.
//
// Returns nil if err is nil.
func WrapWithMeta(err error, code ErrorCode, message string, meta map[string]interface{}) *BaseError {
	if isNil(err) {
		return nil
	}

	e := newBase(code, message, meta, err)
	if sev, ok := severityOf(err); ok {
		e.severity = sev
	}
	return e
}

func severityOf(err error) (Severity, bool) {
	if s, ok := Find[interface{ Severity() Severity }](err); ok {
		return s.Severity(), true
	}
	return "", false
}
