package errors

import (
	stderrors "errors"
	"fmt"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// KindOf returns the taxonomy tag of the outermost tagged error in err's chain.
// Returns KindNone if err is nil or carries no tag.
//
// Example:
//
//	if errors.KindOf(err) == errors.KindHTTP {
//	    // respond with the error's own status
//	}
func KindOf(err error) Kind {
	if tagged, ok := Find[Tagged](err); ok {
		return tagged.Kind()
	}
	return KindNone
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if no error in the chain carries a code.
func GetCode(err error) ErrorCode {
	if c, ok := Find[interface{ Code() ErrorCode }](err); ok {
		return c.Code()
	}
	return CodeUnknown
}

// GetSeverity extracts the Severity from an error.
// Returns SeverityError if no error in the chain carries a severity.
func GetSeverity(err error) Severity {
	if sev, ok := severityOf(err); ok {
		return sev
	}
	return SeverityError
}

// Find returns the first error in err's chain that is a T.
//
// Unlike errors.As, Find gives up after visiting MaxCauseDepth errors, so it
// terminates on cyclic chains. Chains built with errors.Join are searched
// depth-first.
func Find[T any](err error) (T, bool) {
	found := walk(err, func(e error) bool {
		_, ok := e.(T)
		return ok
	})
	if found == nil {
		var zero T
		return zero, false
	}
	return found.(T), true
}

// isNil reports whether err is nil or a nil pointer to a taxonomy type.
// Such values end a chain: they carry no code, tag or cause.
func isNil(err error) bool {
	switch e := err.(type) {
	case nil:
		return true
	case *BaseError:
		return e == nil
	case *HTTPError:
		return e == nil || e.BaseError == nil
	case *InputValidationError:
		return e == nil
	}
	return false
}

// walk visits err and its causes depth-first, at most MaxCauseDepth errors,
// and returns the first one for which match returns true.
func walk(err error, match func(error) bool) error {
	budget := MaxCauseDepth

	var visit func(error) error
	visit = func(e error) error {
		for !isNil(e) && budget > 0 {
			budget--
			if match(e) {
				return e
			}
			switch u := e.(type) {
			case interface{ Unwrap() error }:
				e = u.Unwrap()
			case interface{ Unwrap() []error }:
				for _, child := range u.Unwrap() {
					if found := visit(child); found != nil {
						return found
					}
				}
				return nil
			default:
				return nil
			}
		}
		return nil
	}

	return visit(err)
}

// NameOf returns the taxonomy name of err, or its dynamic Go type for errors
// outside the taxonomy. Returns an empty string for nil.
func NameOf(err error) string {
	if err == nil {
		return ""
	}
	if n, ok := err.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", err)
}

// MessageOf returns the diagnostic message of err. Errors outside the taxonomy
// report their Error() text. Returns an empty string for nil.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if m, ok := err.(interface{ Message() string }); ok {
		return m.Message()
	}
	return err.Error()
}

// MetaOf returns the metadata attached to err itself, if any.
func MetaOf(err error) map[string]interface{} {
	if m, ok := err.(interface{ Meta() map[string]interface{} }); ok {
		return m.Meta()
	}
	return nil
}

// StackOf returns the stack captured by err itself, if any.
func StackOf(err error) string {
	if s, ok := err.(interface{ Stack() string }); ok {
		return s.Stack()
	}
	return ""
}
