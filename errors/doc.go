// Package errors defines the application error taxonomy consumed by the
// httperrors response handlers.
//
// The taxonomy has three members, each tagged with an explicit Kind at
// construction so that handlers classify errors by tag rather than by type
// inspection:
//
//   - BaseError: name, diagnostic message, code, severity, metadata and cause
//   - HTTPError: a BaseError plus an HTTP status and a client-safe message
//   - InputValidationError: a list of field errors produced by a validation library
//
// All three are compatible with the standard library errors package
// (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	// Diagnostic-only error; severity defaults from the code
//	err := errors.New(errors.CodeDatabase, "connection pool exhausted")
//
//	// Wrapping a lower-level error
//	err := errors.Wrap(dbErr, errors.CodeDatabase, "failed to query users")
//
//	// HTTP error with a sanitized client message
//	err := errors.NewHTTP(http.StatusNotFound, "Not Found", "E_NF", "order 7 not in shard 3")
//
// Errors are immutable. The With* methods return modified copies:
//
//	err = err.WithMeta("user_id", id).WithSeverity(errors.SeverityWarn)
//
// Validation failures are normalized through a Serializer:
//
//	verr := errors.NewInputValidationError(raw, func(raw interface{}) errors.ValidationResult {
//	    return errors.ValidationResult{
//	        Name:   "ValidationError",
//	        Errors: []errors.FieldError{{Field: "email", Messages: []string{"Invalid email format"}}},
//	    }
//	})
//
// # Serialization
//
// Diagnostic returns the verbose record of an HTTPError, including a cause
// chain capped at MaxCauseDepth links. It is meant for logs only.
//
// Client returns the client-safe record. It exposes the response message, the
// code and the name and nothing else: diagnostic messages, stacks, metadata and
// causes never reach the wire.
//
// # Severity
//
// Every code has a default severity (see defaultSeverities). Handlers log an
// HTTPError at its own severity. Wrap preserves the severity of the wrapped
// error when it has one.
package errors
