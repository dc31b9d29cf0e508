package validation

import (
	"github.com/jmgilman/go/httperrors/errors"
)

// ValidationName is the name reported by input validation errors built from
// CUE failures.
const ValidationName = "ValidationError"

// wrapConfigError wraps an error with CodeInvalidConfig.
// Used when the schema itself cannot be compiled or resolved.
func wrapConfigError(err error, message string, meta map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WrapWithMeta(err, errors.CodeInvalidConfig, message, meta)
}

// wrapSchemaError wraps an error with CodeSchemaFailed.
// Used when a payload passed validation but could not be processed.
func wrapSchemaError(err error, message string, meta map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WrapWithMeta(err, errors.CodeSchemaFailed, message, meta)
}

// inputError turns a CUE failure caused by the payload into an input
// validation error.
func inputError(err error) error {
	if err == nil {
		return nil
	}
	return errors.NewInputValidationError(err, Serialize)
}
