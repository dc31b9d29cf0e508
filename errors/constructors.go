package errors

import "fmt"

// New creates a new BaseError with the given code and message.
// The severity is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "project 42 not found in table projects")
func New(code ErrorCode, message string) *BaseError {
	return newBase(code, message, nil, nil)
}

// Newf creates a new BaseError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "name too long: %d characters (max %d)", len(name), maxLen)
func Newf(code ErrorCode, format string, args ...interface{}) *BaseError {
	return newBase(code, fmt.Sprintf(format, args...), nil, nil)
}

// NewWithMeta creates a new BaseError with metadata attached.
// The map is copied to prevent external mutation.
func NewWithMeta(code ErrorCode, message string, meta map[string]interface{}) *BaseError {
	return newBase(code, message, meta, nil)
}

func newBase(code ErrorCode, message string, meta map[string]interface{}, cause error) *BaseError {
	return &BaseError{
		name:     DefaultBaseName,
		message:  message,
		code:     code,
		severity: getDefaultSeverity(code),
		meta:     cloneMeta(meta),
		cause:    cause,
		stack:    captureStack(2),
	}
}
