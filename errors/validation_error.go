package errors

import (
	"fmt"
	"strings"
)

const (
	// DefaultValidationName is used when a serializer returns no name.
	DefaultValidationName = "InputValidationError"

	// UnknownField is used for entries whose serializer omitted the field.
	UnknownField = "unknown"
)

// FieldError lists the validation messages reported for one field.
type FieldError struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationResult is what a Serializer extracts from a raw validation failure.
// An entry with an empty Field is treated as if the field were omitted.
type ValidationResult struct {
	Name   string
	Errors []FieldError
}

// Serializer converts a library-specific validation failure into a
// ValidationResult. It is the only integration point with a validation library.
type Serializer func(raw interface{}) ValidationResult

// InputValidationError reports one or more field-level validation failures.
// It is a sibling of BaseError, not an HTTPError.
type InputValidationError struct {
	name   string
	errors []FieldError
	raw    interface{}
}

// NewInputValidationError builds an InputValidationError from a raw validation
// failure using serializer. The result is normalized: every entry gets a field
// name (UnknownField when omitted) and a non-nil message list.
//
// A nil serializer falls back to a single UnknownField entry holding the raw
// failure's text.
func NewInputValidationError(raw interface{}, serializer Serializer) *InputValidationError {
	if serializer == nil {
		serializer = fallbackSerializer
	}

	result := serializer(raw)

	name := result.Name
	if name == "" {
		name = DefaultValidationName
	}

	entries := make([]FieldError, 0, len(result.Errors))
	for _, fe := range result.Errors {
		field := fe.Field
		if field == "" {
			field = UnknownField
		}
		messages := make([]string, len(fe.Messages))
		copy(messages, fe.Messages)
		entries = append(entries, FieldError{Field: field, Messages: messages})
	}

	return &InputValidationError{
		name:   name,
		errors: entries,
		raw:    raw,
	}
}

func fallbackSerializer(raw interface{}) ValidationResult {
	if raw == nil {
		return ValidationResult{}
	}

	var msg string
	switch v := raw.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		msg = fmt.Sprintf("%v", v)
	}
	return ValidationResult{Errors: []FieldError{{Messages: []string{msg}}}}
}

// Error joins every field and message into a single line.
func (e *InputValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	parts := make([]string, 0, len(e.errors))
	for _, fe := range e.errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, strings.Join(fe.Messages, ", ")))
	}
	if len(parts) == 0 {
		return "input validation failed"
	}
	return "input validation failed: " + strings.Join(parts, "; ")
}

// Kind returns KindInputValidation.
func (e *InputValidationError) Kind() Kind {
	return KindInputValidation
}

// Name returns the name reported by the serializer.
func (e *InputValidationError) Name() string {
	if e == nil {
		return ""
	}
	return e.name
}

// Errors returns a copy of the normalized field errors.
func (e *InputValidationError) Errors() []FieldError {
	if e == nil {
		return []FieldError{}
	}
	out := make([]FieldError, len(e.errors))
	for i, fe := range e.errors {
		messages := make([]string, len(fe.Messages))
		copy(messages, fe.Messages)
		out[i] = FieldError{Field: fe.Field, Messages: messages}
	}
	return out
}

// Raw returns the validation failure the error was built from.
func (e *InputValidationError) Raw() interface{} {
	if e == nil {
		return nil
	}
	return e.raw
}

// Unwrap returns the raw failure when it is itself an error.
func (e *InputValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.raw.(error); ok {
		return err
	}
	return nil
}
