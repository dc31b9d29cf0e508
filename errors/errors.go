// Package errors provides the error taxonomy used by the httperrors handlers.
// It defines base application errors, HTTP-flavored errors and input validation
// errors, each carrying an explicit Kind tag used for classification.
package errors

// Kind identifies which taxonomy member an error belongs to.
// The tag is set once at construction and never reassigned.
type Kind int

const (
	// KindNone is reported for errors that carry no taxonomy tag.
	KindNone Kind = iota

	// KindBase is the tag of a plain BaseError.
	KindBase

	// KindHTTP is the tag of an HTTPError.
	KindHTTP

	// KindInputValidation is the tag of an InputValidationError.
	KindInputValidation
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindHTTP:
		return "http"
	case KindInputValidation:
		return "input_validation"
	default:
		return "none"
	}
}

// Tagged is implemented by every error in the taxonomy.
type Tagged interface {
	error

	// Kind returns the taxonomy tag assigned at construction.
	Kind() Kind
}
