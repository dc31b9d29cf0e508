package validation

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
	"github.com/jmgilman/go/httperrors/errors"
)

var _ errors.Serializer = Serialize

// Serialize converts a CUE error into field errors grouped by path.
//
// Paths are joined with "."; errors without a path are reported against
// errors.UnknownField. Fields appear in the order their first error was
// reported and duplicate messages are dropped. Values that are not errors are
// reported as a single entry holding their text.
func Serialize(raw interface{}) errors.ValidationResult {
	result := errors.ValidationResult{Name: ValidationName}

	switch v := raw.(type) {
	case nil:
		return result
	case error:
		if _, ok := errors.Find[cueerrors.Error](v); ok {
			result.Errors = groupByPath(v)
		} else {
			result.Errors = []errors.FieldError{{Messages: []string{v.Error()}}}
		}
	case string:
		result.Errors = []errors.FieldError{{Messages: []string{v}}}
	default:
		result.Errors = []errors.FieldError{{Messages: []string{fmt.Sprintf("%v", v)}}}
	}

	return result
}

func groupByPath(err error) []errors.FieldError {
	var (
		order  []string
		byPath = make(map[string][]string)
		seen   = make(map[string]bool)
	)

	for _, e := range cueerrors.Errors(err) {
		path := strings.Join(e.Path(), ".")
		msg := message(e)

		if _, ok := byPath[path]; !ok {
			order = append(order, path)
			byPath[path] = []string{}
		}
		if key := path + "\x00" + msg; !seen[key] {
			seen[key] = true
			byPath[path] = append(byPath[path], msg)
		}
	}

	out := make([]errors.FieldError, 0, len(order))
	for _, path := range order {
		out = append(out, errors.FieldError{Field: path, Messages: byPath[path]})
	}
	return out
}

func message(e cueerrors.Error) string {
	format, args := e.Msg()
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if msg == "" {
		return e.Error()
	}
	return msg
}
