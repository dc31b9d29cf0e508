package handler

import (
	"net/http"

	"github.com/jmgilman/go/httperrors/errors"
	"github.com/jmgilman/go/httperrors/logging"
)

// HTTPErrorStrategy handles errors tagged KindHTTP.
type HTTPErrorStrategy struct {
	// Logger receives the diagnostic record at the error's own severity.
	// Nil disables logging.
	Logger logging.Logger

	// OmitStack drops stacks from the logged diagnostic record.
	OmitStack bool
}

var _ Strategy = (*HTTPErrorStrategy)(nil)

// CanHandle reports whether err is tagged as an HTTP error. Nil pointers are
// left to the fallback.
func (s *HTTPErrorStrategy) CanHandle(err error) bool {
	if errors.KindOf(err) != errors.KindHTTP {
		return false
	}
	he, ok := errors.Find[*errors.HTTPError](err)
	return ok && he.Base() != nil
}

// Handle logs the diagnostic record and responds with the error's status and
// client record.
func (s *HTTPErrorStrategy) Handle(err error, sink ResponseSink) {
	he, ok := errors.Find[*errors.HTTPError](err)
	if !ok || he == nil || he.Base() == nil {
		writeUnknown(sink)
		return
	}

	if s.Logger != nil {
		rec := errors.Diagnostic(he)
		if s.OmitStack {
			rec.TopLevel.Stack = ""
			for i := range rec.CauseChain {
				rec.CauseChain[i].Stack = ""
			}
		}
		logging.Log(s.Logger, he.Severity(), he.Message(), rec)
	}

	sink.SetStatus(he.StatusCode())
	sink.WriteJSON(errors.Client(he))
}

// ValidationErrorStrategy handles errors tagged KindInputValidation.
type ValidationErrorStrategy struct {
	// Logger receives the raw validation failure at warn. Nil disables logging.
	Logger logging.Logger
}

var _ Strategy = (*ValidationErrorStrategy)(nil)

// CanHandle reports whether err is tagged as an input validation error. Nil
// pointers are left to the fallback.
func (s *ValidationErrorStrategy) CanHandle(err error) bool {
	if errors.KindOf(err) != errors.KindInputValidation {
		return false
	}
	ve, ok := errors.Find[*errors.InputValidationError](err)
	return ok && ve != nil
}

// Handle logs the raw failure and responds 400 with the field errors.
func (s *ValidationErrorStrategy) Handle(err error, sink ResponseSink) {
	ve, ok := errors.Find[*errors.InputValidationError](err)
	if !ok || ve == nil {
		writeUnknown(sink)
		return
	}

	if s.Logger != nil {
		s.Logger.Warn("input validation failed", map[string]interface{}{
			"name":   ve.Name(),
			"errors": ve.Errors(),
			"raw":    ve.Raw(),
		})
	}

	sink.SetStatus(http.StatusBadRequest)
	sink.WriteJSON(ValidationBody{
		ErrorType: errors.ErrorTypeInputValidation,
		Error: ValidationDetail{
			Name:   ve.Name(),
			Errors: ve.Errors(),
		},
	})
}

// FallbackRecord is what the fallback strategy logs about an unclassified
// error. Every field is optional.
type FallbackRecord struct {
	Name    string                 `json:"name,omitempty"`
	Message string                 `json:"message,omitempty"`
	Code    errors.ErrorCode       `json:"code,omitempty"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
	Stack   string                 `json:"stack,omitempty"`
}

// FallbackStrategy matches every error. It must be last in a chain.
type FallbackStrategy struct {
	// Logger receives a FallbackRecord at error. Nil disables logging.
	Logger logging.Logger
}

var _ Strategy = (*FallbackStrategy)(nil)

// CanHandle always returns true.
func (s *FallbackStrategy) CanHandle(error) bool {
	return true
}

// Unconditional marks the strategy as matching every error.
func (s *FallbackStrategy) Unconditional() bool {
	return true
}

// Handle logs what can be extracted from err and responds 500 with a generic
// body that carries nothing from err.
func (s *FallbackStrategy) Handle(err error, sink ResponseSink) {
	if s.Logger != nil {
		s.Logger.Error("unhandled error", extract(err))
	}
	writeUnknown(sink)
}

func extract(err error) FallbackRecord {
	if err == nil {
		return FallbackRecord{}
	}

	rec := FallbackRecord{
		Name:    errors.NameOf(err),
		Message: errors.MessageOf(err),
		Meta:    errors.MetaOf(err),
		Stack:   errors.StackOf(err),
	}
	if c, ok := err.(interface{ Code() errors.ErrorCode }); ok {
		rec.Code = c.Code()
	}
	return rec
}
