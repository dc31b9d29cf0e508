package handler

import (
	"net/http"

	"github.com/jmgilman/go/httperrors/errors"
)

const (
	// UnknownMessage is the client message of every unclassified error.
	UnknownMessage = "An Expected error occurred."

	// UnknownName is the client-visible name of every unclassified error.
	UnknownName = "unknown"
)

// ValidationDetail is the error member of a validation response body.
type ValidationDetail struct {
	Name   string              `json:"name"`
	Errors []errors.FieldError `json:"errors"`
}

// ValidationBody is the response body for input validation errors.
type ValidationBody struct {
	ErrorType string           `json:"errorType"`
	Error     ValidationDetail `json:"error"`
}

// UnknownBody is the response body for unclassified errors. It carries
// nothing from the real error.
func UnknownBody() errors.ClientRecord {
	return errors.ClientRecord{
		ErrorType: errors.ErrorTypeServer,
		Error: errors.ClientError{
			Code:    errors.CodeUnknown,
			Message: UnknownMessage,
			Name:    UnknownName,
		},
	}
}

func writeUnknown(sink ResponseSink) {
	sink.SetStatus(http.StatusInternalServerError)
	sink.WriteJSON(UnknownBody())
}
