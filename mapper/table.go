package mapper

import (
	"bytes"
	"io"
	"net/http"
	"os"

	"github.com/jmgilman/go/httperrors/errors"
	"gopkg.in/yaml.v3"
)

// DefaultTable returns the table for the predefined error codes. Every client
// message is the standard status text.
func DefaultTable() Table {
	statuses := map[errors.ErrorCode]int{
		errors.CodeNotFound:         http.StatusNotFound,
		errors.CodeAlreadyExists:    http.StatusConflict,
		errors.CodeConflict:         http.StatusConflict,
		errors.CodeUnauthorized:     http.StatusUnauthorized,
		errors.CodeForbidden:        http.StatusForbidden,
		errors.CodeRouteNotFound:    http.StatusNotFound,
		errors.CodeMethodNotAllowed: http.StatusMethodNotAllowed,
		errors.CodeInvalidInput:     http.StatusBadRequest,
		errors.CodeSchemaFailed:     http.StatusUnprocessableEntity,
		errors.CodeRateLimit:        http.StatusTooManyRequests,
		errors.CodeTimeout:          http.StatusGatewayTimeout,
		errors.CodeNetwork:          http.StatusBadGateway,
		errors.CodeNotImplemented:   http.StatusNotImplemented,
		errors.CodeUnavailable:      http.StatusServiceUnavailable,
	}

	table := make(Table, len(statuses))
	for code, status := range statuses {
		table[code] = Entry{StatusCode: status, ResponseMessage: http.StatusText(status)}
	}
	return table
}

// Merge returns a new table holding the entries of base overridden by those
// of override.
func Merge(base, override Table) Table {
	out := make(Table, len(base)+len(override))
	for code, entry := range base {
		out[code] = entry
	}
	for code, entry := range override {
		out[code] = entry
	}
	return out
}

// LoadTable decodes a YAML mapping table of the form:
//
//	USER_NOT_FOUND:
//	  statusCode: 404
//	  responseMessage: User not found
//
// Unknown entry fields and status codes outside 200-599 are rejected with
// CodeInvalidConfig.
func LoadTable(r io.Reader) (Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var table Table
	if err := dec.Decode(&table); err != nil {
		if err == io.EOF {
			return Table{}, nil
		}
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode error mapping table")
	}

	for code, entry := range table {
		if entry.StatusCode < 200 || entry.StatusCode > 599 {
			return nil, errors.NewWithMeta(errors.CodeInvalidConfig, "invalid status code in error mapping table", map[string]interface{}{
				"code":       code,
				"statusCode": entry.StatusCode,
			})
		}
	}

	if table == nil {
		table = Table{}
	}
	return table, nil
}

// LoadTableFile reads a YAML mapping table from path.
func LoadTableFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithMeta(err, errors.CodeInvalidConfig, "failed to read error mapping table", map[string]interface{}{
			"path": path,
		})
	}
	return LoadTable(bytes.NewReader(data))
}
