// Package mapper converts business errors into HTTP errors using a
// code-to-status table.
package mapper

import (
	"net/http"

	"github.com/jmgilman/go/httperrors/errors"
	"github.com/jmgilman/go/httperrors/logging"
)

const (
	// FallbackStatus is used for codes missing from the table.
	FallbackStatus = http.StatusInternalServerError

	// FallbackMessage is the client message used for codes missing from the table.
	FallbackMessage = "Internal Server Error"
)

// Entry is the HTTP response layer assigned to one error code.
type Entry struct {
	StatusCode      int    `yaml:"statusCode" json:"statusCode"`
	ResponseMessage string `yaml:"responseMessage" json:"responseMessage"`
}

// Table maps error codes to their HTTP response layer.
type Table map[errors.ErrorCode]Entry

// Mapper applies a Table to BaseErrors. It is safe for concurrent use; the
// table is copied at construction and never modified.
type Mapper struct {
	table  Table
	logger logging.Logger
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets where notices about unmapped codes are sent.
// A nil logger silences them.
func WithLogger(l logging.Logger) Option {
	return func(m *Mapper) {
		m.logger = l
	}
}

// New creates a Mapper for table. Notices go to slog.Default() unless
// WithLogger is given.
func New(table Table, opts ...Option) *Mapper {
	m := &Mapper{
		table:  make(Table, len(table)),
		logger: logging.Default(),
	}
	for code, entry := range table {
		m.table[code] = entry
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Map converts err using table, sending notices to slog.Default().
// See Mapper.Map.
func Map(err *errors.BaseError, table Table) *errors.HTTPError {
	return New(table).Map(err)
}

// Map adds the table's response layer for err's code to err. All diagnostic
// fields of err pass through unchanged.
//
// Codes missing from the table map to FallbackStatus and FallbackMessage and
// a warning naming the code is logged. Returns nil if err is nil.
func (m *Mapper) Map(err *errors.BaseError) *errors.HTTPError {
	if err == nil {
		return nil
	}

	entry, ok := m.table[err.Code()]
	if !ok {
		logging.Log(m.logger, errors.SeverityWarn, "no HTTP mapping for error code", map[string]interface{}{
			"code":           err.Code(),
			"name":           err.Name(),
			"fallbackStatus": FallbackStatus,
		})
		return errors.AsHTTP(err, FallbackStatus, FallbackMessage)
	}

	return errors.AsHTTP(err, entry.StatusCode, entry.ResponseMessage)
}

// Lookup returns the entry for code, if any.
func (m *Mapper) Lookup(code errors.ErrorCode) (Entry, bool) {
	entry, ok := m.table[code]
	return entry, ok
}
