package errors

import (
	"fmt"
	"strings"
)

// Severity is the level at which an error should be logged.
type Severity string

const (
	// SeverityDebug is for errors that are only interesting while debugging.
	SeverityDebug Severity = "debug"

	// SeverityInfo is for expected conditions such as a missing resource.
	SeverityInfo Severity = "info"

	// SeverityWarn is for client mistakes and degraded but recoverable states.
	SeverityWarn Severity = "warn"

	// SeverityError is for failures that need operator attention.
	SeverityError Severity = "error"
)

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityDebug, SeverityInfo, SeverityWarn, SeverityError:
		return true
	default:
		return false
	}
}

// ParseSeverity parses a case-insensitive severity name.
// "warning" is accepted as an alias for warn.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", s)
	}
}

// defaultSeverities maps error codes to the severity assigned when an error
// is created without an explicit one.
var defaultSeverities = map[ErrorCode]Severity{
	// Expected outcomes of normal traffic
	CodeNotFound:      SeverityInfo,
	CodeAlreadyExists: SeverityInfo,
	CodeConflict:      SeverityInfo,
	CodeRouteNotFound: SeverityInfo,

	// Client mistakes
	CodeMethodNotAllowed: SeverityWarn,
	CodeUnauthorized:     SeverityWarn,
	CodeForbidden:        SeverityWarn,
	CodeInvalidInput:     SeverityWarn,
	CodeRateLimit:        SeverityWarn,

	// Operator attention
	CodeInvalidConfig:  SeverityError,
	CodeSchemaFailed:   SeverityError,
	CodeDatabase:       SeverityError,
	CodeNetwork:        SeverityError,
	CodeTimeout:        SeverityError,
	CodeInternal:       SeverityError,
	CodeNotImplemented: SeverityError,
	CodeUnavailable:    SeverityError,
	CodeUnknown:        SeverityError,
}

// getDefaultSeverity returns the default severity for an error code.
// Returns SeverityError if the code is not in the map.
func getDefaultSeverity(code ErrorCode) Severity {
	if sev, ok := defaultSeverities[code]; ok {
		return sev
	}
	return SeverityError
}
