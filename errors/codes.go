package errors

// ErrorCode is an opaque business identifier for an error condition.
// Codes are strings so they read well in logs, serialize as-is and can key the
// code-to-status tables used by the mapper. Numeric codes are written as
// strings ("404").
type ErrorCode string

// Predefined codes. Applications are free to define their own; the mapper's
// DefaultTable only knows these.
const (
	// CodeNotFound: the addressed entity does not exist (404 by default).
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists: a create collided with an existing entity (409).
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeConflict: the entity is in a state that forbids the change (409).
	CodeConflict ErrorCode = "CONFLICT"

	// CodeUnauthorized: the caller is not authenticated (401).
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden: the caller is authenticated but not allowed (403).
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeRouteNotFound: no handler is registered for the path (404).
	CodeRouteNotFound ErrorCode = "ROUTE_NOT_FOUND"

	// CodeMethodNotAllowed: the path exists, the method does not (405).
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"

	// CodeInvalidInput: a request could not be understood (400).
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig: a mapping table, schema or setting is unusable.
	// Reported at startup, never mapped.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeSchemaFailed: a payload passed validation but could not be turned
	// into its Go value (422).
	CodeSchemaFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"

	CodeDatabase  ErrorCode = "DATABASE_ERROR"
	CodeNetwork   ErrorCode = "NETWORK_ERROR"       // 502
	CodeTimeout   ErrorCode = "TIMEOUT"             // 504
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED" // 429

	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"     // 501
	CodeUnavailable    ErrorCode = "SERVICE_UNAVAILABLE" // 503

	// CodeUnknown is reported for errors that carry no code of their own.
	// It is also the code clients see for unclassified failures.
	CodeUnknown ErrorCode = "UNKNOWN_ERROR"
)
