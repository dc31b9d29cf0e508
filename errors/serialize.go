package errors

// MaxCauseDepth bounds the number of links recorded from a cause chain.
// It guarantees termination on cyclic or pathologically long chains.
const MaxCauseDepth = 100

const (
	// ErrorTypeServer is the errorType of every non-validation client body.
	ErrorTypeServer = "Server"

	// ErrorTypeInputValidation is the errorType of validation client bodies.
	ErrorTypeInputValidation = "InputValidation"
)

// ErrorRecord is the full, internal-detail-inclusive view of an HTTPError.
type ErrorRecord struct {
	Name            string                 `json:"name"`
	Message         string                 `json:"message"`
	Code            ErrorCode              `json:"code"`
	Severity        Severity               `json:"severity"`
	StatusCode      int                    `json:"statusCode"`
	ResponseMessage string                 `json:"responseMessage"`
	Meta            map[string]interface{} `json:"meta,omitempty"`
	Stack           string                 `json:"stack,omitempty"`
}

// CauseRecord describes one link of a cause chain. Optional fields are only
// filled when the cause provides them.
type CauseRecord struct {
	Name            string                 `json:"name"`
	Message         string                 `json:"message"`
	Stack           string                 `json:"stack,omitempty"`
	Code            ErrorCode              `json:"code,omitempty"`
	ResponseMessage string                 `json:"responseMessage,omitempty"`
	Meta            map[string]interface{} `json:"meta,omitempty"`
}

// DiagnosticRecord is the log-only serialization of an HTTPError.
type DiagnosticRecord struct {
	TopLevel   ErrorRecord   `json:"topLevel"`
	CauseChain []CauseRecord `json:"causeChain"`
}

// ClientError is the whitelisted subset of an error that clients may see.
type ClientError struct {
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
	Name    string    `json:"name"`
}

// ClientRecord is the client-safe serialization of an HTTPError.
type ClientRecord struct {
	ErrorType string      `json:"errorType"`
	Error     ClientError `json:"error"`
}

// Diagnostic builds the verbose record of e, including its flattened cause
// chain. It never modifies e.
func Diagnostic(e *HTTPError) DiagnosticRecord {
	if e == nil || e.BaseError == nil {
		return DiagnosticRecord{CauseChain: []CauseRecord{}}
	}

	return DiagnosticRecord{
		TopLevel: ErrorRecord{
			Name:            e.name,
			Message:         e.message,
			Code:            e.code,
			Severity:        e.severity,
			StatusCode:      e.statusCode,
			ResponseMessage: e.responseMessage,
			Meta:            e.Meta(),
			Stack:           e.stack,
		},
		CauseChain: CauseChain(e),
	}
}

// Client builds the client-safe record of e. Only the response message, the
// code and the name are exposed; the diagnostic message, stack, metadata and
// cause never are.
func Client(e *HTTPError) ClientRecord {
	if e == nil || e.BaseError == nil {
		return ClientRecord{
			ErrorType: ErrorTypeServer,
			Error:     ClientError{Code: CodeUnknown},
		}
	}

	return ClientRecord{
		ErrorType: ErrorTypeServer,
		Error: ClientError{
			Message: e.responseMessage,
			Code:    e.code,
			Name:    e.name,
		},
	}
}

// CauseChain walks the causes of err and returns one record per link, at most
// MaxCauseDepth of them. err itself is not included. For errors that wrap
// several errors, only the first is followed.
func CauseChain(err error) []CauseRecord {
	chain := []CauseRecord{}

	current := err
	for len(chain) < MaxCauseDepth {
		next := unwrapFirst(current)
		if isNil(next) {
			break
		}
		chain = append(chain, causeRecord(next))
		current = next
	}

	return chain
}

func causeRecord(err error) CauseRecord {
	rec := CauseRecord{
		Name:    NameOf(err),
		Message: MessageOf(err),
		Stack:   StackOf(err),
		Meta:    MetaOf(err),
	}
	if c, ok := err.(interface{ Code() ErrorCode }); ok {
		rec.Code = c.Code()
	}
	if r, ok := err.(interface{ ResponseMessage() string }); ok {
		rec.ResponseMessage = r.ResponseMessage()
	}
	return rec
}

func unwrapFirst(err error) error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return u.Unwrap()
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if e != nil {
				return e
			}
		}
	}
	return nil
}
