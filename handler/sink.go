package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
)

// ResponseSink receives the response for one dispatched error.
// After SetStatus and WriteJSON the response is finalized.
type ResponseSink interface {
	SetStatus(code int)
	WriteJSON(body interface{})
}

// HTTPSink writes responses to an http.ResponseWriter using go-chi/render.
type HTTPSink struct {
	w      http.ResponseWriter
	r      *http.Request
	status int
}

var _ ResponseSink = (*HTTPSink)(nil)

// NewHTTPSink creates a sink for the given request and response writer.
func NewHTTPSink(w http.ResponseWriter, r *http.Request) *HTTPSink {
	return &HTTPSink{w: w, r: r, status: http.StatusInternalServerError}
}

// SetStatus records the status written by the next WriteJSON.
func (s *HTTPSink) SetStatus(code int) {
	s.status = code
}

// WriteJSON writes body as JSON with the recorded status. Informational
// statuses and statuses that net/http would reject are written as 500.
func (s *HTTPSink) WriteJSON(body interface{}) {
	status := s.status
	if status < 200 || status > 999 {
		status = http.StatusInternalServerError
	}

	if s.r == nil {
		s.w.Header().Set("Content-Type", "application/json")
		s.w.WriteHeader(status)
		_ = json.NewEncoder(s.w).Encode(body)
		return
	}

	render.Status(s.r, status)
	render.JSON(s.w, s.r, body)
}

// discardSink accepts a response and drops it.
type discardSink struct{}

func (discardSink) SetStatus(int)         {}
func (discardSink) WriteJSON(interface{}) {}
