// Package loggingtest provides a recording logging.Logger for tests.
package loggingtest

import (
	"sync"

	"github.com/jmgilman/go/httperrors/errors"
	"github.com/jmgilman/go/httperrors/logging"
)

// Entry is one recorded log call.
type Entry struct {
	Severity errors.Severity
	Message  string
	Meta     interface{}
}

// Recorder records every call made to it. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

var _ logging.Logger = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debug(msg string, meta interface{}) { r.record(errors.SeverityDebug, msg, meta) }
func (r *Recorder) Info(msg string, meta interface{})  { r.record(errors.SeverityInfo, msg, meta) }
func (r *Recorder) Warn(msg string, meta interface{})  { r.record(errors.SeverityWarn, msg, meta) }
func (r *Recorder) Error(msg string, meta interface{}) { r.record(errors.SeverityError, msg, meta) }

func (r *Recorder) record(sev errors.Severity, msg string, meta interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Severity: sev, Message: msg, Meta: meta})
}

// Entries returns a copy of the recorded calls in order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
