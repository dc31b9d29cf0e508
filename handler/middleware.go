package handler

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmgilman/go/httperrors/errors"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to an http.HandlerFunc. A non-nil error returned by h is
// dispatched; h must not have written a response in that case.
func (d *Dispatcher) Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			d.Dispatch(err, NewHTTPSink(w, r))
		}
	}
}

// PanicError carries a value recovered from a panicking handler.
type PanicError struct {
	Value interface{}
	stack string
}

func (e *PanicError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Stack returns the goroutine stack at the time of the panic.
func (e *PanicError) Stack() string {
	if e == nil {
		return ""
	}
	return e.stack
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recoverer is middleware that dispatches panics from next as PanicErrors.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
//
// If next already started its response before panicking, the panic is still
// dispatched so that it gets logged, but nothing more is written.
func (d *Dispatcher) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			var sink ResponseSink = NewHTTPSink(ww, r)
			if ww.Status() != 0 {
				sink = discardSink{}
			}
			d.Dispatch(&PanicError{Value: rvr, stack: string(debug.Stack())}, sink)
		}()

		next.ServeHTTP(ww, r)
	})
}

// NotFound returns a handler that dispatches a 404 for unregistered routes.
func (d *Dispatcher) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := errors.NewHTTP(http.StatusNotFound, http.StatusText(http.StatusNotFound), errors.CodeRouteNotFound,
			fmt.Sprintf("route not registered: %s %s", r.Method, r.URL.Path))
		d.Dispatch(err, NewHTTPSink(w, r))
	}
}

// MethodNotAllowed returns a handler that dispatches a 405.
func (d *Dispatcher) MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := errors.NewHTTP(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), errors.CodeMethodNotAllowed,
			fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path))
		d.Dispatch(err, NewHTTPSink(w, r))
	}
}
