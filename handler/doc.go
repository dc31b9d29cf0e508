// Package handler turns errors into HTTP responses.
//
// A Dispatcher holds an ordered list of strategies. For each error it asks
// every strategy in turn whether it can classify the error and lets the first
// one that can write the response. Later strategies are never consulted.
//
// The canonical chain built by Default is:
//
//  1. HTTPErrorStrategy: responds with the error's own status and its client record
//  2. ValidationErrorStrategy: responds 400 with the field errors
//  3. FallbackStrategy: matches everything, responds 500 with a generic body
//
// Specific strategies must come before the fallback. Validate reports chains
// that would mishandle specific errors.
//
// Exactly one response is written per dispatch, whatever the error value,
// including nil.
//
// Usage with chi:
//
//	d := handler.Default(logging.NewSlog(slog.Default()))
//
//	r := chi.NewRouter()
//	r.Use(d.Recoverer)
//	r.NotFound(d.NotFound())
//	r.Get("/users/{id}", d.Handle(func(w http.ResponseWriter, r *http.Request) error {
//	    return errors.NotFound("user lookup failed")
//	}))
package handler
