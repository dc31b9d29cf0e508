package handler

import (
	"github.com/jmgilman/go/httperrors/errors"
	"github.com/jmgilman/go/httperrors/logging"
)

// Strategy pairs a classification predicate with a response routine.
// Handle must always produce exactly one response on sink.
type Strategy interface {
	CanHandle(err error) bool
	Handle(err error, sink ResponseSink)
}

// unconditional is implemented by strategies that match every error.
type unconditional interface {
	Unconditional() bool
}

// Dispatcher selects the first applicable strategy for an error.
// It is immutable and safe for concurrent use.
type Dispatcher struct {
	strategies []Strategy
}

// NewDispatcher creates a Dispatcher that consults strategies in the given
// order. Nil strategies are skipped.
func NewDispatcher(strategies ...Strategy) *Dispatcher {
	s := make([]Strategy, 0, len(strategies))
	for _, st := range strategies {
		if st != nil {
			s = append(s, st)
		}
	}
	return &Dispatcher{strategies: s}
}

// Default creates the canonical chain: HTTP errors, validation errors, then
// the fallback. A nil logger disables logging.
func Default(logger logging.Logger) *Dispatcher {
	return NewDispatcher(
		&HTTPErrorStrategy{Logger: logger},
		&ValidationErrorStrategy{Logger: logger},
		&FallbackStrategy{Logger: logger},
	)
}

// Strategies returns the chain in evaluation order.
func (d *Dispatcher) Strategies() []Strategy {
	out := make([]Strategy, len(d.strategies))
	copy(out, d.strategies)
	return out
}

// Validate reports a chain without an unconditional strategy, or one where an
// unconditional strategy shadows strategies after it.
func (d *Dispatcher) Validate() error {
	for i, st := range d.strategies {
		u, ok := st.(unconditional)
		if !ok || !u.Unconditional() {
			continue
		}
		if i != len(d.strategies)-1 {
			return errors.NewWithMeta(errors.CodeInvalidConfig, "fallback strategy must be last", map[string]interface{}{
				"position": i,
				"length":   len(d.strategies),
			})
		}
		return nil
	}
	return errors.New(errors.CodeInvalidConfig, "strategy chain has no fallback")
}

// Dispatch writes exactly one response for err to sink.
//
// Strategies are asked in order; the first whose CanHandle returns true
// handles err and no further strategy is consulted. If none matches, the
// generic 500 body of the fallback strategy is written directly.
func (d *Dispatcher) Dispatch(err error, sink ResponseSink) {
	if sink == nil {
		return
	}

	if d != nil {
		for _, st := range d.strategies {
			if st.CanHandle(err) {
				st.Handle(err, sink)
				return
			}
		}
	}

	writeUnknown(sink)
}
