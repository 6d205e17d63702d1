// Package dijkstra option plumbing and error definitions.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Dijkstra construction and execution.
var (
	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNegativeWeight is returned when a negative edge weight is present
	// in the bound graph; the algorithm's correctness requires weights ≥ 0.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBrokenPath is returned by Cost when the given sequence references
	// an edge absent from the bound graph.
	ErrBrokenPath = errors.New("dijkstra: path references a missing edge")
)

// Option configures a Search via functional arguments. An invalid Option
// is recorded and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters customizing Dijkstra execution.
type Options struct {
	// MaxCost caps exploration: vertices whose shortest distance would
	// exceed this value are treated as unreachable.
	// Default is math.Inf(1) (no cap).
	MaxCost float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no cost cap.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}

// WithMaxCost caps the total path cost to explore. Must be non-negative;
// negative values cause ErrOptionViolation.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%g)", ErrOptionViolation, c)

			return
		}
		o.MaxCost = c
	}
}
