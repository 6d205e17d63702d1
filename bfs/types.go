// Package bfs option plumbing and error definitions.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS construction and execution.
var (
	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a Search via functional arguments. An invalid Option
// (e.g. negative depth) is recorded and surfaced as ErrOptionViolation
// when New is invoked.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks customizing BFS execution.
type Options[T comparable] struct {
	// MaxDepth, if > 0, stops expanding the frontier beyond this many
	// edges from start. A value of 0 disables the limit.
	MaxDepth int

	// OnVisit is called for each dequeued vertex with its depth from
	// start. Returning an error aborts the search.
	OnVisit func(data T, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op visit hook.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		MaxDepth: 0,
		OnVisit:  func(T, int) error { return nil },
	}
}

// WithMaxDepth stops frontier expansion at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback to run per dequeued vertex; returning
// an error from the callback stops the search.
func WithOnVisit[T comparable](fn func(data T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
