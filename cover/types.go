package cover

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/towercover/grid"
)

// Sentinel errors for the greedy solver.
var (
	// ErrNilInstance is returned if a nil instance pointer is passed.
	ErrNilInstance = errors.New("cover: instance is nil")

	// ErrNoProgress is returned when the best candidate covers no remaining city.
	ErrNoProgress = errors.New("cover: no candidate covers a remaining city")

	// ErrIterationLimit is returned when WithMaxIterations is exceeded.
	ErrIterationLimit = errors.New("cover: iteration limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cover: invalid option supplied")
)

// Candidate pairs a tower position with the remaining city ids it would cover.
// It only lives for one CityCover call.
type Candidate struct {
	// Tower is the candidate grid point.
	Tower grid.Point
	// Index is Tower's row-major index on the grid (the tie-break key).
	Index int
	// Covered lists the covered city ids in the order they were given; nil if none.
	Covered []int
}

// Step describes one committed tower, as reported to the OnSelect hook.
type Step struct {
	// Iteration counts from 1.
	Iteration int
	// Tower is the committed grid point.
	Tower grid.Point
	// Covered are the city ids newly covered by Tower.
	Covered []int
	// Remaining is the number of cities still uncovered after this step.
	Remaining int
}

// Option configures SolveGreedy via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by SolveGreedy.
type Option func(*Options)

// Options holds parameters and callbacks for SolveGreedy.
type Options struct {
	// OnSelect is called after each tower is committed.
	OnSelect func(Step)

	// MaxIterations, if > 0, caps the number of towers; exceeding it yields ErrIterationLimit.
	// 0 means unlimited.
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op OnSelect and no iteration cap.
func DefaultOptions() Options {
	return Options{
		OnSelect:      func(Step) {},
		MaxIterations: 0,
	}
}

// WithOnSelect registers a callback run after every committed tower.
func WithOnSelect(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSelect = fn
		}
	}
}

// WithMaxIterations bounds the number of greedy iterations.
//
//	n > 0: at most n towers
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}
