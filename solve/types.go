// Package solve defines configuration options, result types, and sentinel
// errors for the sliding-puzzle search engines (A* and Greedy Best-First).
//
// Both engines consume a start board, a wall-clock time limit, and an
// expansion cap, and produce either an ordered move sequence from start to
// goal or a "not found" result. "Not found" is a normal value — it means the
// budget ran out, never that the instance is unsolvable.
package solve

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/board"
)

// Sentinel errors for search invocation.
var (
	// ErrNilBoard is returned if a nil *board.Board is passed to a search.
	ErrNilBoard = errors.New("solve: board is nil")

	// ErrNilSolver is returned by Launch when no solver function is supplied.
	ErrNilSolver = errors.New("solve: solver is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")

	// ErrUnknownHeuristic is returned for a Heuristic value outside the
	// defined set.
	ErrUnknownHeuristic = errors.New("solve: unknown heuristic")
)

// Heuristic selects the admissible estimate used to order the frontier.
type Heuristic int

const (
	// ManhattanLinearConflict uses Manhattan distance plus the
	// linear-conflict refinement. Tighter, the default.
	ManhattanLinearConflict Heuristic = iota

	// Manhattan uses Manhattan distance alone. Cheaper per evaluation,
	// expands more nodes.
	Manhattan

	// heuristicCount bounds the valid Heuristic range.
	heuristicCount
)

// Default budgets applied by DefaultOptions.
const (
	// DefaultTimeLimit caps one search invocation at one second of
	// wall-clock time.
	DefaultTimeLimit = time.Second

	// DefaultMaxIterations caps one search invocation at 10⁶ expansions,
	// a safety bound independent of the clock.
	DefaultMaxIterations = 1_000_000
)

// Options holds the budgets and heuristic choice for one search invocation.
//
// TimeLimit     – wall-clock budget; 0 disables the clock check entirely.
// MaxIterations – expansion cap; 0 disables the cap.
// Heuristic     – frontier ordering estimate (default ManhattanLinearConflict).
type Options struct {
	TimeLimit     time.Duration
	MaxIterations int
	Heuristic     Heuristic

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments. An invalid Option
// (negative budget, unknown heuristic) is recorded internally and surfaced
// as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - TimeLimit = DefaultTimeLimit (1 s)
//   - MaxIterations = DefaultMaxIterations (10⁶)
//   - Heuristic = ManhattanLinearConflict
func DefaultOptions() Options {
	return Options{
		TimeLimit:     DefaultTimeLimit,
		MaxIterations: DefaultMaxIterations,
		Heuristic:     ManhattanLinearConflict,
		err:           nil,
	}
}

// WithTimeLimit sets the wall-clock budget for one search.
//
//	d > 0:  stop once elapsed time exceeds d
//	d == 0: explicit no time limit
//	d < 0:  invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
		default:
			o.TimeLimit = d
		}
	}
}

// WithMaxIterations sets the expansion cap for one search.
//
//	n > 0:  stop after n expansions
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxIterations = n
		}
	}
}

// WithHeuristic selects the frontier-ordering heuristic.
// An out-of-range value is surfaced as ErrUnknownHeuristic on invocation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h < 0 || h >= heuristicCount {
			o.err = fmt.Errorf("%w: %d", ErrUnknownHeuristic, h)

			return
		}
		o.Heuristic = h
	}
}

// Result holds the outcome of one search invocation.
//
// Found distinguishes "solved" from "budget exhausted"; the engine never
// proves unsolvability, so Found=false must not be read as such.
type Result struct {
	// Moves is the move sequence from start to goal, in application order.
	// Empty when the start board is already terminal; nil when Found=false.
	Moves []board.Move

	// Found is true iff a terminal board was reached within budget.
	Found bool

	// Expanded counts node expansions performed before returning.
	Expanded int

	// Elapsed is the wall-clock duration of the invocation.
	Elapsed time.Duration

	// Fingerprint is the Key of the input board, letting an asynchronous
	// caller detect that the board changed while the search ran.
	Fingerprint string
}

// evaluate computes the configured heuristic for b.
// Complexity: O(N²) for Manhattan, O(N³) with linear conflict.
func (o *Options) evaluate(b *board.Board) int {
	if o.Heuristic == Manhattan {
		return b.Manhattan()
	}

	return b.Manhattan() + b.LinearConflict()
}
