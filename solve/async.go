// Package solve - asynchronous search invocation.
//
// A search is single-threaded and synchronous, but callers such as display
// loops need to keep running while one executes. Launch owns that boundary:
// it snapshots the input board, runs the solver on its own goroutine, and
// delivers the outcome exactly once on a buffered channel. The Ticket's
// Fingerprint lets the caller detect that its board changed while the
// search ran; the ID correlates tickets when several are in flight.
//
// There is no external cancel signal — cancellation is cooperative via the
// time/iteration budget only. A caller that no longer wants a result simply
// discards the Ticket; the buffered channel lets the goroutine finish and
// be collected regardless.
package solve

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/npuzzle/board"
)

// Solver is the signature shared by AStar and Greedy, so either can be
// handed to Launch.
type Solver func(b *board.Board, opts ...Option) (*Result, error)

// Outcome is the single value delivered on a Ticket's channel: the search
// result or the invocation error, never both.
type Outcome struct {
	Result *Result
	Err    error
}

// Ticket identifies one in-flight asynchronous search.
type Ticket struct {
	// ID is a unique identifier for this invocation.
	ID uuid.UUID

	// Fingerprint is the Key of the board snapshot being searched. Compare
	// it against the current board's Key before applying the answer.
	Fingerprint string

	// Done receives exactly one Outcome, then is closed.
	Done <-chan Outcome
}

// Launch starts s on an independent snapshot of b and returns immediately.
// The snapshot means the caller may keep moving tiles on its own board
// while the search runs; no state is shared between them.
//
// Returns ErrNilSolver or ErrNilBoard for invalid input; option errors are
// reported through the Outcome, like any other solver error.
// Complexity: O(N²) for the snapshot; the search itself runs detached.
func Launch(s Solver, b *board.Board, opts ...Option) (*Ticket, error) {
	if s == nil {
		return nil, ErrNilSolver
	}
	if b == nil {
		return nil, ErrNilBoard
	}

	// Snapshot up front so the fingerprint and the searched state agree.
	snapshot := b.Clone()
	ch := make(chan Outcome, 1)
	t := &Ticket{
		ID:          uuid.New(),
		Fingerprint: snapshot.Key(),
		Done:        ch,
	}

	go func() {
		res, err := s(snapshot, opts...)
		// Buffered single-assignment delivery: the send never blocks and
		// happens exactly once, whether or not anyone is still listening.
		ch <- Outcome{Result: res, Err: err}
		close(ch)
	}()

	return t, nil
}
