// Package hint - per-neighbor heuristic panels with fingerprint caching.
package hint

import (
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solve"
)

// Panel summarizes a board for a display side panel: the heuristic value of
// the current arrangement, the heuristic of every legal neighbor, and the
// search engine's suggested move when one was found in budget.
type Panel struct {
	// Current is the Manhattan distance of the board itself.
	Current int

	// Neighbor maps each legal move to the Manhattan distance of the board
	// that move produces. Illegal moves are absent.
	Neighbor map[board.Move]int

	// Best is the first move of the A* path, valid only when HasBest.
	Best board.Move

	// HasBest is false when the board is terminal or the search budget ran
	// out before a path was found.
	HasBest bool
}

// Advisor produces Panels and caches the most recent one by board
// fingerprint: asking about a board with an unchanged tile arrangement
// returns the cached Panel without re-running the search. This keeps the
// caching obligation at the display boundary, outside the engine.
//
// An Advisor is NOT safe for concurrent use; give each display loop its
// own. The zero value is ready to use with default search options.
type Advisor struct {
	opts []solve.Option

	// last cached panel and the fingerprint it was computed for
	fingerprint string
	cached      *Panel
}

// NewAdvisor returns an Advisor whose searches run under the given options
// (e.g. a short solve.WithTimeLimit to keep a UI responsive).
func NewAdvisor(opts ...solve.Option) *Advisor {
	return &Advisor{opts: opts}
}

// Advise returns the Panel for b, recomputing only when b's fingerprint
// differs from the previously advised board. The returned Panel is shared
// with the cache: treat it as read-only.
//
// Returns ErrNilBoard for a nil board; search option errors propagate.
// Complexity: O(1) on a fingerprint hit, one search plus O(N²) per legal
// neighbor otherwise.
func (a *Advisor) Advise(b *board.Board) (*Panel, error) {
	if b == nil {
		return nil, solve.ErrNilBoard
	}

	// 1) Fingerprint gate: identical tiles ⇒ identical panel.
	key := b.Key()
	if a.cached != nil && key == a.fingerprint {
		return a.cached, nil
	}

	// 2) Heuristics of the board and of each legal neighbor.
	p := &Panel{
		Current:  b.Manhattan(),
		Neighbor: make(map[board.Move]int, 4),
	}
	for _, mv := range b.ValidMoves() {
		p.Neighbor[mv] = b.ApplyMove(mv).Manhattan()
	}

	// 3) Suggested move, absent on terminal boards and budget exhaustion.
	mv, ok, err := NextMove(b, a.opts...)
	if err != nil {
		return nil, err
	}
	p.Best, p.HasBest = mv, ok

	// 4) Cache under the fingerprint that produced it.
	a.fingerprint = key
	a.cached = p

	return p, nil
}

// Invalidate drops the cached Panel, forcing the next Advise to recompute.
func (a *Advisor) Invalidate() {
	a.fingerprint = ""
	a.cached = nil
}
