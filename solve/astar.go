// Package solve - A* search over sliding-puzzle boards.
package solve

import (
	"github.com/katalvlaran/npuzzle/board"
)

// AStar searches from b to the canonical solved board, ordering the
// frontier by f = g + h where h is the configured admissible heuristic.
//
// Guarantee: with the heuristic options offered here (Manhattan alone, or
// Manhattan + linear conflict — both admissible and consistent) and the
// budgets disabled (WithTimeLimit(0), WithMaxIterations(0)), the returned
// path has minimum move count. Under a binding budget the search may return
// Found=false instead; that outcome carries no information about
// solvability or about how hard the instance is.
//
// Returns:
//
//   - res: the move sequence and bookkeeping (see Result). res.Found=false
//     is the normal "budget exhausted" outcome, not an error.
//   - err: ErrNilBoard, ErrOptionViolation, or ErrUnknownHeuristic for
//     invalid invocations; nil otherwise.
//
// Determinism: equal-priority frontier entries expand in insertion order,
// so identical inputs yield identical paths across runs.
//
// Complexity: O(B·log B) over B pushed frontier entries; B is bounded by
// MaxIterations times the branching factor (≤ 4).
func AStar(b *board.Board, opts ...Option) (*Result, error) {
	return search(strategyAStar, b, opts...)
}
