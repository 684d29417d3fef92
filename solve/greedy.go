// Package solve - Greedy Best-First search over sliding-puzzle boards.
package solve

import (
	"github.com/katalvlaran/npuzzle/board"
)

// Greedy searches from b to the canonical solved board, ordering the
// frontier by the heuristic alone. The cost-so-far g is still tracked to
// drive the cheaper-path dedup policy, it just never influences priority.
//
// Greedy typically reaches a goal after far fewer expansions than AStar but
// offers no optimality guarantee: its path is never shorter than the A*
// path for the same input, and is usually longer. Use it when any solution
// found quickly beats a minimal one found slowly.
//
// Error and determinism contracts are identical to AStar.
//
// Complexity: O(B·log B) over B pushed frontier entries.
func Greedy(b *board.Board, opts ...Option) (*Result, error) {
	return search(strategyGreedy, b, opts...)
}
