// Package hint - single-move suggestions.
package hint

import (
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solve"
)

// NextMove runs an A* search under the given options and returns only the
// first move of the resulting path.
//
// The boolean is false when no move is available: the board is already
// terminal (no move is needed) or the search budget ran out before a path
// was found. Neither case is an error.
//
// Returns ErrNilBoard / ErrOptionViolation / ErrUnknownHeuristic exactly as
// solve.AStar does.
// Complexity: that of one solve.AStar invocation.
func NextMove(b *board.Board, opts ...solve.Option) (board.Move, bool, error) {
	return firstMove(solve.AStar, b, opts...)
}

// NextMoveGreedy is the Greedy Best-First variant of NextMove: faster to
// answer, but the suggested move starts a path with no optimality
// guarantee.
func NextMoveGreedy(b *board.Board, opts ...solve.Option) (board.Move, bool, error) {
	return firstMove(solve.Greedy, b, opts...)
}

// firstMove runs s and extracts the first path move, if any.
func firstMove(s solve.Solver, b *board.Board, opts ...solve.Option) (board.Move, bool, error) {
	if b == nil {
		return 0, false, solve.ErrNilBoard
	}

	// A terminal board needs no move; skip the search entirely.
	if b.IsTerminal() {
		return 0, false, nil
	}

	res, err := s(b, opts...)
	if err != nil {
		return 0, false, err
	}
	if !res.Found || len(res.Moves) == 0 {
		return 0, false, nil
	}

	return res.Moves[0], true, nil
}
