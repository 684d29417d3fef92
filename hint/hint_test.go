// Package hint_test contains unit tests for the next-move facade and the
// cached hint panel.
package hint_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/hint"
	"github.com/katalvlaran/npuzzle/solve"
)

// ------------------------------------------------------------------------
// 1. NextMove: first-step extraction and the no-move cases.
// ------------------------------------------------------------------------

func TestNextMove_NilBoard(t *testing.T) {
	_, _, err := hint.NextMove(nil)
	assert.ErrorIs(t, err, solve.ErrNilBoard)
}

func TestNextMove_TerminalBoardNeedsNoMove(t *testing.T) {
	b, err := board.Solved(3)
	require.NoError(t, err)

	_, ok, err := hint.NextMove(b)
	require.NoError(t, err)
	assert.False(t, ok, "a solved board must yield no move, not an error")
}

func TestNextMove_OneMoveScramble(t *testing.T) {
	// One scramble move away: the hint must be exactly the inverse move.
	solved, err := board.Solved(3)
	require.NoError(t, err)

	for _, mv := range solved.ValidMoves() {
		scrambled := solved.ApplyMove(mv)
		got, ok, err := hint.NextMove(scrambled)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, board.Inverse(mv), got)
	}
}

func TestNextMove_BudgetExhaustedMeansNoMove(t *testing.T) {
	b, err := board.Scramble(3, 20, rand.New(rand.NewSource(29)))
	require.NoError(t, err)

	_, ok, err := hint.NextMove(b, solve.WithTimeLimit(0), solve.WithMaxIterations(1))
	require.NoError(t, err, "exhaustion is a quiet false, never an error")
	assert.False(t, ok)
}

func TestNextMove_OptionErrorsPropagate(t *testing.T) {
	b, err := board.Scramble(3, 6, rand.New(rand.NewSource(37)))
	require.NoError(t, err)

	_, _, err = hint.NextMove(b, solve.WithMaxIterations(-5))
	assert.ErrorIs(t, err, solve.ErrOptionViolation)
}

func TestNextMove_FollowingHintsSolves(t *testing.T) {
	// Following A* hints step by step must solve the board: each hint opens
	// a minimal path, so the remaining distance strictly decreases.
	b, err := board.Scramble(3, 12, rand.New(rand.NewSource(41)))
	require.NoError(t, err)

	for steps := 0; steps < 64 && !b.IsTerminal(); steps++ {
		mv, ok, err := hint.NextMove(b)
		require.NoError(t, err)
		require.True(t, ok, "an unsolved 3×3 must always yield a hint in budget")
		b = b.ApplyMove(mv)
	}
	assert.True(t, b.IsTerminal())
}

func TestNextMoveGreedy_OneMoveScramble(t *testing.T) {
	solved, err := board.Solved(3)
	require.NoError(t, err)

	scrambled := solved.ApplyMove(board.MoveRight)
	mv, ok, err := hint.NextMoveGreedy(scrambled)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, board.MoveLeft, mv)
}

// ------------------------------------------------------------------------
// 2. Advisor: panel contents and fingerprint-gated caching.
// ------------------------------------------------------------------------

func TestAdvisor_PanelContents(t *testing.T) {
	b, err := board.New([]int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	require.NoError(t, err)

	panel, err := hint.NewAdvisor().Advise(b)
	require.NoError(t, err)

	assert.Equal(t, b.Manhattan(), panel.Current)

	// One heuristic entry per legal move, none for illegal ones.
	legal := b.ValidMoves()
	assert.Len(t, panel.Neighbor, len(legal))
	for _, mv := range legal {
		assert.Equal(t, b.ApplyMove(mv).Manhattan(), panel.Neighbor[mv], "neighbor %v", mv)
	}

	// One move from solved: the best move is the solving one.
	require.True(t, panel.HasBest)
	assert.Equal(t, board.MoveLeft, panel.Best)
}

func TestAdvisor_TerminalBoard(t *testing.T) {
	b, err := board.Solved(3)
	require.NoError(t, err)

	panel, err := hint.NewAdvisor().Advise(b)
	require.NoError(t, err)
	assert.Zero(t, panel.Current)
	assert.False(t, panel.HasBest)
	assert.Len(t, panel.Neighbor, 2)
}

func TestAdvisor_CachesByFingerprint(t *testing.T) {
	b, err := board.Scramble(3, 8, rand.New(rand.NewSource(43)))
	require.NoError(t, err)

	adv := hint.NewAdvisor()
	first, err := adv.Advise(b)
	require.NoError(t, err)

	// Same fingerprint (even via an independent clone) hits the cache.
	again, err := adv.Advise(b.Clone())
	require.NoError(t, err)
	assert.Same(t, first, again, "unchanged fingerprint must return the cached panel")

	// A changed board forces recomputation.
	moved := b.ApplyMove(b.ValidMoves()[0])
	other, err := adv.Advise(moved)
	require.NoError(t, err)
	assert.NotSame(t, first, other)

	// Invalidate drops the cache even for an unchanged fingerprint.
	adv.Invalidate()
	fresh, err := adv.Advise(moved)
	require.NoError(t, err)
	assert.NotSame(t, other, fresh)
}

func TestAdvisor_NilBoard(t *testing.T) {
	_, err := hint.NewAdvisor().Advise(nil)
	assert.ErrorIs(t, err, solve.ErrNilBoard)
}

func TestAdvisor_ShortBudgetStillReportsHeuristics(t *testing.T) {
	// With a starved search budget the panel loses its best-move marker
	// but keeps the heuristic numbers — the display stays informative.
	b, err := board.Scramble(3, 20, rand.New(rand.NewSource(53)))
	require.NoError(t, err)

	adv := hint.NewAdvisor(solve.WithTimeLimit(0), solve.WithMaxIterations(1))
	panel, err := adv.Advise(b)
	require.NoError(t, err)
	assert.False(t, panel.HasBest)
	assert.NotEmpty(t, panel.Neighbor)
	assert.Equal(t, b.Manhattan(), panel.Current)
}
