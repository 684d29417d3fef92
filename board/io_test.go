// Package board_test - textual board description parsing.
package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
)

// ------------------------------------------------------------------------
// 1. Well-formed descriptions.
// ------------------------------------------------------------------------

func TestParse_Valid3x3(t *testing.T) {
	b, err := board.ParseString("3\n1 2 3\n4 5 6\n7 8 0\n")
	require.NoError(t, err)
	assert.True(t, b.IsTerminal())
	assert.Equal(t, 3, b.Size())
}

func TestParse_ToleratesExtraSpacing(t *testing.T) {
	// Tabs and repeated spaces between tokens are fine; token count rules.
	b, err := board.ParseString("2\n 1\t2 \n3  0\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 0}, b.Tiles())
}

func TestParse_DescribeRoundTrip(t *testing.T) {
	orig, err := board.New([]int{5, 1, 2, 3, 4, 0, 6, 7, 8})
	require.NoError(t, err)

	back, err := board.ParseString(board.Describe(orig))
	require.NoError(t, err)
	assert.True(t, orig.Equal(back))
}

// ------------------------------------------------------------------------
// 2. Malformed descriptions: every failure names ErrMalformedBoard and
//    returns no partial board.
// ------------------------------------------------------------------------

func TestParse_EmptyInput(t *testing.T) {
	b, err := board.ParseString("")
	assert.ErrorIs(t, err, board.ErrMalformedBoard)
	assert.Nil(t, b)
}

func TestParse_SizeNotInteger(t *testing.T) {
	_, err := board.ParseString("three\n1 2 3\n4 5 6\n7 8 0\n")
	assert.ErrorIs(t, err, board.ErrMalformedBoard)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParse_SizeTooSmall(t *testing.T) {
	_, err := board.ParseString("1\n0\n")
	assert.ErrorIs(t, err, board.ErrMalformedBoard)
}

func TestParse_MissingRow(t *testing.T) {
	_, err := board.ParseString("3\n1 2 3\n4 5 6\n")
	assert.ErrorIs(t, err, board.ErrMalformedBoard)
	assert.Contains(t, err.Error(), "expected 3 rows, got 2")
}

func TestParse_WrongTokenCount(t *testing.T) {
	_, err := board.ParseString("3\n1 2 3\n4 5\n7 8 0\n")
	assert.ErrorIs(t, err, board.ErrMalformedBoard)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParse_NonIntegerToken(t *testing.T) {
	_, err := board.ParseString("3\n1 2 3\n4 x 6\n7 8 0\n")
	assert.ErrorIs(t, err, board.ErrMalformedBoard)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestParse_ExtraRowRejected(t *testing.T) {
	// More data rows than declared must fail loudly, never truncate.
	b, err := board.ParseString("3\n1 2 3\n4 5 6\n7 8 0\n9 9 9\n")
	assert.ErrorIs(t, err, board.ErrMalformedBoard)
	assert.Contains(t, err.Error(), "line 5")
	assert.Nil(t, b)
}

func TestParse_TrailingBlankLinesTolerated(t *testing.T) {
	b, err := board.ParseString("3\n1 2 3\n4 5 6\n7 8 0\n\n  \n")
	require.NoError(t, err)
	assert.True(t, b.IsTerminal())
}

func TestParse_BadPermutationStillMalformed(t *testing.T) {
	// Shape is fine but tile 5 repeats; the constructor failure is
	// surfaced under the parse error umbrella.
	_, err := board.ParseString("3\n1 2 3\n4 5 5\n7 8 0\n")
	assert.ErrorIs(t, err, board.ErrMalformedBoard)
}
