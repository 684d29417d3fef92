// Package board defines the core Board value type, Move directions,
// and sentinel errors for the N×N sliding-tile puzzle model.
package board

import (
	"errors"
)

// Sentinel errors for Board construction and parsing.
var (
	// ErrNilTiles indicates a nil tile sequence was passed to a constructor.
	ErrNilTiles = errors.New("board: tiles must not be nil")

	// ErrInvalidShape indicates the flat tile count is not a perfect square.
	ErrInvalidShape = errors.New("board: tile count must be a perfect square")

	// ErrNonRectangular indicates nested rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")

	// ErrBoardTooSmall indicates a board dimension below the 2×2 minimum.
	ErrBoardTooSmall = errors.New("board: size must be at least 2")

	// ErrTileValues indicates tiles are not a permutation of 0..N²-1.
	ErrTileValues = errors.New("board: tiles must be a permutation of 0..N²-1")

	// ErrMalformedBoard indicates a textual board description that does not
	// match the expected "size line + N rows of N integers" format.
	ErrMalformedBoard = errors.New("board: malformed board description")

	// ErrBadScrambleSteps indicates a negative scramble step count.
	ErrBadScrambleSteps = errors.New("board: scramble steps must be non-negative")
)

// Blank is the tile value representing the empty square.
const Blank = 0

// MinSize is the smallest supported board dimension.
const MinSize = 2

// Move names one of the four sliding directions. A Move is always the
// direction the displaced tile travels into the blank's square — not the
// direction the blank itself moves. MoveUp is therefore legal only when a
// tile sits *below* the blank.
type Move int

const (
	// MoveUp slides the tile below the blank upward.
	MoveUp Move = iota
	// MoveDown slides the tile above the blank downward.
	MoveDown
	// MoveLeft slides the tile right of the blank leftward.
	MoveLeft
	// MoveRight slides the tile left of the blank rightward.
	MoveRight

	// moveCount is the number of directions; used for bounds checks.
	moveCount
)

// moveNames maps each Move to its canonical lowercase name.
var moveNames = [moveCount]string{"up", "down", "left", "right"}

// String returns the canonical lowercase name of the move,
// or "invalid" for out-of-range values.
func (m Move) String() string {
	if m < 0 || m >= moveCount {
		return "invalid"
	}

	return moveNames[m]
}

// Valid reports whether m is one of the four defined directions.
// Complexity: O(1).
func (m Move) Valid() bool {
	return m >= 0 && m < moveCount
}

// Inverse returns the move that undoes m: up↔down, left↔right.
// For an out-of-range move, Inverse returns m unchanged.
// Complexity: O(1).
func Inverse(m Move) Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	case MoveRight:
		return MoveLeft
	default:
		return m
	}
}

// ParseMove converts a lowercase direction name ("up", "down", "left",
// "right") into its Move value. The boolean is false for any other string.
// Complexity: O(1).
func ParseMove(name string) (Move, bool) {
	var m Move
	for m = 0; m < moveCount; m++ {
		if moveNames[m] == name {
			return m, true
		}
	}

	return moveCount, false
}
