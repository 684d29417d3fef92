// Package board models one N×N sliding-tile arrangement as an immutable
// value. Every mutating operation returns a fresh Board, which lets a search
// engine keep many coexisting arrangements alive as frontier and visited
// sets without defensive copying at each use site.
//
// Conventions:
//
//   - Tiles are stored flat in row-major order; value 0 (Blank) is the empty
//     square; every value 0..N²-1 appears exactly once.
//   - The canonical solved arrangement is [1, 2, ..., N²-1, 0].
//   - A Move names the direction the displaced tile travels into the blank's
//     square (see Move in types.go).
package board

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Board is an immutable N×N tile arrangement.
// The zero value is not usable; construct via New, NewFromRows, Solved,
// Parse, or Scramble.
type Board struct {
	size  int   // board dimension N
	tiles []int // row-major tiles, len == size², exactly one Blank
	blank int   // flat index of the Blank, kept in sync with tiles
}

// New constructs a Board from a flat row-major tile sequence.
// Validation (in order):
//  1. tiles must be non-nil (ErrNilTiles).
//  2. len(tiles) must be a perfect square (ErrInvalidShape).
//  3. the dimension must be ≥ MinSize (ErrBoardTooSmall).
//  4. tiles must be a permutation of 0..N²-1 (ErrTileValues).
//
// The input slice is deep-copied; the caller keeps ownership of its slice.
// Complexity: O(N²) time and memory.
func New(tiles []int) (*Board, error) {
	// 1) Reject nil outright; an empty non-nil slice falls through to shape checks.
	if tiles == nil {
		return nil, ErrNilTiles
	}

	// 2) The flat length must be a perfect square to define a square board.
	n := len(tiles)
	size := int(math.Sqrt(float64(n)))
	if size*size != n {
		return nil, fmt.Errorf("%w: got %d tiles", ErrInvalidShape, n)
	}

	// 3) Enforce the minimum playable dimension (covers n==0 and n==1).
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrBoardTooSmall, size)
	}

	// 4) Verify the permutation property while locating the blank.
	//    seen[v] marks value v as already encountered.
	seen := make([]bool, n)
	blank := -1
	var i, v int
	for i, v = range tiles {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: value %d out of range", ErrTileValues, v)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: value %d repeated", ErrTileValues, v)
		}
		seen[v] = true
		if v == Blank {
			blank = i
		}
	}

	// 5) Deep-copy to guarantee immutability against caller mutation.
	own := make([]int, n)
	copy(own, tiles)

	return &Board{size: size, tiles: own, blank: blank}, nil
}

// NewFromRows constructs a Board from a nested row-major sequence.
// Rows of differing lengths yield ErrNonRectangular; a non-square overall
// shape (row count ≠ row length) yields ErrInvalidShape. All remaining
// validation is delegated to New.
// Complexity: O(N²) time and memory.
func NewFromRows(rows [][]int) (*Board, error) {
	if rows == nil {
		return nil, ErrNilTiles
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: got 0 tiles", ErrInvalidShape)
	}

	// Flatten while checking rectangularity against the first row's width.
	width := len(rows[0])
	flat := make([]int, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrNonRectangular, i, len(row), width)
		}
		flat = append(flat, row...)
	}

	// A rectangular but non-square grid (e.g. 2×3) is a shape error.
	if len(rows) != width {
		return nil, fmt.Errorf("%w: %d rows × %d columns", ErrInvalidShape, len(rows), width)
	}

	return New(flat)
}

// Solved returns the canonical goal board of the given size:
// tiles [1, 2, ..., size²-1, 0].
// Returns ErrBoardTooSmall for size < MinSize.
// Complexity: O(N²).
func Solved(size int) (*Board, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrBoardTooSmall, size)
	}

	n := size * size
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	tiles[n-1] = Blank

	return &Board{size: size, tiles: tiles, blank: n - 1}, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int { return b.size }

// Tiles returns a defensive copy of the flat row-major tile sequence.
// Complexity: O(N²).
func (b *Board) Tiles() []int {
	out := make([]int, len(b.tiles))
	copy(out, b.tiles)

	return out
}

// At returns the tile value at (row, col). Out-of-bounds coordinates
// return -1 rather than panicking.
// Complexity: O(1).
func (b *Board) At(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return -1
	}

	return b.tiles[b.index(row, col)]
}

// BlankPosition returns the (row, col) coordinate of the blank square.
// Complexity: O(1).
func (b *Board) BlankPosition() (row, col int) {
	return b.blank / b.size, b.blank % b.size
}

// Position returns the (row, col) coordinate of tile value v and true,
// or (0, 0, false) if v is not on the board.
// Complexity: O(N²) — the board stores tiles flat, not an inverse map.
func (b *Board) Position(v int) (row, col int, ok bool) {
	for i, t := range b.tiles {
		if t == v {
			return i / b.size, i % b.size, true
		}
	}

	return 0, 0, false
}

// index maps (row, col) to the flat row-major index.
// Complexity: O(1).
func (b *Board) index(row, col int) int {
	return row*b.size + col
}

// Clone returns a deep, independent copy of the board.
// The copy shares no mutable state with the source.
// Complexity: O(N²).
func (b *Board) Clone() *Board {
	tiles := make([]int, len(b.tiles))
	copy(tiles, b.tiles)

	return &Board{size: b.size, tiles: tiles, blank: b.blank}
}

// Equal reports whether two boards hold identical tile sequences.
// A nil other is never equal.
// Complexity: O(N²).
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i, v := range b.tiles {
		if other.tiles[i] != v {
			return false
		}
	}

	return true
}

// Key returns a canonical fingerprint of the tile sequence, usable as a
// map key for deduplication and as the staleness fingerprint carried by
// search results. Two boards are Equal iff their Keys match.
// Complexity: O(N²).
func (b *Board) Key() string {
	var sb strings.Builder
	// Worst case each tile needs 3 digits plus a separator.
	sb.Grow(len(b.tiles) * 4)
	for i, v := range b.tiles {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// IsTerminal reports whether the board equals the canonical solved
// arrangement [1, 2, ..., N²-1, 0].
// Complexity: O(N²).
func (b *Board) IsTerminal() bool {
	n := len(b.tiles)
	for i := 0; i < n-1; i++ {
		if b.tiles[i] != i+1 {
			return false
		}
	}

	return b.tiles[n-1] == Blank
}

// ValidMoves returns the subset of {up, down, left, right} legal for the
// current blank position, in that stable order. Corner positions yield two
// moves, edges three, interior squares four.
// Complexity: O(1); the result slice is freshly allocated.
func (b *Board) ValidMoves() []Move {
	r, c := b.BlankPosition()
	moves := make([]Move, 0, 4)

	// A tile below the blank can slide up, and so on for each direction.
	if r < b.size-1 {
		moves = append(moves, MoveUp)
	}
	if r > 0 {
		moves = append(moves, MoveDown)
	}
	if c < b.size-1 {
		moves = append(moves, MoveLeft)
	}
	if c > 0 {
		moves = append(moves, MoveRight)
	}

	return moves
}

// CanMove reports whether m is legal for the current blank position.
// Complexity: O(1).
func (b *Board) CanMove(m Move) bool {
	r, c := b.BlankPosition()
	switch m {
	case MoveUp:
		return r < b.size-1
	case MoveDown:
		return r > 0
	case MoveLeft:
		return c < b.size-1
	case MoveRight:
		return c > 0
	default:
		return false
	}
}

// sourceOffset returns the (row, col) delta from the blank to the square
// holding the tile that m would displace into the blank.
func sourceOffset(m Move) (dr, dc int) {
	switch m {
	case MoveUp:
		return 1, 0 // tile below moves up
	case MoveDown:
		return -1, 0 // tile above moves down
	case MoveLeft:
		return 0, 1 // tile to the right moves left
	default: // MoveRight
		return 0, -1 // tile to the left moves right
	}
}

// ApplyMove returns a new Board with m applied. An illegal or out-of-range
// move returns an equal copy — a no-op, never an error and never a partial
// swap; callers that must detect no-ops should consult CanMove first.
// The receiver is left untouched in all cases.
// Complexity: O(N²) (dominated by the copy).
func (b *Board) ApplyMove(m Move) *Board {
	// Illegal move: contract says "equal copy", keeping every board a valid value.
	if !b.CanMove(m) {
		return b.Clone()
	}

	// Locate the blank and the square whose tile slides into it.
	zr, zc := b.BlankPosition()
	dr, dc := sourceOffset(m)
	src := b.index(zr+dr, zc+dc)

	// Swap on the copy: the tile enters the blank square, the blank takes its place.
	next := b.Clone()
	next.tiles[b.blank], next.tiles[src] = next.tiles[src], next.tiles[b.blank]
	next.blank = src

	return next
}

// String renders the board as size rows of width-aligned values, one row
// per line, suitable for terminal display.
// Complexity: O(N²).
func (b *Board) String() string {
	width := len(strconv.Itoa(b.size*b.size - 1))
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", width, b.tiles[b.index(r, c)])
		}
	}

	return sb.String()
}
