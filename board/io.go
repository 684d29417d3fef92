// Package board - textual board descriptions.
//
// The accepted format is line-oriented:
//
//	line 1:        the board dimension N (a single integer, N ≥ 2)
//	lines 2..N+1:  N whitespace-separated integers each, row-major
//
// Blank lines and surrounding whitespace are not tolerated inside the grid,
// and any content after the declared rows is rejected (trailing blank lines
// aside); every malformed input is rejected with line context and no partial
// board is ever returned.
package board

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a textual board description from r and constructs a Board.
// Any size/row/token mismatch or non-integer token yields an error wrapping
// ErrMalformedBoard naming the offending line; tile-level validation
// (permutation property) is delegated to New.
// Complexity: O(N²).
func Parse(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)

	// 1) First line: the dimension N.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: read failed: %v", ErrMalformedBoard, err)
		}

		return nil, fmt.Errorf("%w: empty input", ErrMalformedBoard)
	}
	sizeToken := strings.TrimSpace(sc.Text())
	size, err := strconv.Atoi(sizeToken)
	if err != nil {
		return nil, fmt.Errorf("%w: line 1: size %q is not an integer", ErrMalformedBoard, sizeToken)
	}
	if size < MinSize {
		return nil, fmt.Errorf("%w: line 1: size %d is below the %d×%d minimum",
			ErrMalformedBoard, size, MinSize, MinSize)
	}

	// 2) Next size lines: size integers each, row-major.
	tiles := make([]int, 0, size*size)
	var row int
	for row = 0; row < size; row++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: read failed: %v", ErrMalformedBoard, err)
			}

			return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, size, row)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != size {
			return nil, fmt.Errorf("%w: line %d: expected %d values, got %d",
				ErrMalformedBoard, row+2, size, len(fields))
		}
		for _, tok := range fields {
			v, convErr := strconv.Atoi(tok)
			if convErr != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer",
					ErrMalformedBoard, row+2, tok)
			}
			tiles = append(tiles, v)
		}
	}

	// 3) Anything beyond the declared rows is a row-count mismatch; only
	//    trailing blank lines are tolerated.
	for line := size + 2; sc.Scan(); line++ {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}

		return nil, fmt.Errorf("%w: line %d: unexpected content after %d rows",
			ErrMalformedBoard, line, size)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read failed: %v", ErrMalformedBoard, err)
	}

	// 4) Delegate permutation and shape validation to the constructor.
	b, err := New(tiles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
	}

	return b, nil
}

// ParseString parses a textual board description held in a string.
// Convenience wrapper around Parse; same error contract.
func ParseString(s string) (*Board, error) {
	return Parse(strings.NewReader(s))
}

// Describe renders b in the textual format accepted by Parse, so that
// Parse(Describe(b)) round-trips exactly.
// Complexity: O(N²).
func Describe(b *Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", b.size)
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(b.tiles[b.index(r, c)]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
