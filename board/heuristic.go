// Package board - heuristic evaluation of tile arrangements.
//
// Both heuristics below measure the unit-cost move graph in which each move
// slides exactly one tile. Manhattan is admissible and consistent; the
// linear-conflict refinement stays admissible because each counted conflict
// forces at least two extra moves (one tile must leave its goal line and
// re-enter after the other has passed).
package board

// Manhattan returns the sum, over all non-blank tiles, of the horizontal
// plus vertical distance between the tile's current square and its goal
// square. The goal square of value v is flat index v-1 (row-major).
// Manhattan of the solved board is 0.
// Complexity: O(N²).
func (b *Board) Manhattan() int {
	sum := 0
	sz := b.size
	var idx, v, cr, cc, gr, gc int
	for idx, v = range b.tiles {
		if v == Blank {
			continue
		}
		cr, cc = idx/sz, idx%sz
		gr, gc = (v-1)/sz, (v-1)%sz
		sum += abs(cr-gr) + abs(cc-gc)
	}

	return sum
}

// LinearConflict counts, for each row, ordered pairs of tiles that both
// belong to that row in the goal arrangement but appear in reversed relative
// order, then repeats the count for columns; every such inversion
// contributes 2. The result is meant to be added to Manhattan for a tighter
// admissible heuristic.
// Complexity: O(N³) worst case (N lines × O(N²) pair scan per line).
func (b *Board) LinearConflict() int {
	conflict := 0
	sz := b.size

	// Row conflicts: collect tiles whose goal row is the row they occupy,
	// then count value inversions among them (left-to-right order).
	line := make([]int, 0, sz)
	var r, c, v, i, j int
	for r = 0; r < sz; r++ {
		line = line[:0]
		for c = 0; c < sz; c++ {
			v = b.tiles[b.index(r, c)]
			if v != Blank && (v-1)/sz == r {
				line = append(line, v)
			}
		}
		for i = 0; i < len(line); i++ {
			for j = i + 1; j < len(line); j++ {
				if line[i] > line[j] {
					conflict += 2
				}
			}
		}
	}

	// Column conflicts: same scheme with goal-column membership (top-to-bottom).
	for c = 0; c < sz; c++ {
		line = line[:0]
		for r = 0; r < sz; r++ {
			v = b.tiles[b.index(r, c)]
			if v != Blank && (v-1)%sz == c {
				line = append(line, v)
			}
		}
		for i = 0; i < len(line); i++ {
			for j = i + 1; j < len(line); j++ {
				if line[i] > line[j] {
					conflict += 2
				}
			}
		}
	}

	return conflict
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
