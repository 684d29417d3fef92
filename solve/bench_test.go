package solve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/solve"
)

// scrambleB returns a deterministic k-step 3×3 scramble for benchmarks.
func scrambleB(b *testing.B, k int, seed int64) *board.Board {
	b.Helper()
	brd, err := board.Scramble(3, k, rand.New(rand.NewSource(seed)))
	if err != nil {
		b.Fatal(err)
	}

	return brd
}

// BenchmarkAStar_Shallow measures A* on lightly scrambled boards.
func BenchmarkAStar_Shallow(b *testing.B) {
	brd := scrambleB(b, 8, 42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solve.AStar(brd, solve.WithTimeLimit(0), solve.WithMaxIterations(0))
	}
}

// BenchmarkAStar_Deep measures A* on heavily scrambled boards.
func BenchmarkAStar_Deep(b *testing.B) {
	brd := scrambleB(b, 40, 42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solve.AStar(brd, solve.WithTimeLimit(0), solve.WithMaxIterations(0))
	}
}

// BenchmarkAStar_ManhattanOnly isolates the heuristic cost difference.
func BenchmarkAStar_ManhattanOnly(b *testing.B) {
	brd := scrambleB(b, 40, 42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solve.AStar(brd,
			solve.WithTimeLimit(0), solve.WithMaxIterations(0),
			solve.WithHeuristic(solve.Manhattan))
	}
}

// BenchmarkGreedy_Deep contrasts greedy against A* on the same input.
func BenchmarkGreedy_Deep(b *testing.B) {
	brd := scrambleB(b, 40, 42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solve.Greedy(brd, solve.WithTimeLimit(0), solve.WithMaxIterations(0))
	}
}
