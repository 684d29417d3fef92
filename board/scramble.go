// Package board - deterministic scrambling.
//
// This file centralizes random board generation for demos and tests.
//
// Goals:
//   - Determinism: same seed ⇒ identical scramble across platforms.
//   - Encapsulation: the RNG is always an explicit parameter; no time-based
//     sources hidden anywhere in the library.
//   - Validity: a scramble is a walk of legal moves from the solved board,
//     so every scrambled board is solvable by construction.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; create one per worker instead.
package board

import "math/rand"

// defaultScrambleSeed is the fixed seed used when callers pass a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultScrambleSeed int64 = 1

// Scramble returns a board obtained by applying steps random legal moves to
// the solved board of the given size. A nil rng selects a deterministic
// default stream. The walk is not guaranteed to be undoable in steps moves
// (moves may cancel each other); any resulting legal arrangement is valid
// scramble output.
//
// Returns ErrBoardTooSmall for size < MinSize and ErrBadScrambleSteps for
// steps < 0.
// Complexity: O(steps·N²) time, O(N²) memory.
func Scramble(size, steps int, rng *rand.Rand) (*Board, error) {
	if steps < 0 {
		return nil, ErrBadScrambleSteps
	}

	b, err := Solved(size)
	if err != nil {
		return nil, err
	}

	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultScrambleSeed))
	}

	var moves []Move
	for i := 0; i < steps; i++ {
		moves = b.ValidMoves()
		b = b.ApplyMove(moves[r.Intn(len(moves))])
	}

	return b, nil
}
