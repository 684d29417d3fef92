// Package board provides the immutable value model of an N×N sliding-tile
// puzzle: legal-move generation, move application, goal detection, heuristic
// evaluation, textual parsing, and deterministic scrambling.
//
// Overview:
//
//   - A Board is a value: ApplyMove never mutates its receiver, it returns a
//     fresh Board. Search engines may therefore hold arbitrarily many boards
//     in frontier and visited sets without copy discipline at call sites.
//   - Equality is structural (Equal), and Key() yields a canonical string
//     fingerprint so boards can serve as map keys.
//   - Moves name the direction the displaced tile travels into the blank's
//     square: MoveUp is legal exactly when a tile sits below the blank.
//
// Heuristics:
//
//   - Manhattan: admissible, consistent; 0 exactly on the solved board.
//   - LinearConflict: reversed-order same-line pairs × 2; add it to
//     Manhattan for a tighter bound that remains admissible.
//
// Error handling (sentinel errors):
//
//   - ErrNilTiles, ErrInvalidShape, ErrNonRectangular, ErrBoardTooSmall,
//     ErrTileValues: construction-time violations; no Board is ever returned
//     alongside an error.
//   - ErrMalformedBoard: textual descriptions that fail the "size line +
//     N rows of N integers" format, wrapped with the offending line.
//   - ErrBadScrambleSteps: negative scramble length.
//
// Determinism:
//
//   - ValidMoves returns directions in the stable order up, down, left,
//     right.
//   - Scramble takes an explicit *rand.Rand; nil selects a fixed default
//     seed. The library never reads the clock for randomness.
//
// See also:
//
//   - solve: A* and Greedy Best-First searches over Board transitions.
//   - hint: next-move suggestions and per-neighbor heuristic panels.
package board
