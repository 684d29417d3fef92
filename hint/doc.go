// Package hint is the thin convenience layer between the search engines and
// a presentation loop: "give me just the next move" queries and cached
// per-neighbor heuristic panels.
//
// Overview:
//
//   - NextMove / NextMoveGreedy run one bounded search and extract the first
//     move of the path. "No move" (terminal board, or budget exhausted) is a
//     normal false result, not an error.
//   - Advisor builds Panels — current heuristic, heuristic of every legal
//     neighbor, suggested move — and recomputes only when the board's
//     fingerprint changes, so a display loop can call Advise every frame.
//
// The package adds no search semantics of its own; budgets, determinism,
// and error contracts are exactly those of package solve.
package hint
