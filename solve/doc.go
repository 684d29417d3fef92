// Package solve provides budget-bounded heuristic search over sliding-tile
// boards: A* for minimum-length solutions and Greedy Best-First for fast,
// non-optimal ones, plus an asynchronous launch helper for callers that
// must stay responsive while a search runs.
//
// Overview:
//
//   - Both engines share one frontier/expansion structure over immutable
//     board.Board values, deduplicated by board fingerprint.
//   - The frontier is a binary min-heap under the lazy decrease-key policy:
//     a cheaper path to a known board pushes a new entry; the stale one is
//     skipped when popped. No frontier entry is ever mutated in place.
//   - Equal priorities are broken by a monotone insertion counter, making
//     expansion order — and therefore the returned path — deterministic for
//     identical inputs.
//
// Budgets:
//
//   - WithTimeLimit caps wall-clock time (default 1 s; 0 disables).
//   - WithMaxIterations caps node expansions (default 10⁶; 0 disables).
//   - Exhausting either budget yields Result.Found=false, a normal value.
//     The engine never proves unsolvability: treat Found=false as "try a
//     larger budget or accept no answer", never as a proof.
//
// Optimality:
//
//   - AStar with unbounded budgets returns a minimum-move path; both
//     heuristics on offer (Manhattan, Manhattan + linear conflict) are
//     admissible and consistent.
//   - Greedy ignores g when ordering and returns paths no shorter — and
//     typically longer — than AStar's, after far fewer expansions.
//
// Concurrency & resource model:
//
//   - One invocation runs synchronously to completion or budget exhaustion.
//     Each call owns its frontier, best-cost map, and result; the package
//     holds no mutable state, so any number of searches may run in
//     parallel from different goroutines.
//   - Launch wraps an invocation for asynchronous use: it snapshots the
//     board, runs on a fresh goroutine, and delivers one Outcome on a
//     buffered channel together with the snapshot's fingerprint and a UUID
//     for correlation. Cancellation is budget-only; discard the Ticket to
//     abandon a result.
//
// Error handling (sentinel errors):
//
//   - ErrNilBoard: nil board passed to AStar, Greedy, or Launch.
//   - ErrNilSolver: nil solver passed to Launch.
//   - ErrOptionViolation: negative TimeLimit or MaxIterations.
//   - ErrUnknownHeuristic: Heuristic value outside the defined set.
//
// "Not found" is never one of these — budget exhaustion is reported through
// Result.Found, not through err.
//
// See also:
//
//   - board: the value model the engines expand.
//   - hint: first-move extraction and cached hint panels built on AStar.
package solve
