// Package npuzzle is your in-memory toolkit for modeling, solving, and
// hinting the classic N×N sliding-tile puzzle — from the immutable board
// value type up to budget-bounded heuristic search.
//
// 🚀 What is npuzzle?
//
//	A small, deterministic library that brings together:
//		• Board model: immutable tile arrangements, legal-move generation,
//		  move application, goal detection
//		• Heuristics: Manhattan distance and Manhattan + linear conflict
//		• Search: A* (optimal when run to completion) and Greedy Best-First,
//		  both bounded by wall-clock time and an expansion cap
//		• Hints: "best next move" and per-neighbor heuristic panels with
//		  fingerprint-gated caching
//
// ✨ Why choose npuzzle?
//
//   - Value semantics – every move yields a fresh Board; nothing is mutated
//   - Deterministic – stable frontier ordering and explicit, seedable RNG
//   - Budget-aware – searches return "not found" instead of running away
//   - Pure Go core – sentinel errors, functional options, no hidden state
//
// Everything is organized under three subpackages plus one command:
//
//	board/ — Board value type, moves, heuristics, parsing, scrambling
//	solve/ — A* and Greedy Best-First engines + async launch tickets
//	hint/  — next-move facade and cached hint panels for display loops
//	cmd/npuzzle — minimal CLI: load (or scramble) a board and solve it
//
// Quick ASCII example (3×3, one move from solved):
//
//	1 2 3
//	4 5 6
//	7 0 8
//
//	the tile 8 slides left into the blank's square and the board is solved;
//	a move always names the direction the displaced tile travels.
//
// Dive into the per-package documentation for contracts, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/npuzzle
package npuzzle
