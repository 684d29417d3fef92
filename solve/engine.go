// Package solve - shared search machinery for A* and Greedy Best-First.
//
// Both strategies run the same frontier/expansion loop and differ only in
// the priority assigned to frontier entries: f = g + h for A*, h alone for
// greedy. The frontier is a binary min-heap under the "lazy decrease-key"
// policy: finding a cheaper path to a known board pushes a fresh entry and
// the stale one is discarded when popped. Ties are broken by a monotone
// insertion counter so that identical inputs always expand in the same
// order — required for reproducible results.
package solve

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/npuzzle/board"
)

// strategy selects the frontier ordering of a search run.
type strategy int

const (
	strategyAStar  strategy = iota // order by g + h
	strategyGreedy                 // order by h only
)

// frontierItem is one discovered-but-unexpanded board on the frontier.
type frontierItem struct {
	key      string       // canonical fingerprint, dedup key
	b        *board.Board // the arrangement itself
	g        int          // cost so far (path length from start)
	priority int          // f = g+h (A*) or h (greedy)
	seq      uint64       // insertion counter, deterministic tie-break
}

// frontierPQ is a min-heap of *frontierItem ordered by priority, ties by
// insertion order. Stale entries (superseded by a cheaper path) remain in
// the heap and are skipped on pop.
type frontierPQ []*frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by priority ascending; equal priorities fall back to the
// insertion counter so ordering is stable across runs.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *frontierItem.
func (pq *frontierPQ) Push(x any) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *frontierPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// step records how a board was first (cheapest) reached: its predecessor's
// key and the connecting move. Walking steps back to the start key and
// reversing yields the solution path.
type step struct {
	prevKey string
	move    board.Move
}

// runner holds the mutable state of one search invocation. Every call
// allocates its own runner, so concurrent searches share nothing (the
// package has no mutable state at all).
type runner struct {
	opts     Options
	strat    strategy
	startKey string
	pq       frontierPQ
	seq      uint64          // next insertion counter value
	bestG    map[string]int  // board key → cheapest known g
	prev     map[string]step // board key → how it was first reached
	expanded int
	started  time.Time
	deadline time.Time // zero ⇒ no wall-clock limit
}

// search runs one strategy from b to the goal under the configured budgets.
// It validates inputs, then drives the shared frontier loop.
//
// Complexity: O(B·log B) heap work over B pushed entries, each push costing
// one O(N²)–O(N³) heuristic evaluation; memory O(B·N²) for retained boards.
func search(strat strategy, b *board.Board, opts ...Option) (*Result, error) {
	// 1) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate the board.
	if b == nil {
		return nil, ErrNilBoard
	}

	// 3) Prepare per-call state. The input is cloned so a caller mutating
	//    its own references cannot race the search (boards are immutable,
	//    but the clone also pins the fingerprint to the searched state).
	start := b.Clone()
	r := &runner{
		opts:     o,
		strat:    strat,
		startKey: start.Key(),
		pq:       make(frontierPQ, 0, 64),
		bestG:    make(map[string]int, 1024),
		prev:     make(map[string]step, 1024),
		started:  time.Now(),
	}
	if o.TimeLimit > 0 {
		r.deadline = r.started.Add(o.TimeLimit)
	}

	// 4) Seed the frontier with the start board at g=0.
	heap.Init(&r.pq)
	r.bestG[r.startKey] = 0
	r.push(start, r.startKey, 0)

	// 5) Main loop.
	res := r.loop()
	res.Fingerprint = r.startKey
	res.Expanded = r.expanded
	res.Elapsed = time.Since(r.started)

	return res, nil
}

// priorityFor computes the frontier priority of a board reached at cost g.
func (r *runner) priorityFor(g, h int) int {
	if r.strat == strategyGreedy {
		return h
	}

	return g + h
}

// push evaluates the heuristic for b and inserts a frontier entry,
// consuming one insertion-counter value.
func (r *runner) push(b *board.Board, key string, g int) {
	h := r.opts.evaluate(b)
	heap.Push(&r.pq, &frontierItem{
		key:      key,
		b:        b,
		g:        g,
		priority: r.priorityFor(g, h),
		seq:      r.seq,
	})
	r.seq++
}

// overBudget reports whether the wall clock has run past the deadline.
func (r *runner) overBudget() bool {
	return !r.deadline.IsZero() && time.Now().After(r.deadline)
}

// loop pops, tests, and expands frontier entries until the goal is popped
// or a budget is exhausted. Never returns nil.
func (r *runner) loop() *Result {
	for r.pq.Len() > 0 {
		// 1) Budget checks, once per iteration. Exhaustion is a normal
		//    "not found" result — never an error, never an unsolvability proof.
		if r.overBudget() {
			return &Result{Found: false}
		}
		if r.opts.MaxIterations > 0 && r.expanded >= r.opts.MaxIterations {
			return &Result{Found: false}
		}

		// 2) Pop the best entry; skip it if a cheaper path to the same
		//    board was recorded after this entry was pushed (lazy deletion).
		item := heap.Pop(&r.pq).(*frontierItem)
		if g, ok := r.bestG[item.key]; ok && item.g > g {
			continue
		}

		// 3) Goal test on pop. For A* with an admissible, consistent
		//    heuristic this is the point at which optimality is guaranteed.
		if item.b.IsTerminal() {
			return &Result{Moves: r.reconstruct(item.key), Found: true}
		}

		// 4) Expand: generate every legal successor and record those
		//    reached for the first time or via a strictly cheaper path.
		r.expanded++
		r.expand(item)
	}

	// Frontier empty without reaching the goal: in a finite, solvable space
	// this can only follow a cap that pruned re-pushes, so report "not found".
	return &Result{Found: false}
}

// expand relaxes every legal move out of item, pushing improved successors.
func (r *runner) expand(item *frontierItem) {
	var (
		nb  *board.Board
		key string
		ng  int
	)
	for _, mv := range item.b.ValidMoves() {
		nb = item.b.ApplyMove(mv)
		key = nb.Key()
		ng = item.g + 1

		// Standard decrease-key-by-reinsertion: only strictly better paths
		// are recorded and pushed; the stale entry dies on pop.
		if g, ok := r.bestG[key]; ok && ng >= g {
			continue
		}
		r.bestG[key] = ng
		r.prev[key] = step{prevKey: item.key, move: mv}
		r.push(nb, key, ng)
	}
}

// reconstruct walks the predecessor map from goalKey back to the start and
// returns the move sequence reversed into start→goal order.
// Complexity: O(path length).
func (r *runner) reconstruct(goalKey string) []board.Move {
	moves := make([]board.Move, 0, 32)
	cur := goalKey
	for cur != r.startKey {
		s, ok := r.prev[cur]
		if !ok {
			// Defensive: a broken predecessor chain would mean internal
			// corruption; return what was gathered rather than spinning.
			break
		}
		moves = append(moves, s.move)
		cur = s.prevKey
	}

	// Reverse into start→goal order.
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}
