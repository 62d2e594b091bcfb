package aoc

import (
	"fmt"

	"tailscale.com/types/logger"
)

// Step is a move to Next that costs Cost.
type Step[S comparable] struct {
	Next S
	Cost int
}

// Search finds the cheapest path from a start state to any state for which
// Done reports true. It runs Dijkstra's algorithm, or A* when Heuristic is
// set. Nothing is assumed about S beyond equality.
type Search[S comparable] struct {
	// Next returns the moves out of a state. Costs must be non-negative.
	Next func(S) []Step[S]
	// Done reports whether a state is a goal.
	Done func(S) bool

	// Heuristic, if non-nil, estimates the remaining cost from a state.
	// It must never overestimate it.
	Heuristic func(S) int

	// Logf, if non-nil, gets a summary line when the search ends.
	Logf logger.Logf
}

// Route is the result of a Search.
type Route[S comparable] struct {
	States   []S // from start to goal, inclusive
	Cost     int
	Expanded int // states taken off the queue
}

// Dijkstra is a shorthand for Search{Next: next, Done: done}.Run(start).
func Dijkstra[S comparable](start S, next func(S) []Step[S], done func(S) bool) (Route[S], bool) {
	return Search[S]{Next: next, Done: done}.Run(start)
}

// AStar is like Dijkstra but guided by the admissible heuristic h.
func AStar[S comparable](start S, next func(S) []Step[S], h func(S) int, done func(S) bool) (Route[S], bool) {
	return Search[S]{Next: next, Done: done, Heuristic: h}.Run(start)
}

type frontier[S comparable] struct {
	s    S
	cost int
}

// Run searches from start. It reports false if no goal is reachable.
func (s Search[S]) Run(start S) (Route[S], bool) {
	logf := Or[logger.Logf](s.Logf, logger.Discard)
	var (
		best = map[S]int{start: 0}
		prev = map[S]S{}
		q    = MinQueue[frontier[S]]()

		expanded int
	)
	q.Push(Prioritized[frontier[S]]{V: frontier[S]{start, 0}, P: s.estimate(start)})
	for q.Len() > 0 {
		cur := q.Pop().V
		if cur.cost > best[cur.s] {
			continue // stale; a cheaper route was queued later
		}
		expanded++
		if s.Done(cur.s) {
			p := Route[S]{
				States:   trace(prev, start, cur.s),
				Cost:     cur.cost,
				Expanded: expanded,
			}
			logf("search: cost %d after expanding %d states (%d seen)", p.Cost, expanded, len(best))
			return p, true
		}
		for _, st := range s.Next(cur.s) {
			if st.Cost < 0 {
				panic(fmt.Sprintf("aoc: negative step cost %d from %v", st.Cost, cur.s))
			}
			c := cur.cost + st.Cost
			if b, ok := best[st.Next]; ok && b <= c {
				continue
			}
			best[st.Next] = c
			prev[st.Next] = cur.s
			q.Push(Prioritized[frontier[S]]{V: frontier[S]{st.Next, c}, P: c + s.estimate(st.Next)})
		}
	}
	logf("search: no path after expanding %d states", expanded)
	return Route[S]{Expanded: expanded}, false
}

func (s Search[S]) estimate(v S) int {
	if s.Heuristic == nil {
		return 0
	}
	return s.Heuristic(v)
}

// trace walks prev back from end to start.
func trace[S comparable](prev map[S]S, start, end S) []S {
	out := []S{end}
	for cur := end; cur != start; {
		cur = prev[cur]
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
