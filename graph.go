package aoc

import (
	"slices"

	"golang.org/x/exp/maps"
	"tailscale.com/util/set"
)

// Graph is an undirected graph with integer edge weights. The zero value
// is an empty graph.
type Graph[K comparable] struct {
	Nodes set.Set[K]
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	if g.Nodes == nil {
		g.Nodes = make(set.Set[K])
	}
	g.Nodes.Add(a)
}

// AddEdge connects a and b, adding them if needed. An existing edge gets
// the new weight.
func (g *Graph[K]) AddEdge(a, b K, weight int) {
	g.AddNode(a)
	g.AddNode(b)
	InitMap(&g.Edges)
	InitMap2(g.Edges, a)
	InitMap2(g.Edges, b)
	g.Edges[a][b] = weight
	g.Edges[b][a] = weight
}

// RemoveNode deletes a and every edge touching it.
func (g *Graph[K]) RemoveNode(a K) {
	for n := range g.Edges[a] {
		delete(g.Edges[n], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// ReachableNodes returns the nodes connected to a, including a.
func (g *Graph[K]) ReachableNodes(a K) set.Set[K] {
	seen := set.Set[K]{}
	seen.Add(a)
	q := NewQueue(a)
	q.While(func(v K) bool {
		for n := range g.Edges[v] {
			if !seen.Contains(n) {
				seen.Add(n)
				q.Push(n)
			}
		}
		return true
	})
	return seen
}

// Steps returns the edges out of k as search steps. It can be used as a
// Search's Next func.
func (g *Graph[K]) Steps(k K) []Step[K] {
	out := make([]Step[K], 0, len(g.Edges[k]))
	for n, w := range g.Edges[k] {
		out = append(out, Step[K]{Next: n, Cost: w})
	}
	return out
}

// Neighbors returns the nodes adjacent to k, ordered by cmp.
func (g *Graph[K]) Neighbors(k K, cmp func(a, b K) int) []K {
	out := maps.Keys(g.Edges[k])
	slices.SortFunc(out, cmp)
	return out
}

// InitMap2 makes m[k] if it is nil.
func InitMap2[K, K2 comparable, V any](m map[K]map[K2]V, k K) {
	if m[k] == nil {
		m[k] = make(map[K2]V)
	}
}
