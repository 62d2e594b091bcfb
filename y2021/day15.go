// Package y2021 solves the Advent of Code 2021 puzzles that lean on the
// aoc toolkit: cavern routing, scanner registration, reactor reboot,
// amphipod sorting and sea cucumber migration.
package y2021

import (
	"fmt"
	"math"

	aoc "github.com/maisem/aoc2021"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"tailscale.com/types/logger"
)

// Cavern is a grid of risk levels, 1 through 9.
type Cavern = aoc.Grid[uint8]

type cpt = aoc.Pt2[uint32]

// ParseCavern parses rows of digits.
func ParseCavern(s string) (*Cavern, error) {
	var rows [][]uint8
	for _, l := range aoc.Lines(s) {
		if l == "" {
			continue
		}
		row := make([]uint8, 0, len(l))
		for _, d := range aoc.Digits(l) {
			row = append(row, uint8(d))
		}
		rows = append(rows, row)
	}
	return aoc.NewGrid(rows)
}

// Extend tiles c five times in each direction. Each tile to the right or
// below adds one to every risk level, and levels above 9 wrap back to 1.
func Extend(c *Cavern) *Cavern {
	w, h := c.Width(), c.Height()
	out := aoc.MakeGrid[uint8](w*5, h*5)
	for _, p := range out.Pts() {
		v := int(c.At(aoc.Pt{X: p.X % w, Y: p.Y % h})) + p.X/w + p.Y/h
		if v > 9 {
			v -= 9
		}
		out.Set(p, uint8(v))
	}
	return out
}

// Strategy selects how LowestRisk searches the cavern.
type Strategy int

const (
	StrategyDijkstra Strategy = iota
	StrategyAStar
	StrategyGonumDijkstra
	StrategyGonumAStar
)

func (s Strategy) String() string {
	switch s {
	case StrategyDijkstra:
		return "dijkstra"
	case StrategyAStar:
		return "astar"
	case StrategyGonumDijkstra:
		return "gonum-dijkstra"
	case StrategyGonumAStar:
		return "gonum-astar"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// LowestRisk returns the total risk of the safest path from the top left
// to the bottom right of c. Entering a cell costs its risk level; the
// starting cell is free. It reports false if c is empty.
func LowestRisk(c *Cavern, s Strategy, logf logger.Logf) (int, bool) {
	if c.Width() == 0 || c.Height() == 0 {
		return 0, false
	}
	switch s {
	case StrategyDijkstra, StrategyAStar:
		return lowestRisk(c, s == StrategyAStar, logf)
	case StrategyGonumDijkstra, StrategyGonumAStar:
		return lowestRiskGonum(c, s == StrategyGonumAStar, logf)
	}
	panic(fmt.Sprintf("unknown strategy %v", s))
}

func lowestRisk(c *Cavern, heuristic bool, logf logger.Logf) (int, bool) {
	w, h := uint32(c.Width()), uint32(c.Height())
	end := cpt{X: w - 1, Y: h - 1}
	srch := aoc.Search[cpt]{
		Next: func(p cpt) []aoc.Step[cpt] {
			ns := p.NeighboursChecked(w, h)
			out := make([]aoc.Step[cpt], len(ns))
			for i, n := range ns {
				out[i] = aoc.Step[cpt]{Next: n, Cost: int(c.At(n.Int()))}
			}
			return out
		},
		Done: func(p cpt) bool { return p == end },
		Logf: logf,
	}
	if heuristic {
		// Every step costs at least 1, so the manhattan distance never
		// overestimates.
		srch.Heuristic = func(p cpt) int { return int(p.MDist(end)) }
	}
	p, ok := srch.Run(cpt{})
	return p.Cost, ok
}

// nodeID numbers the cells of c in row-major order.
func nodeID(c *Cavern, p aoc.Pt) int64 {
	return int64(p.Y*c.Width() + p.X)
}

func lowestRiskGonum(c *Cavern, heuristic bool, logf logger.Logf) (int, bool) {
	logf = aoc.Or[logger.Logf](logf, logger.Discard)
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, p := range c.Pts() {
		g.AddNode(simple.Node(nodeID(c, p)))
	}
	w, h := c.Width(), c.Height()
	for _, p := range c.Pts() {
		for _, n := range p.NeighboursChecked(w, h) {
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(nodeID(c, p)),
				T: simple.Node(nodeID(c, n)),
				W: float64(c.At(n)),
			})
		}
	}
	start := simple.Node(0)
	end := aoc.Pt{X: w - 1, Y: h - 1}
	var cost float64
	if heuristic {
		mdist := func(x, y graph.Node) float64 {
			a := aoc.Pt{X: int(x.ID()) % w, Y: int(x.ID()) / w}
			b := aoc.Pt{X: int(y.ID()) % w, Y: int(y.ID()) / w}
			return float64(a.MDist(b))
		}
		sp, expanded := path.AStar(start, simple.Node(nodeID(c, end)), g, mdist)
		cost = sp.WeightTo(nodeID(c, end))
		logf("gonum astar: cost %v after expanding %d of %d nodes", cost, expanded, g.Nodes().Len())
	} else {
		cost = path.DijkstraFrom(start, g).WeightTo(nodeID(c, end))
		logf("gonum dijkstra: cost %v over %d nodes", cost, g.Nodes().Len())
	}
	if math.IsInf(cost, 1) {
		return 0, false
	}
	return int(cost), true
}

// Day15Part1 is the risk of crossing the cavern.
func Day15Part1(c *Cavern) int {
	n, ok := LowestRisk(c, StrategyDijkstra, nil)
	if !ok {
		panic("no path through cavern")
	}
	return n
}

// Day15Part2 is the risk of crossing the extended cavern.
func Day15Part2(c *Cavern) int {
	return Day15Part1(Extend(c))
}
