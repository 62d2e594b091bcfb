package y2021

import (
	"fmt"

	aoc "github.com/maisem/aoc2021"
	"tailscale.com/types/logger"
)

// Seafloor is a toroidal grid of sea cucumbers.
type Seafloor = aoc.Grid[byte]

const (
	emptyCell = '.'
	eastHerd  = '>'
	southHerd = 'v'
)

// ParseSeafloor parses a map of '.', '>' and 'v'.
func ParseSeafloor(s string) (*Seafloor, error) {
	var rows [][]byte
	for _, l := range aoc.Lines(s) {
		if l == "" {
			continue
		}
		for _, c := range []byte(l) {
			if c != emptyCell && c != eastHerd && c != southHerd {
				return nil, fmt.Errorf("unexpected %q in %q", c, l)
			}
		}
		rows = append(rows, []byte(l))
	}
	return aoc.NewGrid(rows)
}

// moveHerd moves every cucumber of the given herd whose destination was
// empty before any of them moved.
func moveHerd(g *Seafloor, herd byte, d aoc.Direction) *Seafloor {
	w, h := g.Width(), g.Height()
	next := g.Clone()
	for _, p := range g.Pts() {
		if g.At(p) != herd {
			continue
		}
		to := p.ToWrapping(d, w, h)
		if g.At(to) != emptyCell {
			continue
		}
		next.Set(p, emptyCell)
		next.Set(to, herd)
	}
	return next
}

// Migrate moves the east herd and then the south herd once.
func Migrate(g *Seafloor) *Seafloor {
	return moveHerd(moveHerd(g, eastHerd, aoc.Right), southHerd, aoc.Down)
}

// Settle steps g until nothing moves and returns the number of the first
// step on which no cucumber moved.
func Settle(g *Seafloor, logf logger.Logf) int {
	logf = aoc.Or[logger.Logf](logf, logger.Discard)
	last := g.Hash()
	for n := 1; ; n++ {
		g = Migrate(g)
		h := g.Hash()
		if h == last {
			logf("seafloor settled after %d steps", n)
			return n
		}
		last = h
	}
}

// Day25Part1 is the first step on which no sea cucumber moves.
func Day25Part1(s string, logf logger.Logf) int {
	return Settle(aoc.MustGet(ParseSeafloor(s)), logf)
}
