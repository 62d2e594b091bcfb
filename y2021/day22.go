package y2021

import (
	"fmt"

	aoc "github.com/maisem/aoc2021"
)

// initRegion is the part of the reactor that the initialization procedure
// covers, -50..50 on every axis.
var initRegion = aoc.Inclusive(-50, 50)

// ParseCuboids parses one instruction per line.
func ParseCuboids(s string) ([]aoc.Cuboid, error) {
	var out []aoc.Cuboid
	for i, l := range aoc.Lines(s) {
		if l == "" {
			continue
		}
		c, err := aoc.ParseCuboid(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Day22Part1 runs the instructions that lie inside the initialization
// region on a dense array and counts the lit cells.
func Day22Part1(cs []aoc.Cuboid) int {
	const n = 101
	var cells [n][n][n]bool
	off := -initRegion.From
	for _, c := range cs {
		if !c.Within(initRegion) {
			continue
		}
		for x := c.X.From; x < c.X.To; x++ {
			for y := c.Y.From; y < c.Y.To; y++ {
				for z := c.Z.From; z < c.Z.To; z++ {
					cells[x+off][y+off][z+off] = c.On
				}
			}
		}
	}
	lit := 0
	for x := range cells {
		for y := range cells[x] {
			for z := range cells[x][y] {
				if cells[x][y][z] {
					lit++
				}
			}
		}
	}
	return lit
}

// Day22Part1Tree is Day22Part1 computed with the range tree.
func Day22Part1Tree(cs []aoc.Cuboid) int64 {
	var in []aoc.Cuboid
	for _, c := range cs {
		if c.Within(initRegion) {
			in = append(in, c)
		}
	}
	return aoc.Reboot(in)
}

// Day22Part2 runs every instruction and counts the lit cells.
func Day22Part2(cs []aoc.Cuboid) int64 {
	return aoc.Reboot(cs)
}
