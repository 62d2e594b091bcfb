package y2021

import (
	"testing"

	aoc "github.com/maisem/aoc2021"
	"github.com/stretchr/testify/require"
)

const smallReboot = `on x=10..12,y=10..12,z=10..12
on x=11..13,y=11..13,z=11..13
off x=9..11,y=9..11,z=9..11
on x=10..10,y=10..10,z=10..10
`

func TestDay22(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"small", smallReboot, 39},
		{"sample", readInput(t, "day22.txt"), 590784},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := ParseCuboids(tt.in)
			require.NoError(t, err)
			if got := Day22Part1(cs); got != tt.want {
				t.Errorf("Day22Part1 = %d; want %d", got, tt.want)
			}
			if got := Day22Part1Tree(cs); got != int64(tt.want) {
				t.Errorf("Day22Part1Tree = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestDay22Part2Bounded(t *testing.T) {
	cs := aoc.MustGet(ParseCuboids(readInput(t, "day22.txt")))
	// The last two instructions are the only ones outside -50..50.
	require.False(t, cs[len(cs)-1].Within(initRegion))
	require.False(t, cs[len(cs)-2].Within(initRegion))
	if got := Day22Part2(cs[:len(cs)-2]); got != 590784 {
		t.Errorf("Day22Part2(bounded) = %d; want 590784", got)
	}
	// Both outliers are "on" and disjoint from everything else in x or y,
	// so they add exactly their own volume.
	extra := int64(0)
	for _, c := range cs[len(cs)-2:] {
		extra += int64(c.X.Len()) * int64(c.Y.Len()) * int64(c.Z.Len())
	}
	if got := Day22Part2(cs); got != 590784+extra {
		t.Errorf("Day22Part2 = %d; want %d", got, 590784+extra)
	}
}

func TestParseCuboids(t *testing.T) {
	cs, err := ParseCuboids("on x=-1..1,y=2..2,z=0..3\noff x=5..6,y=-7..-6,z=1..1\n")
	require.NoError(t, err)
	require.Equal(t, []aoc.Cuboid{
		{On: true, X: aoc.Range{From: -1, To: 2}, Y: aoc.Range{From: 2, To: 3}, Z: aoc.Range{From: 0, To: 4}},
		{On: false, X: aoc.Range{From: 5, To: 7}, Y: aoc.Range{From: -7, To: -5}, Z: aoc.Range{From: 1, To: 2}},
	}, cs)

	for _, bad := range []string{
		"toggle x=1..2,y=1..2,z=1..2",
		"on x=1..2,y=1..2",
		"on",
	} {
		_, err := ParseCuboids(bad)
		require.ErrorIs(t, err, aoc.ErrBadInstruction, bad)
	}
}
