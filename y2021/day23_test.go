package y2021

import (
	"testing"

	aoc "github.com/maisem/aoc2021"
	"github.com/stretchr/testify/require"
)

func TestParseBurrow(t *testing.T) {
	in := readInput(t, "day23.txt")
	b, err := ParseBurrow(in)
	require.NoError(t, err)
	require.Equal(t, in, b.String())
	require.False(t, b.Sorted())

	unfolded, err := ParseBurrow(Unfold(in))
	require.NoError(t, err)
	require.Equal(t, Unfold(in), unfolded.String())
	require.Equal(t, 4, unfolded.depth)

	for _, bad := range []string{
		"#############\n",
		"#############\n#...........#\n###B#C#B#E###\n  #########\n",
		"#############\n#...........#\n  #########\n",
	} {
		_, err := ParseBurrow(bad)
		require.ErrorIs(t, err, errBadBurrow, bad)
	}
}

func TestBurrowSteps(t *testing.T) {
	b := aoc.MustGet(ParseBurrow(readInput(t, "day23.txt")))
	// Each of the four rooms has a stranger on top, which can stop on any
	// of the seven hallway cells.
	steps := b.Steps()
	require.Len(t, steps, 4*7)

	// B leaving room A for the far left corner: 1 step up, 2 left. The B
	// on top of room C pays 7 steps for the same cell.
	costs := map[int]int{}
	for _, s := range steps {
		if s.Next.hall[0] != 'B' {
			continue
		}
		costs[s.Cost]++
		if s.Next.rooms[0][0] == 0 {
			require.Equal(t, 3*10, s.Cost)
		}
	}
	require.Equal(t, map[int]int{3 * 10: 1, 7 * 10: 1}, costs)
}

func TestBurrowEnter(t *testing.T) {
	b := aoc.MustGet(ParseBurrow(`#############
#.....D.....#
###B#A#C#.###
  #A#B#C#D#
  #########
`))
	// D walks from 5 to the door at 8 and down into the free slot.
	var entered bool
	for _, s := range b.Steps() {
		if s.Next.hall[5] == 0 {
			entered = true
			require.Equal(t, byte('D'), s.Next.rooms[3][0])
			require.Equal(t, 4*1000, s.Cost)
		}
	}
	require.True(t, entered)

	n, ok := Organize(b, t.Logf)
	require.True(t, ok)
	// D home (4000), A out of B to 5 (2), B out of A to 3 (20), B into B
	// (20), A from 5 into A (4).
	require.Equal(t, 4046, n)
}

func TestOrganizeSorted(t *testing.T) {
	b := aoc.MustGet(ParseBurrow(`#############
#...........#
###A#B#C#D###
  #A#B#C#D#
  #########
`))
	require.True(t, b.Sorted())
	n, ok := Organize(b, nil)
	require.True(t, ok)
	require.Zero(t, n)
}

func TestDay23(t *testing.T) {
	in := readInput(t, "day23.txt")
	if got := Day23Part1(in, nil); got != 12521 {
		t.Errorf("Day23Part1 = %d; want 12521", got)
	}
	if testing.Short() {
		t.Skip("skipping unfolded burrow in short mode")
	}
	if got := Day23Part2(in, nil); got != 44169 {
		t.Errorf("Day23Part2 = %d; want 44169", got)
	}
}
