package y2021

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	aoc "github.com/maisem/aoc2021"
	"github.com/stretchr/testify/require"
)

func readInput(t testing.TB, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func TestLowestRisk(t *testing.T) {
	c, err := ParseCavern(readInput(t, "day15.txt"))
	require.NoError(t, err)
	big := Extend(c)

	for _, s := range []Strategy{StrategyDijkstra, StrategyAStar, StrategyGonumDijkstra, StrategyGonumAStar} {
		t.Run(s.String(), func(t *testing.T) {
			if got, ok := LowestRisk(c, s, t.Logf); !ok || got != 40 {
				t.Errorf("LowestRisk(sample) = %v, %v; want 40, true", got, ok)
			}
			if got, ok := LowestRisk(big, s, t.Logf); !ok || got != 315 {
				t.Errorf("LowestRisk(extended) = %v, %v; want 315, true", got, ok)
			}
		})
	}
}

func TestDay15(t *testing.T) {
	c := aoc.MustGet(ParseCavern(readInput(t, "day15.txt")))
	if got := Day15Part1(c); got != 40 {
		t.Errorf("Day15Part1 = %d; want 40", got)
	}
	if got := Day15Part2(c); got != 315 {
		t.Errorf("Day15Part2 = %d; want 315", got)
	}
}

func TestExtend(t *testing.T) {
	c := aoc.MustGet(ParseCavern(readInput(t, "day15.txt")))
	big := Extend(c)
	require.Equal(t, aoc.Pt{X: 50, Y: 50}, big.Size())

	tests := []struct {
		p    aoc.Pt
		want uint8
	}{
		{aoc.Pt{X: 0, Y: 0}, 1},
		{aoc.Pt{X: 10, Y: 0}, 2},
		{aoc.Pt{X: 0, Y: 10}, 2},
		{aoc.Pt{X: 40, Y: 40}, 9},
		{aoc.Pt{X: 0, Y: 4}, 7},
		{aoc.Pt{X: 40, Y: 44}, 6}, // 7+8 wraps to 6
		{aoc.Pt{X: 49, Y: 49}, 9}, // 1+8
	}
	for _, tt := range tests {
		if got := big.At(tt.p); got != tt.want {
			t.Errorf("At(%v) = %d; want %d", tt.p, got, tt.want)
		}
	}
}

func TestLowestRiskSmall(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"single", "5\n", 0},
		{"row", "1234\n", 9},
		{"column", "9\n1\n1\n", 2},
		{"detour", "111\n991\n111\n", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCavern(tt.in)
			require.NoError(t, err)
			for _, s := range []Strategy{StrategyDijkstra, StrategyAStar} {
				if got, ok := LowestRisk(c, s, nil); !ok || got != tt.want {
					t.Errorf("%v: got %v, %v; want %d", s, got, ok, tt.want)
				}
			}
		})
	}
}

func TestParseCavernRagged(t *testing.T) {
	_, err := ParseCavern("123\n12\n")
	require.ErrorIs(t, err, aoc.ErrRaggedRows)
}

func TestLowestRiskEmpty(t *testing.T) {
	c := aoc.MakeGrid[uint8](0, 0)
	if _, ok := LowestRisk(c, StrategyDijkstra, nil); ok {
		t.Error("found a path through an empty cavern")
	}
}

func TestLowestRiskLogs(t *testing.T) {
	c := aoc.MustGet(ParseCavern(readInput(t, "day15.txt")))
	for _, s := range []Strategy{StrategyDijkstra, StrategyAStar, StrategyGonumDijkstra, StrategyGonumAStar} {
		var lines []string
		logf := func(format string, args ...any) {
			lines = append(lines, fmt.Sprintf(format, args...))
		}
		_, ok := LowestRisk(c, s, logf)
		require.True(t, ok)
		require.Len(t, lines, 1, s.String())
		require.Contains(t, lines[0], "cost 40", s.String())
	}
}
