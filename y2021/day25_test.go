package y2021

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	aoc "github.com/maisem/aoc2021"
	"github.com/stretchr/testify/require"
)

func render(g *Seafloor) string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestMigrate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string // after each step
	}{
		{
			name: "line",
			in:   "...>>>>>...\n",
			want: []string{
				"...>>>>.>..\n",
				"...>>>.>.>.\n",
			},
		},
		{
			name: "east before south",
			in: `..........
.>v....v..
.......>..
..........
`,
			want: []string{
				`..........
.>........
..v....v>.
..........
`,
			},
		},
		{
			name: "wrap",
			in: `...>...
.......
......>
v.....>
......>
.......
..vvv..
`,
			want: []string{
				`..vv>..
.......
>......
v.....>
>......
.......
....v..
`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseSeafloor(tt.in)
			require.NoError(t, err)
			for i, want := range tt.want {
				g = Migrate(g)
				if diff := cmp.Diff(want, render(g)); diff != "" {
					t.Fatalf("step %d mismatch (-want +got):\n%s", i+1, diff)
				}
			}
		})
	}
}

func TestDay25(t *testing.T) {
	if got := Day25Part1(readInput(t, "day25.txt"), t.Logf); got != 58 {
		t.Errorf("Day25Part1 = %d; want 58", got)
	}
}

func TestSettleStill(t *testing.T) {
	g := aoc.MustGet(ParseSeafloor(">v\nv>\n"))
	if got := Settle(g, nil); got != 1 {
		t.Errorf("Settle = %d; want 1", got)
	}
}

func TestParseSeafloorBad(t *testing.T) {
	_, err := ParseSeafloor("..>\n.x.\n")
	require.Error(t, err)
	_, err = ParseSeafloor("..>\n..\n")
	require.ErrorIs(t, err, aoc.ErrRaggedRows)
}
