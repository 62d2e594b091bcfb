package aoc

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// ErrRaggedRows is returned by NewGrid when the rows are not all the same
// length.
var ErrRaggedRows = errors.New("aoc: rows have different lengths")

// Grid is a dense, row-major, rectangular grid of T.
type Grid[T any] struct {
	w     int
	cells []T
}

// NewGrid builds a grid from rows. All rows must have the length of the
// first one.
func NewGrid[T any](rows [][]T) (*Grid[T], error) {
	g := &Grid[T]{}
	for y, row := range rows {
		if y == 0 {
			g.w = len(row)
			g.cells = make([]T, 0, len(row)*len(rows))
		} else if len(row) != g.w {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", y, len(row), g.w, ErrRaggedRows)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// MakeGrid returns a zeroed grid of x columns and y rows.
func MakeGrid[T any](x, y int) *Grid[T] {
	return &Grid[T]{
		w:     x,
		cells: make([]T, x*y),
	}
}

// FromCells wraps cells as a grid of width w. It panics if len(cells) is
// not a multiple of w.
func FromCells[T any](w int, cells []T) *Grid[T] {
	if w <= 0 || len(cells)%w != 0 {
		panic(fmt.Sprintf("aoc: %d cells do not fill rows of width %d", len(cells), w))
	}
	return &Grid[T]{w: w, cells: cells}
}

func (g *Grid[T]) Width() int { return g.w }

func (g *Grid[T]) Height() int {
	if g.w == 0 {
		return 0
	}
	return len(g.cells) / g.w
}

// Size returns the width and height of the grid as a point.
func (g *Grid[T]) Size() Pt {
	return Pt{g.Width(), g.Height()}
}

// In reports whether p lies within the grid.
func (g *Grid[T]) In(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.w && p.Y < g.Height()
}

func (g *Grid[T]) index(p Pt) int {
	if !g.In(p) {
		panic(fmt.Sprintf("aoc: %v out of bounds for grid of size %v", p, g.Size()))
	}
	return p.Y*g.w + p.X
}

// At returns the cell at p. It panics if p is out of bounds.
func (g *Grid[T]) At(p Pt) T {
	return g.cells[g.index(p)]
}

// Set sets the cell at p. It panics if p is out of bounds.
func (g *Grid[T]) Set(p Pt, v T) {
	g.cells[g.index(p)] = v
}

// AtOk is like At but reports false instead of panicking.
func (g *Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y*g.w+p.X], true
}

// Pts returns all points of the grid in row-major order.
func (g *Grid[T]) Pts() []Pt {
	out := make([]Pt, 0, len(g.cells))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.w; x++ {
			out = append(out, Pt{x, y})
		}
	}
	return out
}

// Rows returns a copy of the grid as rows.
func (g *Grid[T]) Rows() [][]T {
	out := make([][]T, g.Height())
	for y := range out {
		out[y] = append([]T(nil), g.cells[y*g.w:(y+1)*g.w]...)
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{w: g.w, cells: append([]T(nil), g.cells...)}
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*[]T) deephash.Sum

// Hash returns a hash of the grid contents.
func (g *Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g.cells)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[[]T]()
		hashers[rt] = h
	}
	return h.(func(*[]T) deephash.Sum)(&g.cells)
}

func (g *Grid[T]) Transpose() *Grid[T] {
	out := MakeGrid[T](g.Height(), g.w)
	for _, p := range g.Pts() {
		out.Set(Pt{p.Y, p.X}, g.At(p))
	}
	return out
}

func (g *Grid[T]) RotateCounterClockwise() *Grid[T] {
	h := g.Height()
	out := MakeGrid[T](h, g.w)
	for _, p := range g.Pts() {
		out.Set(Pt{p.Y, g.w - 1 - p.X}, g.At(p))
	}
	return out
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false if the
// step leaves the grid.
func (g *Grid[T]) Move(p Path) (Path, bool) {
	next, ok := p.Pt.ToChecked(p.Dir, g.w, g.Height())
	if !ok {
		return Path{}, false
	}
	p.Pt = next
	return p, true
}

// FloodFill fills all empty cells 4-connected to start with fill. It
// returns the number of cells filled.
func FloodFill[T comparable](grid *Grid[T], start Pt, empty, fill T) int {
	if v, ok := grid.AtOk(start); !ok || v != empty {
		return 0
	}
	w, h := grid.Width(), grid.Height()
	grid.Set(start, fill)
	n := 1
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		for _, nb := range p.NeighboursChecked(w, h) {
			if grid.At(nb) == empty {
				grid.Set(nb, fill)
				n++
				q.Push(nb)
			}
		}
		return true
	})
	return n
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

// ParseDirection parses one of "^>v<" or "URDL".
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^', 'U':
		return Up, nil
	case '>', 'R':
		return Right, nil
	case 'v', 'D':
		return Down, nil
	case '<', 'L':
		return Left, nil
	}
	return 0, fmt.Errorf("unknown direction %q", r)
}

func (d Direction) Turn(right bool) Direction {
	if right {
		return d.RotateRight()
	}
	return d.RotateLeft()
}

// RotateRight turns d clockwise: Up => Right => Down => Left => Up.
func (d Direction) RotateRight() Direction { return (d + 1) % 4 }

// RotateLeft turns d counter-clockwise: Up => Left => Down => Right => Up.
func (d Direction) RotateLeft() Direction { return (d + 3) % 4 }

// Flip returns the opposite direction.
func (d Direction) Flip() Direction { return (d + 2) % 4 }

// MirrorULDR swaps Up <=> Left and Down <=> Right.
func (d Direction) MirrorULDR() Direction { return 3 - d }

// MirrorURDL swaps Up <=> Right and Down <=> Left.
func (d Direction) MirrorURDL() Direction { return d ^ 1 }

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

// Pt2 is a 2-D point. Y grows downwards. The unchecked stepping methods
// wrap around for unsigned N at zero; use the Checked variants near the
// edge of a grid.
type Pt2[N constraints.Integer] struct {
	X, Y N
}

// Int converts p to a Pt.
func (p Pt2[N]) Int() Pt {
	return Pt{int(p.X), int(p.Y)}
}

// Compare orders points by row, then column.
func (p Pt2[N]) Compare(o Pt2[N]) int {
	switch {
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	}
	return 0
}

func (p Pt2[N]) Up() Pt2[N]    { return Pt2[N]{p.X, p.Y - 1} }
func (p Pt2[N]) Down() Pt2[N]  { return Pt2[N]{p.X, p.Y + 1} }
func (p Pt2[N]) Left() Pt2[N]  { return Pt2[N]{p.X - 1, p.Y} }
func (p Pt2[N]) Right() Pt2[N] { return Pt2[N]{p.X + 1, p.Y} }

// To returns the point one step from p in direction d.
func (p Pt2[N]) To(d Direction) Pt2[N] {
	switch d {
	case Up:
		return p.Up()
	case Right:
		return p.Right()
	case Down:
		return p.Down()
	case Left:
		return p.Left()
	}
	panic(fmt.Sprintf("bad direction %d", d))
}

// ToChecked is like To but reports false if the step would leave
// [0,w) x [0,h).
func (p Pt2[N]) ToChecked(d Direction, w, h N) (Pt2[N], bool) {
	var ok bool
	switch d {
	case Up:
		ok = p.Y > 0
	case Right:
		ok = p.X+1 < w
	case Down:
		ok = p.Y+1 < h
	case Left:
		ok = p.X > 0
	}
	if !ok {
		return p, false
	}
	return p.To(d), true
}

// ToWrapping steps in direction d on a w x h torus.
func (p Pt2[N]) ToWrapping(d Direction, w, h N) Pt2[N] {
	switch d {
	case Up:
		if p.Y == 0 {
			return Pt2[N]{p.X, h - 1}
		}
	case Right:
		if p.X+1 >= w {
			return Pt2[N]{0, p.Y}
		}
	case Down:
		if p.Y+1 >= h {
			return Pt2[N]{p.X, 0}
		}
	case Left:
		if p.X == 0 {
			return Pt2[N]{w - 1, p.Y}
		}
	}
	return p.To(d)
}

// Neighbours returns the four axis-aligned neighbours of p, unfiltered.
func (p Pt2[N]) Neighbours() []Pt2[N] {
	out := make([]Pt2[N], 0, 4)
	for _, d := range Directions {
		out = append(out, p.To(d))
	}
	return out
}

// NeighboursChecked returns the axis-aligned neighbours of p that lie in
// [0,w) x [0,h).
func (p Pt2[N]) NeighboursChecked(w, h N) []Pt2[N] {
	out := make([]Pt2[N], 0, 4)
	for _, d := range Directions {
		if n, ok := p.ToChecked(d, w, h); ok {
			out = append(out, n)
		}
	}
	return out
}

// DiagonalsChecked returns the diagonal neighbours of p that lie in
// [0,w) x [0,h).
func (p Pt2[N]) DiagonalsChecked(w, h N) []Pt2[N] {
	out := make([]Pt2[N], 0, 4)
	for _, d := range Directions {
		a, ok := p.ToChecked(d, w, h)
		if !ok {
			continue
		}
		// Pair each direction with its clockwise neighbour: ^>, >v, v<, <^.
		if n, ok := a.ToChecked(d.RotateRight(), w, h); ok {
			out = append(out, n)
		}
	}
	return out
}

// ForImmediateNeighbors calls f for the four axis-aligned neighbours of p.
func (p Pt2[N]) ForImmediateNeighbors(f func(Pt2[N]) (keepGoing bool)) {
	for _, d := range Directions {
		if !f(p.To(d)) {
			return
		}
	}
}

// ForNeighbors calls f for all eight neighbours of p.
func (p Pt2[N]) ForNeighbors(f func(Pt2[N]) (keepGoing bool)) {
	for _, d := range Directions {
		a := p.To(d)
		if !f(a) || !f(a.To(d.RotateRight())) {
			return
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[N]) MDist(b Pt2[N]) N {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}
