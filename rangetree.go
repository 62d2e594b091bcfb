package aoc

import (
	"errors"
	"fmt"
	"strings"
)

// Range is the half-open interval [From, To).
type Range struct {
	From, To int
}

// Inclusive returns the range covering lo..hi, both ends included.
func Inclusive(lo, hi int) Range {
	return Range{lo, hi + 1}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.From, r.To)
}

func (r Range) Empty() bool { return r.To <= r.From }

func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.To - r.From
}

// Intersects reports whether r and o share at least one integer.
func (r Range) Intersects(o Range) bool {
	return r.From < o.To && o.From < r.To && !r.Empty() && !o.Empty()
}

// Intersect returns the overlap of r and o, which may be empty.
func (r Range) Intersect(o Range) Range {
	return Range{max(r.From, o.From), min(r.To, o.To)}
}

// Split cuts r against o into the part of r before o, the overlap, and
// the part of r after o. The outer pieces may be empty. It panics if r and
// o do not intersect.
func (r Range) Split(o Range) (left, overlap, right Range) {
	if !r.Intersects(o) {
		panic(fmt.Sprintf("aoc: split of %v against disjoint %v", r, o))
	}
	overlap = r.Intersect(o)
	return Range{r.From, overlap.From}, overlap, Range{overlap.To, r.To}
}

// Entry is a node in a range tree. A tree covers one axis with pairwise
// disjoint ranges, ordered through Left and Right. The value of a node is
// either On, on the last axis, or Next, the tree for the next axis.
type Entry struct {
	Range Range
	On    bool
	Next  *Entry

	Left, Right *Entry
}

// NewCuboid returns the tree for a single box, one range per axis.
func NewCuboid(on bool, ranges ...Range) *Entry {
	if len(ranges) == 0 {
		panic("aoc: cuboid needs at least one axis")
	}
	var e *Entry
	for i := len(ranges) - 1; i >= 0; i-- {
		n := &Entry{Range: ranges[i]}
		if e == nil {
			n.On = on
		} else {
			n.Next = e
		}
		e = n
	}
	return e
}

// Clone returns a deep copy of e.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := *e
	c.Next = e.Next.Clone()
	c.Left = e.Left.Clone()
	c.Right = e.Right.Clone()
	return &c
}

// Count returns the number of lit cells under e and its siblings.
func (e *Entry) Count() int64 {
	var (
		n int64
		s Stack[*Entry]
	)
	if e != nil {
		s.Push(e)
	}
	s.While(func(e *Entry) bool {
		inner := e.Next.Count()
		if e.Next == nil && e.On {
			inner = 1
		}
		n += int64(e.Range.Len()) * inner
		if e.Left != nil {
			s.Push(e.Left)
		}
		if e.Right != nil {
			s.Push(e.Right)
		}
		return true
	})
	return n
}

// Ranges returns the ranges of e and its siblings in order. Nested trees
// are not visited.
func (e *Entry) Ranges() []Range {
	if e == nil {
		return nil
	}
	out := e.Left.Ranges()
	out = append(out, e.Range)
	return append(out, e.Right.Ranges()...)
}

// Merge returns existing overlaid with incoming. Where the two overlap the
// value from incoming wins; on inner axes the nested trees are merged in
// turn. Neither argument is modified.
func Merge(existing, incoming *Entry) *Entry {
	return merge(existing.Clone(), incoming)
}

// merge is Merge, but modifies and reuses dst.
func merge(dst, src *Entry) *Entry {
	if src == nil {
		return dst
	}
	dst = merge(dst, src.Left)
	dst = insert(dst, src.Range, src)
	return merge(dst, src.Right)
}

// insert overlays r with the value of val onto t. val is not modified.
func insert(t *Entry, r Range, val *Entry) *Entry {
	if r.Empty() {
		return t
	}
	if t == nil {
		return &Entry{Range: r, On: val.On, Next: val.Next.Clone()}
	}
	if !t.Range.Intersects(r) {
		if r.From < t.Range.From {
			t.Left = insert(t.Left, r, val)
		} else {
			t.Right = insert(t.Right, r, val)
		}
		return t
	}
	if (t.Next == nil) != (val.Next == nil) {
		panic("aoc: merging range trees of different depth")
	}

	tl, ov, tr := t.Range.Split(r)
	nl, _, nr := r.Split(t.Range)

	// The parts of t outside r keep t's old value. Copy it before the
	// overlap is merged in place below.
	if !tl.Empty() {
		t.Left = attach(t.Left, &Entry{Range: tl, On: t.On, Next: t.Next.Clone()})
	}
	if !tr.Empty() {
		t.Right = attach(t.Right, &Entry{Range: tr, On: t.On, Next: t.Next.Clone()})
	}

	t.Range = ov
	if t.Next == nil {
		t.On = val.On
	} else {
		t.Next = merge(t.Next, val.Next)
	}

	// The parts of r outside t may still overlap t's siblings.
	t.Left = insert(t.Left, nl, val)
	t.Right = insert(t.Right, nr, val)
	return t
}

// attach adds n to t. n must not overlap any range in t.
func attach(t, n *Entry) *Entry {
	if t == nil {
		return n
	}
	if n.Range.From < t.Range.From {
		t.Left = attach(t.Left, n)
	} else {
		t.Right = attach(t.Right, n)
	}
	return t
}

// ErrBadInstruction is returned by ParseCuboid for malformed lines.
var ErrBadInstruction = errors.New("aoc: bad cuboid instruction")

// Cuboid is an instruction to turn a box of cells on or off.
type Cuboid struct {
	On      bool
	X, Y, Z Range
}

// ParseCuboid parses a line like "on x=-20..26,y=-36..17,z=-47..7". The
// bounds are inclusive.
func ParseCuboid(line string) (Cuboid, error) {
	state, rest, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Cuboid{}, fmt.Errorf("%w: %q", ErrBadInstruction, line)
	}
	var c Cuboid
	switch state {
	case "on":
		c.On = true
	case "off":
	default:
		return Cuboid{}, fmt.Errorf("%w: unknown state %q", ErrBadInstruction, state)
	}
	var x0, x1, y0, y1, z0, z1 int
	if _, err := fmt.Sscanf(rest, "x=%d..%d,y=%d..%d,z=%d..%d", &x0, &x1, &y0, &y1, &z0, &z1); err != nil {
		return Cuboid{}, fmt.Errorf("%w: %q: %v", ErrBadInstruction, line, err)
	}
	c.X, c.Y, c.Z = Inclusive(x0, x1), Inclusive(y0, y1), Inclusive(z0, z1)
	return c, nil
}

// Entry returns the cuboid as a range tree over X, then Y, then Z.
func (c Cuboid) Entry() *Entry {
	return NewCuboid(c.On, c.X, c.Y, c.Z)
}

// Within reports whether c lies entirely inside r on every axis.
func (c Cuboid) Within(r Range) bool {
	in := func(a Range) bool { return a.From >= r.From && a.To <= r.To }
	return in(c.X) && in(c.Y) && in(c.Z)
}

// Reactor accumulates cuboid instructions.
type Reactor struct {
	root *Entry
}

// Apply overlays c on everything applied so far.
func (r *Reactor) Apply(c Cuboid) {
	r.root = merge(r.root, c.Entry())
}

// Count returns the number of cells that are on.
func (r *Reactor) Count() int64 {
	return r.root.Count()
}

// Reboot applies cs in order to an empty reactor and counts the cells
// left on.
func Reboot(cs []Cuboid) int64 {
	return Fold(cs, func(r *Reactor, c Cuboid) *Reactor {
		r.Apply(c)
		return r
	}, &Reactor{}).Count()
}
