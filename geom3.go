package aoc

import (
	"cmp"
	"fmt"
	"strings"
)

// Vec3 is an integer 3-D point or displacement.
type Vec3 struct {
	X, Y, Z int
}

var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// ParseVec3 parses "x,y,z".
func ParseVec3(s string) (Vec3, error) {
	f := strings.Split(strings.TrimSpace(s), ",")
	if len(f) != 3 {
		return Vec3{}, fmt.Errorf("bad vector %q: want 3 fields", s)
	}
	var v [3]int
	for i, x := range f {
		if _, err := fmt.Sscan(x, &v[i]); err != nil {
			return Vec3{}, fmt.Errorf("bad vector %q: %w", s, err)
		}
	}
	return Vec3{v[0], v[1], v[2]}, nil
}

func (v Vec3) String() string {
	return fmt.Sprintf("%d,%d,%d", v.X, v.Y, v.Z)
}

// Compare orders vectors by X, then Y, then Z.
func (v Vec3) Compare(o Vec3) int {
	if c := cmp.Compare(v.X, o.X); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, o.Y); c != 0 {
		return c
	}
	return cmp.Compare(v.Z, o.Z)
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Abs() Vec3       { return Vec3{Abs(v.X), Abs(v.Y), Abs(v.Z)} }

func (v Vec3) Dot(o Vec3) int {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// MDist returns the manhattan distance between v and o.
func (v Vec3) MDist(o Vec3) int {
	d := v.Sub(o).Abs()
	return Sum(d.X, d.Y, d.Z)
}

// Rotation is an orthonormal integer matrix, stored as rows.
type Rotation [3]Vec3

// Identity is the rotation that changes nothing.
var Identity = Rotation{UnitX, UnitY, UnitZ}

// Apply returns r*v.
func (r Rotation) Apply(v Vec3) Vec3 {
	return Vec3{r[0].Dot(v), r[1].Dot(v), r[2].Dot(v)}
}

// Mul returns the matrix product r*o, which applies o first.
func (r Rotation) Mul(o Rotation) Rotation {
	t := o.Transpose() // columns of o
	var out Rotation
	for i, row := range r {
		out[i] = Vec3{row.Dot(t[0]), row.Dot(t[1]), row.Dot(t[2])}
	}
	return out
}

// Transpose returns the transpose of r, which is also its inverse.
func (r Rotation) Transpose() Rotation {
	return Rotation{
		{r[0].X, r[1].X, r[2].X},
		{r[0].Y, r[1].Y, r[2].Y},
		{r[0].Z, r[1].Z, r[2].Z},
	}
}

var rotations = func() []Rotation {
	var out []Rotation
	for _, f := range []struct {
		facing Vec3
		ups    [2]Vec3
	}{
		{UnitX, [2]Vec3{UnitZ, UnitY}},
		{UnitY, [2]Vec3{UnitZ, UnitX}},
		{UnitZ, [2]Vec3{UnitX, UnitY}},
	} {
		for _, dir := range []Vec3{f.facing, f.facing.Neg()} {
			for _, up := range []Vec3{f.ups[0], f.ups[0].Neg(), f.ups[1], f.ups[1].Neg()} {
				z := dir
				x := up.Cross(z)
				y := z.Cross(x)
				out = append(out, Rotation{x, y, z})
			}
		}
	}
	if len(out) != 24 {
		panic(fmt.Sprintf("generated %d rotations, want 24", len(out)))
	}
	return out
}()

// Rotations returns the 24 rotations of the cube.
func Rotations() []Rotation {
	return append([]Rotation(nil), rotations...)
}

// Transform rotates and then translates.
type Transform struct {
	Rot   Rotation
	Shift Vec3
}

// NoTransform maps every point to itself.
var NoTransform = Transform{Rot: Identity}

func (t Transform) Apply(v Vec3) Vec3 {
	return t.Rot.Apply(v).Add(t.Shift)
}

// ApplyAll returns the images of vs under t.
func (t Transform) ApplyAll(vs []Vec3) []Vec3 {
	out := make([]Vec3, len(vs))
	for i, v := range vs {
		out[i] = t.Apply(v)
	}
	return out
}

// Compose returns the transform that applies inner and then t. If inner
// maps frame C into B and t maps B into A, the result maps C into A.
func (t Transform) Compose(inner Transform) Transform {
	return Transform{
		Rot:   t.Rot.Mul(inner.Rot),
		Shift: t.Rot.Apply(inner.Shift).Add(t.Shift),
	}
}

// Invert returns the transform that undoes t.
func (t Transform) Invert() Transform {
	rt := t.Rot.Transpose()
	return Transform{Rot: rt, Shift: rt.Apply(t.Shift.Neg())}
}
