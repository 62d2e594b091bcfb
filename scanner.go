package aoc

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
	"tailscale.com/types/logger"
	"tailscale.com/util/set"
)

// CoincidenceThreshold is the number of points two scanners must share
// before their alignment is trusted.
const CoincidenceThreshold = 12

// ErrUnreachable is returned by Register when some scanner shares no chain
// of alignments with scanner 0.
var ErrUnreachable = errors.New("aoc: scanner not reachable from scanner 0")

// Scanner is a point cloud in its own coordinate frame.
type Scanner []Vec3

// ParseScanners parses blocks of the form
//
//	--- scanner 0 ---
//	404,-588,-901
//	528,-643,409
//
// separated by blank lines.
func ParseScanners(s string) ([]Scanner, error) {
	var out []Scanner
	for _, b := range Blocks(s) {
		if !strings.HasPrefix(b[0], "--- scanner") {
			return nil, fmt.Errorf("bad scanner header %q", b[0])
		}
		var sc Scanner
		for _, l := range b[1:] {
			v, err := ParseVec3(l)
			if err != nil {
				return nil, fmt.Errorf("scanner %d: %w", len(out), err)
			}
			sc = append(sc, v)
		}
		out = append(out, sc)
	}
	return out, nil
}

// Align looks for a transform that maps b's coordinates into a's frame
// such that at least threshold points of b land exactly on points of a.
// The first rotation, in Rotations order, that works is used.
func Align(a, b Scanner, threshold int) (Transform, bool) {
	if threshold <= 0 {
		threshold = CoincidenceThreshold
	}
	beacons := make(set.Set[Vec3], len(a))
	for _, v := range a {
		beacons.Add(v)
	}
	rb := make([]Vec3, len(b))
	for _, rot := range rotations {
		for i, v := range b {
			rb[i] = rot.Apply(v)
		}
		tried := make(set.Set[Vec3])
		for _, pa := range a {
			for _, pb := range rb {
				shift := pa.Sub(pb)
				if tried.Contains(shift) {
					continue
				}
				tried.Add(shift)
				if coincide(beacons, rb, shift, threshold) {
					return Transform{Rot: rot, Shift: shift}, true
				}
			}
		}
	}
	return Transform{}, false
}

// coincide reports whether at least threshold of pts+shift are in beacons.
func coincide(beacons set.Set[Vec3], pts []Vec3, shift Vec3, threshold int) bool {
	n := 0
	for i, p := range pts {
		if beacons.Contains(p.Add(shift)) {
			n++
			if n >= threshold {
				return true
			}
		}
		if n+len(pts)-i-1 < threshold {
			return false
		}
	}
	return false
}

// Pair identifies a transform that maps Other's coordinates into Ref's
// frame.
type Pair struct {
	Ref, Other int
}

// RegisterOptions configures PairwiseTransforms and Register.
type RegisterOptions struct {
	// Threshold is the number of coinciding points needed to accept an
	// alignment. Zero means CoincidenceThreshold.
	Threshold int
	Logf      logger.Logf
}

func (o RegisterOptions) logf() logger.Logf {
	return Or[logger.Logf](o.Logf, logger.Discard)
}

// alignAll aligns every unordered pair of scanners directly, storing both
// directions of each alignment found.
func alignAll(scanners []Scanner, opts RegisterOptions) map[Pair]Transform {
	out := make(map[Pair]Transform)
	if len(scanners) < 2 {
		return out
	}
	for _, c := range combin.Combinations(len(scanners), 2) {
		i, j := c[0], c[1]
		t, ok := Align(scanners[i], scanners[j], opts.Threshold)
		if !ok {
			continue
		}
		opts.logf()("registration: scanner %d aligned into %d at %v", j, i, t.Shift)
		out[Pair{i, j}] = t
		out[Pair{j, i}] = t.Invert()
	}
	return out
}

// PairwiseTransforms returns a transform for every ordered pair of
// scanners that can be related, directly or through a chain of
// intermediate scanners. The chains are found by repeatedly composing
// known transforms until nothing new appears.
func PairwiseTransforms(scanners []Scanner, opts RegisterOptions) map[Pair]Transform {
	result := alignAll(scanners, opts)
	for {
		more := make(map[Pair]Transform)
		for p0, t0 := range result {
			for p1, t1 := range result {
				if p0.Other != p1.Ref || p0.Ref == p1.Other {
					continue
				}
				key := Pair{p0.Ref, p1.Other}
				if _, ok := result[key]; ok {
					continue
				}
				if _, ok := more[key]; !ok {
					more[key] = t0.Compose(t1)
				}
			}
		}
		if len(more) == 0 {
			break
		}
		for k, v := range more {
			result[k] = v
		}
	}
	return result
}

// Registration is a set of scanners brought into scanner 0's frame.
type Registration struct {
	Scanners []Scanner
	// ToRef[i] maps scanner i's coordinates into scanner 0's frame.
	ToRef []Transform
}

// Register aligns all scanners into scanner 0's frame. Pairs that cannot
// be aligned directly are related through intermediate scanners, walking
// the graph of direct alignments breadth first from scanner 0.
func Register(scanners []Scanner, opts RegisterOptions) (*Registration, error) {
	if len(scanners) == 0 {
		return nil, errors.New("aoc: no scanners")
	}
	direct := alignAll(scanners, opts)

	var g Graph[int]
	for i := range scanners {
		g.AddNode(i)
	}
	for p := range direct {
		if p.Ref < p.Other {
			g.AddEdge(p.Ref, p.Other, 1)
		}
	}
	reach := g.ReachableNodes(0)
	for i := range scanners {
		if !reach.Contains(i) {
			return nil, fmt.Errorf("scanner %d: %w", i, ErrUnreachable)
		}
	}

	toRef := make(map[int]Transform, len(scanners))
	toRef[0] = NoTransform
	q := NewQueue(0)
	q.While(func(cur int) bool {
		for _, n := range g.Neighbors(cur, cmp.Compare[int]) {
			if _, ok := toRef[n]; ok {
				continue
			}
			toRef[n] = toRef[cur].Compose(direct[Pair{cur, n}])
			q.Push(n)
		}
		return true
	})

	r := &Registration{Scanners: scanners, ToRef: make([]Transform, len(scanners))}
	for i := range scanners {
		r.ToRef[i] = toRef[i]
	}
	return r, nil
}

// Beacons returns the distinct points seen by all scanners, in scanner
// 0's frame, sorted by X, Y, Z.
func (r *Registration) Beacons() []Vec3 {
	all := make(set.Set[Vec3])
	for i, s := range r.Scanners {
		for _, v := range s {
			all.Add(r.ToRef[i].Apply(v))
		}
	}
	out := make([]Vec3, 0, len(all))
	for v := range all {
		out = append(out, v)
	}
	slices.SortFunc(out, Vec3.Compare)
	return out
}

// Origins returns the position of every scanner in scanner 0's frame.
func (r *Registration) Origins() []Vec3 {
	out := make([]Vec3, len(r.ToRef))
	for i, t := range r.ToRef {
		out[i] = t.Shift
	}
	return out
}

// MaxOriginDistance returns the largest manhattan distance between any
// two scanners.
func (r *Registration) MaxOriginDistance() int {
	origins := r.Origins()
	best := 0
	for i, a := range origins {
		for _, b := range origins[i+1:] {
			best = max(best, a.MDist(b))
		}
	}
	return best
}
