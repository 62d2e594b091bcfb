package y2021

import (
	"errors"
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2021"
	"tailscale.com/types/logger"
)

const (
	hallLen  = 11
	numRooms = 4
	maxDepth = 4
)

// roomDoor is the hallway cell in front of each room.
var roomDoor = [numRooms]int{2, 4, 6, 8}

// hallStops are the hallway cells an amphipod may stop on.
var hallStops = []int{0, 1, 3, 5, 7, 9, 10}

// energy is the cost of one step for A, B, C and D.
var energy = [numRooms]int{1, 10, 100, 1000}

// Burrow is a hallway above four side rooms. Empty cells are 0, occupied
// ones hold 'A' through 'D'. Room slot 0 is the one next to the hallway.
type Burrow struct {
	hall  [hallLen]byte
	rooms [numRooms][maxDepth]byte
	depth int
}

var errBadBurrow = errors.New("bad burrow")

func amphipod(c byte) (byte, error) {
	switch c {
	case '.':
		return 0, nil
	case 'A', 'B', 'C', 'D':
		return c, nil
	}
	return 0, fmt.Errorf("%w: unexpected %q", errBadBurrow, c)
}

// ParseBurrow parses a diagram like
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
func ParseBurrow(s string) (Burrow, error) {
	var b Burrow
	lines := aoc.Lines(strings.Trim(s, "\n"))
	if len(lines) < 4 || len(lines[1]) < hallLen+2 {
		return b, fmt.Errorf("%w: too short", errBadBurrow)
	}
	for i := 0; i < hallLen; i++ {
		a, err := amphipod(lines[1][i+1])
		if err != nil {
			return b, err
		}
		b.hall[i] = a
	}
	for _, l := range lines[2:] {
		if strings.Trim(l, " #") == "" {
			break
		}
		if b.depth == maxDepth {
			return b, fmt.Errorf("%w: rooms deeper than %d", errBadBurrow, maxDepth)
		}
		if len(l) < 2*numRooms+2 {
			return b, fmt.Errorf("%w: short room line %q", errBadBurrow, l)
		}
		for r := 0; r < numRooms; r++ {
			a, err := amphipod(l[roomDoor[r]+1])
			if err != nil {
				return b, err
			}
			b.rooms[r][b.depth] = a
		}
		b.depth++
	}
	if b.depth == 0 {
		return b, fmt.Errorf("%w: no rooms", errBadBurrow)
	}
	return b, nil
}

// Unfold inserts the two rows hidden in the folded diagram.
func Unfold(s string) string {
	lines := aoc.Lines(strings.Trim(s, "\n"))
	out := append([]string(nil), lines[:3]...)
	out = append(out, "  #D#C#B#A#", "  #D#B#A#C#")
	out = append(out, lines[3:]...)
	return strings.Join(out, "\n") + "\n"
}

func (b Burrow) String() string {
	cell := func(a byte) byte {
		if a == 0 {
			return '.'
		}
		return a
	}
	var sb strings.Builder
	sb.WriteString("#############\n#")
	for _, a := range b.hall {
		sb.WriteByte(cell(a))
	}
	sb.WriteString("#\n")
	for i := 0; i < b.depth; i++ {
		if i == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for r := 0; r < numRooms; r++ {
			sb.WriteByte(cell(b.rooms[r][i]))
			sb.WriteByte('#')
		}
		if i == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########\n")
	return sb.String()
}

// Sorted reports whether every room holds only its own kind and is full.
func (b Burrow) Sorted() bool {
	for r := 0; r < numRooms; r++ {
		for i := 0; i < b.depth; i++ {
			if b.rooms[r][i] != byte('A'+r) {
				return false
			}
		}
	}
	return true
}

// settled reports whether room r holds nothing but its own kind.
func (b Burrow) settled(r int) bool {
	for i := 0; i < b.depth; i++ {
		if a := b.rooms[r][i]; a != 0 && a != byte('A'+r) {
			return false
		}
	}
	return true
}

// top returns the slot of the amphipod nearest the hallway in room r.
func (b Burrow) top(r int) (int, bool) {
	for i := 0; i < b.depth; i++ {
		if b.rooms[r][i] != 0 {
			return i, true
		}
	}
	return 0, false
}

// hallClear reports whether every hallway cell after from, up to and
// including to, is empty.
func (b Burrow) hallClear(from, to int) bool {
	if from == to {
		return true
	}
	step := 1
	if to < from {
		step = -1
	}
	for i := from + step; ; i += step {
		if b.hall[i] != 0 {
			return false
		}
		if i == to {
			return true
		}
	}
}

// Steps returns the legal moves out of b. An amphipod leaves its room only
// if the room holds a stranger, and it stops in the hallway. From the
// hallway it only enters its own room, once no strangers are left in it,
// and goes as deep as it can.
func (b Burrow) Steps() []aoc.Step[Burrow] {
	var out []aoc.Step[Burrow]
	for h, a := range b.hall {
		if a == 0 {
			continue
		}
		r := int(a - 'A')
		if !b.settled(r) {
			continue
		}
		slot, ok := b.top(r)
		if !ok {
			slot = b.depth
		}
		slot--
		door := roomDoor[r]
		if slot < 0 || !b.hallClear(h, door) {
			continue
		}
		n := b
		n.hall[h] = 0
		n.rooms[r][slot] = a
		out = append(out, aoc.Step[Burrow]{
			Next: n,
			Cost: (aoc.AbsDiff(h, door) + slot + 1) * energy[r],
		})
	}
	for r := 0; r < numRooms; r++ {
		if b.settled(r) {
			continue
		}
		slot, _ := b.top(r)
		a := b.rooms[r][slot]
		door := roomDoor[r]
		for _, h := range hallStops {
			if !b.hallClear(door, h) {
				continue
			}
			n := b
			n.rooms[r][slot] = 0
			n.hall[h] = a
			out = append(out, aoc.Step[Burrow]{
				Next: n,
				Cost: (aoc.AbsDiff(h, door) + slot + 1) * energy[a-'A'],
			})
		}
	}
	return out
}

// Organize returns the least energy needed to sort the burrow. It reports
// false if the burrow cannot be sorted.
func Organize(b Burrow, logf logger.Logf) (int, bool) {
	p, ok := aoc.Search[Burrow]{
		Next: Burrow.Steps,
		Done: Burrow.Sorted,
		Logf: logf,
	}.Run(b)
	return p.Cost, ok
}

// Day23Part1 sorts the folded diagram.
func Day23Part1(s string, logf logger.Logf) int {
	n, ok := Organize(aoc.MustGet(ParseBurrow(s)), logf)
	if !ok {
		panic("burrow cannot be sorted")
	}
	return n
}

// Day23Part2 sorts the unfolded diagram.
func Day23Part2(s string, logf logger.Logf) int {
	return Day23Part1(Unfold(s), logf)
}
