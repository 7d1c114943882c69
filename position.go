package rubik

import "fmt"

// Position is a cubie slot in the 3x3x3 grid.
// X grows to the right, Y grows up, Z grows toward the front.
// Each coordinate is 0, 1 or 2; (1,1,1) is the hidden core and never used.
type Position struct {
	X, Y, Z int
}

// Category classifies a slot by how many of its coordinates are centered.
type Category int

const (
	Corner Category = iota // no coordinate equals 1
	Edge                   // exactly one coordinate equals 1
	Center                 // exactly two coordinates equal 1
)

func (c Category) String() string {
	switch c {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	case Center:
		return "center"
	default:
		return "unknown"
	}
}

// OnFace reports whether the slot belongs to the layer under face f.
func (p Position) OnFace(f Face) bool {
	switch f {
	case Top:
		return p.Y == 2
	case Bottom:
		return p.Y == 0
	case Front:
		return p.Z == 2
	case Back:
		return p.Z == 0
	case Right:
		return p.X == 2
	case Left:
		return p.X == 0
	default:
		invariant("unknown face %d", int(f))
		return false
	}
}

// Category returns corner, edge or center.
func (p Position) Category() Category {
	centered := 0
	for _, v := range [3]int{p.X, p.Y, p.Z} {
		if v == 1 {
			centered++
		}
	}
	switch centered {
	case 0:
		return Corner
	case 1:
		return Edge
	case 2:
		return Center
	default:
		invariant("core position %v has no category", p)
		return Center
	}
}

// Valid reports whether every coordinate is in range and p is not the core.
func (p Position) Valid() bool {
	inRange := func(v int) bool { return v >= 0 && v <= 2 }
	if !inRange(p.X) || !inRange(p.Y) || !inRange(p.Z) {
		return false
	}
	return p != Position{1, 1, 1}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// mustValid panics if p has left the grid.
func (p Position) mustValid() Position {
	if !p.Valid() {
		invariant("position %v out of range", p)
	}
	return p
}
