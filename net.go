package rubik

import "strings"

// Net is the facelet view of a cube, one 3x3 grid per face.
// Each face is indexed row-major as seen from outside:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Side faces have the top layer in row 0. The top face has the back in
// row 0 and the bottom face has the front in row 0, so the six grids fold
// into the usual cross-shaped net.
type Net [6][9]Color

// faceletIndex returns where the facelet of a cubie at p shows on face f.
func faceletIndex(f Face, p Position) int {
	var row, col int
	switch f {
	case Top:
		row, col = p.Z, p.X
	case Bottom:
		row, col = 2-p.Z, p.X
	case Front:
		row, col = 2-p.Y, p.X
	case Back:
		row, col = 2-p.Y, 2-p.X
	case Right:
		row, col = 2-p.Y, 2-p.Z
	case Left:
		row, col = 2-p.Y, p.Z
	default:
		invariant("unknown face %d", int(f))
	}
	return row*3 + col
}

// Net returns the facelet colors currently visible on each face.
func (c *Cube) Net() Net {
	var n Net
	for _, face := range Faces {
		for _, i := range c.layer(face) {
			cb := c.cubies[i]
			n[face][faceletIndex(face, cb.Position)] = cb.Colors[face]
		}
	}
	return n
}

// String returns a text representation of the net.
func (n Net) String() string {
	var b strings.Builder

	// Top face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(n[Top][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// Left, front, right, back faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{Left, Front, Right, Back} {
			for col := 0; col < 3; col++ {
				b.WriteString(n[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// Bottom face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(n[Bottom][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
