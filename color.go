package rubik

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Top face when solved
	Yellow Color = 1 // Bottom face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
	Hidden Color = 6 // Interior facelet, never visible on a consistent cube
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Hidden:
		return "."
	default:
		return "?"
	}
}

// Name returns the full color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Face represents one of the six outer faces of the puzzle.
type Face int

const (
	Top    Face = 0 // U
	Bottom Face = 1 // D
	Front  Face = 2 // F
	Back   Face = 3 // B
	Right  Face = 4 // R
	Left   Face = 5 // L
)

// Faces lists the six faces in canonical order.
var Faces = [6]Face{Top, Bottom, Front, Back, Right, Left}

func (f Face) String() string {
	switch f {
	case Top:
		return "U"
	case Bottom:
		return "D"
	case Front:
		return "F"
	case Back:
		return "B"
	case Right:
		return "R"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Top && f <= Left
}

// SolvedColor returns the color of a face when solved:
// white on top, green in front.
func (f Face) SolvedColor() Color {
	switch f {
	case Top:
		return White
	case Bottom:
		return Yellow
	case Front:
		return Green
	case Back:
		return Blue
	case Right:
		return Red
	case Left:
		return Orange
	default:
		invariant("unknown face %d", int(f))
		return Hidden
	}
}

// Vector is an integer direction in puzzle space.
type Vector struct {
	X, Y, Z int
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() Vector {
	switch f {
	case Top:
		return Vector{0, 1, 0}
	case Bottom:
		return Vector{0, -1, 0}
	case Front:
		return Vector{0, 0, 1}
	case Back:
		return Vector{0, 0, -1}
	case Right:
		return Vector{1, 0, 0}
	case Left:
		return Vector{-1, 0, 0}
	default:
		invariant("unknown face %d", int(f))
		return Vector{}
	}
}
