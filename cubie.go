package rubik

// NumCubies is the number of visible cubies: 27 grid cells minus the core.
const NumCubies = 26

// Cubie is one visible sub-cube.
// ID is a stable index 0..25 that never changes for the life of the cube;
// Position and Colors move together under turns.
type Cubie struct {
	ID       int
	Position Position
	// Colors[face] = color currently facing that direction
	Colors [6]Color
}

// newCubie creates a cubie in its solved slot. A facelet gets its face's
// color when the slot lies on that face, otherwise it is Hidden.
func newCubie(id int, pos Position) Cubie {
	c := Cubie{ID: id, Position: pos}
	for _, face := range Faces {
		if pos.OnFace(face) {
			c.Colors[face] = face.SolvedColor()
		} else {
			c.Colors[face] = Hidden
		}
	}
	return c
}

// Color returns the color facing direction f.
func (c Cubie) Color(f Face) Color {
	return c.Colors[f]
}

// Category returns whether the cubie currently sits in a corner, edge or center slot.
func (c Cubie) Category() Category {
	return c.Position.Category()
}

// VisibleFaces returns the faces of the puzzle the cubie currently shows on.
func (c Cubie) VisibleFaces() []Face {
	var faces []Face
	for _, f := range Faces {
		if c.Position.OnFace(f) {
			faces = append(faces, f)
		}
	}
	return faces
}

// cycle4 rotates colors through four faces: a <- b <- c <- d <- a.
func (c *Cubie) cycle4(a, b, cc, d Face) {
	t := c.Colors[a]
	c.Colors[a] = c.Colors[b]
	c.Colors[b] = c.Colors[cc]
	c.Colors[cc] = c.Colors[d]
	c.Colors[d] = t
}

// RotateY cycles the four side facelets about the vertical axis.
// Clockwise: front<-left, right<-front, back<-right, left<-back.
// Top and bottom are untouched.
func (c *Cubie) RotateY(clockwise bool) {
	if clockwise {
		c.cycle4(Front, Left, Back, Right)
	} else {
		c.cycle4(Front, Right, Back, Left)
	}
}

// RotateX cycles top, front, bottom and back about the left-right axis.
// Clockwise: top<-front, back<-top, bottom<-back, front<-bottom.
// Right and left are untouched.
func (c *Cubie) RotateX(clockwise bool) {
	if clockwise {
		c.cycle4(Top, Front, Bottom, Back)
	} else {
		c.cycle4(Top, Back, Bottom, Front)
	}
}

// RotateZ cycles top, right, bottom and left about the front-back axis.
// Clockwise: top<-left, right<-top, bottom<-right, left<-bottom.
// Front and back are untouched.
func (c *Cubie) RotateZ(clockwise bool) {
	if clockwise {
		c.cycle4(Top, Left, Bottom, Right)
	} else {
		c.cycle4(Top, Right, Bottom, Left)
	}
}
