package rubik

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// MoveType is one of the 12 quarter-turn moves in Singmaster notation.
type MoveType int

const (
	U      MoveType = iota // Up clockwise
	UPrime                 // Up counter-clockwise
	D                      // Down clockwise
	DPrime                 // Down counter-clockwise
	F                      // Front clockwise
	FPrime                 // Front counter-clockwise
	B                      // Back clockwise
	BPrime                 // Back counter-clockwise
	R                      // Right clockwise
	RPrime                 // Right counter-clockwise
	L                      // Left clockwise
	LPrime                 // Left counter-clockwise

	numMoves = 12
)

// AllMoves lists the 12 moves in declaration order.
var AllMoves = [numMoves]MoveType{U, UPrime, D, DPrime, F, FPrime, B, BPrime, R, RPrime, L, LPrime}

// moveInfo is one row of the move table.
type moveInfo struct {
	notation string
	axis     Vector
	angle    int
	face     Face
	inverse  MoveType
}

var moveTable = [numMoves]moveInfo{
	U:      {"U", Vector{0, 1, 0}, 90, Top, UPrime},
	UPrime: {"U'", Vector{0, 1, 0}, -90, Top, U},
	D:      {"D", Vector{0, -1, 0}, 90, Bottom, DPrime},
	DPrime: {"D'", Vector{0, -1, 0}, -90, Bottom, D},
	F:      {"F", Vector{0, 0, 1}, 90, Front, FPrime},
	FPrime: {"F'", Vector{0, 0, 1}, -90, Front, F},
	B:      {"B", Vector{0, 0, -1}, 90, Back, BPrime},
	BPrime: {"B'", Vector{0, 0, -1}, -90, Back, B},
	R:      {"R", Vector{1, 0, 0}, 90, Right, RPrime},
	RPrime: {"R'", Vector{1, 0, 0}, -90, Right, R},
	L:      {"L", Vector{-1, 0, 0}, 90, Left, LPrime},
	LPrime: {"L'", Vector{-1, 0, 0}, -90, Left, L},
}

// Valid reports whether m is one of the 12 moves.
func (m MoveType) Valid() bool {
	return m >= U && m <= LPrime
}

func (m MoveType) info() moveInfo {
	if !m.Valid() {
		invariant("unknown move %d", int(m))
	}
	return moveTable[m]
}

// Axis returns the signed rotation axis of the move.
func (m MoveType) Axis() Vector { return m.info().axis }

// Angle returns the signed quarter-turn angle in degrees (+90 or -90).
func (m MoveType) Angle() int { return m.info().angle }

// Radians returns Angle in radians, for renderers that animate the turn.
func (m MoveType) Radians() float64 {
	return float64(m.info().angle) * math.Pi / 180
}

// Clockwise reports whether the angle is positive.
func (m MoveType) Clockwise() bool { return m.info().angle > 0 }

// Face returns the face whose layer the move rotates.
func (m MoveType) Face() Face { return m.info().face }

// Inverse returns the move that undoes m.
// U becomes U', U' becomes U.
func (m MoveType) Inverse() MoveType { return m.info().inverse }

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m MoveType) Notation() string {
	if !m.Valid() {
		return fmt.Sprintf("MoveType(%d)", int(m))
	}
	return moveTable[m].notation
}

// String returns the notation string (alias for Notation).
func (m MoveType) String() string {
	return m.Notation()
}

// MoveEvent is a move recorded in the cube history.
// Time is for display only.
type MoveEvent struct {
	Move MoveType
	Time time.Time
}

func (e MoveEvent) String() string {
	return e.Move.Notation()
}

// ParseMove parses a single quarter turn in standard notation.
// Examples: R, R', r, Rp
// Returns an error wrapping ErrInvalidNotation if the notation is invalid.
func ParseMove(s string) (MoveType, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	// Extract face
	var cw MoveType
	switch s[0] {
	case 'U', 'u':
		cw = U
	case 'D', 'd':
		cw = D
	case 'F', 'f':
		cw = F
	case 'B', 'b':
		cw = B
	case 'R', 'r':
		cw = R
	case 'L', 'l':
		cw = L
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	// Extract direction
	switch s[1:] {
	case "":
		return cw, nil
	case "'", "`", "p":
		return cw.Inverse(), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
}

// ParseMoves parses a space-separated sequence of moves.
// Half turns are expanded into two quarter turns, so "R2" yields R R.
// Example: "R U R' U'"
func ParseMoves(s string) ([]MoveType, error) {
	parts := strings.Fields(s)
	moves := make([]MoveType, 0, len(parts))

	for _, part := range parts {
		repeat := 1
		if strings.HasPrefix(part[1:], "2") {
			// R2, R2' and R2` are all the same half turn
			switch part[2:] {
			case "", "'", "`":
				repeat = 2
				part = part[:1]
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, part)
			}
		}

		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		for i := 0; i < repeat; i++ {
			moves = append(moves, move)
		}
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []MoveType) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: reversed, each inverted.
func InvertMoves(moves []MoveType) []MoveType {
	inv := make([]MoveType, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
