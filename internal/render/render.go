// Package render draws cube state for the terminal with lipgloss.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	rubik "github.com/SeamusWaldron/rubik_engine"
)

var faceletColors = map[rubik.Color]lipgloss.Color{
	rubik.White:  lipgloss.Color("#FFFFFF"),
	rubik.Yellow: lipgloss.Color("#FFD500"),
	rubik.Green:  lipgloss.Color("#009B48"),
	rubik.Blue:   lipgloss.Color("#0046AD"),
	rubik.Red:    lipgloss.Color("#B71234"),
	rubik.Orange: lipgloss.Color("#FF5800"),
	rubik.Hidden: lipgloss.Color("#222222"),
}

// facelet renders one sticker two cells wide.
func facelet(c rubik.Color, ascii bool) string {
	if ascii {
		return c.String() + " "
	}
	return lipgloss.NewStyle().Background(faceletColors[c]).Render("  ")
}

// faceRows renders the three rows of one face.
func faceRows(n rubik.Net, f rubik.Face, ascii bool) [3]string {
	var rows [3]string
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			b.WriteString(facelet(n[f][row*3+col], ascii))
		}
		rows[row] = b.String()
	}
	return rows
}

// Net draws the cross-shaped net: top above, left/front/right/back in a
// band, bottom below. In ASCII mode the output matches rubik.Net.String.
func Net(n rubik.Net, ascii bool) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 6)

	for _, row := range faceRows(n, rubik.Top, ascii) {
		b.WriteString(pad + row + "\n")
	}

	band := [4][3]string{
		faceRows(n, rubik.Left, ascii),
		faceRows(n, rubik.Front, ascii),
		faceRows(n, rubik.Right, ascii),
		faceRows(n, rubik.Back, ascii),
	}
	for row := 0; row < 3; row++ {
		for _, face := range band {
			b.WriteString(face[row])
		}
		b.WriteString("\n")
	}

	for _, row := range faceRows(n, rubik.Bottom, ascii) {
		b.WriteString(pad + row + "\n")
	}

	return b.String()
}

// MoveTable lists the 12 moves with their axis, angle, face and inverse.
func MoveTable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Move", "Axis", "Angle", "Face", "Inverse")

	for _, m := range rubik.AllMoves {
		t.Row(m.Notation(), axisName(m.Axis()), fmt.Sprintf("%+d", m.Angle()), faceName(m.Face()), m.Inverse().Notation())
	}
	return t.String()
}

func axisName(v rubik.Vector) string {
	switch v {
	case rubik.Vector{X: 1}:
		return "+X"
	case rubik.Vector{X: -1}:
		return "-X"
	case rubik.Vector{Y: 1}:
		return "+Y"
	case rubik.Vector{Y: -1}:
		return "-Y"
	case rubik.Vector{Z: 1}:
		return "+Z"
	case rubik.Vector{Z: -1}:
		return "-Z"
	default:
		return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
	}
}

func faceName(f rubik.Face) string {
	switch f {
	case rubik.Top:
		return "top"
	case rubik.Bottom:
		return "bottom"
	case rubik.Front:
		return "front"
	case rubik.Back:
		return "back"
	case rubik.Right:
		return "right"
	case rubik.Left:
		return "left"
	default:
		return "?"
	}
}
