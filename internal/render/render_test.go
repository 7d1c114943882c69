package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	rubik "github.com/SeamusWaldron/rubik_engine"
)

func TestNetASCIIMatchesNetString(t *testing.T) {
	c := rubik.New(rubik.WithSeed(4))
	c.Scramble(20)
	n := c.Net()

	if got, want := Net(n, true), n.String(); got != want {
		t.Errorf("ascii render differs from Net.String\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestNetColorShape(t *testing.T) {
	out := Net(rubik.New().Net(), false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != 12 {
		t.Errorf("top row width = %d, want 12", w)
	}
	if w := lipgloss.Width(lines[4]); w != 24 {
		t.Errorf("band row width = %d, want 24", w)
	}
}

func TestMoveTable(t *testing.T) {
	out := MoveTable()
	for _, want := range []string{"Move", "Inverse", "U'", "+Y", "-Z", "-90", "left"} {
		if !strings.Contains(out, want) {
			t.Errorf("move table missing %q\n%s", want, out)
		}
	}
}
