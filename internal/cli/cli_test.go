package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/config"
)

// runCLI executes the root command with fresh flag state.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, c := range []*cobra.Command{rootCmd, scrambleCmd, applyCmd, movesCmd, playCmd} {
		for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestApplyInverseIsSolved(t *testing.T) {
	out, err := runCLI(t, "apply", "--ascii", "R", "R'")
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if !strings.Contains(out, "Solved: true") {
		t.Errorf("expected solved cube\n%s", out)
	}
	if !strings.Contains(out, "      W W W ") {
		t.Errorf("expected ascii net\n%s", out)
	}
}

func TestApplySexyMove(t *testing.T) {
	out, err := runCLI(t, "apply", "--ascii", "R U R' U'")
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if !strings.Contains(out, "Solved: false") {
		t.Errorf("expected unsolved cube\n%s", out)
	}
	if !strings.Contains(out, "Inverse:  U R U' R'") {
		t.Errorf("expected inverse line\n%s", out)
	}
}

func TestApplyInvalidNotation(t *testing.T) {
	_, err := runCLI(t, "apply", "R", "X")
	if !errors.Is(err, rubik.ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
}

func TestScrambleSeeded(t *testing.T) {
	first, err := runCLI(t, "scramble", "--ascii", "--seed", "9", "-n", "12")
	if err != nil {
		t.Fatalf("scramble error: %v", err)
	}
	second, err := runCLI(t, "scramble", "--ascii", "--seed", "9", "-n", "12")
	if err != nil {
		t.Fatalf("scramble error: %v", err)
	}
	if first != second {
		t.Errorf("same seed gave different output\n%s\n%s", first, second)
	}

	line := strings.SplitN(first, "\n", 2)[0]
	moves, err := rubik.ParseMoves(strings.TrimPrefix(line, "Scramble: "))
	if err != nil || len(moves) != 12 {
		t.Errorf("scramble line %q: %d moves, %v", line, len(moves), err)
	}
}

func TestScrambleNegativeLength(t *testing.T) {
	if _, err := runCLI(t, "scramble", "--length=-1"); err == nil {
		t.Error("negative length should fail")
	}
}

func TestMovesTable(t *testing.T) {
	out, err := runCLI(t, "moves")
	if err != nil {
		t.Fatalf("moves error: %v", err)
	}
	for _, want := range []string{"U'", "L'", "+X"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q\n%s", want, out)
		}
	}
}

func press(m *playModel, key string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return cmd
}

func TestPlayModel(t *testing.T) {
	cfg := config.Default()
	cfg.ASCII = true
	cube := rubik.New(rubik.WithSeed(2))
	m := newPlayModel(cube, cfg)
	defer m.tracker.Close()

	press(m, "r")
	if got := rubik.FormatMoves(cube.Moves()); got != "R" {
		t.Fatalf("history after r = %q", got)
	}

	press(m, "R")
	if !cube.IsSolved() {
		t.Fatal("r then R should solve the cube")
	}
	if !strings.Contains(m.View(), "SOLVED in 2 moves!") {
		t.Errorf("view should announce the solve\n%s", m.View())
	}

	press(m, "z")
	if got := rubik.FormatMoves(cube.Moves()); got != "R" {
		t.Errorf("history after undo = %q", got)
	}
	if !strings.Contains(m.View(), "Undid R'") {
		t.Errorf("view should show the undo\n%s", m.View())
	}

	press(m, "s")
	if n := len(cube.Moves()); n != cfg.Scramble.Length {
		t.Errorf("history after scramble has %d moves", n)
	}

	press(m, "0")
	if !cube.IsSolved() || len(cube.Moves()) != 0 {
		t.Error("reset key should restore a solved cube")
	}

	press(m, "x")
	if len(cube.Moves()) != 0 {
		t.Error("unbound key should do nothing")
	}

	if cmd := press(m, "q"); cmd == nil {
		t.Error("quit key should return a command")
	}
	if !m.quitting {
		t.Error("quit key should end the session")
	}
}

func TestPlayModelIgnoresOtherMessages(t *testing.T) {
	m := newPlayModel(rubik.New(), config.Default())
	defer m.tracker.Close()
	if _, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24}); cmd != nil {
		t.Error("window size should not produce a command")
	}
}
