package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/config"
	"github.com/SeamusWaldron/rubik_engine/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn a cube interactively",
	Long: `Start an interactive cube in the terminal.

Default keys (change them in the config file):
  u d f b r l   - Clockwise turn of that face
  U D F B R L   - Counter-clockwise turn
  z             - Undo the last move
  s             - Scramble
  0             - Reset to solved
  q/Esc         - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// playModel turns key presses into cube operations. Bubble Tea calls
// Update from a single goroutine, so engine calls never overlap.
type playModel struct {
	cube    *rubik.Cube
	tracker *rubik.Tracker
	cfg     *config.Config
	keymap  map[string]rubik.MoveType

	// Set by the tracker when a move solves the cube
	solvedIn int
	message  string
	quitting bool
}

func newPlayModel(cube *rubik.Cube, cfg *config.Config) *playModel {
	m := &playModel{
		cube:    cube,
		tracker: rubik.NewTracker(cube),
		cfg:     cfg,
		keymap:  cfg.Keymap(),
	}
	m.tracker.OnSolved(func(moves int) {
		m.solvedIn = moves
	})
	return m
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	model := newPlayModel(newCube(cfg), cfg)
	defer model.tracker.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.message = ""
	m.solvedIn = 0

	switch k := key.String(); {
	case k == m.cfg.QuitKey || k == "esc" || k == "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case k == m.cfg.UndoKey:
		if move, ok := m.cube.Undo(); ok {
			m.message = "Undid " + move.Notation()
		} else {
			m.message = "Nothing to undo"
		}

	case k == m.cfg.ResetKey:
		m.cube.Reset()
		m.message = "Reset"

	case k == m.cfg.ScrambleKey:
		seq := m.cube.Scramble(m.cfg.Scramble.Length)
		m.message = "Scrambled: " + rubik.FormatMoves(seq)

	default:
		if move, ok := m.keymap[k]; ok {
			m.cube.PerformMove(move)
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Rubik's Cube"))
	b.WriteString(" ")
	b.WriteString(statusStyle.Render(m.cube.ID().String()[:8]))
	b.WriteString("\n\n")

	b.WriteString(render.Net(m.cube.Net(), m.cfg.ASCII))
	b.WriteString("\n")

	switch {
	case m.solvedIn > 0:
		b.WriteString(solvedStyle.Render(fmt.Sprintf("SOLVED in %d moves!", m.solvedIn)))
	case m.cube.IsSolved():
		b.WriteString(solvedStyle.Render("Solved"))
	default:
		b.WriteString(statusStyle.Render("Scrambled"))
	}
	b.WriteString("\n")

	// Recent moves
	moves := m.cube.Moves()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(moves)))
	if len(moves) > 0 {
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(rubik.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString(statusStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := fmt.Sprintf("udfbrl=turn  UDFBRL=reverse  %s=undo  %s=scramble  %s=reset  %s=quit",
		m.cfg.UndoKey, m.cfg.ScrambleKey, m.cfg.ResetKey, m.cfg.QuitKey)
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
