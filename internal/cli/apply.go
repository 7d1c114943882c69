package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/render"
)

var applyScramble bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves to a cube and print the result",
	Long: `Apply a move sequence in Singmaster notation and print the cube.

Examples:
  rubik apply "R U R' U'"
  rubik apply R U2 F'
  rubik apply --scramble --seed 7 "R U"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyScramble, "scramble", false, "Scramble before applying the moves")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	moves, err := rubik.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	cube := newCube(cfg)
	out := cmd.OutOrStdout()
	if applyScramble {
		seq := cube.Scramble(cfg.Scramble.Length)
		fmt.Fprintf(out, "Scramble: %s\n", rubik.FormatMoves(seq))
	}

	cube.Apply(moves...)

	fmt.Fprintf(out, "Moves:    %s\n", rubik.FormatMoves(moves))
	fmt.Fprintf(out, "Inverse:  %s\n\n", rubik.FormatMoves(rubik.InvertMoves(moves)))
	fmt.Fprint(out, render.Net(cube.Net(), cfg.ASCII))
	fmt.Fprintf(out, "\nSolved: %v\n", cube.IsSolved())
	return nil
}
