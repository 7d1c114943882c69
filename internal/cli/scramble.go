package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/render"
)

var scrambleLength int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble and print the resulting cube.

No move repeats or cancels the move right before it.
Use --seed for a reproducible scramble.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default: from config, 25)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	n := cfg.Scramble.Length
	if cmd.Flags().Changed("length") {
		n = scrambleLength
	}
	if n < 0 {
		return fmt.Errorf("scramble length %d is negative", n)
	}

	cube := newCube(cfg)
	seq := cube.Scramble(n)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n\n", rubik.FormatMoves(seq))
	fmt.Fprint(out, render.Net(cube.Net(), cfg.ASCII))
	fmt.Fprintf(out, "\nSolved: %v\n", cube.IsSolved())
	return nil
}
