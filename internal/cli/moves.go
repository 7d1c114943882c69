package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik_engine/internal/render"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List the 12 quarter-turn moves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), render.MoveTable())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(movesCmd)
}
