// Package cli implements the command-line interface for rubik.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	seed       uint64
	ascii      bool
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubik",
	Short: "Rubik's cube state engine",
	Long: `rubik - A 3x3x3 Rubik's cube state engine for the terminal.

Scramble a cube, apply moves in Singmaster notation, inspect the
move table, or play interactively with undo.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Scramble seed (default: from config, else random)")
	rootCmd.PersistentFlags().BoolVar(&ascii, "ascii", false, "Print facelets as letters instead of colors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Scramble.Seed = seed
	}
	if ascii {
		cfg.ASCII = true
	}
	return cfg, nil
}

// newLogger returns a text logger on stderr; --verbose enables debug output.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newCube creates a cube configured from cfg.
func newCube(cfg *config.Config) *rubik.Cube {
	opts := []rubik.Option{rubik.WithLogger(newLogger())}
	if cfg.Scramble.Seed != 0 {
		opts = append(opts, rubik.WithSeed(cfg.Scramble.Seed))
	}
	return rubik.New(opts...)
}
