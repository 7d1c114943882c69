// Package config loads settings for the rubik command-line tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	rubik "github.com/SeamusWaldron/rubik_engine"
)

// Config holds the CLI settings. Zero values in a file keep the defaults.
type Config struct {
	Scramble ScrambleConfig `yaml:"scramble"`

	// Keys maps a key press to the move it performs in play mode.
	Keys map[string]string `yaml:"keys,omitempty"`

	UndoKey     string `yaml:"undo_key,omitempty"`
	ResetKey    string `yaml:"reset_key,omitempty"`
	ScrambleKey string `yaml:"scramble_key,omitempty"`
	QuitKey     string `yaml:"quit_key,omitempty"`

	// ASCII renders facelets as letters instead of colored blocks.
	ASCII bool `yaml:"ascii,omitempty"`
}

// ScrambleConfig controls scramble generation.
type ScrambleConfig struct {
	Length int    `yaml:"length"`
	Seed   uint64 `yaml:"seed,omitempty"` // 0 picks a random seed
}

// DefaultKeys maps lower-case face letters to clockwise turns and
// upper-case letters to counter-clockwise turns.
func DefaultKeys() map[string]string {
	return map[string]string{
		"u": "U", "U": "U'",
		"d": "D", "D": "D'",
		"f": "F", "F": "F'",
		"b": "B", "B": "B'",
		"r": "R", "R": "R'",
		"l": "L", "L": "L'",
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scramble: ScrambleConfig{
			Length: 25,
		},
		Keys:        DefaultKeys(),
		UndoKey:     "z",
		ResetKey:    "0",
		ScrambleKey: "s",
		QuitKey:     "q",
	}
}

// LoadFile loads configuration from path over the defaults.
// An empty path returns the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// A keys section replaces the default keymap rather than merging into it
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.merge(&file)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// merge copies the non-zero fields of other into c.
func (c *Config) merge(other *Config) {
	if other.Scramble.Length != 0 {
		c.Scramble.Length = other.Scramble.Length
	}
	if other.Scramble.Seed != 0 {
		c.Scramble.Seed = other.Scramble.Seed
	}
	if len(other.Keys) > 0 {
		c.Keys = other.Keys
	}
	if other.UndoKey != "" {
		c.UndoKey = other.UndoKey
	}
	if other.ResetKey != "" {
		c.ResetKey = other.ResetKey
	}
	if other.ScrambleKey != "" {
		c.ScrambleKey = other.ScrambleKey
	}
	if other.QuitKey != "" {
		c.QuitKey = other.QuitKey
	}
	if other.ASCII {
		c.ASCII = true
	}
}

// Validate checks scramble length and that every key is bound once.
func (c *Config) Validate() error {
	if c.Scramble.Length < 0 {
		return fmt.Errorf("scramble length %d is negative", c.Scramble.Length)
	}

	bound := map[string]string{}
	bind := func(key, action string) error {
		if key == "" {
			return fmt.Errorf("%s has no key", action)
		}
		if prev, ok := bound[key]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", key, prev, action)
		}
		bound[key] = action
		return nil
	}

	for key, notation := range c.Keys {
		if _, err := rubik.ParseMove(notation); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		if err := bind(key, "move "+notation); err != nil {
			return err
		}
	}
	for _, k := range []struct{ key, action string }{
		{c.UndoKey, "undo"},
		{c.ResetKey, "reset"},
		{c.ScrambleKey, "scramble"},
		{c.QuitKey, "quit"},
	} {
		if err := bind(k.key, k.action); err != nil {
			return err
		}
	}
	return nil
}

// Keymap resolves Keys into moves. Call Validate first.
func (c *Config) Keymap() map[string]rubik.MoveType {
	km := make(map[string]rubik.MoveType, len(c.Keys))
	for key, notation := range c.Keys {
		m, err := rubik.ParseMove(notation)
		if err != nil {
			continue
		}
		km[key] = m
	}
	return km
}
