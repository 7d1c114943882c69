package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	rubik "github.com/SeamusWaldron/rubik_engine"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rubik.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Scramble.Length != 25 {
		t.Errorf("default scramble length = %d", cfg.Scramble.Length)
	}

	km := cfg.Keymap()
	if len(km) != 12 {
		t.Errorf("default keymap has %d moves, want 12", len(km))
	}
	seen := map[rubik.MoveType]bool{}
	for _, m := range km {
		seen[m] = true
	}
	for _, m := range rubik.AllMoves {
		if !seen[m] {
			t.Errorf("default keymap has no key for %s", m)
		}
	}
}

func TestLoadFileEmptyPath(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.QuitKey != "q" {
		t.Errorf("QuitKey = %q", cfg.QuitKey)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
scramble:
  length: 40
  seed: 7
undo_key: backspace
ascii: true
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Scramble.Length != 40 || cfg.Scramble.Seed != 7 {
		t.Errorf("scramble = %+v", cfg.Scramble)
	}
	if cfg.UndoKey != "backspace" || !cfg.ASCII {
		t.Errorf("undo=%q ascii=%v", cfg.UndoKey, cfg.ASCII)
	}
	if cfg.QuitKey != "q" || len(cfg.Keys) != 12 {
		t.Error("unset fields should keep defaults")
	}
}

func TestLoadFileReplacesKeymap(t *testing.T) {
	path := writeConfig(t, `
keys:
  j: U
  k: "U'"
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	km := cfg.Keymap()
	if len(km) != 2 || km["j"] != rubik.U || km["k"] != rubik.UPrime {
		t.Errorf("keymap = %v", km)
	}
}

func TestLoadFileRejectsBadMove(t *testing.T) {
	path := writeConfig(t, `
keys:
  x: Q
`)
	_, err := LoadFile(path)
	if !errors.Is(err, rubik.ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
}

func TestLoadFileRejectsDuplicateKey(t *testing.T) {
	path := writeConfig(t, `
keys:
  q: R
`)
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), `"q"`) {
		t.Errorf("expected duplicate key error, got %v", err)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := LoadFile(writeConfig(t, "scramble: [")); err == nil {
		t.Error("malformed yaml should fail")
	}
	if _, err := LoadFile(writeConfig(t, "scramble:\n  length: -3\n")); err == nil {
		t.Error("negative scramble length should fail")
	}
}
