package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() error = %v", err)
	}

	def := DefaultCrossingConfig()
	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if cfg.Player != def.Player {
		t.Errorf("Player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Enemies.MinSpeed != def.Enemies.MinSpeed || cfg.Enemies.MaxSpeed != def.Enemies.MaxSpeed {
		t.Errorf("speed range = [%d,%d], expected [%d,%d]",
			cfg.Enemies.MinSpeed, cfg.Enemies.MaxSpeed, def.Enemies.MinSpeed, def.Enemies.MaxSpeed)
	}
	if cfg.Game.Duration != 120 {
		t.Errorf("Duration = %d, expected 120", cfg.Game.Duration)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossing.yaml")
	data := []byte("player:\n  lives: 7\ngame:\n  duration: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing(path)
	if err != nil {
		t.Fatalf("LoadCrossing() error = %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Game.Duration != 60 {
		t.Errorf("Duration = %d, expected 60", cfg.Game.Duration)
	}
	if cfg.Board.Columns != 5 {
		t.Errorf("Columns = %d, expected default 5", cfg.Board.Columns)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCrossing(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadCrossing() should fail for a missing custom path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossing(bad); err == nil {
		t.Error("LoadCrossing() should fail for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("enemies:\n  min_speed: 500\n  max_speed: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCrossing(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadCrossing() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrossingConfig)
		valid  bool
	}{
		{"defaults", func(*CrossingConfig) {}, true},
		{"zero enemies", func(c *CrossingConfig) { c.Enemies.Count = 0 }, false},
		{"inverted delay", func(c *CrossingConfig) { c.Charms.MinDelay, c.Charms.MaxDelay = 5, 2 }, false},
		{"short kill table", func(c *CrossingConfig) { c.Enemies.KillPoints = []int{1, 2} }, false},
		{"unsorted bands", func(c *CrossingConfig) { c.Enemies.SpeedBands = []int{120, 100, 210, 255} }, false},
		{"wide tolerance", func(c *CrossingConfig) { c.Charms.CenterTolerance = 0.6 }, false},
		{"no lives", func(c *CrossingConfig) { c.Player.Lives = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyCrossingPreset(t *testing.T) {
	tests := []struct {
		preset   string
		min, max int
	}{
		{"easy", 60, 200},
		{"normal", 75, 300},
		{"hard", 120, 400},
		{"bogus", 75, 300},
	}

	for _, tc := range tests {
		cfg := DefaultCrossingConfig()
		ApplyCrossingPreset(&cfg, ParsePreset(tc.preset))
		if cfg.Enemies.MinSpeed != tc.min || cfg.Enemies.MaxSpeed != tc.max {
			t.Errorf("preset %q speed = [%d,%d], expected [%d,%d]",
				tc.preset, cfg.Enemies.MinSpeed, cfg.Enemies.MaxSpeed, tc.min, tc.max)
		}
		if cfg.Player.Lives != 4 {
			t.Errorf("preset %q changed lives to %d", tc.preset, cfg.Player.Lives)
		}
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("crossing")) == 0 {
		t.Error("GetDefaultYAML(crossing) should not be empty")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML(unknown) should be nil")
	}
}
