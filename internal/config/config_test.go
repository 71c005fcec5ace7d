package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded YAML %+v differs from DefaultSnakeConfig %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if cfg.Arena.Width != 12 || cfg.Arena.Height != 12 {
		t.Errorf("arena = %dx%d, expected 12x12", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Food.MaxCount != 5 {
		t.Errorf("max food = %d, expected 5", cfg.Food.MaxCount)
	}
	if cfg.Timing.TicksPerSecond != 6 {
		t.Errorf("ticks per second = %d, expected 6", cfg.Timing.TicksPerSecond)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("food:\n  max_count: 3\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Food.MaxCount != 3 {
		t.Errorf("max_count = %d, expected 3", cfg.Food.MaxCount)
	}
	if cfg.Arena.Width != 12 {
		t.Errorf("unset keys should keep defaults, width = %d", cfg.Arena.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr string
	}{
		{"defaults", func(*SnakeConfig) {}, ""},
		{"tiny arena", func(c *SnakeConfig) { c.Arena.Width = 3 }, "arena"},
		{"no food", func(c *SnakeConfig) { c.Food.MaxCount = 0 }, "max_count"},
		{"no attempts", func(c *SnakeConfig) { c.Food.SpawnAttempts = 0 }, "spawn_attempts"},
		{"zero rate", func(c *SnakeConfig) { c.Timing.TicksPerSecond = 0 }, "ticks_per_second"},
		{"bad collision", func(c *SnakeConfig) { c.Rules.Collision = "maybe" }, "collision"},
		{"bad reversal", func(c *SnakeConfig) { c.Rules.Reversal = "never" }, "reversal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  ticks_per_second: 12\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Timing.TicksPerSecond != 12 {
		t.Errorf("ticks_per_second = %d, expected 12", cfg.Timing.TicksPerSecond)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadSnake() with missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  collision: sideways\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadSnake(path); err == nil {
		t.Error("LoadSnake() with invalid rule should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "ticks_per_second: 6") {
		t.Errorf("marshaled YAML missing timing: %s", data)
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 4},
		{DifficultyNormal, 6},
		{DifficultyHard, 10},
		{"", 6},
	}

	for _, tc := range tests {
		cfg := DefaultSnakeConfig()
		if err := ApplySnakePreset(&cfg, tc.preset); err != nil {
			t.Fatalf("ApplySnakePreset(%q) failed: %v", tc.preset, err)
		}
		if cfg.Timing.TicksPerSecond != tc.expected {
			t.Errorf("preset %q: ticks = %d, expected %d", tc.preset, cfg.Timing.TicksPerSecond, tc.expected)
		}
	}

	cfg := DefaultSnakeConfig()
	if err := ApplySnakePreset(&cfg, "insane"); err == nil {
		t.Error("unknown preset should return an error")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("arena:\n  widht: 20\n")); err == nil {
		t.Error("Parse() should reject a misspelled key")
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Parse(nil) = %+v, expected defaults", cfg)
	}
}

func TestLoadReportsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  width: 20\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path || cfg.Arena.Width != 20 {
		t.Errorf("Load() = %+v from %q, expected width 20 from %q", cfg.Arena, source, path)
	}
}

func TestSearchPathsEndWithLocalDir(t *testing.T) {
	paths := SearchPaths()
	if len(paths) == 0 || paths[len(paths)-1] != filepath.Join("configs", "snake.yaml") {
		t.Errorf("SearchPaths() = %v, expected ./configs/snake.yaml last", paths)
	}
}
