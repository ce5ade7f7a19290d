package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate keeps Load away from the developer's real config files.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestDefaultsAreValid(t *testing.T) {
	for _, id := range []string{GameClassic, GameTimed} {
		if err := Default(id).Validate(); err != nil {
			t.Errorf("Default(%q) invalid: %v", id, err)
		}
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	isolate(t)

	for _, id := range []string{GameClassic, GameTimed} {
		cfg, err := Load(id, "")
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", id, err)
		}
		def := Default(id)
		if cfg.Arena != def.Arena || cfg.Paddle != def.Paddle || cfg.Spawn != def.Spawn || cfg.Gameplay != def.Gameplay {
			t.Errorf("embedded %s.yaml drifted from hard-coded default:\n got  %+v\n want %+v", id, cfg, def)
		}
		if len(cfg.Fruit.Kinds) != len(def.Fruit.Kinds) {
			t.Errorf("%s: fruit kinds = %v, want %v", id, cfg.Fruit.Kinds, def.Fruit.Kinds)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatcherConfig)
	}{
		{"negative speed range", func(c *CatcherConfig) { c.Fruit.MinSpeed = -1 }},
		{"inverted speed range", func(c *CatcherConfig) { c.Fruit.MinSpeed, c.Fruit.MaxSpeed = 300, 100 }},
		{"fruit wider than arena", func(c *CatcherConfig) { c.Fruit.Size = 900 }},
		{"zero spawn interval", func(c *CatcherConfig) { c.Spawn.Interval = 0 }},
		{"min interval above interval", func(c *CatcherConfig) { c.Spawn.MinInterval = 5 }},
		{"unknown fruit", func(c *CatcherConfig) { c.Fruit.Kinds = []string{"durian"} }},
		{"no fruit", func(c *CatcherConfig) { c.Fruit.Kinds = nil }},
		{"zero lives", func(c *CatcherConfig) { c.Gameplay.Lives = 0 }},
		{"unknown mode", func(c *CatcherConfig) { c.Gameplay.Mode = "zen" }},
		{"zero max step", func(c *CatcherConfig) { c.Gameplay.MaxStep = 0 }},
		{"paddle wider than arena", func(c *CatcherConfig) { c.Paddle.Width = 1000 }},
		{"paddle below floor", func(c *CatcherConfig) { c.Paddle.FloorGap = 590 }},
		{"interval reduction of one", func(c *CatcherConfig) { c.Difficulty.Scaling.IntervalReduction = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultClassicConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateTimedNeedsDuration(t *testing.T) {
	cfg := DefaultTimedConfig()
	cfg.Gameplay.Duration = 0
	if err := cfg.Validate(); err == nil {
		t.Error("timed config without duration should be rejected")
	}

	// Lives are irrelevant in timed mode
	cfg = DefaultTimedConfig()
	cfg.Gameplay.Lives = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("timed config should not require lives: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nfruit:\n  size: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(GameClassic, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Fruit.Size != 30 {
		t.Errorf("Fruit.Size = %v, expected 30", cfg.Fruit.Size)
	}
	// Untouched fields keep their defaults
	if cfg.Arena.Width != 800 {
		t.Errorf("Arena.Width = %v, expected default 800", cfg.Arena.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(GameClassic, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("fruit:\n  min_speed: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(GameClassic, bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "catcher_timed.yaml"), []byte("gameplay:\n  duration: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(GameTimed, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Duration != 30 {
		t.Errorf("Duration = %v, expected 30 from ./configs", cfg.Gameplay.Duration)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultClassicConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("hard lives = %d, expected 2", cfg.Gameplay.Lives)
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultClassicConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultTimedConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if err := cfg.Validate(); err != nil {
		t.Errorf("easy timed config invalid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should be empty")
	}
}
