package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a catcher variant.
// Search order: customPath -> ~/.catcher/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are decoded on top of the hard-coded default so partial files work.
// Only an explicit customPath can produce an error; the returned config is
// validated.
func Load(gameID, customPath string) (CatcherConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := Default(gameID)
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(gameID, path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := Default(gameID)
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil || cfg.Validate() != nil {
			return Default(gameID), nil // Fallback to hardcoded if embed is broken
		}
	}
	return cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(gameID, path string) (CatcherConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CatcherConfig{}, false
	}
	cfg := Default(gameID)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatcherConfig{}, false
	}
	if cfg.Validate() != nil {
		return CatcherConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catcher", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = min(cfg.Paddle.Width*1.25, cfg.Arena.Width)
		if cfg.Gameplay.Mode == ModeLives {
			cfg.Gameplay.Lives = 5
		}
	case DifficultyHard:
		cfg.Paddle.Width *= 0.8
		if cfg.Gameplay.Mode == ModeLives {
			cfg.Gameplay.Lives = 2
		}
	}
}
