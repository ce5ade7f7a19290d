package config

import (
	_ "embed"
)

// Game IDs with a bundled configuration.
const (
	GameClassic = "catcher"
	GameTimed   = "catcher_timed"
)

//go:embed defaults/catcher.yaml
var defaultClassicYAML []byte

//go:embed defaults/catcher_timed.yaml
var defaultTimedYAML []byte

// DefaultClassicConfig returns the default lives-based configuration.
func DefaultClassicConfig() CatcherConfig {
	return CatcherConfig{
		Arena: ArenaConfig{Width: 800, Height: 600},
		Paddle: PaddleConfig{
			Width:    120,
			Height:   48,
			FloorGap: 18,
			Speed:    460,
		},
		Fruit: FruitConfig{
			Size:     48,
			MinSpeed: 140,
			MaxSpeed: 260,
			Kinds:    []string{"apple", "banana", "orange", "grape"},
		},
		Spawn: SpawnConfig{
			Interval:    1.2,
			MinInterval: 0.5,
		},
		Gameplay: GameplayConfig{
			Mode:        ModeLives,
			Lives:       3,
			CatchReward: 10,
			MaxStep:     0.03,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.8,
				IntervalReduction: 0.5,
			},
		},
	}
}

// DefaultTimedConfig returns the default countdown configuration.
func DefaultTimedConfig() CatcherConfig {
	return CatcherConfig{
		Arena: ArenaConfig{Width: 800, Height: 600},
		Paddle: PaddleConfig{
			Width:    100,
			Height:   60,
			FloorGap: 0,
			Speed:    600,
		},
		Fruit: FruitConfig{
			Size:     40,
			MinSpeed: 15.625,
			MaxSpeed: 46.875,
			Kinds:    []string{"apple", "banana", "orange", "strawberry", "pineapple"},
		},
		Spawn: SpawnConfig{
			Interval:    1.5,
			MinInterval: 0.6,
		},
		Gameplay: GameplayConfig{
			Mode:        ModeTimed,
			Duration:    60,
			CatchReward: 10,
			MaxStep:     0.05,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.5,
				IntervalReduction: 0.4,
			},
		},
	}
}

// Default returns the hard-coded default for a game ID.
// Unknown IDs get the classic configuration.
func Default(gameID string) CatcherConfig {
	if gameID == GameTimed {
		return DefaultTimedConfig()
	}
	return DefaultClassicConfig()
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case GameClassic:
		return defaultClassicYAML
	case GameTimed:
		return defaultTimedYAML
	default:
		return nil
	}
}
