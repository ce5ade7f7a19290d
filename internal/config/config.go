// Package config provides YAML-based game configuration loading and
// difficulty management for the catcher games.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Gameplay modes.
const (
	ModeLives = "lives" // a missed fruit costs a life, run ends at zero lives
	ModeTimed = "timed" // fixed countdown, misses are free
)

// KnownFruits lists every fruit name accepted in fruit.kinds.
var KnownFruits = []string{"apple", "banana", "orange", "grape", "strawberry", "pineapple"}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid catcher config")

// CatcherConfig contains all configuration for one catcher variant.
type CatcherConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Fruit      FruitConfig      `yaml:"fruit"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the play area in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the player's basket.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	FloorGap float64 `yaml:"floor_gap"` // Distance between basket bottom and arena floor
	Speed    float64 `yaml:"speed"`     // Units per second while a direction is held
}

// FruitConfig defines falling fruit.
type FruitConfig struct {
	Size     float64  `yaml:"size"`
	MinSpeed float64  `yaml:"min_speed"`
	MaxSpeed float64  `yaml:"max_speed"`
	Kinds    []string `yaml:"kinds"`
}

// SpawnConfig defines the spawn timer.
type SpawnConfig struct {
	Interval    float64 `yaml:"interval"`     // Seconds between spawns at difficulty 0
	MinInterval float64 `yaml:"min_interval"` // Floor for the interval at high difficulty
}

// GameplayConfig defines scoring and the end condition.
type GameplayConfig struct {
	Mode        string  `yaml:"mode"`
	Lives       int     `yaml:"lives"`
	Duration    float64 `yaml:"duration"` // Seconds, timed mode only
	CatchReward int     `yaml:"catch_reward"`
	MaxStep     float64 `yaml:"max_step"` // Upper bound for a frame's delta-time, seconds
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or elapsed seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to the fall speed factor at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction removed from the spawn interval at max difficulty
}

// Validate rejects configurations the simulation cannot run with.
func (c CatcherConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0,
		"arena must have positive size, got %vx%v", c.Arena.Width, c.Arena.Height)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0,
		"paddle must have positive size, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Width <= c.Arena.Width,
		"paddle width %v exceeds arena width %v", c.Paddle.Width, c.Arena.Width)
	check(c.Paddle.FloorGap >= 0 && c.Paddle.FloorGap+c.Paddle.Height <= c.Arena.Height,
		"paddle band [%v, %v] does not fit the arena", c.Paddle.FloorGap, c.Paddle.FloorGap+c.Paddle.Height)
	check(c.Paddle.Speed >= 0, "paddle speed must not be negative, got %v", c.Paddle.Speed)
	check(c.Fruit.Size > 0 && c.Fruit.Size <= c.Arena.Width,
		"fruit size %v must be in (0, %v]", c.Fruit.Size, c.Arena.Width)
	check(c.Fruit.MinSpeed >= 0 && c.Fruit.MinSpeed <= c.Fruit.MaxSpeed,
		"fruit speed range [%v, %v] is invalid", c.Fruit.MinSpeed, c.Fruit.MaxSpeed)
	check(len(c.Fruit.Kinds) > 0, "fruit kinds must not be empty")
	for _, k := range c.Fruit.Kinds {
		check(slices.Contains(KnownFruits, k), "unknown fruit kind %q", k)
	}
	check(c.Spawn.Interval > 0, "spawn interval must be positive, got %v", c.Spawn.Interval)
	check(c.Spawn.MinInterval >= 0 && c.Spawn.MinInterval <= c.Spawn.Interval,
		"spawn min_interval %v must be in [0, %v]", c.Spawn.MinInterval, c.Spawn.Interval)
	check(c.Gameplay.CatchReward >= 0, "catch reward must not be negative, got %d", c.Gameplay.CatchReward)
	check(c.Gameplay.MaxStep > 0, "max_step must be positive, got %v", c.Gameplay.MaxStep)

	switch c.Gameplay.Mode {
	case ModeLives:
		check(c.Gameplay.Lives > 0, "lives must be positive, got %d", c.Gameplay.Lives)
	case ModeTimed:
		check(c.Gameplay.Duration > 0, "duration must be positive, got %v", c.Gameplay.Duration)
	default:
		errs = append(errs, fmt.Errorf("unknown gameplay mode %q", c.Gameplay.Mode))
	}

	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1,
		"difficulty initial_level %v must be in [0, 1]", c.Difficulty.InitialLevel)
	check(c.Difficulty.Scaling.SpeedMultiplier >= 0,
		"speed_multiplier must not be negative, got %v", c.Difficulty.Scaling.SpeedMultiplier)
	check(c.Difficulty.Scaling.IntervalReduction >= 0 && c.Difficulty.Scaling.IntervalReduction < 1,
		"interval_reduction %v must be in [0, 1)", c.Difficulty.Scaling.IntervalReduction)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
