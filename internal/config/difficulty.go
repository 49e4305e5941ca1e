package config

import "math"

// DifficultyConfig defines how enemy spawn frequency ramps up during a run.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	InitialMultiplier float64 `yaml:"initial_multiplier"` // Spawn frequency multiplier at start
	Step              float64 `yaml:"step"`               // Added on every increase
	MaxMultiplier     float64 `yaml:"max_multiplier"`     // Hard cap
	IncreaseEvery     float64 `yaml:"increase_every"`     // Seconds between increases
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialMultiplierForPreset returns the starting spawn multiplier for a preset.
func InitialMultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyNormal:
		return 1.0
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialMultiplier = InitialMultiplierForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = int(math.Round(float64(cfg.Player.MaxHealth) * 1.5))
		cfg.PowerUps.DropChance = clampF(cfg.PowerUps.DropChance*1.5, 0, 1)
	case DifficultyHard:
		cfg.Player.MaxHealth = int(math.Round(float64(cfg.Player.MaxHealth) * 0.75))
		cfg.Boss.AttackInterval *= 0.8
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
