package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadShooterEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}

	want := DefaultShooterConfig()
	if cfg.World != want.World {
		t.Errorf("World = %+v, expected %+v", cfg.World, want.World)
	}
	if cfg.Player != want.Player {
		t.Errorf("Player = %+v, expected %+v", cfg.Player, want.Player)
	}
	if len(cfg.Enemies) != 3 {
		t.Errorf("expected 3 enemy types, got %d", len(cfg.Enemies))
	}
	if cfg.Spawn.Weights["asteroid"] != 60 || cfg.Spawn.Weights["ufo"] != 20 || cfg.Spawn.Weights["spaceship"] != 20 {
		t.Errorf("unexpected spawn weights %v", cfg.Spawn.Weights)
	}
	if cfg.Difficulty.MaxMultiplier != 3.0 {
		t.Errorf("MaxMultiplier = %v, expected 3.0", cfg.Difficulty.MaxMultiplier)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  width: 300\n  height: 400\n  contact_damage: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if cfg.World.Width != 300 || cfg.World.Height != 400 || cfg.World.ContactDamage != 2 {
		t.Errorf("World = %+v, expected custom values", cfg.World)
	}
}

func TestLoadShooterMissingCustomPath(t *testing.T) {
	_, err := LoadShooter(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadShooterMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(path); err == nil {
		t.Error("expected parse error for malformed config")
	}
}

func TestLoadLevelsEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadLevels("")
	if err != nil {
		t.Fatalf("LoadLevels() failed: %v", err)
	}
	if len(cfg.Levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(cfg.Levels))
	}
	for i, lvl := range cfg.Levels {
		if lvl.Number != i+1 {
			t.Errorf("level %d has number %d", i, lvl.Number)
		}
		if len(lvl.Waves) == 0 {
			t.Errorf("level %d has no waves", lvl.Number)
		}
	}
	if cfg.Levels[0].BossThreshold != 10 || cfg.Levels[1].BossThreshold != 15 {
		t.Errorf("unexpected thresholds %d, %d", cfg.Levels[0].BossThreshold, cfg.Levels[1].BossThreshold)
	}
}

func TestApplyShooterPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		initial     float64
		healthDelta int
	}{
		{DifficultyEasy, true, 0.8, 50},
		{DifficultyNormal, true, 1.0, 0},
		{DifficultyHard, true, 1.5, -25},
		{DifficultyFixed, false, 1.0, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultShooterConfig()
			ApplyShooterPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialMultiplier != tc.initial {
				t.Errorf("InitialMultiplier = %v, expected %v", cfg.Difficulty.InitialMultiplier, tc.initial)
			}
			if got := cfg.Player.MaxHealth - 100; got != tc.healthDelta {
				t.Errorf("MaxHealth delta = %d, expected %d", got, tc.healthDelta)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset should reject unknown presets")
	}
}
