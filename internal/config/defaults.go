package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultShooterConfig returns the built-in shooter configuration.
// It mirrors defaults/shooter.yaml and is used if the embedded file fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: ShooterWorld{Width: 480, Height: 640, ContactDamage: 1},
		Player: ShooterPlayer{
			Width:        48,
			Height:       32,
			Y:            48,
			Speed:        260,
			MaxHealth:    100,
			FireInterval: 0.3,
			Damage:       1,
			BulletWidth:  6,
			BulletHeight: 14,
			BulletSpeed:  520,
			LevelUpBonus: 10,
		},
		Enemies: map[string]ShooterEnemy{
			"asteroid":  {Speed: 90, Health: 1, Sizes: []int{32, 64, 96}, Points: 10, XP: 10, Coins: 1},
			"ufo":       {Speed: 140, Health: 3, Sizes: []int{48}, Points: 25, XP: 20, Coins: 2},
			"spaceship": {Speed: 110, Health: 5, Sizes: []int{64}, Points: 40, XP: 30, Coins: 3},
		},
		Spawn: ShooterSpawn{
			Interval: 1.0,
			Weights:  map[string]int{"asteroid": 60, "ufo": 20, "spaceship": 20},
		},
		Boss: ShooterBoss{
			Width:             128,
			Height:            72,
			TopMargin:         40,
			Speed:             90,
			MoveInterval:      2.5,
			AttackInterval:    1.6,
			BobSpeed:          25,
			BaseHealth:        60,
			HealthPerLevel:    30,
			HazardSize:        28,
			HazardSpeed:       180,
			ExplosionDamage:   1,
			Points:            500,
			XP:                150,
			Coins:             25,
			ThresholdBase:     10,
			ThresholdPerLevel: 5,
		},
		PowerUps: ShooterPowerUps{
			DropChance:      0.15,
			Lifetime:        8,
			FallSpeed:       60,
			Size:            20,
			Weights:         map[string]int{"repair": 35, "rapid_fire": 25, "pierce": 25, "zbot": 15},
			RepairAmount:    25,
			RapidDuration:   8,
			RapidFactor:     0.5,
			PierceDuration:  8,
			PierceExtra:     2,
			TurretDuration:  10,
			TurretInterval:  0.4,
			TurretDamage:    1,
			TurretOffsetX:   40,
			TurretBulletCap: 16,
		},
		Effects: ShooterEffects{
			ExplosionParticles: 12,
			ParticleLifetime:   0.6,
			ParticleSpeed:      90,
			ParticleSize:       6,
			DamageNumberTTL:    0.8,
			DamageNumberRise:   40,
			PoolSize:           64,
		},
		Upgrades: map[string]UpgradeSpec{
			"speed":       {BaseCost: 40, MaxLevel: 5, PerLevel: 0.08},
			"damage":      {BaseCost: 60, MaxLevel: 5, PerLevel: 1},
			"bullet_size": {BaseCost: 30, MaxLevel: 5, PerLevel: 0.15},
			"fire_rate":   {BaseCost: 50, MaxLevel: 5, PerLevel: 0.10},
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			InitialMultiplier: 1.0,
			Step:              0.1,
			MaxMultiplier:     3.0,
			IncreaseEvery:     15,
		},
	}
}

// DefaultLevelsConfig returns a single built-in level, used only if the
// embedded level file fails to parse.
func DefaultLevelsConfig() LevelsConfig {
	return LevelsConfig{
		Levels: []LevelSpec{
			{
				Number:        1,
				Name:          "Asteroid Belt",
				EnemyTypes:    []string{"asteroid"},
				SpawnInterval: 1.2,
				BossThreshold: 10,
				BossPattern:   "throw",
				Waves: []WaveSpec{
					{Enemy: "asteroid", Count: 5, Interval: 0.8, Choreography: "from_top", Delay: 1.0},
				},
			},
		},
	}
}

// GetDefaultYAML returns an embedded default file by name ("shooter" or "levels").
func GetDefaultYAML(name string) []byte {
	switch name {
	case "shooter":
		return defaultShooterYAML
	case "levels":
		return defaultLevelsYAML
	default:
		return nil
	}
}
