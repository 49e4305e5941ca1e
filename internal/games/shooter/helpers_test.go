package shooter

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
	"github.com/woodriveer/duduInSpace-sub000/internal/core"
)

const testDT = 1.0 / 60.0

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testLevels() config.LevelsConfig {
	return config.LevelsConfig{Levels: []config.LevelSpec{
		{
			Number:        1,
			Name:          "One",
			EnemyTypes:    []string{"asteroid"},
			SpawnInterval: 1,
			BossThreshold: 3,
			BossPattern:   "throw",
			Waves: []config.WaveSpec{
				{Enemy: "asteroid", Count: 2, Interval: 0.5, Choreography: "from_top", Delay: 0.5},
			},
		},
		{
			Number:        2,
			Name:          "Two",
			EnemyTypes:    []string{"asteroid", "ufo"},
			SpawnInterval: 1,
			BossThreshold: 4,
			BossPattern:   "volley",
		},
	}}
}

func testCatalog(t *testing.T, cfg config.ShooterConfig) *LevelCatalog {
	t.Helper()
	cat, err := NewLevelCatalog(testLevels(), cfg)
	if err != nil {
		t.Fatalf("NewLevelCatalog() failed: %v", err)
	}
	return cat
}

func newTestWorld(t *testing.T, mode Mode, seed int64) *World {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	up, err := NewUpgrades(cfg)
	if err != nil {
		t.Fatalf("NewUpgrades() failed: %v", err)
	}
	w, err := NewWorld(WorldOptions{
		Config: cfg,
		Levels: testCatalog(t, cfg),
		Mode:   mode,
		Stats:  up.PlayerStats(core.NewMemoryPrefs()),
		Seed:   seed,
		Logger: testLogger(),
	})
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	return w
}

func testIDs() func() EntityID {
	var n EntityID
	return func() EntityID {
		n++
		return n
	}
}

func testBoss(pattern BossPattern, health int) *Boss {
	cfg := config.DefaultShooterConfig()
	return NewBoss(BossParams{
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		Config:    cfg.Boss,
		Health:    health,
		Pattern:   pattern,
		Explosion: ExplosionParamsFrom(cfg.Effects),
		PoolSize:  8,
	}, NewSimpleRNG(7), testIDs(), testLogger())
}

func testEnemy(id EntityID, x, y float64, health int) *Enemy {
	e := &Enemy{ID: id, Type: EnemyAsteroid, X: x, Y: y, Size: 32, Health: health, MaxHealth: health}
	e.syncBounds()
	return e
}

func testShot(id EntityID, x, y float64, damage, pierce int) *Projectile {
	p := newProjectile()
	p.Launch(id, OwnerPlayer, x, y, 0, 6, 14, damage, pierce)
	return p
}
