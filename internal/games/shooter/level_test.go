package shooter

import (
	"errors"
	"testing"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
)

func TestLevelCatalog(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cat := testCatalog(t, cfg)

	lvl, err := cat.Level(1)
	if err != nil {
		t.Fatalf("Level(1) failed: %v", err)
	}
	if lvl.BossThreshold != 3 || lvl.BossPattern != PatternThrow {
		t.Errorf("level 1 = %+v", lvl)
	}
	if len(lvl.Waves) != 1 || lvl.Waves[0].Choreography != FromTop || lvl.Waves[0].Count != 2 {
		t.Errorf("level 1 waves = %+v", lvl.Waves)
	}

	lvl2, err := cat.Level(2)
	if err != nil {
		t.Fatalf("Level(2) failed: %v", err)
	}
	if lvl2.BossPattern != PatternVolley {
		t.Errorf("level 2 pattern = %s, expected volley", lvl2.BossPattern)
	}
	if lvl2.Allows(EnemySpaceShip) || !lvl2.Allows(EnemyUFO) {
		t.Errorf("level 2 allowed types = %v", lvl2.EnemyTypes)
	}

	if cat.First() != 1 || !cat.Has(2) || cat.Has(3) {
		t.Errorf("unexpected catalog numbers %v", cat.Numbers())
	}
}

func TestLevelCatalogUnknownLevel(t *testing.T) {
	cat := testCatalog(t, config.DefaultShooterConfig())

	_, err := cat.Level(9)
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Level(9) error = %v, expected ErrUnknownLevel", err)
	}
}

func TestLevelCatalogRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name  string
		spec  config.LevelSpec
		check error
	}{
		{"unknown enemy", config.LevelSpec{Number: 1, EnemyTypes: []string{"dragon"}}, ErrUnknownEnemyType},
		{"bad choreography", config.LevelSpec{Number: 1, Waves: []config.WaveSpec{
			{Enemy: "ufo", Count: 1, Interval: 1, Choreography: "from_below"},
		}}, ErrInvalidLevel},
		{"bad pattern", config.LevelSpec{Number: 1, BossPattern: "laser"}, ErrInvalidLevel},
		{"empty wave", config.LevelSpec{Number: 1, Waves: []config.WaveSpec{
			{Enemy: "ufo", Count: 0, Interval: 1},
		}}, ErrInvalidLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLevelCatalog(config.LevelsConfig{Levels: []config.LevelSpec{tc.spec}}, config.DefaultShooterConfig())
			if !errors.Is(err, tc.check) {
				t.Errorf("error = %v, expected %v", err, tc.check)
			}
		})
	}
}

func TestLevelCatalogDefaultThreshold(t *testing.T) {
	levels := config.LevelsConfig{Levels: []config.LevelSpec{{Number: 1}, {Number: 2}, {Number: 3}}}
	cat, err := NewLevelCatalog(levels, config.DefaultShooterConfig())
	if err != nil {
		t.Fatalf("NewLevelCatalog() failed: %v", err)
	}

	for n, want := range map[int]int{1: 10, 2: 15, 3: 20} {
		lvl, _ := cat.Level(n)
		if lvl.BossThreshold != want {
			t.Errorf("level %d threshold = %d, expected %d", n, lvl.BossThreshold, want)
		}
	}
}

func TestLevelCatalogEndless(t *testing.T) {
	cat := testCatalog(t, config.DefaultShooterConfig())

	lvl := cat.Endless(6)
	if lvl.Number != 6 || len(lvl.Waves) != 0 {
		t.Errorf("endless level = %+v", lvl)
	}
	if lvl.BossThreshold != 35 {
		t.Errorf("endless threshold = %d, expected 35", lvl.BossThreshold)
	}
	if lvl.BossPattern != PatternVolley {
		t.Errorf("level 6 pattern = %s, expected volley", lvl.BossPattern)
	}
	for _, typ := range AllEnemyTypes {
		if !lvl.Allows(typ) {
			t.Errorf("endless level should allow %s", typ)
		}
	}
}
