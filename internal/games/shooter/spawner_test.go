package shooter

import (
	"testing"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
)

func testSpawnerOptions(t *testing.T) SpawnerOptions {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	table, err := NewEnemyTable(cfg.Enemies)
	if err != nil {
		t.Fatalf("NewEnemyTable() failed: %v", err)
	}
	return SpawnerOptions{
		Width:      480,
		Height:     640,
		Enemies:    table,
		Weights:    SpawnWeights(cfg.Spawn.Weights),
		Difficulty: cfg.Difficulty,
		RNG:        NewSimpleRNG(42),
		NextID:     testIDs(),
	}
}

func TestSpawnerWaveExhaustion(t *testing.T) {
	tests := []struct {
		name  string
		ch    Choreography
		check func(e *Enemy) bool
	}{
		{"from_top", FromTop, func(e *Enemy) bool { return e.Y == 640 }},
		{"from_left", FromLeft, func(e *Enemy) bool { return e.X == 0 }},
		{"from_right", FromRight, func(e *Enemy) bool { return e.X == 480 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := LevelConfig{
				Number:        1,
				SpawnInterval: 1,
				Waves:         []Wave{{Enemy: EnemyUFO, Count: 5, Interval: 0.5, Choreography: tc.ch}},
			}
			s := NewLevelSpawner(testSpawnerOptions(t), level)

			var spawned []*Enemy
			for i := 0; i < 1000 && !s.IsWaveFinished(); i++ {
				if e := s.Update(0.1); e != nil {
					spawned = append(spawned, e)
				}
			}

			if len(spawned) != 5 {
				t.Fatalf("spawned %d enemies before wave finished, expected 5", len(spawned))
			}
			for i, e := range spawned {
				if !tc.check(e) {
					t.Errorf("enemy %d at (%v, %v) violates %s", i, e.X, e.Y, tc.name)
				}
				if e.VY >= 0 {
					t.Errorf("enemy %d should travel downward, VY=%v", i, e.VY)
				}
				if e.Type != EnemyUFO || e.Size != 48 {
					t.Errorf("enemy %d = %s size %v, expected ufo size 48", i, e.Type, e.Size)
				}
			}
		})
	}
}

func TestSpawnerWaveDelay(t *testing.T) {
	level := LevelConfig{
		Number: 1,
		Waves:  []Wave{{Enemy: EnemyAsteroid, Count: 1, Interval: 1, Delay: 1.0}},
	}
	s := NewLevelSpawner(testSpawnerOptions(t), level)

	if e := s.Update(0.5); e != nil {
		t.Error("enemy spawned before wave delay elapsed")
	}
	if e := s.Update(0.4); e != nil {
		t.Error("enemy spawned before wave delay elapsed")
	}
	if e := s.Update(0.2); e == nil {
		t.Error("expected enemy once wave delay elapsed")
	}
}

func TestSpawnerFallsBackToFlatMode(t *testing.T) {
	level := LevelConfig{
		Number:        1,
		EnemyTypes:    []EnemyType{EnemySpaceShip},
		SpawnInterval: 0.5,
		Waves:         []Wave{{Enemy: EnemyAsteroid, Count: 1, Interval: 1}},
	}
	s := NewLevelSpawner(testSpawnerOptions(t), level)

	count := 0
	for range 100 {
		if e := s.Update(0.1); e != nil {
			count++
			if count > 1 && e.Type != EnemySpaceShip {
				t.Errorf("flat fallback spawned %s, expected only spaceship", e.Type)
			}
		}
	}
	if count < 10 {
		t.Errorf("expected spawning to continue after waves, got %d enemies", count)
	}
	if !s.IsWaveFinished() {
		t.Error("IsWaveFinished should stay true once waves are exhausted")
	}
}

func TestSpawnerFlatWeights(t *testing.T) {
	s := NewSpawner(testSpawnerOptions(t), 1)

	counts := make(map[EnemyType]int)
	const rolls = 10000
	for range rolls {
		typ, ok := s.rollType()
		if !ok {
			t.Fatal("rollType() failed")
		}
		counts[typ]++
	}

	expected := map[EnemyType]float64{EnemyAsteroid: 0.6, EnemyUFO: 0.2, EnemySpaceShip: 0.2}
	for typ, share := range expected {
		got := float64(counts[typ]) / rolls
		if got < share-0.03 || got > share+0.03 {
			t.Errorf("%s share = %.3f, expected about %.2f", typ, got, share)
		}
	}
}

func TestSpawnerAsteroidSizes(t *testing.T) {
	s := NewSpawner(testSpawnerOptions(t), 1)

	seen := make(map[float64]bool)
	for range 200 {
		e := s.spawn(EnemyAsteroid, FromTop)
		switch e.Size {
		case 32, 64, 96:
			seen[e.Size] = true
		default:
			t.Fatalf("unexpected asteroid size %v", e.Size)
		}
		if e.Health != int(e.Size/32) {
			t.Errorf("asteroid size %v has health %d, expected %d", e.Size, e.Health, int(e.Size/32))
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected all three asteroid sizes, saw %v", seen)
	}
}

func TestSpawnerDifficulty(t *testing.T) {
	s := NewSpawner(testSpawnerOptions(t), 1)

	if s.DifficultyMultiplier() != 1.0 {
		t.Errorf("initial multiplier = %v, expected 1.0", s.DifficultyMultiplier())
	}

	prev := s.DifficultyMultiplier()
	for range 100 {
		s.IncreaseDifficulty()
		if s.DifficultyMultiplier() < prev {
			t.Fatal("difficulty multiplier decreased")
		}
		prev = s.DifficultyMultiplier()
	}
	if s.DifficultyMultiplier() != 3.0 {
		t.Errorf("multiplier = %v, expected cap 3.0", s.DifficultyMultiplier())
	}

	s.Reset()
	if s.DifficultyMultiplier() != 1.0 {
		t.Errorf("multiplier after Reset = %v, expected 1.0", s.DifficultyMultiplier())
	}
}

func TestSpawnerEntityIDsUnique(t *testing.T) {
	s := NewSpawner(testSpawnerOptions(t), 0.1)

	seen := make(map[EntityID]bool)
	for range 500 {
		if e := s.Update(0.1); e != nil {
			if seen[e.ID] {
				t.Fatalf("duplicate entity id %d", e.ID)
			}
			seen[e.ID] = true
		}
	}
}

func TestNewEnemyTableRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
	}{
		{"empty", nil},
		{"zero", []int{32, 0}},
		{"negative", []int{-16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultShooterConfig()
			ec := cfg.Enemies["asteroid"]
			ec.Sizes = tt.sizes
			cfg.Enemies["asteroid"] = ec

			if _, err := NewEnemyTable(cfg.Enemies); err == nil {
				t.Errorf("NewEnemyTable() with sizes %v succeeded, expected error", tt.sizes)
			}
		})
	}
}

func TestSpawnerHealthScalesFromSmallestSize(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	ec := cfg.Enemies["asteroid"]
	ec.Sizes = []int{96, 32, 64}
	cfg.Enemies["asteroid"] = ec

	opts := testSpawnerOptions(t)
	table, err := NewEnemyTable(cfg.Enemies)
	if err != nil {
		t.Fatalf("NewEnemyTable() failed: %v", err)
	}
	opts.Enemies = table
	if table[EnemyAsteroid].MinSize != 32 {
		t.Fatalf("MinSize = %v, expected 32", table[EnemyAsteroid].MinSize)
	}

	s := NewSpawner(opts, 1)
	for range 100 {
		e := s.spawn(EnemyAsteroid, FromTop)
		if expected := int(e.Size / 32); e.Health != expected {
			t.Errorf("asteroid size %v has health %d, expected %d", e.Size, e.Health, expected)
		}
	}
}
