package shooter

import (
	"github.com/woodriveer/duduInSpace-sub000/internal/config"
)

// sideEntryMinY is the lowest fraction of the screen height a side entrant may appear at.
const sideEntryMinY = 0.5

// SpawnWeight is one entry of a weighted enemy roll.
type SpawnWeight struct {
	Type   EnemyType
	Weight int
}

// SpawnWeights converts config weights into roll order. Unknown names and
// non-positive weights are ignored.
func SpawnWeights(weights map[string]int) []SpawnWeight {
	out := make([]SpawnWeight, 0, len(AllEnemyTypes))
	for _, t := range AllEnemyTypes {
		if w := weights[t.String()]; w > 0 {
			out = append(out, SpawnWeight{Type: t, Weight: w})
		}
	}
	return out
}

// Spawner produces enemies over time, either in flat mode (fixed interval,
// weighted random types) or by running a level's waves in order.
type Spawner struct {
	width, height float64
	enemies       EnemyTable
	weights       []SpawnWeight
	rng           *SimpleRNG
	nextID        func() EntityID

	level    LevelConfig
	interval float64 // Flat interval

	timer       float64
	waveIndex   int
	waveEmitted int
	waveStarted bool

	difficulty config.DifficultyConfig
	multiplier float64
}

// SpawnerOptions wires a spawner to the world.
type SpawnerOptions struct {
	Width, Height float64
	Enemies       EnemyTable
	Weights       []SpawnWeight
	Difficulty    config.DifficultyConfig
	RNG           *SimpleRNG
	NextID        func() EntityID
}

// NewSpawner creates a flat-mode spawner.
func NewSpawner(opts SpawnerOptions, interval float64) *Spawner {
	s := newSpawner(opts)
	s.interval = interval
	return s
}

// NewLevelSpawner creates a spawner that runs the level's waves, then falls
// back to flat mode using the level's spawn interval and allowed types.
func NewLevelSpawner(opts SpawnerOptions, level LevelConfig) *Spawner {
	s := newSpawner(opts)
	s.SetLevel(level)
	return s
}

func newSpawner(opts SpawnerOptions) *Spawner {
	s := &Spawner{
		width:      opts.Width,
		height:     opts.Height,
		enemies:    opts.Enemies,
		weights:    opts.Weights,
		rng:        opts.RNG,
		nextID:     opts.NextID,
		difficulty: opts.Difficulty,
	}
	s.multiplier = s.initialMultiplier()
	return s
}

func (s *Spawner) initialMultiplier() float64 {
	if s.difficulty.InitialMultiplier <= 0 {
		return 1.0
	}
	return s.difficulty.InitialMultiplier
}

// SetLevel switches to a new level, keeping the current difficulty.
func (s *Spawner) SetLevel(level LevelConfig) {
	s.level = level
	s.interval = level.SpawnInterval
	s.timer = 0
	s.waveIndex = 0
	s.waveEmitted = 0
	s.waveStarted = false
}

// Reset clears timers, rewinds the waves and drops difficulty back to baseline.
func (s *Spawner) Reset() {
	s.SetLevel(s.level)
	s.multiplier = s.initialMultiplier()
}

// IncreaseDifficulty raises the spawn frequency multiplier up to its cap.
func (s *Spawner) IncreaseDifficulty() {
	maxMult := s.difficulty.MaxMultiplier
	if maxMult <= 0 {
		maxMult = 3.0
	}
	step := s.difficulty.Step
	if step <= 0 {
		step = 0.1
	}
	s.multiplier = min(maxMult, s.multiplier+step)
}

// DifficultyMultiplier returns the current spawn frequency multiplier.
func (s *Spawner) DifficultyMultiplier() float64 {
	return s.multiplier
}

// IsWaveFinished reports whether the active wave has emitted all of its enemies.
// It stays true once every wave is exhausted, and is always true in flat mode.
func (s *Spawner) IsWaveFinished() bool {
	if s.waveIndex >= len(s.level.Waves) {
		return true
	}
	return s.waveEmitted >= s.level.Waves[s.waveIndex].Count
}

// WaveIndex returns the zero-based index of the active wave.
func (s *Spawner) WaveIndex() int {
	return s.waveIndex
}

// Update advances the spawn timer and returns a new enemy when one is due.
func (s *Spawner) Update(dt float64) *Enemy {
	// Move on from a finished wave before doing anything else
	if s.waveIndex < len(s.level.Waves) && s.IsWaveFinished() {
		s.waveIndex++
		s.waveEmitted = 0
		s.waveStarted = false
		s.timer = 0
	}

	if s.waveIndex < len(s.level.Waves) {
		return s.updateWave(dt, s.level.Waves[s.waveIndex])
	}
	return s.updateFlat(dt)
}

func (s *Spawner) updateWave(dt float64, w Wave) *Enemy {
	s.timer += dt
	threshold := w.Interval / s.multiplier
	if !s.waveStarted {
		threshold = w.Delay
	}
	if s.timer < threshold {
		return nil
	}
	s.timer = 0
	s.waveStarted = true
	s.waveEmitted++
	return s.spawn(w.Enemy, w.Choreography)
}

func (s *Spawner) updateFlat(dt float64) *Enemy {
	if s.interval <= 0 {
		return nil
	}
	s.timer += dt
	if s.timer < s.interval/s.multiplier {
		return nil
	}
	s.timer = 0
	t, ok := s.rollType()
	if !ok {
		return nil
	}
	return s.spawn(t, FromTop)
}

// rollType picks a weighted random type among the types the level allows.
func (s *Spawner) rollType() (EnemyType, bool) {
	total := 0
	for _, w := range s.weights {
		if s.level.Allows(w.Type) {
			total += w.Weight
		}
	}
	if total == 0 {
		return 0, false
	}

	roll := s.rng.Intn(total)
	for _, w := range s.weights {
		if !s.level.Allows(w.Type) {
			continue
		}
		if roll < w.Weight {
			return w.Type, true
		}
		roll -= w.Weight
	}
	return 0, false
}

// spawn builds an enemy of the given type entering from the given side.
func (s *Spawner) spawn(t EnemyType, ch Choreography) *Enemy {
	stats := s.enemies[t]
	size := stats.Sizes[s.rng.Intn(len(stats.Sizes))]

	// Bigger rocks take more hits
	health := max(1, int(float64(stats.Health)*size/stats.MinSize))

	e := &Enemy{
		ID:        s.nextID(),
		Type:      t,
		Size:      size,
		Health:    health,
		MaxHealth: health,
	}

	switch ch {
	case FromLeft:
		e.X = 0
		e.Y = s.rng.Range(s.height*sideEntryMinY, s.height)
		e.VX = stats.Speed * 0.6
		e.VY = -stats.Speed * 0.5
	case FromRight:
		e.X = s.width
		e.Y = s.rng.Range(s.height*sideEntryMinY, s.height)
		e.VX = -stats.Speed * 0.6
		e.VY = -stats.Speed * 0.5
	default:
		e.X = s.rng.Range(size/2, max(size/2, s.width-size/2))
		e.Y = s.height
		e.VY = -stats.Speed
	}
	e.syncBounds()
	return e
}
