package shooter

import "math"

// Snapshot captures the simulation state for determinism testing.
// Positions are rounded to whole world units.
type Snapshot struct {
	Tick         uint64
	Level        int
	Phase        Phase
	Score        int
	Kills        int
	Coins        int
	PlayerX      int
	PlayerHealth int

	EnemyCount int
	EnemyData  []int // Flattened: [type, x, y, health] per enemy

	ProjectileCount int
	TurretShotCount int
	PowerUpCount    int

	BossHealth  int // -1 when no boss
	HazardCount int

	RNGState uint64
}

func round(v float64) int {
	return int(math.Round(v))
}

// Snapshot returns the current simulation state.
func (w *World) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(w.enemies)*4)
	for _, e := range w.enemies {
		enemyData = append(enemyData, int(e.Type), round(e.X), round(e.Y), e.Health)
	}

	snap := Snapshot{
		Tick:            uint64(w.tick), //#nosec G115 -- tick count is always positive
		Level:           w.level.Number,
		Phase:           w.progression.Phase(),
		Score:           w.stats.Score,
		Kills:           w.stats.Kills,
		Coins:           w.stats.Coins,
		PlayerX:         round(w.player.X),
		PlayerHealth:    w.player.Health,
		EnemyCount:      len(w.enemies),
		EnemyData:       enemyData,
		ProjectileCount: len(w.projectiles),
		TurretShotCount: len(w.turretShots),
		PowerUpCount:    len(w.powerUps),
		BossHealth:      -1,
		RNGState:        w.rng.State(),
	}
	if b := w.progression.Boss(); b != nil {
		snap.BossHealth = b.Health
		snap.HazardCount = len(b.Hazards())
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHealth)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TurretShotCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossHealth)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HazardCount)     //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
