package shooter

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/pool"
)

const (
	// levelClearDelay is how long the "level clear" phase lasts before the next level.
	levelClearDelay = 2.0
	// hazardPoints is the score for shooting down a thrown asteroid.
	hazardPoints = 5
)

// Intent is the per-frame player input.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Shoot     bool
}

// Mode selects how levels are sourced.
type Mode int

const (
	ModeCampaign Mode = iota // Levels come from the level catalog
	ModeEndless              // Levels are synthesized forever
)

func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "campaign"
}

// WorldOptions configures a new World.
type WorldOptions struct {
	Config     config.ShooterConfig
	Levels     *LevelCatalog
	Mode       Mode
	StartLevel int // 0 means the first level
	Stats      PlayerStats
	Seed       int64
	Logger     *log.Logger
}

// World owns every entity of a run and advances them in a fixed order each frame.
type World struct {
	cfg    config.ShooterConfig
	mode   Mode
	levels *LevelCatalog
	logger *log.Logger
	rng    *SimpleRNG

	width, height float64
	enemyTable    EnemyTable
	powerWeights  []PowerUpWeight
	explParams    ExplosionParams
	playerStats   PlayerStats

	nextID EntityID
	tick   int

	player        *Player
	enemies       []*Enemy
	projectiles   []*Projectile
	turretShots   []*Projectile
	powerUps      []*PowerUp
	explosions    []*Explosion
	damageNumbers []*DamageNumber
	turret        *Turret
	effects       Effects

	projPool   *pool.Pool[*Projectile]
	turretPool *pool.Pool[*Projectile]
	explPool   *pool.Pool[*Explosion]

	spawner         *Spawner
	progression     *Progression
	level           LevelConfig
	difficultyTimer float64

	stats           *RunStats
	levelStartScore int
	completed       []int

	gameOver bool
	won      bool
	events   []string
}

// NewWorld builds a world positioned at the start of its first level.
func NewWorld(opts WorldOptions) (*World, error) {
	if opts.Levels == nil {
		return nil, errors.New("world: no level catalog")
	}
	cfg := opts.Config
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return nil, fmt.Errorf("world: invalid size %vx%v", cfg.World.Width, cfg.World.Height)
	}

	table, err := NewEnemyTable(cfg.Enemies)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	w := &World{
		cfg:          cfg,
		mode:         opts.Mode,
		levels:       opts.Levels,
		logger:       logger,
		rng:          NewSimpleRNG(opts.Seed),
		width:        cfg.World.Width,
		height:       cfg.World.Height,
		enemyTable:   table,
		powerWeights: PowerUpWeights(cfg.PowerUps.Weights),
		explParams:   ExplosionParamsFrom(cfg.Effects),
		playerStats:  opts.Stats,
		projPool:     pool.New(cfg.Effects.PoolSize, newProjectile, resetProjectile),
		turretPool:   pool.New(cfg.PowerUps.TurretBulletCap, newProjectile, resetProjectile),
		explPool:     newExplosionPool(cfg.Effects.PoolSize),
		stats:        NewRunStats(),
	}
	w.player = NewPlayer(cfg.Player, opts.Stats, w.width)

	start := opts.StartLevel
	if start == 0 {
		start = 1
		if w.mode == ModeCampaign {
			start = w.levels.First()
		}
	}
	level, err := w.levelConfig(start)
	if err != nil {
		return nil, err
	}

	spawnOpts := SpawnerOptions{
		Width:      w.width,
		Height:     w.height,
		Enemies:    table,
		Weights:    SpawnWeights(cfg.Spawn.Weights),
		Difficulty: cfg.Difficulty,
		RNG:        w.rng,
		NextID:     w.newID,
	}
	if w.mode == ModeEndless {
		w.spawner = NewSpawner(spawnOpts, level.SpawnInterval)
	} else {
		w.spawner = NewLevelSpawner(spawnOpts, level)
	}

	w.startLevel(level)
	return w, nil
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

func (w *World) levelConfig(n int) (LevelConfig, error) {
	if w.mode == ModeEndless {
		return w.levels.Endless(n), nil
	}
	return w.levels.Level(n)
}

func (w *World) startLevel(level LevelConfig) {
	w.level = level
	w.levelStartScore = w.stats.Score
	w.progression = NewProgression(level.Number, level.BossThreshold, w.spawnBoss)
	w.logger.Debug("level started", "level", level.Number, "name", level.Name, "threshold", level.BossThreshold)
}

func (w *World) spawnBoss() *Boss {
	b := NewBoss(BossParams{
		Width:     w.width,
		Height:    w.height,
		Config:    w.cfg.Boss,
		Health:    BossHealthForLevel(w.cfg.Boss, w.level.Number),
		Pattern:   w.level.BossPattern,
		Explosion: w.explParams,
		PoolSize:  w.cfg.Effects.PoolSize,
	}, w.rng, w.newID, w.logger)
	w.logger.Debug("boss spawned", "level", w.level.Number, "health", b.Health, "pattern", w.level.BossPattern)
	w.events = append(w.events, "BOSS INCOMING")
	return b
}

// Update advances the world by dt seconds.
func (w *World) Update(dt float64, in Intent) {
	w.events = w.events[:0]
	if w.gameOver || w.won || dt <= 0 {
		return
	}
	w.tick++
	w.stats.Elapsed += dt

	// 1. Spawner; the field is left to the boss once it appears
	if w.progression.Phase() == PhaseNormal {
		if e := w.spawner.Update(dt); e != nil {
			w.enemies = append(w.enemies, e)
		}
	}
	if w.cfg.Difficulty.Enabled && w.cfg.Difficulty.IncreaseEvery > 0 {
		w.difficultyTimer += dt
		if w.difficultyTimer >= w.cfg.Difficulty.IncreaseEvery {
			w.difficultyTimer = 0
			w.spawner.IncreaseDifficulty()
		}
	}

	// 2. Progression
	w.progression.Update(dt)
	if w.progression.IsLevelCompleting() && w.progression.PhaseTime() >= levelClearDelay {
		w.advanceLevel()
		if w.won || w.gameOver {
			return
		}
	}

	// 3. Entities
	w.updatePlayer(dt, in)
	for _, e := range w.enemies {
		e.Update(dt)
	}
	for _, p := range w.projectiles {
		p.Update(dt, w.height)
	}
	for _, p := range w.turretShots {
		p.Update(dt, w.height)
	}
	if b := w.progression.Boss(); b != nil {
		b.Update(dt)
	}
	for _, pu := range w.powerUps {
		pu.Update(dt, w.cfg.PowerUps.FallSpeed)
	}
	w.updateTurret(dt)
	w.explosions = updateExplosions(w.explosions, dt, w.explPool, func(err error) {
		w.logger.Warn("explosion deactivated", "tick", w.tick, "err", err)
	})
	w.damageNumbers = slices.DeleteFunc(w.damageNumbers, func(d *DamageNumber) bool {
		return !d.Update(dt, w.cfg.Effects.DamageNumberRise)
	})

	// 4. Collisions
	Detect(SnapshotFrame(w.player, w.enemies, w.projectiles, w.turretShots, w.progression.Boss(), w.powerUps), resolver{w})
	if b := w.progression.Boss(); b != nil && b.CheckExplosionCollisions(w.player.Bounds) {
		w.damagePlayer(w.cfg.Boss.ExplosionDamage)
	}

	// 5. Removals
	w.enemies = slices.DeleteFunc(w.enemies, func(e *Enemy) bool {
		return e.Dead || e.OffScreen(w.width)
	})
	w.projectiles = releaseProjectiles(w.projectiles, w.projPool)
	w.turretShots = releaseProjectiles(w.turretShots, w.turretPool)
	w.powerUps = slices.DeleteFunc(w.powerUps, func(pu *PowerUp) bool {
		return !pu.Active
	})

	if w.player.Dead && !w.gameOver {
		w.gameOver = true
		w.logger.Debug("player died", "level", w.level.Number, "score", w.stats.Score, "tick", w.tick)
		w.events = append(w.events, "GAME OVER")
	}
}

// releaseProjectiles drops inactive projectiles and returns them to their pool.
func releaseProjectiles(list []*Projectile, p *pool.Pool[*Projectile]) []*Projectile {
	return slices.DeleteFunc(list, func(pr *Projectile) bool {
		if pr.Active {
			return false
		}
		p.Free(pr)
		return true
	})
}

func (w *World) updatePlayer(dt float64, in Intent) {
	w.player.Update(dt, in, w.width)
	w.effects.Update(dt)

	if !in.Shoot || !w.player.CanFire() {
		return
	}
	st := w.player.Stats
	p := w.projPool.Obtain()
	p.Launch(w.newID(), OwnerPlayer, w.player.X, w.player.Bounds.Top()+st.BulletH/2, st.BulletSpeed,
		st.BulletW, st.BulletH, st.Damage, w.effects.Pierce(w.cfg.PowerUps))
	w.projectiles = append(w.projectiles, p)
	w.player.Fired(w.effects.FireInterval(st.FireInterval, w.cfg.PowerUps))
}

func (w *World) updateTurret(dt float64) {
	if !w.turret.Active() {
		w.turret = nil
		return
	}
	cfg := w.cfg.PowerUps
	if w.turret.Update(dt, w.player.X, w.player.Y, cfg) {
		st := w.player.Stats
		p := w.turretPool.Obtain()
		p.Launch(w.newID(), OwnerTurret, w.turret.X, w.turret.Y, st.BulletSpeed,
			st.BulletW, st.BulletH, cfg.TurretDamage, 0)
		w.turretShots = append(w.turretShots, p)
	}
}

func (w *World) damagePlayer(amount int) {
	if amount <= 0 {
		return
	}
	w.player.TakeDamage(amount)
}

func (w *World) addDamageNumber(x, y float64, value int, c core.Color) {
	w.damageNumbers = append(w.damageNumbers, &DamageNumber{
		Value: value,
		X:     x,
		Y:     y,
		TTL:   w.cfg.Effects.DamageNumberTTL,
		Color: c,
	})
}

func (w *World) burst(x, y float64) {
	e := w.explPool.Obtain()
	e.Start(x, y, w.explParams, w.rng)
	w.explosions = append(w.explosions, e)
}

func (w *World) gainXP(amount int) {
	gained := w.stats.AddXP(amount)
	bonus := w.cfg.Player.LevelUpBonus
	for range gained {
		w.player.MaxHealth += bonus
		w.player.Heal(bonus)
		w.events = append(w.events, fmt.Sprintf("LEVEL UP %d", w.stats.Level))
	}
}

func (w *World) enemyKilled(e *Enemy) {
	st := w.enemyTable[e.Type]
	w.stats.Score += st.Points
	w.stats.Kills++
	w.stats.Coins += st.Coins
	w.gainXP(st.XP)
	w.burst(e.X, e.Y)

	if kind, ok := rollPowerUp(w.rng, w.cfg.PowerUps.DropChance, w.powerWeights); ok {
		size := w.cfg.PowerUps.Size
		w.powerUps = append(w.powerUps, &PowerUp{
			ID:      w.newID(),
			Kind:    kind,
			X:       e.X,
			Y:       e.Y,
			Size:    size,
			TTL:     w.cfg.PowerUps.Lifetime,
			Visible: true,
			Active:  true,
			Bounds:  core.BoxAt(e.X, e.Y, size, size),
		})
	}

	w.progression.IncrementScore()
}

func (w *World) bossDefeated(b *Boss) {
	cfg := w.cfg.Boss
	w.stats.Score += cfg.Points
	w.stats.Coins += cfg.Coins
	w.stats.BossesDefeated++
	w.gainXP(cfg.XP)

	b.Release()
	w.burst(b.X, b.Y)
	w.burst(b.Bounds.X, b.Y)
	w.burst(b.Bounds.Right(), b.Y)

	w.completed = append(w.completed, w.level.Number)
	w.logger.Debug("boss defeated", "level", w.level.Number, "tick", w.tick)
	w.events = append(w.events, "BOSS DEFEATED")
}

func (w *World) applyPowerUp(kind PowerUpKind) {
	cfg := w.cfg.PowerUps
	switch kind {
	case PowerRepair:
		w.player.Heal(cfg.RepairAmount)
	case PowerRapidFire:
		w.effects.RapidLeft = cfg.RapidDuration
	case PowerPierce:
		w.effects.PierceLeft = cfg.PierceDuration
	case PowerZBot:
		if w.turret.Active() {
			w.turret.TTL = cfg.TurretDuration
		} else {
			w.turret = &Turret{X: w.player.X + cfg.TurretOffsetX, Y: w.player.Y, TTL: cfg.TurretDuration}
		}
	}
	w.events = append(w.events, "+"+kind.String())
}

// advanceLevel moves to the level after the completed one, or ends the run
// in victory when the campaign has no more levels.
func (w *World) advanceLevel() {
	next := w.level.Number + 1
	if w.mode == ModeCampaign && !w.levels.Has(next) {
		w.won = true
		w.logger.Debug("campaign complete", "score", w.stats.Score)
		w.events = append(w.events, "VICTORY")
		return
	}

	level, err := w.levelConfig(next)
	if err != nil {
		// Unreachable with a validated catalog; stop the run rather than play wrong data
		w.gameOver = true
		w.logger.Error("cannot load next level", "level", next, "err", err)
		return
	}

	w.clearField()
	w.spawner.SetLevel(level)
	w.startLevel(level)
	w.logger.Debug("level advanced", "level", next)
	w.events = append(w.events, fmt.Sprintf("LEVEL %d", next))
}

// clearField drops every enemy, shot and effect and returns pooled objects.
func (w *World) clearField() {
	w.enemies = nil
	w.projPool.FreeAll()
	w.projectiles = nil
	w.turretPool.FreeAll()
	w.turretShots = nil
	w.explPool.FreeAll()
	w.explosions = nil
	w.powerUps = nil
	w.damageNumbers = nil
}

// RestartLevel replays the current level with a fresh ship, keeping upgrades
// and run level bonuses. The score falls back to what it was when the level began.
func (w *World) RestartLevel() {
	if b := w.progression.Boss(); b != nil {
		b.Release()
	}
	w.clearField()
	w.spawner.Reset()
	w.difficultyTimer = 0
	w.effects = Effects{}
	w.turret = nil

	maxHealth := w.player.MaxHealth
	w.player = NewPlayer(w.cfg.Player, w.playerStats, w.width)
	w.player.MaxHealth = maxHealth
	w.player.Health = maxHealth

	w.stats.Score = w.levelStartScore
	w.gameOver = false
	w.startLevel(w.level)
}

// resolver applies collision outcomes to the world.
type resolver struct {
	w *World
}

func (r resolver) PlayerHitEnemy(e *Enemy) {
	r.w.damagePlayer(r.w.cfg.World.ContactDamage)
}

func (r resolver) ProjectileHitEnemy(p *Projectile, e *Enemy) {
	if e.Dead {
		return
	}
	killed := e.TakeDamage(p.Damage)
	p.RegisterHit()
	r.w.addDamageNumber(e.X, e.Bounds.Top(), p.Damage, core.ColorBrightYellow)
	if killed {
		r.w.enemyKilled(e)
	}
}

func (r resolver) ProjectileHitBoss(p *Projectile, b *Boss) {
	w := r.w
	if w.progression.Boss() != b {
		return
	}
	p.RegisterHit()
	w.addDamageNumber(p.X, b.Bounds.Y, p.Damage, core.ColorBrightWhite)
	if w.progression.DamageBoss(p.Damage) {
		w.bossDefeated(b)
	}
}

func (r resolver) ProjectileHitHazard(p *Projectile, h *Hazard) {
	b := r.w.progression.Boss()
	if b == nil {
		return
	}
	if b.HandleAsteroidHit(h) {
		p.RegisterHit()
		r.w.stats.Score += hazardPoints
	}
}

func (r resolver) PlayerHitBoss(b *Boss) {
	r.w.damagePlayer(r.w.cfg.World.ContactDamage)
}

func (r resolver) PlayerHitHazard(h *Hazard) {
	b := r.w.progression.Boss()
	if b != nil && b.HandleAsteroidHit(h) {
		r.w.damagePlayer(r.w.cfg.World.ContactDamage)
	}
}

func (r resolver) PowerUpCollected(pu *PowerUp) {
	if !pu.Active {
		return
	}
	pu.Active = false
	r.w.applyPowerUp(pu.Kind)
}

// Read-only accessors for rendering. Returned slices must not be modified.

func (w *World) Player() *Player                { return w.player }
func (w *World) Enemies() []*Enemy              { return w.enemies }
func (w *World) Projectiles() []*Projectile     { return w.projectiles }
func (w *World) TurretShots() []*Projectile     { return w.turretShots }
func (w *World) PowerUps() []*PowerUp           { return w.powerUps }
func (w *World) Explosions() []*Explosion       { return w.explosions }
func (w *World) DamageNumbers() []*DamageNumber { return w.damageNumbers }
func (w *World) Turret() *Turret                { return w.turret }
func (w *World) Boss() *Boss                    { return w.progression.Boss() }
func (w *World) Progression() *Progression      { return w.progression }
func (w *World) Level() LevelConfig             { return w.level }
func (w *World) Stats() RunStats                { return *w.stats }
func (w *World) Effects() Effects               { return w.effects }
func (w *World) Spawner() *Spawner              { return w.spawner }
func (w *World) Mode() Mode                     { return w.mode }
func (w *World) Tick() int                      { return w.tick }
func (w *World) GameOver() bool                 { return w.gameOver }
func (w *World) Won() bool                      { return w.won }
func (w *World) Size() (float64, float64)       { return w.width, w.height }

// Events returns notices raised during the last Update.
func (w *World) Events() []string { return w.events }

// CompletedLevels returns the level numbers whose boss was defeated this run.
func (w *World) CompletedLevels() []int { return slices.Clone(w.completed) }
