package shooter

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/pool"
)

// bobLimit bounds the vertical bob offset.
const bobLimit = 20.0

// volleySpread is the horizontal speed of the outer hazards in a volley.
const volleySpread = 70.0

// Hazard is an asteroid thrown by the boss.
type Hazard struct {
	ID     EntityID
	X, Y   float64
	VX     float64
	Size   float64
	Bounds core.Box
}

// BossParams is everything a boss needs to know about its level and the playfield.
type BossParams struct {
	Width, Height float64
	Config        config.ShooterBoss
	Health        int
	Pattern       BossPattern
	Explosion     ExplosionParams
	PoolSize      int
}

// BossHealthForLevel returns the boss health on the given level.
func BossHealthForLevel(cfg config.ShooterBoss, level int) int {
	return max(1, cfg.BaseHealth+cfg.HealthPerLevel*(level-1))
}

// Boss moves side to side near the top of the screen and throws hazards.
// It owns its hazards and explosions; nothing else mutates them.
type Boss struct {
	ID        EntityID
	X, Y      float64
	W, H      float64
	Health    int
	MaxHealth int
	Dead      bool
	Bounds    core.Box

	dir         float64
	bob         float64
	bobDir      float64
	baseY       float64
	moveTimer   float64
	attackTimer float64

	hazards    []*Hazard
	explosions []*Explosion
	explPool   *pool.Pool[*Explosion]

	params BossParams
	rng    *SimpleRNG
	nextID func() EntityID
	logger *log.Logger
}

// NewBoss places a boss at the top center of the playfield.
func NewBoss(params BossParams, rng *SimpleRNG, nextID func() EntityID, logger *log.Logger) *Boss {
	cfg := params.Config
	b := &Boss{
		ID:        nextID(),
		X:         params.Width / 2,
		W:         cfg.Width,
		H:         cfg.Height,
		Health:    params.Health,
		MaxHealth: params.Health,
		dir:       1,
		bobDir:    1,
		baseY:     params.Height - cfg.TopMargin - cfg.Height/2,
		explPool:  newExplosionPool(params.PoolSize),
		params:    params,
		rng:       rng,
		nextID:    nextID,
		logger:    logger,
	}
	b.Y = b.baseY
	b.syncBounds()
	return b
}

func (b *Boss) syncBounds() {
	b.Bounds = core.BoxAt(b.X, b.Y, b.W, b.H)
}

// Update moves the boss, runs its attack timer and advances its hazards and explosions.
func (b *Boss) Update(dt float64) {
	cfg := b.params.Config

	// Horizontal patrol with periodic direction flips
	b.moveTimer += dt
	if cfg.MoveInterval > 0 && b.moveTimer >= cfg.MoveInterval {
		b.moveTimer = 0
		b.dir = -b.dir
	}
	b.X += b.dir * cfg.Speed * dt
	if b.X-b.W/2 < 0 {
		b.X = b.W / 2
		b.dir = 1
	} else if b.X+b.W/2 > b.params.Width {
		b.X = b.params.Width - b.W/2
		b.dir = -1
	}

	// Bob between -bobLimit and +bobLimit
	b.bob += b.bobDir * cfg.BobSpeed * dt
	if b.bob > bobLimit {
		b.bob = bobLimit
		b.bobDir = -1
	} else if b.bob < -bobLimit {
		b.bob = -bobLimit
		b.bobDir = 1
	}
	b.Y = b.baseY + b.bob
	b.syncBounds()

	if !b.Dead {
		b.attackTimer += dt
		if cfg.AttackInterval > 0 && b.attackTimer >= cfg.AttackInterval {
			b.attackTimer = 0
			b.attack()
		}
	}

	b.hazards = slices.DeleteFunc(b.hazards, func(h *Hazard) bool {
		h.X += h.VX * dt
		h.Y -= cfg.HazardSpeed * dt
		h.Bounds = core.BoxAt(h.X, h.Y, h.Size, h.Size)
		return h.Bounds.Top() < 0
	})

	b.explosions = updateExplosions(b.explosions, dt, b.explPool, func(err error) {
		b.logger.Warn("boss explosion deactivated", "err", err)
	})
}

// attack throws hazards according to the level's pattern.
func (b *Boss) attack() {
	switch b.params.Pattern {
	case PatternVolley:
		b.throw(-volleySpread)
		b.throw(0)
		b.throw(volleySpread)
	default:
		b.throw(0)
	}
}

func (b *Boss) throw(vx float64) {
	size := b.params.Config.HazardSize
	h := &Hazard{
		ID:   b.nextID(),
		X:    b.X,
		Y:    b.Bounds.Y - size/2,
		VX:   vx,
		Size: size,
	}
	h.Bounds = core.BoxAt(h.X, h.Y, size, size)
	b.hazards = append(b.hazards, h)
}

// TakeDamage lowers health. It returns true only on the hit that kills the boss.
func (b *Boss) TakeDamage(amount int) bool {
	if b.Dead {
		return false
	}
	b.Health = max(0, b.Health-amount)
	if b.Health == 0 {
		b.Dead = true
		return true
	}
	return false
}

// HandleAsteroidHit removes the hazard if the boss still owns it and bursts an
// explosion where it was. It reports whether the hazard was removed.
func (b *Boss) HandleAsteroidHit(h *Hazard) bool {
	i := slices.Index(b.hazards, h)
	if i < 0 {
		return false
	}
	b.hazards = slices.Delete(b.hazards, i, i+1)

	e := b.explPool.Obtain()
	e.Start(h.X, h.Y, b.params.Explosion, b.rng)
	b.explosions = append(b.explosions, e)
	return true
}

// CheckExplosionCollisions reports whether any live explosion overlaps the box.
func (b *Boss) CheckExplosionCollisions(box core.Box) bool {
	for _, e := range b.explosions {
		if e.Overlaps(box) {
			return true
		}
	}
	return false
}

// Hazards returns the boss's live hazards. Callers must not modify the slice.
func (b *Boss) Hazards() []*Hazard {
	return b.hazards
}

// Explosions returns the boss's live explosions. Callers must not modify the slice.
func (b *Boss) Explosions() []*Explosion {
	return b.explosions
}

// Release returns every explosion to the pool and drops all hazards.
func (b *Boss) Release() {
	b.explPool.FreeAll()
	b.explosions = nil
	b.hazards = nil
}
