package shooter

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
	"github.com/woodriveer/duduInSpace-sub000/internal/core"
)

// EntityID is a stable identity for anything a projectile can hit.
// IDs are never reused within a World.
type EntityID uint64

// ErrUnknownEnemyType is returned when a config names an enemy type that does not exist.
var ErrUnknownEnemyType = errors.New("unknown enemy type")

// EnemyType identifies an enemy kind.
type EnemyType int

const (
	EnemyAsteroid EnemyType = iota
	EnemyUFO
	EnemySpaceShip
)

// AllEnemyTypes lists every enemy type in spawn-weight order.
var AllEnemyTypes = []EnemyType{EnemyAsteroid, EnemyUFO, EnemySpaceShip}

// String returns the config name of the enemy type.
func (t EnemyType) String() string {
	switch t {
	case EnemyAsteroid:
		return "asteroid"
	case EnemyUFO:
		return "ufo"
	case EnemySpaceShip:
		return "spaceship"
	default:
		return "unknown"
	}
}

// Glyph returns the character used to draw the enemy.
func (t EnemyType) Glyph() rune {
	switch t {
	case EnemyAsteroid:
		return '@'
	case EnemyUFO:
		return 'O'
	case EnemySpaceShip:
		return 'V'
	default:
		return '?'
	}
}

// ParseEnemyType converts a config name to an EnemyType.
func ParseEnemyType(s string) (EnemyType, error) {
	for _, t := range AllEnemyTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyType, s)
}

// EnemyStats are the per-type base values.
type EnemyStats struct {
	Speed   float64
	Health  int
	Sizes   []float64
	MinSize float64 // Smallest entry of Sizes
	Points  int
	XP      int
	Coins   int
}

// EnemyTable maps every enemy type to its stats.
type EnemyTable map[EnemyType]EnemyStats

// NewEnemyTable builds the enemy table from config. Every enemy type must be present.
func NewEnemyTable(cfg map[string]config.ShooterEnemy) (EnemyTable, error) {
	table := make(EnemyTable, len(AllEnemyTypes))
	for name := range cfg {
		if _, err := ParseEnemyType(name); err != nil {
			return nil, err
		}
	}
	for _, t := range AllEnemyTypes {
		ec, ok := cfg[t.String()]
		if !ok {
			return nil, fmt.Errorf("enemy %s: missing config", t)
		}
		if len(ec.Sizes) == 0 {
			return nil, fmt.Errorf("enemy %s: no sizes configured", t)
		}
		sizes := make([]float64, len(ec.Sizes))
		for i, s := range ec.Sizes {
			if s <= 0 {
				return nil, fmt.Errorf("enemy %s: size %v must be positive", t, s)
			}
			sizes[i] = float64(s)
		}
		table[t] = EnemyStats{
			Speed:   ec.Speed,
			Health:  max(1, ec.Health),
			Sizes:   sizes,
			MinSize: slices.Min(sizes),
			Points:  ec.Points,
			XP:      ec.XP,
			Coins:   ec.Coins,
		}
	}
	return table, nil
}

// Enemy is a hostile ship or rock. Position is the center of its box.
type Enemy struct {
	ID        EntityID
	Type      EnemyType
	X, Y      float64
	VX, VY    float64
	Size      float64
	Health    int
	MaxHealth int
	Dead      bool
	Bounds    core.Box
}

func (e *Enemy) syncBounds() {
	e.Bounds = core.BoxAt(e.X, e.Y, e.Size, e.Size)
}

// Update moves the enemy along its velocity.
func (e *Enemy) Update(dt float64) {
	e.X += e.VX * dt
	e.Y += e.VY * dt
	e.syncBounds()
}

// TakeDamage lowers health and reports whether this hit killed the enemy.
func (e *Enemy) TakeDamage(amount int) bool {
	if e.Dead {
		return false
	}
	e.Health = max(0, e.Health-amount)
	if e.Health == 0 {
		e.Dead = true
		return true
	}
	return false
}

// OffScreen reports whether the enemy has left the playfield through the
// bottom or either side.
func (e *Enemy) OffScreen(width float64) bool {
	return e.Bounds.Top() < 0 || e.Bounds.X > width || e.Bounds.Right() < 0
}

// Owner identifies who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerTurret
)

// Projectile is a pooled shot. It remembers every target it has damaged so a
// piercing shot never hits the same target twice.
type Projectile struct {
	ID     EntityID
	Owner  Owner
	X, Y   float64
	VX, VY float64
	W, H   float64
	Damage int
	Pierce int // Extra targets the shot may pass through
	Active bool
	Bounds core.Box

	hits   int
	hitSet map[EntityID]struct{}
}

func newProjectile() *Projectile {
	return &Projectile{hitSet: make(map[EntityID]struct{})}
}

// resetProjectile is the pool reset hook.
func resetProjectile(p *Projectile) {
	clear(p.hitSet)
	p.hits = 0
	p.Active = false
	p.Pierce = 0
	p.Damage = 0
}

// Launch initializes a projectile obtained from the pool.
func (p *Projectile) Launch(id EntityID, owner Owner, x, y, vy, w, h float64, damage, pierce int) {
	p.ID = id
	p.Owner = owner
	p.X, p.Y = x, y
	p.VX, p.VY = 0, vy
	p.W, p.H = w, h
	p.Damage = damage
	p.Pierce = pierce
	p.Active = true
	p.syncBounds()
}

func (p *Projectile) syncBounds() {
	p.Bounds = core.BoxAt(p.X, p.Y, p.W, p.H)
}

// Update moves the projectile and expires it once it leaves the playfield.
func (p *Projectile) Update(dt, height float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.syncBounds()
	if p.Bounds.Y > height || p.Bounds.Top() < 0 {
		p.Active = false
	}
}

// HasHit reports whether the target is already in the hit-set.
func (p *Projectile) HasHit(id EntityID) bool {
	_, ok := p.hitSet[id]
	return ok
}

// MarkHit adds the target to the hit-set. It returns false if the target was
// already present, in which case no damage should be applied.
func (p *Projectile) MarkHit(id EntityID) bool {
	if p.HasHit(id) {
		return false
	}
	p.hitSet[id] = struct{}{}
	return true
}

// RegisterHit consumes one unit of the pierce budget after damage was applied.
func (p *Projectile) RegisterHit() {
	p.hits++
	if p.hits > p.Pierce {
		p.Active = false
	}
}

// Player is the ship controlled by the user. Position is the center of its box.
type Player struct {
	X, Y      float64
	W, H      float64
	Health    int
	MaxHealth int
	Dead      bool
	Stats     PlayerStats
	Bounds    core.Box

	fireCooldown float64
}

// NewPlayer places the player at the bottom center of the playfield.
func NewPlayer(cfg config.ShooterPlayer, stats PlayerStats, width float64) *Player {
	p := &Player{
		X:         width / 2,
		Y:         cfg.Y,
		W:         cfg.Width,
		H:         cfg.Height,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Stats:     stats,
	}
	p.syncBounds()
	return p
}

func (p *Player) syncBounds() {
	p.Bounds = core.BoxAt(p.X, p.Y, p.W, p.H)
}

// Update applies movement intent, keeps the ship on screen and ticks the fire cooldown.
func (p *Player) Update(dt float64, in Intent, width float64) {
	dir := 0.0
	if in.MoveLeft {
		dir--
	}
	if in.MoveRight {
		dir++
	}
	p.X = core.ClampF(p.X+dir*p.Stats.Speed*dt, p.W/2, width-p.W/2)
	p.syncBounds()

	if p.fireCooldown > 0 {
		p.fireCooldown -= dt
	}
}

// CanFire reports whether the fire cooldown has elapsed.
func (p *Player) CanFire() bool {
	return !p.Dead && p.fireCooldown <= 0
}

// Fired restarts the cooldown.
func (p *Player) Fired(interval float64) {
	p.fireCooldown = interval
}

// TakeDamage lowers health and reports whether this hit killed the player.
func (p *Player) TakeDamage(amount int) bool {
	if p.Dead {
		return false
	}
	p.Health = max(0, p.Health-amount)
	if p.Health == 0 {
		p.Dead = true
		return true
	}
	return false
}

// Heal restores health up to the maximum. A dead player stays dead.
func (p *Player) Heal(amount int) {
	if p.Dead {
		return
	}
	p.Health = min(p.MaxHealth, p.Health+amount)
}

// PowerUpKind is the tagged kind of a power-up.
type PowerUpKind int

const (
	PowerRepair PowerUpKind = iota
	PowerRapidFire
	PowerPierce
	PowerZBot
)

// AllPowerUpKinds lists every power-up kind in weight order.
var AllPowerUpKinds = []PowerUpKind{PowerRepair, PowerRapidFire, PowerPierce, PowerZBot}

// String returns the config name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerRepair:
		return "repair"
	case PowerRapidFire:
		return "rapid_fire"
	case PowerPierce:
		return "pierce"
	case PowerZBot:
		return "zbot"
	default:
		return "unknown"
	}
}

// Glyph returns the character used to draw the power-up.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerRepair:
		return '+'
	case PowerRapidFire:
		return 'R'
	case PowerPierce:
		return 'P'
	case PowerZBot:
		return 'Z'
	default:
		return '?'
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	ID      EntityID
	Kind    PowerUpKind
	X, Y    float64
	Size    float64
	TTL     float64
	Visible bool // Blink state, false during the off phase
	Active  bool
	Bounds  core.Box
}

const blinkWindow = 2.0

// Update drops the power-up, ages it and expires it when its lifetime runs out.
func (p *PowerUp) Update(dt, fallSpeed float64) {
	p.Y -= fallSpeed * dt
	p.Bounds = core.BoxAt(p.X, p.Y, p.Size, p.Size)
	p.TTL -= dt
	p.Visible = p.TTL > blinkWindow || int(p.TTL*8)%2 == 0
	if p.TTL <= 0 || p.Bounds.Top() < 0 {
		p.Active = false
	}
}

// DamageNumber is a floating label shown where damage landed.
type DamageNumber struct {
	Value int
	X, Y  float64
	TTL   float64
	Color core.Color
}

// Update floats the label upward and reports whether it is still alive.
func (d *DamageNumber) Update(dt, rise float64) bool {
	d.Y += rise * dt
	d.TTL -= dt
	return d.TTL > 0
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
