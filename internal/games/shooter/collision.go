package shooter

import "slices"

// Frame is a snapshot of everything that can collide this frame. Slices are
// copies, so handlers may append to or remove from the live collections.
type Frame struct {
	Player      *Player
	Enemies     []*Enemy
	Projectiles []*Projectile
	TurretShots []*Projectile
	Boss        *Boss
	Hazards     []*Hazard
	PowerUps    []*PowerUp
}

// Handler resolves collisions. Detect calls it; it decides damage, score and removal.
type Handler interface {
	PlayerHitEnemy(e *Enemy)
	ProjectileHitEnemy(p *Projectile, e *Enemy)
	ProjectileHitBoss(p *Projectile, b *Boss)
	ProjectileHitHazard(p *Projectile, h *Hazard)
	PlayerHitBoss(b *Boss)
	PlayerHitHazard(h *Hazard)
	PowerUpCollected(pu *PowerUp)
}

// SnapshotFrame copies the live collections into a Frame.
func SnapshotFrame(player *Player, enemies []*Enemy, projectiles, turretShots []*Projectile, boss *Boss, powerUps []*PowerUp) Frame {
	f := Frame{
		Player:      player,
		Enemies:     slices.Clone(enemies),
		Projectiles: slices.Clone(projectiles),
		TurretShots: slices.Clone(turretShots),
		Boss:        boss,
		PowerUps:    slices.Clone(powerUps),
	}
	if boss != nil {
		f.Hazards = slices.Clone(boss.Hazards())
	}
	return f
}

// Detect checks every colliding pair in the frame once and reports overlaps to h.
// A projectile is reported against a target at most once in its lifetime.
func Detect(f Frame, h Handler) {
	for _, p := range f.Projectiles {
		detectProjectile(f, p, h)
	}
	for _, p := range f.TurretShots {
		detectProjectile(f, p, h)
	}

	pl := f.Player
	if pl == nil || pl.Dead {
		return
	}

	for _, e := range f.Enemies {
		if !e.Dead && pl.Bounds.Overlaps(e.Bounds) {
			h.PlayerHitEnemy(e)
		}
	}

	if f.Boss != nil && !f.Boss.Dead && pl.Bounds.Overlaps(f.Boss.Bounds) {
		h.PlayerHitBoss(f.Boss)
	}

	for _, hz := range f.Hazards {
		if pl.Bounds.Overlaps(hz.Bounds) {
			h.PlayerHitHazard(hz)
		}
	}

	for _, pu := range f.PowerUps {
		if pu.Active && pl.Bounds.Overlaps(pu.Bounds) {
			h.PowerUpCollected(pu)
		}
	}
}

func detectProjectile(f Frame, p *Projectile, h Handler) {
	for _, e := range f.Enemies {
		if !p.Active {
			return
		}
		if e.Dead || !p.Bounds.Overlaps(e.Bounds) {
			continue
		}
		if p.MarkHit(e.ID) {
			h.ProjectileHitEnemy(p, e)
		}
	}

	if b := f.Boss; b != nil && p.Active && !b.Dead && p.Bounds.Overlaps(b.Bounds) {
		if p.MarkHit(b.ID) {
			h.ProjectileHitBoss(p, b)
		}
	}

	for _, hz := range f.Hazards {
		if !p.Active {
			return
		}
		if p.Bounds.Overlaps(hz.Bounds) && p.MarkHit(hz.ID) {
			h.ProjectileHitHazard(p, hz)
		}
	}
}
