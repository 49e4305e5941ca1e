package shooter

import (
	"errors"
	"math"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/pool"
)

// ErrInvalidEffect is returned when an effect's state is no longer finite.
var ErrInvalidEffect = errors.New("effect state is not finite")

// Particle is one fragment of an explosion.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Life   float64
}

// ExplosionParams controls the shape of an explosion burst.
type ExplosionParams struct {
	Count    int
	Speed    float64
	Lifetime float64
	Size     float64
}

// ExplosionParamsFrom reads burst parameters from config.
func ExplosionParamsFrom(cfg config.ShooterEffects) ExplosionParams {
	return ExplosionParams{
		Count:    max(1, cfg.ExplosionParticles),
		Speed:    cfg.ParticleSpeed,
		Lifetime: cfg.ParticleLifetime,
		Size:     cfg.ParticleSize,
	}
}

// Explosion is a pooled burst of particles. It stays active while any particle lives.
type Explosion struct {
	X, Y      float64
	Particles []Particle
	Size      float64
	Active    bool
}

func newExplosion() *Explosion {
	return &Explosion{}
}

func resetExplosion(e *Explosion) {
	e.Particles = e.Particles[:0]
	e.Active = false
}

// newExplosionPool builds a pool of explosions with the given free-list cap.
func newExplosionPool(maxSize int) *pool.Pool[*Explosion] {
	return pool.New(maxSize, newExplosion, resetExplosion)
}

// Start spreads particles evenly around (x, y) with a little random jitter.
func (e *Explosion) Start(x, y float64, p ExplosionParams, rng *SimpleRNG) {
	e.X, e.Y = x, y
	e.Size = p.Size
	e.Particles = e.Particles[:0]
	for i := range p.Count {
		angle := 2*math.Pi*float64(i)/float64(p.Count) + rng.Range(-0.2, 0.2)
		speed := p.Speed * rng.Range(0.6, 1.2)
		e.Particles = append(e.Particles, Particle{
			X:    x,
			Y:    y,
			DX:   math.Cos(angle) * speed,
			DY:   math.Sin(angle) * speed,
			Life: p.Lifetime * rng.Range(0.7, 1.0),
		})
	}
	e.Active = true
}

// Update advances all particles. It returns whether the explosion is still
// alive, or ErrInvalidEffect if a particle left the finite range. The caller
// decides what to do with a failed explosion.
func (e *Explosion) Update(dt float64) (bool, error) {
	if !e.Active {
		return false, nil
	}
	alive := false
	for i := range e.Particles {
		pt := &e.Particles[i]
		if pt.Life <= 0 {
			continue
		}
		pt.X += pt.DX * dt
		pt.Y += pt.DY * dt
		pt.Life -= dt
		if !finite(pt.X, pt.Y, pt.Life) {
			e.Active = false
			return false, ErrInvalidEffect
		}
		if pt.Life > 0 {
			alive = true
		}
	}
	e.Active = alive
	return alive, nil
}

// Overlaps reports whether any live particle overlaps the box.
func (e *Explosion) Overlaps(box core.Box) bool {
	if !e.Active {
		return false
	}
	for _, pt := range e.Particles {
		if pt.Life > 0 && core.BoxAt(pt.X, pt.Y, e.Size, e.Size).Overlaps(box) {
			return true
		}
	}
	return false
}

// updateExplosions advances every explosion in place, releasing finished or
// failed ones back to their pool. Failures are reported through onError and
// never stop the remaining explosions from updating.
func updateExplosions(list []*Explosion, dt float64, p *pool.Pool[*Explosion], onError func(error)) []*Explosion {
	kept := list[:0]
	for _, e := range list {
		alive, err := e.Update(dt)
		if err != nil {
			onError(err)
		}
		if alive {
			kept = append(kept, e)
			continue
		}
		p.Free(e)
	}
	clear(list[len(kept):])
	return kept
}
