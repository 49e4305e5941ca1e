package shooter

import (
	"github.com/woodriveer/duduInSpace-sub000/internal/config"
)

// PowerUpWeight is one entry of a weighted power-up roll.
type PowerUpWeight struct {
	Kind   PowerUpKind
	Weight int
}

// PowerUpWeights converts config weights into roll order.
func PowerUpWeights(weights map[string]int) []PowerUpWeight {
	out := make([]PowerUpWeight, 0, len(AllPowerUpKinds))
	for _, k := range AllPowerUpKinds {
		if w := weights[k.String()]; w > 0 {
			out = append(out, PowerUpWeight{Kind: k, Weight: w})
		}
	}
	return out
}

// rollPowerUp decides whether a kill drops a power-up and which kind.
func rollPowerUp(rng *SimpleRNG, chance float64, weights []PowerUpWeight) (PowerUpKind, bool) {
	if chance <= 0 || rng.Float64() >= chance {
		return 0, false
	}
	total := 0
	for _, w := range weights {
		total += w.Weight
	}
	if total == 0 {
		return 0, false
	}
	roll := rng.Intn(total)
	for _, w := range weights {
		if roll < w.Weight {
			return w.Kind, true
		}
		roll -= w.Weight
	}
	return 0, false
}

// Effects tracks timed power-up effects on the player.
type Effects struct {
	RapidLeft  float64
	PierceLeft float64
}

// Update counts down every active effect.
func (e *Effects) Update(dt float64) {
	e.RapidLeft = max(0, e.RapidLeft-dt)
	e.PierceLeft = max(0, e.PierceLeft-dt)
}

// FireInterval applies rapid fire to the base interval.
func (e Effects) FireInterval(base float64, cfg config.ShooterPowerUps) float64 {
	if e.RapidLeft > 0 && cfg.RapidFactor > 0 {
		return base * cfg.RapidFactor
	}
	return base
}

// Pierce returns how many extra targets a new shot may pass through.
func (e Effects) Pierce(cfg config.ShooterPowerUps) int {
	if e.PierceLeft > 0 {
		return cfg.PierceExtra
	}
	return 0
}

// Turret is the ZBot drone that flies beside the player and fires straight up.
type Turret struct {
	X, Y     float64
	TTL      float64
	cooldown float64
}

// Active reports whether the turret is still deployed.
func (t *Turret) Active() bool {
	return t != nil && t.TTL > 0
}

// Update follows the player and reports whether the turret fires this frame.
func (t *Turret) Update(dt, px, py float64, cfg config.ShooterPowerUps) bool {
	t.X = px + cfg.TurretOffsetX
	t.Y = py
	t.TTL -= dt
	if t.TTL <= 0 {
		return false
	}
	t.cooldown -= dt
	if t.cooldown > 0 {
		return false
	}
	t.cooldown = cfg.TurretInterval
	return true
}
