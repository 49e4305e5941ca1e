package shooter

// Phase is the level progression state.
type Phase int

const (
	PhaseNormal Phase = iota
	PhaseBossFight
	PhaseLevelCompleting
)

func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseBossFight:
		return "boss_fight"
	case PhaseLevelCompleting:
		return "level_completing"
	default:
		return "unknown"
	}
}

// Progression drives one level through Normal, BossFight and LevelCompleting.
// The boss exists exactly while the phase is BossFight.
type Progression struct {
	level     int
	threshold int
	kills     int
	phase     Phase
	phaseTime float64
	boss      *Boss
	newBoss   func() *Boss
}

// NewProgression starts a level in the Normal phase. newBoss is called once,
// when the kill threshold is reached.
func NewProgression(level, threshold int, newBoss func() *Boss) *Progression {
	return &Progression{
		level:     level,
		threshold: max(1, threshold),
		newBoss:   newBoss,
	}
}

// Update advances the time spent in the current phase.
func (p *Progression) Update(dt float64) {
	p.phaseTime += dt
}

// IncrementScore records one kill. It returns true if this kill summoned the boss.
func (p *Progression) IncrementScore() bool {
	p.kills++
	if p.phase != PhaseNormal || p.boss != nil {
		return false
	}
	if p.kills < p.threshold {
		return false
	}
	p.boss = p.newBoss()
	p.setPhase(PhaseBossFight)
	return true
}

// DamageBoss applies damage to the live boss. The call that kills it also
// clears the boss and enters LevelCompleting, and returns true.
func (p *Progression) DamageBoss(amount int) bool {
	if p.boss == nil {
		return false
	}
	if !p.boss.TakeDamage(amount) {
		return false
	}
	p.boss = nil
	p.setPhase(PhaseLevelCompleting)
	return true
}

func (p *Progression) setPhase(ph Phase) {
	p.phase = ph
	p.phaseTime = 0
}

// Boss returns the live boss, or nil.
func (p *Progression) Boss() *Boss { return p.boss }

// Phase returns the current phase.
func (p *Progression) Phase() Phase { return p.phase }

// PhaseTime returns seconds spent in the current phase.
func (p *Progression) PhaseTime() float64 { return p.phaseTime }

// Kills returns kills counted on this level.
func (p *Progression) Kills() int { return p.kills }

// Threshold returns the kill count that summons the boss.
func (p *Progression) Threshold() int { return p.threshold }

// Level returns the level number.
func (p *Progression) Level() int { return p.level }

// IsBossFight reports whether the boss is alive.
func (p *Progression) IsBossFight() bool { return p.phase == PhaseBossFight }

// IsLevelCompleting reports whether the boss has been defeated.
func (p *Progression) IsLevelCompleting() bool { return p.phase == PhaseLevelCompleting }
