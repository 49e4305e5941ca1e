package shooter

import "math"

// RunStats tracks one run: experience level, score and earnings.
type RunStats struct {
	Level          int
	CurrentXP      int
	XPToNextLevel  int
	Score          int
	Kills          int
	Coins          int
	BossesDefeated int
	Elapsed        float64
}

// NewRunStats returns stats for a fresh run at level 1.
func NewRunStats() *RunStats {
	return &RunStats{Level: 1, XPToNextLevel: xpForLevel(1)}
}

// xpForLevel is floor(100 * 1.5^(level-1)).
func xpForLevel(level int) int {
	return int(math.Floor(100 * math.Pow(1.5, float64(level-1))))
}

// AddXP adds experience and returns how many levels were gained.
// Overflow carries into the next level.
func (s *RunStats) AddXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	s.CurrentXP += amount
	gained := 0
	for s.CurrentXP >= s.XPToNextLevel {
		s.CurrentXP -= s.XPToNextLevel
		s.Level++
		s.XPToNextLevel = xpForLevel(s.Level)
		gained++
	}
	return gained
}
