package shooter

import (
	"errors"
	"fmt"
	"slices"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
)

var (
	// ErrUnknownLevel is returned when a level number has no configuration.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrInvalidLevel is returned when a level configuration cannot be used.
	ErrInvalidLevel = errors.New("invalid level config")
)

// Choreography is the side a wave's enemies enter from.
type Choreography int

const (
	FromTop Choreography = iota
	FromLeft
	FromRight
)

func (c Choreography) String() string {
	switch c {
	case FromTop:
		return "from_top"
	case FromLeft:
		return "from_left"
	case FromRight:
		return "from_right"
	default:
		return "unknown"
	}
}

// ParseChoreography converts a config name. Empty means FromTop.
func ParseChoreography(s string) (Choreography, error) {
	switch s {
	case "", "from_top":
		return FromTop, nil
	case "from_left":
		return FromLeft, nil
	case "from_right":
		return FromRight, nil
	default:
		return 0, fmt.Errorf("%w: choreography %q", ErrInvalidLevel, s)
	}
}

// BossPattern is the boss attack variant.
type BossPattern int

const (
	PatternThrow  BossPattern = iota // One hazard per attack
	PatternVolley                    // Three hazards fanning out
)

func (p BossPattern) String() string {
	if p == PatternVolley {
		return "volley"
	}
	return "throw"
}

// ParseBossPattern converts a config name. Empty means PatternThrow.
func ParseBossPattern(s string) (BossPattern, error) {
	switch s {
	case "", "throw":
		return PatternThrow, nil
	case "volley":
		return PatternVolley, nil
	default:
		return 0, fmt.Errorf("%w: boss pattern %q", ErrInvalidLevel, s)
	}
}

// Wave is an ordered batch of enemies.
type Wave struct {
	Enemy        EnemyType
	Count        int
	Interval     float64
	Choreography Choreography
	Delay        float64
}

// LevelConfig describes one level.
type LevelConfig struct {
	Number        int
	Name          string
	EnemyTypes    []EnemyType
	SpawnInterval float64
	Waves         []Wave
	BossThreshold int
	BossPattern   BossPattern
}

// Allows reports whether the level lets the given enemy type spawn in flat mode.
func (l LevelConfig) Allows(t EnemyType) bool {
	return len(l.EnemyTypes) == 0 || slices.Contains(l.EnemyTypes, t)
}

// LevelCatalog holds the campaign levels and synthesizes endless ones.
type LevelCatalog struct {
	levels map[int]LevelConfig
	order  []int
	boss   config.ShooterBoss
	spawn  config.ShooterSpawn
}

// DefaultBossThreshold returns the kill count that summons the boss on a level
// with no explicit threshold.
func DefaultBossThreshold(boss config.ShooterBoss, level int) int {
	base := boss.ThresholdBase
	if base <= 0 {
		base = 10
	}
	per := boss.ThresholdPerLevel
	if per <= 0 {
		per = 5
	}
	return base + per*(level-1)
}

// NewLevelCatalog validates level specs and converts them to LevelConfigs.
func NewLevelCatalog(levels config.LevelsConfig, shooter config.ShooterConfig) (*LevelCatalog, error) {
	c := &LevelCatalog{
		levels: make(map[int]LevelConfig, len(levels.Levels)),
		boss:   shooter.Boss,
		spawn:  shooter.Spawn,
	}
	for i, spec := range levels.Levels {
		num := spec.Number
		if num == 0 {
			num = i + 1
		}
		if num < 1 {
			return nil, fmt.Errorf("%w: level number %d", ErrInvalidLevel, num)
		}
		if _, dup := c.levels[num]; dup {
			return nil, fmt.Errorf("%w: duplicate level %d", ErrInvalidLevel, num)
		}
		lvl, err := c.convert(num, spec)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", num, err)
		}
		c.levels[num] = lvl
		c.order = append(c.order, num)
	}
	if len(c.order) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidLevel)
	}
	slices.Sort(c.order)
	return c, nil
}

func (c *LevelCatalog) convert(num int, spec config.LevelSpec) (LevelConfig, error) {
	lvl := LevelConfig{
		Number:        num,
		Name:          spec.Name,
		SpawnInterval: spec.SpawnInterval,
		BossThreshold: spec.BossThreshold,
	}
	if lvl.SpawnInterval <= 0 {
		lvl.SpawnInterval = c.spawn.Interval
	}
	if lvl.BossThreshold <= 0 {
		lvl.BossThreshold = DefaultBossThreshold(c.boss, num)
	}

	pattern, err := ParseBossPattern(spec.BossPattern)
	if err != nil {
		return lvl, err
	}
	lvl.BossPattern = pattern

	for _, name := range spec.EnemyTypes {
		t, err := ParseEnemyType(name)
		if err != nil {
			return lvl, err
		}
		lvl.EnemyTypes = append(lvl.EnemyTypes, t)
	}

	for i, ws := range spec.Waves {
		t, err := ParseEnemyType(ws.Enemy)
		if err != nil {
			return lvl, fmt.Errorf("wave %d: %w", i+1, err)
		}
		ch, err := ParseChoreography(ws.Choreography)
		if err != nil {
			return lvl, fmt.Errorf("wave %d: %w", i+1, err)
		}
		if ws.Count <= 0 || ws.Interval <= 0 {
			return lvl, fmt.Errorf("wave %d: %w: count and interval must be positive", i+1, ErrInvalidLevel)
		}
		lvl.Waves = append(lvl.Waves, Wave{
			Enemy:        t,
			Count:        ws.Count,
			Interval:     ws.Interval,
			Choreography: ch,
			Delay:        max(0, ws.Delay),
		})
	}
	return lvl, nil
}

// Level returns the campaign level with the given number.
func (c *LevelCatalog) Level(n int) (LevelConfig, error) {
	lvl, ok := c.levels[n]
	if !ok {
		return LevelConfig{}, fmt.Errorf("%w: %d", ErrUnknownLevel, n)
	}
	return lvl, nil
}

// Has reports whether a campaign level exists.
func (c *LevelCatalog) Has(n int) bool {
	_, ok := c.levels[n]
	return ok
}

// First returns the lowest campaign level number.
func (c *LevelCatalog) First() int {
	return c.order[0]
}

// Numbers returns campaign level numbers in ascending order.
func (c *LevelCatalog) Numbers() []int {
	return slices.Clone(c.order)
}

// Endless synthesizes level n for endless mode: no waves, every enemy type,
// the flat spawn interval and a volley boss on every third level.
func (c *LevelCatalog) Endless(n int) LevelConfig {
	pattern := PatternThrow
	if n%3 == 0 {
		pattern = PatternVolley
	}
	return LevelConfig{
		Number:        n,
		Name:          fmt.Sprintf("Deep Space %d", n),
		EnemyTypes:    slices.Clone(AllEnemyTypes),
		SpawnInterval: c.spawn.Interval,
		BossThreshold: DefaultBossThreshold(c.boss, n),
		BossPattern:   pattern,
	}
}
