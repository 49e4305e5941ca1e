package shooter

import (
	"errors"
	"fmt"
	"math"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
	"github.com/woodriveer/duduInSpace-sub000/internal/core"
)

// Persistent preference keys.
const (
	PrefCoins     = "coins"
	PrefBestLevel = "best_level"
)

var (
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrInsufficientFunds = errors.New("insufficient coins")
	ErrMaxLevel          = errors.New("upgrade already at max level")
)

// UpgradeKind identifies an upgrade track.
type UpgradeKind int

const (
	UpgradeSpeed UpgradeKind = iota
	UpgradeDamage
	UpgradeBulletSize
	UpgradeFireRate
)

// AllUpgradeKinds lists every upgrade track in display order.
var AllUpgradeKinds = []UpgradeKind{UpgradeSpeed, UpgradeDamage, UpgradeBulletSize, UpgradeFireRate}

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeSpeed:
		return "speed"
	case UpgradeDamage:
		return "damage"
	case UpgradeBulletSize:
		return "bullet_size"
	case UpgradeFireRate:
		return "fire_rate"
	default:
		return "unknown"
	}
}

// PrefKey is the preference key holding the upgrade level.
func (k UpgradeKind) PrefKey() string {
	return "upgrade." + k.String()
}

// ParseUpgradeKind converts a name to an UpgradeKind.
func ParseUpgradeKind(s string) (UpgradeKind, error) {
	for _, k := range AllUpgradeKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, s)
}

// LevelCompletedKey is the preference key flagging a completed level.
func LevelCompletedKey(level int) string {
	return fmt.Sprintf("level.%d.completed", level)
}

// PlayerStats are the effective ship stats after upgrades.
type PlayerStats struct {
	Speed        float64
	Damage       int
	BulletW      float64
	BulletH      float64
	BulletSpeed  float64
	FireInterval float64
}

// Upgrades prices upgrades and derives player stats from persisted levels.
type Upgrades struct {
	specs map[UpgradeKind]config.UpgradeSpec
	base  config.ShooterPlayer
}

// NewUpgrades validates the upgrade table. Every kind must be configured and
// no unknown kinds may appear.
func NewUpgrades(cfg config.ShooterConfig) (*Upgrades, error) {
	u := &Upgrades{
		specs: make(map[UpgradeKind]config.UpgradeSpec, len(AllUpgradeKinds)),
		base:  cfg.Player,
	}
	for name, spec := range cfg.Upgrades {
		k, err := ParseUpgradeKind(name)
		if err != nil {
			return nil, err
		}
		if spec.MaxLevel < 0 || spec.BaseCost < 0 {
			return nil, fmt.Errorf("upgrade %s: negative cost or level", name)
		}
		u.specs[k] = spec
	}
	for _, k := range AllUpgradeKinds {
		if _, ok := u.specs[k]; !ok {
			return nil, fmt.Errorf("upgrade %s: missing config", k)
		}
	}
	return u, nil
}

// Level returns the persisted level of an upgrade, clamped to its max.
func (u *Upgrades) Level(prefs core.Prefs, kind UpgradeKind) int {
	spec := u.specs[kind]
	return core.Clamp(prefs.Int(kind.PrefKey(), 0), 0, spec.MaxLevel)
}

// MaxLevel returns the highest level of an upgrade.
func (u *Upgrades) MaxLevel(kind UpgradeKind) int {
	return u.specs[kind].MaxLevel
}

// Cost returns the price of the next level of an upgrade.
func (u *Upgrades) Cost(prefs core.Prefs, kind UpgradeKind) (int, error) {
	spec, ok := u.specs[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownUpgrade, kind)
	}
	lvl := u.Level(prefs, kind)
	if lvl >= spec.MaxLevel {
		return 0, fmt.Errorf("%s: %w", kind, ErrMaxLevel)
	}
	return spec.BaseCost * (lvl + 1), nil
}

// Purchase buys the next level of an upgrade, deducting coins from prefs.
// Prefs shared between sessions check and deduct in one update.
func (u *Upgrades) Purchase(prefs core.Prefs, kind UpgradeKind) error {
	return update(prefs, func(p core.Prefs) error {
		return u.purchase(p, kind)
	})
}

func (u *Upgrades) purchase(prefs core.Prefs, kind UpgradeKind) error {
	cost, err := u.Cost(prefs, kind)
	if err != nil {
		return err
	}
	coins := prefs.Int(PrefCoins, 0)
	if coins < cost {
		return fmt.Errorf("%s costs %d, have %d: %w", kind, cost, coins, ErrInsufficientFunds)
	}
	if err := prefs.SetInt(PrefCoins, coins-cost); err != nil {
		return fmt.Errorf("cannot deduct coins: %w", err)
	}
	if err := prefs.SetInt(kind.PrefKey(), u.Level(prefs, kind)+1); err != nil {
		return fmt.Errorf("cannot save %s level: %w", kind, err)
	}
	return nil
}

// PlayerStats computes effective player stats from persisted upgrade levels.
func (u *Upgrades) PlayerStats(prefs core.Prefs) PlayerStats {
	bonus := func(k UpgradeKind) float64 {
		return u.specs[k].PerLevel * float64(u.Level(prefs, k))
	}

	bulletScale := 1 + bonus(UpgradeBulletSize)
	return PlayerStats{
		Speed:        u.base.Speed * (1 + bonus(UpgradeSpeed)),
		Damage:       max(1, u.base.Damage+int(math.Round(bonus(UpgradeDamage)))),
		BulletW:      u.base.BulletWidth * bulletScale,
		BulletH:      u.base.BulletHeight * bulletScale,
		BulletSpeed:  u.base.BulletSpeed,
		FireInterval: u.base.FireInterval / (1 + bonus(UpgradeFireRate)),
	}
}

// Deposit adds coins earned in a run to the persisted balance.
func Deposit(prefs core.Prefs, coins int) error {
	if coins <= 0 {
		return nil
	}
	if pu, ok := prefs.(core.PrefsUpdater); ok {
		if _, err := pu.AddInt(PrefCoins, coins); err != nil {
			return fmt.Errorf("cannot deposit coins: %w", err)
		}
		return nil
	}
	if err := prefs.SetInt(PrefCoins, prefs.Int(PrefCoins, 0)+coins); err != nil {
		return fmt.Errorf("cannot deposit coins: %w", err)
	}
	return nil
}

// MarkLevelCompleted flags a level as completed and raises the best level.
func MarkLevelCompleted(prefs core.Prefs, level int) error {
	return update(prefs, func(p core.Prefs) error {
		if err := p.SetInt(LevelCompletedKey(level), 1); err != nil {
			return fmt.Errorf("cannot mark level %d: %w", level, err)
		}
		if level > p.Int(PrefBestLevel, 0) {
			if err := p.SetInt(PrefBestLevel, level); err != nil {
				return fmt.Errorf("cannot save best level: %w", err)
			}
		}
		return nil
	})
}

// update runs fn atomically when prefs supports it, directly otherwise.
func update(prefs core.Prefs, fn func(p core.Prefs) error) error {
	if pu, ok := prefs.(core.PrefsUpdater); ok {
		return pu.Update(fn)
	}
	return fn(prefs)
}

// LevelCompleted reports whether a level was ever completed.
func LevelCompleted(prefs core.Prefs, level int) bool {
	return prefs.Int(LevelCompletedKey(level), 0) == 1
}
