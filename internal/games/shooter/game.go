// Package shooter implements Dudu in Space, a vertical space shooter.
//
// The World owns the simulation: a spawner feeds enemies, a progression
// machine summons a boss once enough enemies fall, and a collision pass over
// snapshot copies resolves hits. Game adapts the World to the game registry.
package shooter

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/woodriveer/duduInSpace-sub000/internal/config"
	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateWon      = "won"
	StateError    = "error" // Configuration could not be loaded
)

// Minimum terminal size
const (
	minScreenW = 30
	minScreenH = 16
)

var (
	configPath       string
	levelsPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
	logger           = log.Default()
)

// SetConfigPath sets the custom game config path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsPath sets the custom level config path.
func SetLevelsPath(path string) {
	levelsPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the level a new run starts on. 0 means the first level.
func SetStartLevel(level int) {
	startLevel = level
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Setup is a fully loaded and validated game configuration.
type Setup struct {
	Config   config.ShooterConfig
	Levels   *LevelCatalog
	Upgrades *Upgrades
}

// Load reads the game and level configs from the configured paths, applies
// the difficulty preset and validates everything a run needs.
func Load() (Setup, error) {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		return Setup{}, err
	}
	config.ApplyShooterPreset(&cfg, difficultyPreset)

	levelsCfg, err := config.LoadLevels(levelsPath)
	if err != nil {
		return Setup{}, err
	}

	levels, err := NewLevelCatalog(levelsCfg, cfg)
	if err != nil {
		return Setup{}, fmt.Errorf("levels: %w", err)
	}
	if _, err := NewEnemyTable(cfg.Enemies); err != nil {
		return Setup{}, fmt.Errorf("enemies: %w", err)
	}
	upgrades, err := NewUpgrades(cfg)
	if err != nil {
		return Setup{}, fmt.Errorf("upgrades: %w", err)
	}
	if startLevel > 0 {
		if _, err := levels.Level(startLevel); err != nil {
			return Setup{}, err
		}
	}

	return Setup{Config: cfg, Levels: levels, Upgrades: upgrades}, nil
}

// Game adapts the World to the registry.Game interface.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	setup   Setup
	world   *World
	prefs   core.Prefs
	logger  *log.Logger
	startAt int // Per-instance start level; overrides SetStartLevel

	state          string
	err            error
	screenTooSmall bool
	events         []string

	// Persistence bookkeeping so retries never double-deposit
	deposited int
	marked    int
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign, prefs: core.NewMemoryPrefs(), logger: logger}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, prefs: core.NewMemoryPrefs(), logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "shooter_endless"
	}
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Dudu in Space (Endless)"
	}
	return "Dudu in Space"
}

// SetPrefs implements registry.PrefsUser.
func (g *Game) SetPrefs(p core.Prefs) {
	if p != nil {
		g.prefs = p
	}
}

// StartAt makes this game's campaign runs begin on the given level.
// 0 falls back to the level set with SetStartLevel.
func (g *Game) StartAt(level int) {
	g.startAt = level
}

// Reset loads configuration and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.deposited = 0
	g.marked = 0
	g.events = nil

	setup, err := Load()
	if err != nil {
		g.fail(err)
		return
	}
	g.setup = setup

	start := 0
	if g.mode == ModeCampaign {
		start = startLevel
		if g.startAt > 0 {
			start = g.startAt
		}
	}
	world, err := NewWorld(WorldOptions{
		Config:     setup.Config,
		Levels:     setup.Levels,
		Mode:       g.mode,
		StartLevel: start,
		Stats:      setup.Upgrades.PlayerStats(g.prefs),
		Seed:       runtime.Seed,
		Logger:     g.logger,
	})
	if err != nil {
		g.fail(err)
		return
	}

	g.world = world
	g.err = nil
	g.state = StatePlaying
}

func (g *Game) fail(err error) {
	g.err = err
	g.world = nil
	g.state = StateError
	g.logger.Error("cannot start run", "game", g.ID(), "err", err)
}

// Err returns the configuration error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.world == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateGameOver || g.state == StateWon {
		switch {
		case in.Has(core.ActionRestart):
			g.Reset(g.runtime)
		case in.Has(core.ActionConfirm) && g.state == StateGameOver && g.mode == ModeCampaign:
			g.world.RestartLevel()
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.world.Update(g.runtime.DeltaTime(), Intent{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		Shoot:     in.Has(core.ActionFire),
	})
	g.events = append(g.events, g.world.Events()...)

	switch {
	case g.world.Won():
		g.state = StateWon
		g.persist()
	case g.world.GameOver():
		g.state = StateGameOver
		g.persist()
	}

	return core.StepResult{State: g.State(), Events: slices.Clone(g.events)}
}

// persist deposits coins and records completed levels not yet written.
func (g *Game) persist() {
	stats := g.world.Stats()
	if err := Deposit(g.prefs, stats.Coins-g.deposited); err != nil {
		g.logger.Warn("cannot save coins", "err", err)
	} else {
		g.deposited = stats.Coins
	}

	completed := g.world.CompletedLevels()
	for _, lvl := range completed[g.marked:] {
		if g.mode == ModeEndless {
			break
		}
		if err := MarkLevelCompleted(g.prefs, lvl); err != nil {
			g.logger.Warn("cannot save level progress", "level", lvl, "err", err)
			return
		}
	}
	g.marked = len(completed)
}

// RunSummary implements registry.RunReporter.
func (g *Game) RunSummary() registry.RunSummary {
	if g.world == nil {
		return registry.RunSummary{}
	}
	stats := g.world.Stats()
	return registry.RunSummary{
		LevelReached: g.world.Level().Number,
		Score:        stats.Score,
		Kills:        stats.Kills,
		Coins:        stats.Coins,
		Won:          g.world.Won(),
		Duration:     time.Duration(stats.Elapsed * float64(time.Second)),
	}
}

// World returns the running world, or nil when the game failed to start.
func (g *Game) World() *World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.state == StateGameOver || g.state == StateWon || g.state == StateError,
		Paused:   g.state == StatePaused,
		Won:      g.state == StateWon,
	}
	if g.world != nil {
		st.Score = g.world.Stats().Score
		st.Level = g.world.Level().Number
	}
	return st
}

// Register the games with the registry
func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
	registry.Register("shooter_endless", func() registry.Game {
		return NewEndless()
	})
}
