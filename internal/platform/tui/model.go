package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/registry"
	"github.com/woodriveer/duduInSpace-sub000/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	palette   *Palette
	logger    *log.Logger
	config    core.RuntimeConfig
	input     *HeldInput
	keyMapper *KeyMapper
	gameState core.GameState

	standalone bool // Quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been recorded
	tickID     int64
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Store      *storage.Store // nil plays without persistence
	Palette    *Palette       // nil uses the stdout palette
	Logger     *log.Logger
	HoldTicks  int
	Standalone bool
}

// NewGameModel creates a model for the given game. Games that persist
// preferences get the store injected before their first Reset.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Palette == nil {
		opts.Palette = NewPalette(nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if pu, ok := game.(registry.PrefsUser); ok && opts.Store != nil {
		pu.SetPrefs(opts.Store)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		palette:    opts.Palette,
		logger:     opts.Logger,
		config:     cfg,
		input:      NewHeldInput(opts.HoldTicks),
		keyMapper:  NewKeyMapper(),
		standalone: opts.Standalone,
		tickID:     nextTickID(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game once it is paused or over
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	m.input.Press(action)
	return m, nil
}

// handleResize tracks the terminal size. The game restarts with the new
// dimensions unless the run is already over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.input.Frame()
	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Fresh seed for every new run
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.input.Release()
		return m, tickCmd(m.config.TickRate, m.tickID)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("game event", "game", m.game.ID(), "event", ev)
	}

	switch {
	case m.gameState.GameOver && !wasOver:
		m.recordRun()
	case !m.gameState.GameOver && wasOver:
		// Retrying a level: the next game over is a new record
		m.runSaved = false
		m.input.Release()
	}

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// recordRun saves the score and run summary once per game over.
func (m *GameModel) recordRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true
	gameID := m.game.ID()

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(gameID, m.gameState.Score); err != nil {
			m.logger.Warn("cannot save score", "game", gameID, "err", err)
		}
	}

	rr, ok := m.game.(registry.RunReporter)
	if !ok {
		return
	}
	sum := rr.RunSummary()
	if sum.Score == 0 && sum.Kills == 0 {
		return
	}
	runID, err := m.store.SaveRun(storage.RunRecord{
		GameID:       gameID,
		LevelReached: sum.LevelReached,
		Score:        sum.Score,
		Kills:        sum.Kills,
		Coins:        sum.Coins,
		Won:          sum.Won,
		Duration:     int(sum.Duration.Seconds()),
	})
	if err != nil {
		m.logger.Warn("cannot save run", "game", gameID, "err", err)
		return
	}
	m.logger.Debug("run saved", "run", runID, "score", sum.Score, "level", sum.LevelReached)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".dudu", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, cfg, GameOptions{
		Store:      store,
		Logger:     logger,
		Standalone: true,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
