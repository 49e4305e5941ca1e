package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/games/shooter"
	"github.com/woodriveer/duduInSpace-sub000/internal/storage"
)

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
	screenShop
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store   *storage.Store // nil keeps progress in memory for the session
	Setup   shooter.Setup
	Palette *Palette
	Logger  *log.Logger
	User    string
}

// SessionModel manages the whole flow of one player: menu, game, scores and
// the upgrade shop. Each session owns its own game and world.
type SessionModel struct {
	opts   SessionOptions
	prefs  core.Prefs
	config core.RuntimeConfig
	screen sessionScreen

	menu   MenuModel
	game   *GameModel
	scores ScoreboardModel
	shop   ShopModel

	quitting bool
}

// NewSessionModel creates a session starting at the main menu.
func NewSessionModel(cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Palette == nil {
		opts.Palette = NewPalette(nil)
	}

	var prefs core.Prefs = core.NewMemoryPrefs()
	if opts.Store != nil {
		prefs = opts.Store
	}

	m := SessionModel{
		opts:   opts,
		prefs:  prefs,
		config: cfg,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	var levels []int
	if m.opts.Setup.Levels != nil {
		levels = m.opts.Setup.Levels.Numbers()
	}
	return NewMenuModel(m.prefs, levels, m.config, false)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenShop:
		return m.updateShop(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoiceCampaign:
		g := shooter.New()
		g.StartAt(m.menu.StartLevel())
		return m.startGame(g)

	case ChoiceEndless:
		return m.startGame(shooter.NewEndless())

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH, false)
		m.screen = screenScores
		return m, m.scores.Init()

	case ChoiceUpgrades:
		if m.opts.Setup.Upgrades == nil {
			m.menu = m.newMenu()
			return m, nil
		}
		m.shop = NewShopModel(m.prefs, m.opts.Setup.Upgrades, m.config.ScreenW, false)
		m.screen = screenShop
		return m, m.shop.Init()
	}

	return m, cmd
}

func (m SessionModel) startGame(g *shooter.Game) (tea.Model, tea.Cmd) {
	g.SetPrefs(m.prefs)
	gm := NewGameModel(g, m.config, GameOptions{
		Store:   m.opts.Store,
		Palette: m.opts.Palette,
		Logger:  m.opts.Logger,
	})
	m.game = &gm
	m.screen = screenGame
	m.opts.Logger.Info("run started", "user", m.opts.User, "game", g.ID())
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.shop.Update(msg)
	if sm, ok := next.(ShopModel); ok {
		m.shop = sm
	}

	if m.shop.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.shop.Done() {
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so coins and unlocked levels are current.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.screen = screenMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	case screenShop:
		return m.shop.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the full menu-driven flow in the local terminal.
func RunSession(cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
