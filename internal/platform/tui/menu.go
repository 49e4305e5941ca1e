package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/games/shooter"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceCampaign
	ChoiceEndless
	ChoiceUpgrades
	ChoiceScores
	ChoiceQuit
)

type menuItem struct {
	choice MenuChoice
	label  string
}

var menuItems = []menuItem{
	{ChoiceCampaign, "Campaign"},
	{ChoiceEndless, "Endless"},
	{ChoiceUpgrades, "Upgrades"},
	{ChoiceScores, "High Scores"},
	{ChoiceQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu. Left and right on
// the campaign entry pick a starting level among the unlocked ones.
type MenuModel struct {
	cursor     int
	levels     []int // Unlocked campaign levels
	levelIdx   int
	coins      int
	bestLevel  int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	standalone bool
	selected   MenuChoice
	quitting   bool
}

// NewMenuModel creates a menu. levels is the campaign catalog in order;
// a level is unlocked when it is the first one or its predecessor was completed.
func NewMenuModel(prefs core.Prefs, levels []int, cfg core.RuntimeConfig, standalone bool) MenuModel {
	if prefs == nil {
		prefs = core.NewMemoryPrefs()
	}
	return MenuModel{
		levels:     unlockedLevels(prefs, levels),
		coins:      prefs.Int(shooter.PrefCoins, 0),
		bestLevel:  prefs.Int(shooter.PrefBestLevel, 0),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		standalone: standalone,
	}
}

// unlockedLevels filters the catalog to levels the player may start on.
func unlockedLevels(prefs core.Prefs, levels []int) []int {
	var out []int
	for i, n := range levels {
		if i == 0 || shooter.LevelCompleted(prefs, levels[i-1]) {
			out = append(out, n)
		}
	}
	return out
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, m.exit()

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItems[m.cursor].choice == ChoiceCampaign && m.levelIdx > 0 {
			m.levelIdx--
		}

	case MenuActionRight:
		if menuItems[m.cursor].choice == ChoiceCampaign && m.levelIdx < len(m.levels)-1 {
			m.levelIdx++
		}

	case MenuActionSelect:
		m.selected = menuItems[m.cursor].choice
		if m.selected == ChoiceQuit {
			m.quitting = true
		}
		return m, m.exit()
	}

	return m, nil
}

func (m MenuModel) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle.Render("D U D U   I N   S P A C E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Coins: %d   Best level: %d", m.coins, m.bestLevel), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		label := item.label
		if item.choice == ChoiceCampaign && len(m.levels) > 1 {
			label = fmt.Sprintf("Campaign  < Level %d >", m.StartLevel())
		}
		if i == m.cursor {
			b.WriteString(centerStyled(menuCurStyle.Render("> "+label), m.width))
		} else {
			b.WriteString(centerText("  "+label, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Level  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerStyled(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// StartLevel returns the campaign level picked with left/right.
func (m MenuModel) StartLevel() int {
	if len(m.levels) == 0 {
		return 0
	}
	return m.levels[m.levelIdx]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers already styled text using its printable width.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
