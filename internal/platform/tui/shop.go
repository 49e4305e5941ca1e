package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/games/shooter"
)

// ShopModel lets the player spend coins on permanent upgrades.
type ShopModel struct {
	prefs      core.Prefs
	upgrades   *shooter.Upgrades
	cursor     int
	status     string
	width      int
	keyMapper  *KeyMapper
	standalone bool
	done       bool
	quitting   bool
}

// NewShopModel creates the upgrade shop over the given preferences.
func NewShopModel(prefs core.Prefs, upgrades *shooter.Upgrades, width int, standalone bool) ShopModel {
	if prefs == nil {
		prefs = core.NewMemoryPrefs()
	}
	return ShopModel{
		prefs:      prefs,
		upgrades:   upgrades,
		width:      width,
		keyMapper:  NewKeyMapper(),
		standalone: standalone,
	}
}

// Init initializes the shop.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.done = true
			if m.standalone {
				return m, tea.Quit
			}
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(shooter.AllUpgradeKinds)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.status = m.buy(shooter.AllUpgradeKinds[m.cursor])
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// buy purchases one level and returns a status line.
func (m ShopModel) buy(kind shooter.UpgradeKind) string {
	err := m.upgrades.Purchase(m.prefs, kind)
	switch {
	case err == nil:
		return fmt.Sprintf("%s upgraded to level %d", kind, m.upgrades.Level(m.prefs, kind))
	case errors.Is(err, shooter.ErrInsufficientFunds):
		return "Not enough coins"
	case errors.Is(err, shooter.ErrMaxLevel):
		return fmt.Sprintf("%s is already maxed", kind)
	default:
		return "Purchase failed: " + err.Error()
	}
}

var shopStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle.Render("U P G R A D E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Coins: %d", m.prefs.Int(shooter.PrefCoins, 0)), m.width))
	b.WriteString("\n\n")

	for i, kind := range shooter.AllUpgradeKinds {
		price := "MAX"
		if cost, err := m.upgrades.Cost(m.prefs, kind); err == nil {
			price = fmt.Sprintf("%d coins", cost)
		}
		line := fmt.Sprintf("%-12s Lv %d/%d  %10s",
			kind, m.upgrades.Level(m.prefs, kind), m.upgrades.MaxLevel(kind), price)
		if i == m.cursor {
			b.WriteString(centerStyled(menuCurStyle.Render("> "+line), m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerStyled(shopStatusStyle.Render(m.status), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerStyled(menuDimStyle.Render("Enter: Buy  |  Esc: Back  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Done reports whether the player left the shop.
func (m ShopModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user requested to quit.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}
