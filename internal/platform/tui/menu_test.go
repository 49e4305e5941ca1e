package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
	"github.com/woodriveer/duduInSpace-sub000/internal/games/shooter"
)

var testMenuConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func sendMenu(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestUnlockedLevels(t *testing.T) {
	catalog := []int{1, 2, 3, 4}
	tests := []struct {
		name      string
		completed []int
		expected  []int
	}{
		{"fresh", nil, []int{1}},
		{"first done", []int{1}, []int{1, 2}},
		{"gap", []int{1, 3}, []int{1, 2, 4}},
		{"all done", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := core.NewMemoryPrefs()
			for _, lvl := range tt.completed {
				if err := shooter.MarkLevelCompleted(prefs, lvl); err != nil {
					t.Fatalf("MarkLevelCompleted(%d) failed: %v", lvl, err)
				}
			}
			if got := unlockedLevels(prefs, catalog); !slices.Equal(got, tt.expected) {
				t.Errorf("unlockedLevels() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMenuPicksStartLevel(t *testing.T) {
	prefs := core.NewMemoryPrefs()
	_ = shooter.MarkLevelCompleted(prefs, 1)
	_ = shooter.MarkLevelCompleted(prefs, 2)

	m := NewMenuModel(prefs, []int{1, 2, 3}, testMenuConfig, false)
	if got := m.StartLevel(); got != 1 {
		t.Fatalf("StartLevel() = %d, expected 1", got)
	}

	right := tea.KeyMsg{Type: tea.KeyRight}
	m = sendMenu(m, right, right, right)
	if got := m.StartLevel(); got != 3 {
		t.Errorf("StartLevel() after right x3 = %d, expected 3", got)
	}

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.StartLevel(); got != 2 {
		t.Errorf("StartLevel() after left = %d, expected 2", got)
	}
}

func TestMenuLevelKeysOnlyOnCampaign(t *testing.T) {
	prefs := core.NewMemoryPrefs()
	_ = shooter.MarkLevelCompleted(prefs, 1)

	m := NewMenuModel(prefs, []int{1, 2}, testMenuConfig, false)
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.StartLevel(); got != 1 {
		t.Errorf("StartLevel() = %d, expected 1 when cursor is off campaign", got)
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		downs    int
		expected MenuChoice
		quitting bool
	}{
		{0, ChoiceCampaign, false},
		{1, ChoiceEndless, false},
		{2, ChoiceUpgrades, false},
		{3, ChoiceScores, false},
		{4, ChoiceQuit, true},
		{10, ChoiceQuit, true},
	}

	for _, tt := range tests {
		m := NewMenuModel(nil, []int{1}, testMenuConfig, false)
		for range tt.downs {
			m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
		}
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(MenuModel)

		if m.Selected() != tt.expected {
			t.Errorf("downs=%d: Selected() = %v, expected %v", tt.downs, m.Selected(), tt.expected)
		}
		if m.IsQuitting() != tt.quitting {
			t.Errorf("downs=%d: IsQuitting() = %v, expected %v", tt.downs, m.IsQuitting(), tt.quitting)
		}
		if cmd != nil {
			t.Errorf("downs=%d: embedded menu returned a command", tt.downs)
		}
	}
}

func TestMenuShowsProgress(t *testing.T) {
	prefs := core.NewMemoryPrefs()
	_ = shooter.Deposit(prefs, 120)
	_ = shooter.MarkLevelCompleted(prefs, 2)

	m := NewMenuModel(prefs, []int{1, 2}, testMenuConfig, true)
	if m.coins != 120 || m.bestLevel != 2 {
		t.Errorf("coins, best = %d, %d, expected 120, 2", m.coins, m.bestLevel)
	}

	m = sendMenu(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %dx%d, expected 100x30", cfg.ScreenW, cfg.ScreenH)
	}
}
