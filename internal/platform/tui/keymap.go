package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/woodriveer/duduInSpace-sub000/internal/core"
)

// DefaultHoldTicks is how many ticks a movement or fire key stays held after
// its last key event. Terminals report repeats, never releases.
const DefaultHoldTicks = 6

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "w", "up", "k":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// HeldInput turns discrete key events into per-tick input frames.
// Left, Right and Fire stay active for a hold window after each event so a
// repeating key reads as held; every other action fires on one tick only.
type HeldInput struct {
	window  int
	held    map[core.Action]int
	pending []core.Action
}

// NewHeldInput creates a HeldInput. window <= 0 uses DefaultHoldTicks.
func NewHeldInput(window int) *HeldInput {
	if window <= 0 {
		window = DefaultHoldTicks
	}
	return &HeldInput{window: window, held: make(map[core.Action]int)}
}

func continuous(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionFire
}

// Press records a key event.
func (h *HeldInput) Press(a core.Action) {
	switch {
	case a == core.ActionNone:
		return
	case continuous(a):
		h.held[a] = h.window
		// Reversing direction releases the other side immediately
		switch a {
		case core.ActionLeft:
			delete(h.held, core.ActionRight)
		case core.ActionRight:
			delete(h.held, core.ActionLeft)
		}
	default:
		h.pending = append(h.pending, a)
	}
}

// Frame returns the input for the next tick and ages held keys by one tick.
func (h *HeldInput) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, left := range h.held {
		frame.Set(a)
		if left <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = left - 1
		}
	}
	for _, a := range h.pending {
		frame.Set(a)
	}
	h.pending = h.pending[:0]
	return frame
}

// Release drops every held and pending action.
func (h *HeldInput) Release() {
	clear(h.held)
	h.pending = h.pending[:0]
}
