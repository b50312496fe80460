package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shapefall/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "s", "down":
		return core.ActionDrop, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "g":
		return core.ActionDebug, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer event in screen cell
// coordinates. Only the left button presses; motion and release are
// button-agnostic.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.PointerEvent {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return core.PointerEvent{Kind: core.PointerDown, X: msg.X, Y: msg.Y}
		}
	case tea.MouseActionRelease:
		return core.PointerEvent{Kind: core.PointerUp, X: msg.X, Y: msg.Y}
	case tea.MouseActionMotion:
		return core.PointerEvent{Kind: core.PointerMove, X: msg.X, Y: msg.Y}
	}
	return core.PointerEvent{}
}

// MapMouseToFrame updates an input frame based on a mouse message.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if ev := km.MapMouse(msg); ev.Kind != core.PointerNone {
		frame.SetPointer(ev.Kind, ev.X, ev.Y)
	}
}
