package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/starfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
//
// Bindings: 1-8 fire the matching lane, q/w/e trigger the three abilities,
// r or esc resets the run, p pauses. Only ctrl+c quits; the letter keys are
// all taken by abilities.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	if key == "ctrl+c" {
		return core.ActionQuit, true
	}

	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8":
		lane := int(key[0] - '1')
		return core.LaneAction(lane), false
	case "q":
		return core.ActionPowerReset, false
	case "w":
		return core.ActionPowerClear, false
	case "e":
		return core.ActionPowerHeal, false
	case "r", "esc":
		return core.ActionReset, false
	case "p":
		return core.ActionPause, false
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
