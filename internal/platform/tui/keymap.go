package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightline/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to engine actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an engine action. A nil action means
// the key does nothing right now. Mapping depends on the run phase: escape
// toggles pause, and restart only works on a finished run.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, snap engine.Snapshot) (action engine.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return nil, true
	}

	switch key {
	case "esc", "p":
		if snap.Status == engine.StatusPaused {
			return engine.PauseCloseAction{}, false
		}
		return engine.PauseOpenAction{}, false
	case "r":
		if snap.Status == engine.StatusGameOver {
			return engine.RestartAction{}, false
		}
		return nil, false
	case "e", "enter":
		return engine.InteractAction{}, false
	case ">":
		return engine.DescendAction{}, false
	}

	if dir, quiet, ok := km.moveFor(key); ok {
		return engine.MoveAction{Dir: dir, Quiet: quiet}, false
	}
	return nil, false
}

// moveFor maps movement keys. Shifted keys are the quiet variant: slower
// light burn, less noise.
func (km *KeyMapper) moveFor(key string) (dir engine.Direction, quiet, ok bool) {
	switch key {
	case "w", "up":
		return engine.DirUp, false, true
	case "s", "down":
		return engine.DirDown, false, true
	case "a", "left":
		return engine.DirLeft, false, true
	case "d", "right":
		return engine.DirRight, false, true
	case "W", "shift+up":
		return engine.DirUp, true, true
	case "S", "shift+down":
		return engine.DirDown, true, true
	case "A", "shift+left":
		return engine.DirLeft, true, true
	case "D", "shift+right":
		return engine.DirRight, true, true
	}
	return 0, false, false
}
