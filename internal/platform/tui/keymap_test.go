package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightline/internal/engine"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyMovement(t *testing.T) {
	km := NewKeyMapper()
	snap := engine.Snapshot{Status: engine.StatusExploring}

	tests := []struct {
		msg   tea.KeyMsg
		dir   engine.Direction
		quiet bool
	}{
		{keyRunes('w'), engine.DirUp, false},
		{keyRunes('s'), engine.DirDown, false},
		{keyRunes('a'), engine.DirLeft, false},
		{keyRunes('d'), engine.DirRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, engine.DirUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, engine.DirDown, false},
		{keyRunes('W'), engine.DirUp, true},
		{keyRunes('D'), engine.DirRight, true},
		{tea.KeyMsg{Type: tea.KeyShiftLeft}, engine.DirLeft, true},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(tt.msg, snap)
		if isQuit {
			t.Fatalf("key %q mapped to quit", tt.msg.String())
		}
		move, ok := action.(engine.MoveAction)
		if !ok {
			t.Fatalf("key %q mapped to %T, want MoveAction", tt.msg.String(), action)
		}
		if move.Dir != tt.dir || move.Quiet != tt.quiet {
			t.Errorf("key %q = dir %v quiet %v, want dir %v quiet %v",
				tt.msg.String(), move.Dir, move.Quiet, tt.dir, tt.quiet)
		}
	}
}

func TestMapKeyPauseToggles(t *testing.T) {
	km := NewKeyMapper()
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	action, _ := km.MapKey(esc, engine.Snapshot{Status: engine.StatusExploring})
	if _, ok := action.(engine.PauseOpenAction); !ok {
		t.Errorf("esc while exploring = %T, want PauseOpenAction", action)
	}

	action, _ = km.MapKey(esc, engine.Snapshot{Status: engine.StatusPaused})
	if _, ok := action.(engine.PauseCloseAction); !ok {
		t.Errorf("esc while paused = %T, want PauseCloseAction", action)
	}
}

func TestMapKeyRestartOnlyAfterRunEnds(t *testing.T) {
	km := NewKeyMapper()

	action, _ := km.MapKey(keyRunes('r'), engine.Snapshot{Status: engine.StatusExploring})
	if action != nil {
		t.Errorf("r while exploring = %T, want nil", action)
	}

	action, _ = km.MapKey(keyRunes('r'), engine.Snapshot{Status: engine.StatusGameOver})
	if _, ok := action.(engine.RestartAction); !ok {
		t.Errorf("r after game over = %T, want RestartAction", action)
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	snap := engine.Snapshot{Status: engine.StatusExploring}

	for _, msg := range []tea.KeyMsg{keyRunes('q'), {Type: tea.KeyCtrlC}} {
		if _, isQuit := km.MapKey(msg, snap); !isQuit {
			t.Errorf("key %q did not quit", msg.String())
		}
	}
}

func TestCameraOrigin(t *testing.T) {
	// Map smaller than the view never scrolls.
	if got := cameraOrigin(5, 10, 40); got != 0 {
		t.Errorf("small map origin = %d, want 0", got)
	}
	// Focus near the left edge clamps to 0.
	if got := cameraOrigin(2, 100, 40); got != 0 {
		t.Errorf("left edge origin = %d, want 0", got)
	}
	// Focus near the right edge clamps to map end.
	if got := cameraOrigin(98, 100, 40); got != 60 {
		t.Errorf("right edge origin = %d, want 60", got)
	}
	// Centered otherwise.
	if got := cameraOrigin(50, 100, 40); got != 30 {
		t.Errorf("centered origin = %d, want 30", got)
	}
}
