package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightline/internal/engine"
	"github.com/vovakirdan/lightline/internal/storage"
)

// Model is the Bubble Tea model for one run. It owns no game rules: keys
// become dispatched actions, ticks become TickActions, and the view is a
// render of the latest snapshot.
type Model struct {
	rt        *engine.Runtime
	store     *storage.Store
	keys      *KeyMapper
	tickRate  int
	width     int
	height    int
	startedAt time.Time
	runSaved  bool // run record written for the current game over
	quitting  bool
}

// NewModel creates a model for a started runtime. A nil store disables run
// history.
func NewModel(rt *engine.Runtime, store *storage.Store, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return Model{
		rt:        rt,
		store:     store,
		keys:      NewKeyMapper(),
		tickRate:  tickRate,
		startedAt: time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input to engine actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.rt.Snapshot()

	action, isQuit := m.keys.MapKey(msg, snap)
	if isQuit {
		m.saveRunOnce(snap, true)
		m.quitting = true
		return m, tea.Quit
	}
	if action == nil {
		return m, nil
	}

	if _, ok := action.(engine.RestartAction); ok {
		m.runSaved = false
		m.startedAt = time.Now()
	}
	m.rt.Dispatch(action)
	return m, nil
}

// handleTick advances the engine clock and flushes a finished run to storage.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.rt.Dispatch(engine.TickAction{})

	snap := m.rt.Snapshot()
	if snap.Status == engine.StatusGameOver {
		m.saveRunOnce(snap, false)
	}

	return m, tickCmd(m.tickRate)
}

// saveRunOnce records the run, at most once per run. A quit mid-run is
// recorded as abandoned.
func (m *Model) saveRunOnce(snap engine.Snapshot, abandoned bool) {
	if m.runSaved || m.store == nil || snap.Status == engine.StatusBoot {
		return
	}
	if abandoned && snap.Status != engine.StatusGameOver && snap.Steps == 0 {
		return
	}

	outcome := snap.Outcome.String()
	if abandoned && snap.Status != engine.StatusGameOver {
		outcome = "abandoned"
	}

	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveRun(storage.RunEntry{
		Seed:          snap.Seed,
		FloorsCleared: snap.FloorsCleared,
		Steps:         snap.Steps,
		Relics:        snap.Player.Relics,
		Outcome:       outcome,
		DangerMode:    snap.DangerKind.String(),
		DurationSecs:  int(time.Since(m.startedAt).Seconds()),
	})
	m.runSaved = true
}

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderSnapshot(m.rt.Snapshot(), m.width, m.height)
}

// Run starts the Bubble Tea program for an already started runtime and
// blocks until the player quits. The caller owns the runtime lifecycle.
func Run(rt *engine.Runtime, store *storage.Store, tickRate int) error {
	model := NewModel(rt, store, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
