package engine

import "github.com/vovakirdan/lightline/internal/procgen"

// Action is the closed input union of the reducer. Every state change in the
// game, including effect completions, enters through one of these.
type Action interface {
	isAction()
}

// MoveAction moves the player one tile. Quiet movement costs more light but
// makes less noise.
type MoveAction struct {
	Dir   Direction
	Quiet bool
}

// TickAction advances time by one fixed tick: noise decay, hunter pursuit,
// and the collapse countdown all run here.
type TickAction struct{}

// InteractAction operates whatever the player is standing on.
type InteractAction struct{}

// DescendAction forces a descent to the next floor without reaching the
// exit. Used by the simulator.
type DescendAction struct{}

// RestartAction starts the run over from floor zero with the same run seed.
type RestartAction struct{}

// PauseOpenAction and PauseCloseAction toggle the pause screen.
type PauseOpenAction struct{}
type PauseCloseAction struct{}

// FloorGeneratedAction is the completion of a GenerateFloorEffect. The
// floor index and seed tag let the reducer discard results that arrive for
// a floor the run has already left.
type FloorGeneratedAction struct {
	FloorIndex int
	FloorSeed  uint64
	Floor      procgen.Floor
}

// FloorFailedAction reports that generation exhausted its retry budget.
type FloorFailedAction struct {
	FloorIndex int
	FloorSeed  uint64
	Err        error
}

func (MoveAction) isAction()           {}
func (TickAction) isAction()           {}
func (InteractAction) isAction()       {}
func (DescendAction) isAction()        {}
func (RestartAction) isAction()        {}
func (PauseOpenAction) isAction()      {}
func (PauseCloseAction) isAction()     {}
func (FloorGeneratedAction) isAction() {}
func (FloorFailedAction) isAction()    {}
