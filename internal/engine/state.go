// Package engine is the Lightline core: a pure reducer over an immutable
// game state, a tagged action and effect union, and a runtime that executes
// effects off the reducer path. All game rules live here; rendering and
// input mapping live in the platform.
package engine

import (
	"github.com/vovakirdan/lightline/internal/danger"
	"github.com/vovakirdan/lightline/internal/light"
	"github.com/vovakirdan/lightline/internal/procgen"
)

// Direction is a cardinal move direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the tile offset for a direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Status is the run lifecycle phase.
type Status uint8

const (
	StatusBoot Status = iota
	StatusExploring
	StatusPaused
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusBoot:
		return "boot"
	case StatusExploring:
		return "exploring"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome records how a run ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeCaught
	OutcomeExhausted
	OutcomeGenerationFailed
)

// String returns the outcome name used in run records.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "in_progress"
	case OutcomeCaught:
		return "caught"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeGenerationFailed:
		return "generation_failed"
	default:
		return "unknown"
	}
}

// Player is the descending player: position, carried light, and inventory.
// Light and relics carry across floors.
type Player struct {
	Pos    danger.Pos
	Light  light.Meter
	Relics int
}

// Switch is a floor switch the player can toggle.
type Switch struct {
	Pos danger.Pos
	On  bool
}

// State is the full game state. The reducer treats it as immutable: every
// change happens on a deep clone, and rejected actions hand back the input
// value untouched.
type State struct {
	Status  Status
	Outcome Outcome

	Seed       uint64
	FloorIndex int
	// FloorSeed is the seed of the floor being played or generated. Effect
	// completions carry it back so stale results can be discarded.
	FloorSeed uint64

	Grid     procgen.Grid
	Trail    []light.Charge
	Anchors  []procgen.Anchor
	Switches []Switch
	Player   Player
	Danger   danger.Mode

	Steps         int
	FloorsCleared int
	StatusLine    string
}

// clone returns a deep copy.
func (s State) clone() State {
	c := s
	c.Grid = s.Grid.Clone()
	c.Trail = make([]light.Charge, len(s.Trail))
	copy(c.Trail, s.Trail)
	c.Anchors = make([]procgen.Anchor, len(s.Anchors))
	copy(c.Anchors, s.Anchors)
	c.Switches = make([]Switch, len(s.Switches))
	copy(c.Switches, s.Switches)
	if s.Danger != nil {
		c.Danger = s.Danger.Clone()
	}
	return c
}

// TrailAt returns the charge at a tile. Out-of-grid positions read as empty.
func (s State) TrailAt(x, y int) light.Charge {
	if !s.Grid.InBounds(x, y) {
		return light.Charge{}
	}
	return s.Trail[s.Grid.Index(x, y)]
}

// WalkableNow reports whether a tile can be stepped on right now: walkable
// terrain that has not been severed by a collapse.
func (s State) WalkableNow(x, y int) bool {
	if !s.Grid.Walkable(x, y) {
		return false
	}
	return !s.Trail[s.Grid.Index(x, y)].Cut
}

// AnchorAt returns the index of the anchor at a tile, or -1.
func (s State) AnchorAt(x, y int) int {
	for i, a := range s.Anchors {
		if a.X == x && a.Y == y {
			return i
		}
	}
	return -1
}

// SwitchAt returns the index of the switch at a tile, or -1.
func (s State) SwitchAt(x, y int) int {
	for i, sw := range s.Switches {
		if sw.Pos.X == x && sw.Pos.Y == y {
			return i
		}
	}
	return -1
}

// TotalLight is the player's light plus every uncut trail charge. Outside of
// floor transitions it never increases.
func (s State) TotalLight() int {
	total := s.Player.Light.Current
	for _, c := range s.Trail {
		total += c.Stored
	}
	return total
}
