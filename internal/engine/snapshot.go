package engine

import (
	"github.com/vovakirdan/lightline/internal/danger"
	"github.com/vovakirdan/lightline/internal/procgen"
)

// TileView is what the renderer is allowed to know about a tile.
type TileView uint8

const (
	ViewWall TileView = iota
	ViewFloor
	ViewWater
	ViewTrail
	ViewCut
)

// AnchorView is a visible anchor.
type AnchorView struct {
	Kind procgen.AnchorKind
	Pos  danger.Pos
	On   bool // switches only
}

// Snapshot is the read model handed to renderers and the simulator. It is
// a value: mutating it cannot touch the live state. The builder enforces
// the information policy, so a renderer cannot leak what the player should
// not see.
type Snapshot struct {
	Status  Status
	Outcome Outcome

	Seed          uint64
	FloorIndex    int
	Steps         int
	FloorsCleared int

	Width  int
	Height int
	Tiles  []TileView

	Player Player

	DangerKind danger.Kind
	// HunterVisible is set only when the hunter is within sense range;
	// Hunter is meaningful only then.
	HunterVisible bool
	Hunter        danger.Pos
	NoisePressure int

	// PendingCuts is populated only during the collapse warning window.
	PendingCuts []danger.Pos
	CollapseIn  int

	Anchors    []AnchorView
	StatusLine string
}

// TileAt returns the tile view at a coordinate.
func (s Snapshot) TileAt(x, y int) TileView {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return ViewWall
	}
	return s.Tiles[y*s.Width+x]
}

// Snapshot builds the visible read model from a state.
func (r *Reducer) Snapshot(st State) Snapshot {
	snap := Snapshot{
		Status:        st.Status,
		Outcome:       st.Outcome,
		Seed:          st.Seed,
		FloorIndex:    st.FloorIndex,
		Steps:         st.Steps,
		FloorsCleared: st.FloorsCleared,
		Width:         st.Grid.Width,
		Height:        st.Grid.Height,
		Player:        st.Player,
		StatusLine:    st.StatusLine,
	}

	snap.Tiles = make([]TileView, len(st.Grid.Tiles))
	for i, t := range st.Grid.Tiles {
		switch {
		case i < len(st.Trail) && st.Trail[i].Cut:
			snap.Tiles[i] = ViewCut
		case i < len(st.Trail) && st.Trail[i].Stored > 0:
			snap.Tiles[i] = ViewTrail
		case t == procgen.TileFloor:
			snap.Tiles[i] = ViewFloor
		case t == procgen.TileWater:
			snap.Tiles[i] = ViewWater
		default:
			snap.Tiles[i] = ViewWall
		}
	}

	for _, a := range st.Anchors {
		v := AnchorView{Kind: a.Kind, Pos: danger.Pos{X: a.X, Y: a.Y}}
		if a.Kind == procgen.AnchorSwitch {
			if idx := st.SwitchAt(a.X, a.Y); idx >= 0 {
				v.On = st.Switches[idx].On
			}
		}
		snap.Anchors = append(snap.Anchors, v)
	}

	switch d := st.Danger.(type) {
	case *danger.Hunter:
		snap.DangerKind = danger.KindHunter
		snap.NoisePressure = d.Pressure
		if danger.Manhattan(st.Player.Pos, d.Pos) <= r.senseRadius(st) {
			snap.HunterVisible = true
			snap.Hunter = d.Pos
		}
	case *danger.Collapse:
		snap.DangerKind = danger.KindCollapse
		if d.Warning() {
			snap.PendingCuts = make([]danger.Pos, len(d.Pending))
			copy(snap.PendingCuts, d.Pending)
			snap.CollapseIn = d.TicksLeft
		}
	}

	return snap
}

// senseRadius is the hunter-sensing radius, widened while the player stands
// near a beacon.
func (r *Reducer) senseRadius(st State) int {
	radius := r.bal.Hunter.SenseRadius
	for _, a := range st.Anchors {
		if a.Kind != procgen.AnchorBeacon {
			continue
		}
		if danger.Manhattan(st.Player.Pos, danger.Pos{X: a.X, Y: a.Y}) <= r.bal.Hunter.BeaconRadius {
			radius += r.bal.Hunter.BeaconSenseBonus
			break
		}
	}
	return radius
}
