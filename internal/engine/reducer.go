package engine

import (
	"fmt"

	"github.com/vovakirdan/lightline/internal/config"
	"github.com/vovakirdan/lightline/internal/danger"
	"github.com/vovakirdan/lightline/internal/light"
	"github.com/vovakirdan/lightline/internal/procgen"
	"github.com/vovakirdan/lightline/internal/rng"
)

// Reducer is the pure game rule function. It holds only immutable balance
// config; given the same state and action it always returns the same next
// state and effects. Rejected actions return the input state untouched.
type Reducer struct {
	bal         config.Balance
	generatorID string
}

// NewReducer builds a reducer over a balance config using the default maze
// generator.
func NewReducer(bal config.Balance) *Reducer {
	return &Reducer{bal: bal, generatorID: "maze"}
}

// Balance returns the reducer's balance config.
func (r *Reducer) Balance() config.Balance { return r.bal }

// NewRun returns the boot state for a fresh run and the effect that
// generates floor zero.
func (r *Reducer) NewRun(seed uint64) (State, []Effect) {
	st := State{
		Status: StatusBoot,
		Seed:   seed,
		Player: Player{
			Light: light.Meter{
				Current: r.bal.Light.StartLight,
				Max:     r.bal.Light.MaxLight,
			},
		},
		StatusLine: "New run started.",
	}
	st, eff := r.requestFloor(st)
	return st, []Effect{eff}
}

// Reduce applies one action. The input state is never mutated.
func (r *Reducer) Reduce(st State, a Action) (State, []Effect) {
	switch a := a.(type) {
	case MoveAction:
		return r.handleMove(st, a)
	case TickAction:
		return r.handleTick(st)
	case InteractAction:
		return r.handleInteract(st)
	case DescendAction:
		return r.descend(st)
	case RestartAction:
		next, effs := r.NewRun(st.Seed)
		return next, effs
	case PauseOpenAction:
		if st.Status != StatusExploring {
			return st, nil
		}
		next := st.clone()
		next.Status = StatusPaused
		return next, nil
	case PauseCloseAction:
		if st.Status != StatusPaused {
			return st, nil
		}
		next := st.clone()
		next.Status = StatusExploring
		return next, nil
	case FloorGeneratedAction:
		return r.handleFloorGenerated(st, a)
	case FloorFailedAction:
		return r.handleFloorFailed(st, a)
	default:
		return st, nil
	}
}

// requestFloor derives the floor seed for the current floor index and
// returns the state expecting it plus the generation effect.
func (r *Reducer) requestFloor(st State) (State, Effect) {
	floorSeed := rng.FloorSeed(st.Seed, st.FloorIndex)
	width, height := r.bal.Floor.SizeForFloor(st.FloorIndex)

	st.FloorSeed = floorSeed
	st.Status = StatusBoot

	return st, GenerateFloorEffect{
		FloorIndex:  st.FloorIndex,
		FloorSeed:   floorSeed,
		GeneratorID: r.generatorID,
		Request: procgen.Request{
			Seed:        floorSeed,
			FloorIndex:  st.FloorIndex,
			Width:       width,
			Height:      height,
			Beacons:     r.bal.Floor.Beacons,
			Relics:      r.bal.Floor.Relics,
			Switches:    r.bal.Floor.Switches,
			RetryBudget: r.bal.Floor.RetryBudget,
		},
	}
}

// stale reports whether an effect completion belongs to a floor the run has
// already left. Stale completions are discarded without touching the state.
func stale(st State, floorIndex int, floorSeed uint64) bool {
	return floorIndex != st.FloorIndex || floorSeed != st.FloorSeed
}

func (r *Reducer) handleFloorGenerated(st State, a FloorGeneratedAction) (State, []Effect) {
	if stale(st, a.FloorIndex, a.FloorSeed) {
		return st, nil
	}
	if st.Status != StatusBoot {
		return st, nil
	}

	next := st.clone()
	next.Grid = a.Floor.Grid.Clone()
	next.Trail = make([]light.Charge, len(next.Grid.Tiles))
	next.Anchors = make([]procgen.Anchor, 0, len(a.Floor.Anchors))
	next.Switches = nil
	for _, anchor := range a.Floor.Anchors {
		next.Anchors = append(next.Anchors, anchor)
		if anchor.Kind == procgen.AnchorSwitch {
			next.Switches = append(next.Switches, Switch{Pos: danger.Pos{X: anchor.X, Y: anchor.Y}})
		}
	}

	if start, ok := a.Floor.FindAnchor(procgen.AnchorPlayerStart); ok {
		next.Player.Pos = danger.Pos{X: start.X, Y: start.Y}
	}

	next.Danger = r.dangerForFloor(next, a.Floor)
	next.Status = StatusExploring
	next.StatusLine = fmt.Sprintf("Floor %d ready (%s)", next.FloorIndex+1, next.Danger.Kind())
	return next, nil
}

// dangerForFloor selects the floor's danger mode by seed parity and builds
// it with the floor-tightened pacing.
func (r *Reducer) dangerForFloor(st State, floor procgen.Floor) danger.Mode {
	if rng.ModeIndex(st.Seed, st.FloorIndex) == 0 {
		// The hunter wakes at the exit and works backward toward the noise.
		at := danger.Pos{X: 1, Y: 1}
		if exit, ok := floor.FindAnchor(procgen.AnchorExit); ok {
			at = danger.Pos{X: exit.X, Y: exit.Y}
		}
		return danger.NewHunter(at,
			r.bal.Hunter.StepInterval,
			r.bal.Hunter.ThresholdForFloor(st.FloorIndex))
	}
	return danger.NewCollapse(
		r.bal.Collapse.PeriodForFloor(st.FloorIndex),
		r.bal.Collapse.WarningTicks)
}

func (r *Reducer) handleFloorFailed(st State, a FloorFailedAction) (State, []Effect) {
	if stale(st, a.FloorIndex, a.FloorSeed) {
		return st, nil
	}

	next := st.clone()
	next.Status = StatusGameOver
	next.Outcome = OutcomeGenerationFailed
	next.StatusLine = fmt.Sprintf("Floor generation failed: %v", a.Err)
	return next, nil
}

func (r *Reducer) handleMove(st State, a MoveAction) (State, []Effect) {
	if st.Status != StatusExploring {
		return st, nil
	}

	dx, dy := a.Dir.Delta()
	nx, ny := st.Player.Pos.X+dx, st.Player.Pos.Y+dy
	if !st.WalkableNow(nx, ny) {
		return st, nil
	}

	destCharge := st.TrailAt(nx, ny)
	var (
		meter = st.Player.Light
		tile  light.Charge
		err   error
	)
	if destCharge.Stored > 0 {
		// Lit tile: reclaim instead of burning.
		meter, tile = light.Reclaim(meter, destCharge, r.bal.Light.ReclaimFraction)
	} else {
		cost := r.bal.Light.BurnCost
		if a.Quiet {
			cost = r.bal.Light.QuietCost
		}
		meter, err = light.ApplyMoveCost(meter, cost)
		if err != nil {
			return st, nil
		}
		// The burned light becomes the tile's trail charge; nothing is lost.
		tile = light.Deposit(destCharge, cost)
	}

	next := st.clone()
	next.Player.Light = meter
	next.Trail[next.Grid.Index(nx, ny)] = tile
	next.Player.Pos = danger.Pos{X: nx, Y: ny}
	next.Steps++
	next.StatusLine = fmt.Sprintf("Steps: %d", next.Steps)

	if next.Player.Light.Current == 0 {
		return gameOver(next, OutcomeExhausted, "Your lantern goes dark."), nil
	}

	if h, ok := next.Danger.(*danger.Hunter); ok {
		noise := r.bal.Hunter.NoisePerStep
		if a.Quiet {
			noise = r.bal.Hunter.NoiseQuietStep
		}
		h.RecordNoise(noise, next.Player.Pos)
		if h.Pos == next.Player.Pos {
			return gameOver(next, OutcomeCaught, "The hunter finds you."), nil
		}
	}

	if idx := next.AnchorAt(nx, ny); idx >= 0 {
		switch next.Anchors[idx].Kind {
		case procgen.AnchorRelic:
			next.Player.Relics++
			next.Anchors = append(next.Anchors[:idx], next.Anchors[idx+1:]...)
			next.StatusLine = fmt.Sprintf("Relic recovered (%d carried).", next.Player.Relics)
		case procgen.AnchorExit:
			return r.clearFloor(next)
		}
	}

	return next, nil
}

// clearFloor advances the run to the next floor and kicks off generation.
// Light and relics carry down with the player.
func (r *Reducer) clearFloor(next State) (State, []Effect) {
	next.FloorsCleared++
	next.FloorIndex++
	next, eff := r.requestFloor(next)
	next.StatusLine = fmt.Sprintf("Descended to floor %d", next.FloorIndex+1)
	return next, []Effect{eff}
}

// descend is the forced variant used by the simulator: same transition as
// reaching the exit, without crediting a cleared floor.
func (r *Reducer) descend(st State) (State, []Effect) {
	if st.Status != StatusExploring {
		return st, nil
	}
	next := st.clone()
	next.FloorIndex++
	next, eff := r.requestFloor(next)
	next.StatusLine = fmt.Sprintf("Descended to floor %d", next.FloorIndex+1)
	return next, []Effect{eff}
}

func (r *Reducer) handleTick(st State) (State, []Effect) {
	if st.Status != StatusExploring {
		return st, nil
	}

	next := st.clone()
	switch d := next.Danger.(type) {
	case *danger.Hunter:
		d.Decay(r.bal.Hunter.NoiseDecay)
		if d.Pursuing() && d.ReadyToAdvance() {
			d.AdvanceToward(d.LastHeard, next.WalkableNow)
			if d.Pos == next.Player.Pos {
				return gameOver(next, OutcomeCaught, "The hunter finds you."), nil
			}
		}
	case *danger.Collapse:
		switch d.Tick() {
		case danger.EventWarn:
			d.Stage(r.selectCutTiles(next, d.Cycle))
			next.StatusLine = "The ceiling groans."
		case danger.EventImpact:
			cut := 0
			for _, p := range d.Pending {
				if p == next.Player.Pos {
					// The floor holds where someone stands.
					continue
				}
				idx := next.Grid.Index(p.X, p.Y)
				next.Trail[idx] = light.Cut(next.Trail[idx])
				cut++
			}
			d.ClearPending()
			if cut > 0 {
				next.StatusLine = "The passage collapses."
			}
		}
	}

	return next, nil
}

// selectCutTiles picks the tile set for the next impact, seeded by the
// floor seed and the collapse cycle so replays stage the same tiles. Tiles
// carrying trail charge are preferred; the rest come from random walkable
// tiles. Anchor tiles and the player's tile are never staged.
func (r *Reducer) selectCutTiles(st State, cycle int) []danger.Pos {
	budget := r.bal.Collapse.CutBudget
	if budget <= 0 {
		return nil
	}
	stream := rng.NewStream(rng.AttemptSeed(st.FloorSeed, cycle))

	eligible := func(x, y int) bool {
		if !st.WalkableNow(x, y) {
			return false
		}
		if (danger.Pos{X: x, Y: y}) == st.Player.Pos {
			return false
		}
		return st.AnchorAt(x, y) < 0
	}

	var charged, open []danger.Pos
	for y := 0; y < st.Grid.Height; y++ {
		for x := 0; x < st.Grid.Width; x++ {
			if !eligible(x, y) {
				continue
			}
			if st.TrailAt(x, y).Stored > 0 {
				charged = append(charged, danger.Pos{X: x, Y: y})
			} else {
				open = append(open, danger.Pos{X: x, Y: y})
			}
		}
	}

	pick := func(pool []danger.Pos, n int) ([]danger.Pos, []danger.Pos) {
		var out []danger.Pos
		for n > 0 && len(pool) > 0 {
			i := stream.Intn(len(pool))
			out = append(out, pool[i])
			pool = append(pool[:i], pool[i+1:]...)
			n--
		}
		return out, pool
	}

	pending, _ := pick(charged, budget)
	if len(pending) < budget {
		more, _ := pick(open, budget-len(pending))
		pending = append(pending, more...)
	}
	return pending
}

func (r *Reducer) handleInteract(st State) (State, []Effect) {
	if st.Status != StatusExploring {
		return st, nil
	}

	next := st.clone()
	if idx := next.SwitchAt(next.Player.Pos.X, next.Player.Pos.Y); idx >= 0 {
		next.Switches[idx].On = !next.Switches[idx].On
		if next.Switches[idx].On {
			next.StatusLine = "Switch thrown: a distant mechanism turns."
		} else {
			next.StatusLine = "Switch reset."
		}
		return next, nil
	}
	next.StatusLine = "Nothing to interact with here."
	return next, nil
}

func gameOver(st State, outcome Outcome, message string) State {
	st.Status = StatusGameOver
	st.Outcome = outcome
	st.StatusLine = message
	return st
}
