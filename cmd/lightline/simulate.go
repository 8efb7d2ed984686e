package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightline/internal/config"
	"github.com/vovakirdan/lightline/internal/engine"
	"github.com/vovakirdan/lightline/internal/procgen"
)

var (
	flagSimConfig   string
	flagSimFloors   int
	flagSimMaxSteps int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot for a seed",
	Long: `Run a descent without a terminal: an autopilot walks the shortest
path to each exit until the light runs out, the danger wins, or the floor
target is reached. The same seed always produces the same transcript, which
makes this useful for balance tuning and regression checks.

Examples:
  lightline simulate --seed 1234
  lightline simulate --seed 1234 --floors 10
  lightline simulate --seed 1234 --max-steps 5000`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom balance YAML")
	simulateCmd.Flags().IntVar(&flagSimFloors, "floors", 0, "Stop after clearing this many floors (0 = run until the run ends)")
	simulateCmd.Flags().IntVar(&flagSimMaxSteps, "max-steps", 10000, "Hard step budget")
}

func runSimulate(_ *cobra.Command, _ []string) {
	bal, err := config.LoadBalance(flagSimConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balance: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	r := engine.NewReducer(bal)
	st, effects := r.NewRun(seed)
	st = settle(r, st, effects)

	stranded := false
	for st.Status == engine.StatusExploring && st.Steps < flagSimMaxSteps {
		if flagSimFloors > 0 && st.FloorsCleared >= flagSimFloors {
			break
		}

		dir, ok := nextStep(st)
		if !ok {
			stranded = true
			break
		}

		st, effects = r.Reduce(st, engine.MoveAction{Dir: dir})
		st = settle(r, st, effects)
		if st.Status != engine.StatusExploring {
			break
		}

		st, effects = r.Reduce(st, engine.TickAction{})
		st = settle(r, st, effects)
	}

	snap := r.Snapshot(st)
	fmt.Printf("Simulated run %d\n", seed)
	fmt.Println()
	outcome := snap.Outcome.String()
	if stranded {
		outcome = "stranded (no path to exit)"
	}
	fmt.Printf("  Outcome:        %s\n", outcome)
	fmt.Printf("  Floors cleared: %d\n", snap.FloorsCleared)
	fmt.Printf("  Steps taken:    %d\n", snap.Steps)
	fmt.Printf("  Relics carried: %d\n", snap.Player.Relics)
	fmt.Printf("  Light left:     %d/%d\n", snap.Player.Light.Current, snap.Player.Light.Max)
	fmt.Printf("  Final danger:   %s\n", snap.DangerKind)
}

// settle applies effect completions synchronously so the simulation stays
// deterministic regardless of machine speed.
func settle(r *engine.Reducer, st engine.State, effects []engine.Effect) engine.State {
	for len(effects) > 0 {
		eff := effects[0]
		effects = effects[1:]

		gen, ok := eff.(engine.GenerateFloorEffect)
		if !ok {
			continue
		}

		var act engine.Action
		floor, err := procgen.Generate(gen.GeneratorID, gen.Request)
		if err != nil {
			act = engine.FloorFailedAction{
				FloorIndex: gen.FloorIndex,
				FloorSeed:  gen.FloorSeed,
				Err:        err,
			}
		} else {
			act = engine.FloorGeneratedAction{
				FloorIndex: gen.FloorIndex,
				FloorSeed:  gen.FloorSeed,
				Floor:      floor,
			}
		}

		var more []engine.Effect
		st, more = r.Reduce(st, act)
		effects = append(effects, more...)
	}
	return st
}

// simDirections is the tie-break order for the autopilot's pathing.
var simDirections = [...]engine.Direction{
	engine.DirUp, engine.DirDown, engine.DirLeft, engine.DirRight,
}

// nextStep finds the first move of a shortest currently-walkable path from
// the player to the exit. Returns false when the exit is unreachable.
func nextStep(st engine.State) (engine.Direction, bool) {
	var exitX, exitY int
	found := false
	for _, a := range st.Anchors {
		if a.Kind == procgen.AnchorExit {
			exitX, exitY = a.X, a.Y
			found = true
			break
		}
	}
	if !found {
		return 0, false
	}

	start := st.Player.Pos
	if start.X == exitX && start.Y == exitY {
		return 0, false
	}

	type cell struct{ x, y int }
	visited := make(map[cell]bool, st.Grid.Width*st.Grid.Height)
	firstMove := make(map[cell]engine.Direction)
	queue := []cell{{start.X, start.Y}}
	visited[cell{start.X, start.Y}] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, dir := range simDirections {
			dx, dy := dir.Delta()
			next := cell{cur.x + dx, cur.y + dy}
			if visited[next] || !st.WalkableNow(next.x, next.y) {
				continue
			}
			visited[next] = true
			if cur.x == start.X && cur.y == start.Y {
				firstMove[next] = dir
			} else {
				firstMove[next] = firstMove[cur]
			}
			if next.x == exitX && next.y == exitY {
				return firstMove[next], true
			}
			queue = append(queue, next)
		}
	}
	return 0, false
}
