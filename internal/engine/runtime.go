package engine

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lightline/internal/procgen"
)

// Runtime drives the reducer: actions are applied one at a time in FIFO
// order, and effects run in background goroutines whose completions come
// back through the same action queue. Floor generation therefore never
// blocks input handling, and a completion that arrives after the run moved
// on is discarded by the reducer's staleness check.
type Runtime struct {
	reducer *Reducer
	logger  *log.Logger

	mu sync.Mutex
	st State

	actions chan Action
	quit    chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewRuntime creates a stopped runtime for one run. A nil logger discards
// runtime logging.
func NewRuntime(r *Reducer, logger *log.Logger) *Runtime {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runtime{
		reducer: r,
		logger:  logger,
		actions: make(chan Action, 64),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start boots the run with the given seed and begins processing actions.
func (rt *Runtime) Start(seed uint64) {
	st, effects := rt.reducer.NewRun(seed)
	rt.mu.Lock()
	rt.st = st
	rt.mu.Unlock()
	rt.runEffects(effects)

	go rt.loop()
}

// Stop shuts the runtime down and waits for in-flight effects to finish.
// Their completions are dropped.
func (rt *Runtime) Stop() {
	close(rt.quit)
	<-rt.done
	rt.wg.Wait()
}

// Dispatch enqueues an action. Dispatch never blocks a stopped runtime; the
// action is dropped once Stop has been called.
func (rt *Runtime) Dispatch(a Action) {
	select {
	case rt.actions <- a:
	case <-rt.quit:
	}
}

// Snapshot returns the current visible read model.
func (rt *Runtime) Snapshot() Snapshot {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.reducer.Snapshot(rt.st)
}

// State returns a deep copy of the current state.
func (rt *Runtime) State() State {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.st.clone()
}

func (rt *Runtime) loop() {
	defer close(rt.done)
	for {
		select {
		case a := <-rt.actions:
			rt.mu.Lock()
			next, effects := rt.reducer.Reduce(rt.st, a)
			rt.st = next
			rt.mu.Unlock()
			rt.runEffects(effects)
		case <-rt.quit:
			return
		}
	}
}

func (rt *Runtime) runEffects(effects []Effect) {
	for _, eff := range effects {
		switch eff := eff.(type) {
		case GenerateFloorEffect:
			rt.wg.Add(1)
			go rt.generateFloor(eff)
		}
	}
}

func (rt *Runtime) generateFloor(eff GenerateFloorEffect) {
	defer rt.wg.Done()

	started := time.Now()
	floor, err := procgen.Generate(eff.GeneratorID, eff.Request)
	if err != nil {
		rt.logger.Error("floor generation failed",
			"floor", eff.FloorIndex, "seed", eff.FloorSeed, "err", err)
		rt.Dispatch(FloorFailedAction{
			FloorIndex: eff.FloorIndex,
			FloorSeed:  eff.FloorSeed,
			Err:        err,
		})
		return
	}

	rt.logger.Debug("floor generated",
		"floor", eff.FloorIndex,
		"seed", eff.FloorSeed,
		"attempt", floor.Attempt,
		"fingerprint", floor.Fingerprint,
		"took", time.Since(started))
	rt.Dispatch(FloorGeneratedAction{
		FloorIndex: eff.FloorIndex,
		FloorSeed:  eff.FloorSeed,
		Floor:      floor,
	})
}
