package engine

import "github.com/vovakirdan/lightline/internal/procgen"

// Effect is the closed output union of the reducer: work the runtime must
// perform off the reducer path. The reducer never blocks and never does the
// work itself.
type Effect interface {
	isEffect()
}

// GenerateFloorEffect asks the runtime to generate a floor. The completion
// comes back as a FloorGeneratedAction or FloorFailedAction tagged with the
// same floor index and seed.
type GenerateFloorEffect struct {
	FloorIndex  int
	FloorSeed   uint64
	GeneratorID string
	Request     procgen.Request
}

func (GenerateFloorEffect) isEffect() {}
