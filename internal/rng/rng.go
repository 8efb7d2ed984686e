// Package rng provides the deterministic seed derivation and random streams
// that every other part of the engine builds on. All functions are pure
// integer math (SplitMix64), so the same inputs produce the same outputs on
// every platform and every run.
package rng

const golden = 0x9e3779b97f4a7c15

// Mix64 is the SplitMix64 finalizer. It is the single hash primitive behind
// floor seeds, attempt seeds, and danger-mode selection.
func Mix64(z uint64) uint64 {
	z += golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// FloorSeed derives the seed for one floor of a run. Repeated calls with the
// same run seed and floor index always return the same value.
func FloorSeed(runSeed uint64, floorIndex int) uint64 {
	return Mix64(runSeed ^ (uint64(floorIndex) << 1))
}

// AttemptSeed derives the sub-seed for one generation attempt, so a retry
// after a failed layout is just as reproducible as the first try.
func AttemptSeed(floorSeed uint64, attempt int) uint64 {
	return Mix64(floorSeed ^ uint64(attempt)*golden)
}

// ModeIndex selects the danger mode for a floor: 0 or 1, nothing else.
func ModeIndex(runSeed uint64, floorIndex int) int {
	return int(Mix64(runSeed^uint64(floorIndex)*golden) & 1)
}

// Stream is a deterministic random stream seeded from a single value.
// It is deliberately tiny: the generator only needs bounded ints.
type Stream struct {
	state uint64
}

// NewStream creates a stream seeded with Mix64(seed).
func NewStream(seed uint64) *Stream {
	return &Stream{state: Mix64(seed)}
}

// Uint64 advances the stream and returns the next value.
func (s *Stream) Uint64() uint64 {
	s.state = Mix64(s.state + golden)
	return s.state
}

// Intn returns a value in [0, n). Returns 0 when n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Uint64() % uint64(n))
}
