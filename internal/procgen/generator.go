// Package procgen generates Lightline floors. Generators are pure and
// seed-deterministic: the same request always yields the same floor,
// byte for byte, on every platform.
//
// Generators register themselves in init() functions so the engine can
// instantiate them by id without hardcoded dependencies.
package procgen

import (
	"fmt"
	"hash/fnv"
	"sort"
	"sync"

	"github.com/vovakirdan/lightline/internal/rng"
)

// TileKind is the terrain of a single tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileWater
)

// Grid is a flat row-major tile grid.
type Grid struct {
	Width  int
	Height int
	Tiles  []TileKind
}

// NewGrid returns a grid of the given size with every tile set to fill.
func NewGrid(width, height int, fill TileKind) Grid {
	tiles := make([]TileKind, width*height)
	if fill != TileWall {
		for i := range tiles {
			tiles[i] = fill
		}
	}
	return Grid{Width: width, Height: height, Tiles: tiles}
}

// Index returns the flat index for a coordinate. The caller must ensure the
// coordinate is in bounds.
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// InBounds reports whether a coordinate is inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Tile returns the tile at a coordinate.
func (g Grid) Tile(x, y int) TileKind {
	return g.Tiles[g.Index(x, y)]
}

// Walkable reports whether a tile's terrain can be stepped on. Trail charge
// and collapse cuts are tracked by the engine, not the terrain.
func (g Grid) Walkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	k := g.Tile(x, y)
	return k == TileFloor || k == TileWater
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	tiles := make([]TileKind, len(g.Tiles))
	copy(tiles, g.Tiles)
	return Grid{Width: g.Width, Height: g.Height, Tiles: tiles}
}

// AnchorKind identifies the role of a placed anchor.
type AnchorKind uint8

const (
	AnchorPlayerStart AnchorKind = iota
	AnchorExit
	AnchorBeacon
	AnchorRelic
	AnchorSwitch
)

// String returns the anchor kind name.
func (k AnchorKind) String() string {
	switch k {
	case AnchorPlayerStart:
		return "player_start"
	case AnchorExit:
		return "exit"
	case AnchorBeacon:
		return "beacon"
	case AnchorRelic:
		return "relic"
	case AnchorSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// Anchor is a placed point of interest on a generated floor.
type Anchor struct {
	Kind AnchorKind
	X    int
	Y    int
}

// Request describes one floor to generate. Seed is the floor seed; the
// attempt sub-seed is derived inside the retry loop.
type Request struct {
	Seed        uint64
	FloorIndex  int
	Width       int
	Height      int
	Beacons     int
	Relics      int
	Switches    int
	RetryBudget int
}

// Floor is the output of a successful generation: terrain, anchors, and the
// provenance needed to reproduce it.
type Floor struct {
	Grid        Grid
	Anchors     []Anchor
	GeneratorID string
	Version     int
	Seed        uint64
	Attempt     int
	Fingerprint string
}

// FindAnchor returns the first anchor of a kind, or false if none exists.
func (f Floor) FindAnchor(kind AnchorKind) (Anchor, bool) {
	for _, a := range f.Anchors {
		if a.Kind == kind {
			return a, true
		}
	}
	return Anchor{}, false
}

// ErrInvalidSize is returned when a request is too small for the generator.
var ErrInvalidSize = fmt.Errorf("procgen: floor size below generator minimum")

// GenerationError is the deterministic failure returned when every attempt
// within the retry budget produced an invalid layout.
type GenerationError struct {
	FloorIndex int
	Seed       uint64
	Attempts   int
	Err        error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("procgen: floor %d (seed %d) failed after %d attempts: %v",
		e.FloorIndex, e.Seed, e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator produces a floor from a request using the given attempt
// sub-seed. A generator must be pure: no global state, no wall clock.
type Generator interface {
	ID() string
	Version() int
	Generate(req Request, attemptSeed uint64) (Floor, error)
}

var (
	generators = make(map[string]Generator)
	mu         sync.RWMutex
)

// Register adds a generator to the registry. Typically called from an
// init() function. Panics if the id is already taken.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := generators[g.ID()]; exists {
		panic(fmt.Sprintf("procgen: generator %q already registered", g.ID()))
	}
	generators[g.ID()] = g
}

// Exists checks whether a generator id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := generators[id]
	return ok
}

// List returns the registered generator ids, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(generators))
	for id := range generators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Generate runs the named generator with the retry loop: each attempt uses
// a sub-seed derived from the floor seed and attempt number, so retries are
// as reproducible as first tries. When every attempt fails the result is a
// deterministic GenerationError.
func Generate(id string, req Request) (Floor, error) {
	mu.RLock()
	gen, ok := generators[id]
	mu.RUnlock()
	if !ok {
		return Floor{}, fmt.Errorf("procgen: unknown generator %q", id)
	}

	budget := req.RetryBudget
	if budget < 1 {
		budget = 1
	}

	var lastErr error
	for attempt := 0; attempt < budget; attempt++ {
		floor, err := gen.Generate(req, rng.AttemptSeed(req.Seed, attempt))
		if err != nil {
			lastErr = err
			continue
		}
		floor.GeneratorID = gen.ID()
		floor.Version = gen.Version()
		floor.Seed = req.Seed
		floor.Attempt = attempt
		floor.Fingerprint = fingerprint(floor)
		return floor, nil
	}

	return Floor{}, &GenerationError{
		FloorIndex: req.FloorIndex,
		Seed:       req.Seed,
		Attempts:   budget,
		Err:        lastErr,
	}
}

// fingerprint hashes the terrain and anchors so reproducibility can be
// checked cheaply across runs and machines.
func fingerprint(f Floor) string {
	h := fnv.New64a()
	var buf [4]byte
	put := func(v int) {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		h.Write(buf[:])
	}
	put(f.Grid.Width)
	put(f.Grid.Height)
	for _, t := range f.Grid.Tiles {
		h.Write([]byte{byte(t)})
	}
	for _, a := range f.Anchors {
		h.Write([]byte{byte(a.Kind)})
		put(a.X)
		put(a.Y)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
