// Package danger implements the per-floor danger modes. Exactly one mode is
// active on a floor, selected by seed parity; the set is closed at two
// variants (Sound Hunter and Imminent Collapse) and the engine exhausts it
// with a type switch.
package danger

// Kind identifies a danger mode variant.
type Kind uint8

const (
	KindHunter Kind = iota
	KindCollapse
)

// String returns the mode name as shown in run records and the HUD.
func (k Kind) String() string {
	switch k {
	case KindHunter:
		return "hunter"
	case KindCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// Pos is a tile coordinate.
type Pos struct {
	X int
	Y int
}

// Manhattan returns the Manhattan distance between two positions.
func Manhattan(a, b Pos) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Mode is the closed union of danger variants. The unexported marker keeps
// outside packages from adding a third.
type Mode interface {
	Kind() Kind
	Clone() Mode

	isMode()
}
