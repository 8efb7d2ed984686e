// Package light implements the light economy: a strictly conserved resource
// that players burn to move, deposit into trail tiles, and reclaim on
// re-entry. Everything here is a pure function over small value types so the
// reducer can stay side-effect free.
package light

import "errors"

// ErrInsufficientLight is returned when a move would cost more light than
// the player holds. The caller must leave the game state untouched.
var ErrInsufficientLight = errors.New("light: insufficient light for move")

// Meter is the player's carried light.
type Meter struct {
	Current int
	Max     int
}

// Charge is the light stored on a single trail tile. A cut tile keeps its
// Cut flag forever; its charge is forfeited and never reclaimable.
type Charge struct {
	Stored int
	Cut    bool
}

// ApplyMoveCost deducts a move's cost from the meter. On failure the meter
// is returned unchanged alongside ErrInsufficientLight.
func ApplyMoveCost(m Meter, cost int) (Meter, error) {
	if cost < 0 {
		cost = 0
	}
	if m.Current < cost {
		return m, ErrInsufficientLight
	}
	m.Current -= cost
	return m, nil
}

// Deposit adds light to a tile's charge. Depositing onto a cut tile is a
// forfeit: the tile absorbs nothing and the light is gone.
func Deposit(c Charge, amount int) Charge {
	if amount <= 0 || c.Cut {
		return c
	}
	c.Stored += amount
	return c
}

// Reclaim moves a fraction of a tile's stored charge back into the meter.
// The amount never exceeds the stored charge and never pushes the meter past
// its max; whatever cannot be reclaimed stays on the tile. Cut tiles yield
// nothing.
func Reclaim(m Meter, c Charge, fraction float64) (Meter, Charge) {
	if c.Cut || c.Stored <= 0 {
		return m, c
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	amount := int(fraction * float64(c.Stored))
	if room := m.Max - m.Current; amount > room {
		amount = room
	}
	if amount <= 0 {
		return m, c
	}
	m.Current += amount
	c.Stored -= amount
	return m, c
}

// Cut forfeits a tile's charge and marks it permanently cut.
func Cut(c Charge) Charge {
	return Charge{Stored: 0, Cut: true}
}
