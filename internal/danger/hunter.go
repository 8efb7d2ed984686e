package danger

import "sort"

// Hunter is the Sound Hunter mode: a pursuer that accumulates noise
// pressure from player movement, decays it over time, and above the pursuit
// threshold closes in on the last heard position one step per cooldown
// window.
type Hunter struct {
	Pos          Pos
	Pressure     int
	LastHeard    Pos
	Heard        bool
	StepInterval int
	StepCooldown int
	Threshold    int
}

// NewHunter places a hunter with the floor's pacing parameters.
func NewHunter(at Pos, stepInterval, threshold int) *Hunter {
	if stepInterval < 1 {
		stepInterval = 1
	}
	return &Hunter{
		Pos:          at,
		StepInterval: stepInterval,
		Threshold:    threshold,
	}
}

func (h *Hunter) Kind() Kind { return KindHunter }
func (h *Hunter) isMode()    {}

// Clone returns a deep copy.
func (h *Hunter) Clone() Mode {
	c := *h
	return &c
}

// RecordNoise adds pressure from a player move and remembers where it came
// from.
func (h *Hunter) RecordNoise(amount int, from Pos) {
	if amount <= 0 {
		return
	}
	h.Pressure += amount
	h.LastHeard = from
	h.Heard = true
}

// Decay bleeds off pressure on a tick, never below zero.
func (h *Hunter) Decay(amount int) {
	h.Pressure -= amount
	if h.Pressure < 0 {
		h.Pressure = 0
	}
}

// Pursuing reports whether the pressure has crossed the pursuit threshold.
func (h *Hunter) Pursuing() bool {
	return h.Heard && h.Pressure >= h.Threshold
}

// ReadyToAdvance consumes one tick of cooldown and reports whether the
// hunter may step now.
func (h *Hunter) ReadyToAdvance() bool {
	if h.StepCooldown == 0 {
		h.StepCooldown = h.StepInterval - 1
		return true
	}
	h.StepCooldown--
	return false
}

// AdvanceToward takes one greedy step toward the target: the four neighbors
// sorted by Manhattan distance, first walkable one wins. Blocked hunters
// stay put.
func (h *Hunter) AdvanceToward(target Pos, walkable func(x, y int) bool) {
	candidates := []Pos{
		{h.Pos.X, h.Pos.Y - 1},
		{h.Pos.X, h.Pos.Y + 1},
		{h.Pos.X - 1, h.Pos.Y},
		{h.Pos.X + 1, h.Pos.Y},
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return Manhattan(candidates[i], target) < Manhattan(candidates[j], target)
	})

	for _, c := range candidates {
		if walkable(c.X, c.Y) {
			h.Pos = c
			return
		}
	}
}
