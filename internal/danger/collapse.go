package danger

// CollapsePhase is the current stage of the collapse cycle.
type CollapsePhase uint8

const (
	PhaseDormant CollapsePhase = iota
	PhaseWarning
	PhaseImpact
)

// CollapseEvent tells the caller what a tick changed.
type CollapseEvent uint8

const (
	// EventNone: the countdown moved, nothing else.
	EventNone CollapseEvent = iota
	// EventWarn: the telegraph window opened; stage the pending cut set now.
	EventWarn
	// EventImpact: the countdown hit zero; cut the pending set, the timer
	// has already reset for the next cycle.
	EventImpact
)

// Collapse is the Imminent Collapse mode: a recurring countdown that
// telegraphs a set of tiles during the warning window and severs them on
// impact. The caller selects the pending set; Collapse only keeps the
// rhythm.
type Collapse struct {
	TicksLeft    int
	Period       int
	WarningTicks int
	Cycle        int
	Phase        CollapsePhase
	Pending      []Pos
}

// NewCollapse starts a dormant collapse cycle with the floor's pacing. The
// warning window is clamped below the period so every impact is telegraphed
// for at least one tick.
func NewCollapse(period, warningTicks int) *Collapse {
	if period < 2 {
		period = 2
	}
	if warningTicks < 1 {
		warningTicks = 1
	}
	if warningTicks >= period {
		warningTicks = period - 1
	}
	return &Collapse{
		TicksLeft:    period,
		Period:       period,
		WarningTicks: warningTicks,
		Phase:        PhaseDormant,
	}
}

func (c *Collapse) Kind() Kind { return KindCollapse }
func (c *Collapse) isMode()    {}

// Clone returns a deep copy, including the staged pending set.
func (c *Collapse) Clone() Mode {
	cp := *c
	cp.Pending = make([]Pos, len(c.Pending))
	copy(cp.Pending, c.Pending)
	return &cp
}

// Tick advances the countdown by one tick and reports the resulting event.
// After EventImpact the timer is reset and the cycle count incremented; the
// caller must cut the Pending tiles and then call ClearPending.
func (c *Collapse) Tick() CollapseEvent {
	c.TicksLeft--

	if c.TicksLeft <= 0 {
		c.Phase = PhaseImpact
		c.TicksLeft = c.Period
		c.Cycle++
		return EventImpact
	}
	if c.TicksLeft == c.WarningTicks {
		c.Phase = PhaseWarning
		return EventWarn
	}
	if c.TicksLeft > c.WarningTicks {
		c.Phase = PhaseDormant
	}
	return EventNone
}

// Stage records the tile set to sever on the next impact.
func (c *Collapse) Stage(pending []Pos) {
	c.Pending = pending
}

// ClearPending drops the staged set after an impact has been applied.
func (c *Collapse) ClearPending() {
	c.Pending = nil
	c.Phase = PhaseDormant
}

// Warning reports whether the telegraph window is open.
func (c *Collapse) Warning() bool {
	return c.Phase == PhaseWarning && len(c.Pending) > 0
}
