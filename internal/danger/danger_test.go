package danger

import "testing"

func openMap(w, h int) func(x, y int) bool {
	return func(x, y int) bool {
		return x >= 0 && y >= 0 && x < w && y < h
	}
}

func TestHunterMovesTowardTargetOnOpenMap(t *testing.T) {
	h := NewHunter(Pos{1, 1}, 2, 10)
	h.AdvanceToward(Pos{5, 1}, openMap(8, 8))
	if h.Pos != (Pos{2, 1}) {
		t.Errorf("hunter at %+v, want {2 1}", h.Pos)
	}
}

func TestHunterStaysPutWhenBlocked(t *testing.T) {
	h := NewHunter(Pos{3, 3}, 2, 10)
	h.AdvanceToward(Pos{6, 3}, func(x, y int) bool { return false })
	if h.Pos != (Pos{3, 3}) {
		t.Errorf("blocked hunter moved to %+v", h.Pos)
	}
}

func TestHunterRoutesAroundWalls(t *testing.T) {
	// Direct route east is walled; the hunter takes the best open neighbor.
	walls := map[Pos]bool{{4, 3}: true}
	h := NewHunter(Pos{3, 3}, 2, 10)
	h.AdvanceToward(Pos{6, 3}, func(x, y int) bool {
		return !walls[Pos{x, y}] && x >= 0 && y >= 0 && x < 8 && y < 8
	})
	if h.Pos == (Pos{3, 3}) {
		t.Error("hunter stayed put with open detours")
	}
	if h.Pos == (Pos{4, 3}) {
		t.Error("hunter stepped through a wall")
	}
}

func TestHunterCooldownRhythm(t *testing.T) {
	h := NewHunter(Pos{0, 0}, 2, 10)
	// Interval 2: step, wait, step, wait.
	want := []bool{true, false, true, false, true}
	for i, w := range want {
		if got := h.ReadyToAdvance(); got != w {
			t.Fatalf("tick %d: ready = %v, want %v", i, got, w)
		}
	}
}

func TestHunterPressureAccumulatesAndDecays(t *testing.T) {
	h := NewHunter(Pos{0, 0}, 2, 6)
	if h.Pursuing() {
		t.Fatal("hunter pursuing before any noise")
	}

	h.RecordNoise(3, Pos{4, 4})
	h.RecordNoise(3, Pos{5, 4})
	if !h.Pursuing() {
		t.Fatalf("pressure %d at threshold %d but not pursuing", h.Pressure, h.Threshold)
	}
	if h.LastHeard != (Pos{5, 4}) {
		t.Errorf("LastHeard = %+v, want {5 4}", h.LastHeard)
	}

	for i := 0; i < 10; i++ {
		h.Decay(1)
	}
	if h.Pursuing() {
		t.Error("still pursuing after full decay")
	}
	if h.Pressure != 0 {
		t.Errorf("Pressure = %d, want 0 (never negative)", h.Pressure)
	}
}

func TestHunterQuietNoiseBelowThreshold(t *testing.T) {
	h := NewHunter(Pos{0, 0}, 2, 6)
	for i := 0; i < 5; i++ {
		h.RecordNoise(1, Pos{2, 2})
	}
	if h.Pursuing() {
		t.Error("quiet steps alone crossed the threshold too early")
	}
}

func TestCollapseWarnsBeforeImpact(t *testing.T) {
	c := NewCollapse(5, 2)

	var events []CollapseEvent
	for i := 0; i < 5; i++ {
		events = append(events, c.Tick())
	}

	// Ticks: 4, 3, 2(warn), 1, 0(impact).
	want := []CollapseEvent{EventNone, EventNone, EventWarn, EventNone, EventImpact}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("tick %d: event = %d, want %d (all: %v)", i, events[i], want[i], events)
		}
	}
	if c.Cycle != 1 {
		t.Errorf("Cycle = %d, want 1", c.Cycle)
	}
}

func TestCollapseRecurs(t *testing.T) {
	c := NewCollapse(4, 1)
	impacts := 0
	warns := 0
	for i := 0; i < 12; i++ {
		switch c.Tick() {
		case EventImpact:
			impacts++
			c.ClearPending()
		case EventWarn:
			warns++
			c.Stage([]Pos{{1, 1}})
		}
	}
	if impacts != 3 {
		t.Errorf("impacts = %d over 12 ticks with period 4, want 3", impacts)
	}
	if warns != 3 {
		t.Errorf("warns = %d, want 3 (every impact telegraphed)", warns)
	}
}

func TestCollapseWarningWindowAlwaysPositive(t *testing.T) {
	// A degenerate config must still telegraph at least one tick.
	c := NewCollapse(3, 9)
	if c.WarningTicks < 1 || c.WarningTicks >= c.Period {
		t.Fatalf("warning window %d not clamped inside period %d", c.WarningTicks, c.Period)
	}
	sawWarnBeforeImpact := false
	for i := 0; i < c.Period; i++ {
		switch c.Tick() {
		case EventWarn:
			sawWarnBeforeImpact = true
		case EventImpact:
			if !sawWarnBeforeImpact {
				t.Fatal("impact arrived without a warning tick")
			}
			return
		}
	}
	t.Fatal("no impact within one period")
}

func TestCollapseCloneIsDeep(t *testing.T) {
	c := NewCollapse(10, 3)
	c.Stage([]Pos{{1, 2}, {3, 4}})

	clone := c.Clone().(*Collapse)
	clone.Pending[0] = Pos{9, 9}
	if c.Pending[0] != (Pos{1, 2}) {
		t.Error("clone shares pending slice with original")
	}
}

func TestModeKinds(t *testing.T) {
	var m Mode = NewHunter(Pos{0, 0}, 2, 10)
	if m.Kind() != KindHunter {
		t.Errorf("hunter Kind = %v", m.Kind())
	}
	m = NewCollapse(10, 2)
	if m.Kind() != KindCollapse {
		t.Errorf("collapse Kind = %v", m.Kind())
	}
	if KindHunter.String() != "hunter" || KindCollapse.String() != "collapse" {
		t.Error("kind names wrong")
	}
}
