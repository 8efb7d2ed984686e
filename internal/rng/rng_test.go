package rng

import "testing"

func TestFloorSeedDeterminism(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 0xC0FFEE} {
		for floor := 0; floor < 16; floor++ {
			a := FloorSeed(seed, floor)
			b := FloorSeed(seed, floor)
			if a != b {
				t.Errorf("FloorSeed(%d, %d) not stable: %d vs %d", seed, floor, a, b)
			}
		}
	}
}

func TestFloorSeedVariesByFloor(t *testing.T) {
	seen := make(map[uint64]int)
	for floor := 0; floor < 32; floor++ {
		s := FloorSeed(42, floor)
		if prev, ok := seen[s]; ok {
			t.Errorf("floors %d and %d share seed %d", prev, floor, s)
		}
		seen[s] = floor
	}
}

func TestModeIndexParity(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		for floor := 0; floor < 10; floor++ {
			m := ModeIndex(seed, floor)
			if m != 0 && m != 1 {
				t.Fatalf("ModeIndex(%d, %d) = %d, want 0 or 1", seed, floor, m)
			}
		}
	}
}

func TestModeIndexStableAcrossCalls(t *testing.T) {
	// Concrete scenario: seed=42, floor=0 must yield one fixed value
	// across many repeated computations.
	want := ModeIndex(42, 0)
	for i := 0; i < 1000; i++ {
		if got := ModeIndex(42, 0); got != want {
			t.Fatalf("call %d: ModeIndex(42, 0) = %d, want %d", i, got, want)
		}
	}
}

func TestAttemptSeedVariesByAttempt(t *testing.T) {
	base := FloorSeed(7, 3)
	a := AttemptSeed(base, 0)
	b := AttemptSeed(base, 1)
	if a == b {
		t.Error("attempt 0 and 1 produced the same sub-seed")
	}
	if a != AttemptSeed(base, 0) {
		t.Error("AttemptSeed not stable for same inputs")
	}
}

func TestStreamDeterminism(t *testing.T) {
	s1 := NewStream(99)
	s2 := NewStream(99)
	for i := 0; i < 100; i++ {
		if s1.Uint64() != s2.Uint64() {
			t.Fatalf("streams diverged at step %d", i)
		}
	}
}

func TestStreamIntnBounds(t *testing.T) {
	s := NewStream(5)
	for i := 0; i < 1000; i++ {
		v := s.Intn(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d, out of range", v)
		}
	}
	if got := s.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
}
