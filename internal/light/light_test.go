package light

import (
	"errors"
	"testing"
)

func TestApplyMoveCost(t *testing.T) {
	m := Meter{Current: 10, Max: 120}

	got, err := ApplyMoveCost(m, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Current != 7 {
		t.Errorf("Current = %d, want 7", got.Current)
	}
}

func TestApplyMoveCostInsufficient(t *testing.T) {
	m := Meter{Current: 2, Max: 120}

	got, err := ApplyMoveCost(m, 3)
	if !errors.Is(err, ErrInsufficientLight) {
		t.Fatalf("err = %v, want ErrInsufficientLight", err)
	}
	if got != m {
		t.Errorf("meter changed on rejected move: %+v", got)
	}
}

func TestApplyMoveCostExact(t *testing.T) {
	// Spending the last unit is allowed; exhaustion is judged afterward.
	m := Meter{Current: 1, Max: 120}
	got, err := ApplyMoveCost(m, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Current != 0 {
		t.Errorf("Current = %d, want 0", got.Current)
	}
}

func TestDepositConservation(t *testing.T) {
	// Burn then deposit must transfer the exact amount.
	m := Meter{Current: 50, Max: 120}
	tile := Charge{}

	m, err := ApplyMoveCost(m, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tile = Deposit(tile, 1)

	if total := m.Current + tile.Stored; total != 50 {
		t.Errorf("total light = %d, want 50", total)
	}
}

func TestDepositOntoCutTile(t *testing.T) {
	tile := Charge{Cut: true}
	got := Deposit(tile, 5)
	if got.Stored != 0 {
		t.Errorf("cut tile absorbed %d light, want 0", got.Stored)
	}
	if !got.Cut {
		t.Error("cut flag lost")
	}
}

func TestReclaimFull(t *testing.T) {
	// A full burn followed by a full reclaim restores the starting split.
	m := Meter{Current: 0, Max: 120}
	tile := Charge{Stored: 1}

	m, tile = Reclaim(m, tile, 1.0)
	if m.Current != 1 {
		t.Errorf("Current = %d, want 1", m.Current)
	}
	if tile.Stored != 0 {
		t.Errorf("Stored = %d, want 0", tile.Stored)
	}
}

func TestReclaimFraction(t *testing.T) {
	m := Meter{Current: 0, Max: 120}
	tile := Charge{Stored: 10}

	m, tile = Reclaim(m, tile, 0.5)
	if m.Current != 5 {
		t.Errorf("Current = %d, want 5", m.Current)
	}
	if tile.Stored != 5 {
		t.Errorf("Stored = %d, want 5 (remainder stays on tile)", tile.Stored)
	}
	if total := m.Current + tile.Stored; total != 10 {
		t.Errorf("reclaim created or destroyed light: total %d", total)
	}
}

func TestReclaimClampedToMax(t *testing.T) {
	m := Meter{Current: 118, Max: 120}
	tile := Charge{Stored: 10}

	m, tile = Reclaim(m, tile, 1.0)
	if m.Current != 120 {
		t.Errorf("Current = %d, want 120", m.Current)
	}
	if tile.Stored != 8 {
		t.Errorf("Stored = %d, want 8", tile.Stored)
	}
}

func TestReclaimNeverExceedsStored(t *testing.T) {
	m := Meter{Current: 0, Max: 120}
	tile := Charge{Stored: 3}

	m, tile = Reclaim(m, tile, 1.0)
	if m.Current > 3 {
		t.Errorf("reclaimed %d from a tile holding 3", m.Current)
	}
}

func TestReclaimFromCutTile(t *testing.T) {
	m := Meter{Current: 0, Max: 120}
	tile := Charge{Stored: 0, Cut: true}

	got, gotTile := Reclaim(m, tile, 1.0)
	if got.Current != 0 {
		t.Errorf("reclaimed %d from a cut tile", got.Current)
	}
	if !gotTile.Cut {
		t.Error("cut flag lost")
	}
}

func TestCutForfeitsCharge(t *testing.T) {
	tile := Charge{Stored: 7}
	got := Cut(tile)
	if got.Stored != 0 {
		t.Errorf("Stored = %d, want 0", got.Stored)
	}
	if !got.Cut {
		t.Error("tile not marked cut")
	}
	// Cutting is idempotent and irreversible.
	again := Cut(got)
	if again != got {
		t.Errorf("second cut changed the tile: %+v", again)
	}
}

func TestLastLightScenario(t *testing.T) {
	// Player with 1 light steps onto an empty tile: meter hits 0, the tile
	// holds the deposited unit, and stepping back reclaims it all.
	m := Meter{Current: 1, Max: 120}
	tile := Charge{}

	m, err := ApplyMoveCost(m, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tile = Deposit(tile, 1)
	if m.Current != 0 || tile.Stored != 1 {
		t.Fatalf("after burn: meter %d, tile %d; want 0, 1", m.Current, tile.Stored)
	}

	m, tile = Reclaim(m, tile, 1.0)
	if m.Current != 1 || tile.Stored != 0 {
		t.Errorf("after reclaim: meter %d, tile %d; want 1, 0", m.Current, tile.Stored)
	}
}
