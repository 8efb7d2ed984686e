package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Seed: 42, FloorsCleared: 3, Steps: 210, Relics: 2, Outcome: "caught", DangerMode: "hunter", DurationSecs: 95},
		{Seed: 7, FloorsCleared: 1, Steps: 80, Relics: 0, Outcome: "exhausted", DangerMode: "collapse", DurationSecs: 40},
		{Seed: 99, FloorsCleared: 6, Steps: 510, Relics: 5, Outcome: "exhausted", DangerMode: "hunter", DurationSecs: 300},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, want 3", len(recent))
	}
	// Newest first.
	if recent[0].Seed != 99 {
		t.Errorf("newest run seed = %d, want 99", recent[0].Seed)
	}
	if recent[0].DangerMode != "hunter" {
		t.Errorf("danger mode = %q, want hunter", recent[0].DangerMode)
	}

	deepest, err := store.DeepestRuns(1)
	if err != nil {
		t.Fatalf("DeepestRuns() failed: %v", err)
	}
	if len(deepest) != 1 || deepest[0].FloorsCleared != 6 {
		t.Errorf("DeepestRuns()[0].FloorsCleared = %v, want 6", deepest)
	}
}

func TestStoreSeedRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// A seed above MaxInt64 must survive the signed column round trip.
	const seed = uint64(0xDEADBEEFDEADBEEF)
	if _, err := store.SaveRun(RunEntry{Seed: seed, Outcome: "caught"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if recent[0].Seed != seed {
		t.Errorf("seed round trip = %#x, want %#x", recent[0].Seed, seed)
	}
}

func TestStoreDeepestFloor(t *testing.T) {
	store := openTestStore(t)

	deepest, err := store.DeepestFloor()
	if err != nil {
		t.Fatalf("DeepestFloor() failed: %v", err)
	}
	if deepest != 0 {
		t.Errorf("DeepestFloor() on empty store = %d, want 0", deepest)
	}

	store.SaveRun(RunEntry{Seed: 1, FloorsCleared: 4, Outcome: "caught"})
	store.SaveRun(RunEntry{Seed: 2, FloorsCleared: 9, Outcome: "exhausted"})

	deepest, err = store.DeepestFloor()
	if err != nil {
		t.Fatalf("DeepestFloor() failed: %v", err)
	}
	if deepest != 9 {
		t.Errorf("DeepestFloor() = %d, want 9", deepest)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Seed: 1, FloorsCleared: 2, Steps: 100, Relics: 1, Outcome: "caught"})
	store.SaveRun(RunEntry{Seed: 2, FloorsCleared: 4, Steps: 300, Relics: 3, Outcome: "exhausted"})

	stats, err := store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.DeepestFloor != 4 {
		t.Errorf("DeepestFloor = %d, want 4", stats.DeepestFloor)
	}
	if stats.TotalSteps != 400 {
		t.Errorf("TotalSteps = %d, want 400", stats.TotalSteps)
	}
	if stats.TotalRelics != 4 {
		t.Errorf("TotalRelics = %d, want 4", stats.TotalRelics)
	}
	if stats.AvgFloors != 3.0 {
		t.Errorf("AvgFloors = %f, want 3.0", stats.AvgFloors)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Seed: 1, Outcome: "caught"})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("RecentRuns() after clear returned %d runs", len(recent))
	}
}
