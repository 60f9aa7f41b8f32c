package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		NewRun("survival", 40, 2, 95*time.Second),
		NewRun("survival", 12, 0, 30*time.Second),
		NewRun("survival", 40, 1, 80*time.Second),
		NewRun("other", 500, 9, time.Minute),
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("survival", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Kills descending, level breaks ties
	wantOrder := []struct{ kills, level int }{{40, 2}, {40, 1}, {12, 0}}
	for i, want := range wantOrder {
		if top[i].Kills != want.kills || top[i].Level != want.level {
			t.Errorf("run %d: kills=%d level=%d, expected %d and %d", i, top[i].Kills, top[i].Level, want.kills, want.level)
		}
	}
	if top[0].Duration != 95*time.Second {
		t.Errorf("Duration = %v, expected 95s", top[0].Duration)
	}
	if top[0].RunID != runs[0].RunID {
		t.Errorf("RunID = %q, expected %q", top[0].RunID, runs[0].RunID)
	}

	limited, err := store.TopRuns("survival", 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit 1 returned %d runs", len(limited))
	}
}

func TestSaveRunIDs(t *testing.T) {
	store := openTestStore(t)

	r := NewRun("survival", 3, 0, time.Second)
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(r); err == nil {
		t.Error("saving the same run twice should fail")
	}

	if _, err := store.SaveRun(Run{GameID: "survival", Kills: 1}); err != nil {
		t.Errorf("run without id should get one: %v", err)
	}
	if _, err := store.SaveRun(Run{RunID: "not-a-uuid", GameID: "survival"}); err == nil {
		t.Error("malformed run id should be rejected")
	}

	got, err := store.RunByID(r.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil || got.Kills != 3 {
		t.Fatalf("RunByID() = %+v, expected the saved run", got)
	}

	missing, err := store.RunByID("00000000-0000-0000-0000-000000000000")
	if err != nil || missing != nil {
		t.Errorf("missing run: got %+v, %v", missing, err)
	}
}

func TestBestKillsAndCount(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestKills("survival")
	if err != nil {
		t.Fatalf("BestKills() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 with no runs, got %d", best)
	}

	for _, kills := range []int{5, 27, 9} {
		if _, err := store.SaveRun(NewRun("survival", kills, 0, 10*time.Second)); err != nil {
			t.Fatal(err)
		}
	}

	best, _ = store.BestKills("survival")
	if best != 27 {
		t.Errorf("BestKills = %d, expected 27", best)
	}
	n, err := store.CountRuns("survival")
	if err != nil || n != 3 {
		t.Errorf("CountRuns = %d, %v, expected 3", n, err)
	}

	stats, err := store.GameStats("survival")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.BestKills != 27 || stats.TotalTime != 30*time.Second {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgKills < 13.6 || stats.AvgKills > 13.7 {
		t.Errorf("AvgKills = %v, expected about 13.67", stats.AvgKills)
	}

	if err := store.ClearRuns("survival"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n, _ := store.CountRuns("survival"); n != 0 {
		t.Errorf("CountRuns after clear = %d", n)
	}
}
