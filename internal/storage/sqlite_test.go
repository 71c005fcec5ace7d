package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, r Run) {
	t.Helper()
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Variant: "classic", Score: 7, Length: 9}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("classic")
	if err != nil || high != 7 {
		t.Errorf("HighScore() after reopen = %d, %v, expected 7", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Variant: "classic", Score: 10, Length: 12, Ticks: 300, Cause: "wall"})
	mustSave(t, store, Run{Variant: "classic", Score: 5, Length: 7, Ticks: 120, Cause: "self"})
	mustSave(t, store, Run{Variant: "classic", Score: 20, Length: 22, Ticks: 900, Cause: "self"})
	mustSave(t, store, Run{Variant: "forgiving", Score: 50, Length: 52, Ticks: 2000, Cause: "wall"})

	runs, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	if runs[0].Score != 20 || runs[1].Score != 10 || runs[2].Score != 5 {
		t.Errorf("Runs not sorted by score: %+v", runs)
	}

	top := runs[0]
	if top.Variant != "classic" || top.Length != 22 || top.Ticks != 900 || top.Cause != "self" {
		t.Errorf("Run fields not round-tripped: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	other, err := store.TopScores("forgiving", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 forgiving run, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Run{Variant: "test", Score: (i + 1) * 100})
	}

	runs, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	mustSave(t, store, Run{Variant: "classic", Score: 1})
	mustSave(t, store, Run{Variant: "classic", Score: 3})
	mustSave(t, store, Run{Variant: "classic", Score: 2})

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3 {
		t.Errorf("Expected high score of 3, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Variant: "classic", Score: 1})
	mustSave(t, store, Run{Variant: "classic", Score: 2})
	mustSave(t, store, Run{Variant: "forgiving", Score: 3})

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(classic))
	}

	forgiving, _ := store.TopScores("forgiving", 10)
	if len(forgiving) != 1 {
		t.Errorf("Forgiving runs should not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, Run{Variant: "test", Score: i})
	}

	runs, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Variant: "classic", Score: 4, Length: 6, Ticks: 100, Cause: "wall"})
	mustSave(t, store, Run{Variant: "classic", Score: 8, Length: 10, Ticks: 200, Cause: "self"})
	mustSave(t, store, Run{Variant: "classic", Score: 0, Length: 2, Ticks: 3, Cause: "wall"})

	stats, err := store.GetVariantStats("classic")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}
	if stats.RunsCount != 3 || stats.HighScore != 8 || stats.LongestRun != 10 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %v, expected 4", stats.AvgScore)
	}
	if stats.TotalTicks != 303 {
		t.Errorf("TotalTicks = %d, expected 303", stats.TotalTicks)
	}
	if stats.WallDeaths != 2 || stats.SelfDeaths != 1 {
		t.Errorf("deaths wall=%d self=%d, expected 2 and 1", stats.WallDeaths, stats.SelfDeaths)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetVariantStats("forgiving")
	if err != nil {
		t.Fatalf("GetVariantStats(empty) failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("expected zero stats, got %+v", empty)
	}
}

func TestStoreAllVariantStats(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Variant: "classic", Score: 4, Cause: "wall"})
	mustSave(t, store, Run{Variant: "forgiving", Score: 9, Cause: "self"})
	mustSave(t, store, Run{Variant: "forgiving", Score: 1, Cause: "self"})

	all, err := store.GetAllVariantStats()
	if err != nil {
		t.Fatalf("GetAllVariantStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(all))
	}
	if f := all["forgiving"]; f == nil || f.RunsCount != 2 || f.HighScore != 9 || f.SelfDeaths != 2 {
		t.Errorf("unexpected forgiving stats %+v", f)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		in   any
		want time.Time
	}{
		{want, want},
		{"2024-03-01 12:30:00", want},
		{"2024-03-01T12:30:00Z", want},
		{"yesterday", time.Time{}},
		{nil, time.Time{}},
	}
	for _, tt := range tests {
		if got := parseTime(tt.in); !got.Equal(tt.want) {
			t.Errorf("parseTime(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSchemaVersion(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "versioned.db")

	for i := 0; i < 2; i++ {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i+1, err)
		}
		v, err := store.Version()
		store.Close()
		if err != nil {
			t.Fatalf("Version() failed: %v", err)
		}
		if v != SchemaVersion {
			t.Errorf("open #%d: schema version = %d, expected %d", i+1, v, SchemaVersion)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, want string
	}{
		{"~/.snake/scores.db", filepath.Join(home, ".snake/scores.db")},
		{"./scores.db", "./scores.db"},
		{"~other/scores.db", "~other/scores.db"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("expandHome(%q) = %q, %v, expected %q", tt.in, got, err, tt.want)
		}
	}
}
