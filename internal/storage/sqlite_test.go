package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreGetSet(t *testing.T) {
	store := openTemp(t)

	v, ok, err := store.Get(game.HighScoreKey)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok || v != 0 {
		t.Errorf("Expected absent key, got %d (ok=%v)", v, ok)
	}

	if err := store.Set(game.HighScoreKey, 120); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(game.HighScoreKey, 340); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	v, ok, err = store.Get(game.HighScoreKey)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !ok || v != 340 {
		t.Errorf("Expected 340, got %d (ok=%v)", v, ok)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set(game.HighScoreKey, 70); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	v, ok, _ := store.Get(game.HighScoreKey)
	if !ok || v != 70 {
		t.Errorf("Expected 70 after reopen, got %d (ok=%v)", v, ok)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTemp(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	scores := []int{100, 50, 200}
	ids := make([]uuid.UUID, len(scores))
	for i, score := range scores {
		ids[i] = uuid.New()
		run := game.Run{
			ID:      ids[i],
			Score:   score,
			Length:  score/10 + 1,
			Ticks:   uint64(score * 3),
			Mode:    game.ModeAutonomous,
			EndedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.RecordRun(run); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Unexpected order: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].RunID != ids[2] {
		t.Errorf("Expected run id %s, got %s", ids[2], top[0].RunID)
	}
	if top[0].Mode != "AI" || top[0].Ticks != 600 || top[0].Length != 21 {
		t.Errorf("Unexpected entry: %+v", top[0])
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 200 || recent[1].Score != 50 {
		t.Errorf("Unexpected recent runs: %+v", recent)
	}
	if !recent[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("Expected created_at %v, got %v", base.Add(2*time.Minute), recent[0].CreatedAt)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 || stats.BestScore != 200 || stats.LongestLen != 21 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore < 116 || stats.AvgScore > 117 {
		t.Errorf("Expected average ~116.67, got %f", stats.AvgScore)
	}
}

func TestStoreRejectsDuplicateRun(t *testing.T) {
	store := openTemp(t)
	run := game.Run{ID: uuid.New(), Score: 10, Length: 2, Mode: game.ModeManual}

	if err := store.RecordRun(run); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := store.RecordRun(run); err == nil {
		t.Error("Expected error recording the same run twice")
	}
}

func TestStoreReset(t *testing.T) {
	store := openTemp(t)
	if err := store.Set(game.HighScoreKey, 10); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordRun(game.Run{ID: uuid.New(), Score: 10, Length: 2}); err != nil {
		t.Fatal(err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if _, ok, _ := store.Get(game.HighScoreKey); ok {
		t.Error("Expected high score to be cleared")
	}
	stats, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty history, got %+v", stats)
	}
}

func TestSessionWithSQLiteStore(t *testing.T) {
	store := openTemp(t)
	if err := store.Set(game.HighScoreKey, 5); err != nil {
		t.Fatal(err)
	}

	cfg := game.DefaultConfig()
	cfg.Grid = core.NewGrid(8, 8)
	cfg.Start = core.Cell{X: 4, Y: 4}
	s := game.NewSession(cfg, game.Options{Seed: 9, Store: store})
	if s.HighScore() != 5 {
		t.Fatalf("Expected high score 5 loaded from store, got %d", s.HighScore())
	}

	for range 100000 {
		s.Tick()
		if s.Phase() == game.PhaseOver {
			break
		}
	}
	if s.Phase() != game.PhaseOver {
		t.Skip("autopilot survived; nothing to persist")
	}

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].Score != s.Score() {
		t.Errorf("Expected recorded run with score %d, got %+v", s.Score(), recent)
	}
	v, _, _ := store.Get(game.HighScoreKey)
	if want := max(5, s.Score()); v != want {
		t.Errorf("Expected stored high score %d, got %d", want, v)
	}
}
