package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{Player: "ana", Outcome: OutcomeGameOver, Score: 100},
		{Player: "ana", Outcome: OutcomeGameOver, Score: 50},
		{Player: "bo", Outcome: OutcomeWon, Score: 600, Ticks: 4321, Layout: "classic"},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 600 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	best := scores[0]
	if best.Player != "bo" || best.Outcome != OutcomeWon || best.Ticks != 4321 || best.Layout != "classic" {
		t.Errorf("top entry = %+v", best)
	}
	if _, err := uuid.Parse(best.RunID); err != nil {
		t.Errorf("generated RunID %q is not a UUID: %v", best.RunID, err)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveKeepsRunID(t *testing.T) {
	store := openTestStore(t)
	runID := NewRunID()

	saved, err := store.SaveScore(ScoreEntry{RunID: runID, Outcome: OutcomeWon, Score: 240})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if saved.RunID != runID || saved.ID == 0 {
		t.Errorf("saved = %+v", saved)
	}

	if _, err := store.SaveScore(ScoreEntry{RunID: runID, Outcome: OutcomeWon, Score: 240}); err == nil {
		t.Error("saving the same run twice should fail")
	}

	got, err := store.ScoreByRun(runID)
	if err != nil || got == nil {
		t.Fatalf("ScoreByRun() = %v, %v", got, err)
	}
	if got.Score != 240 {
		t.Errorf("Score = %d, expected 240", got.Score)
	}

	missing, err := store.ScoreByRun("nope")
	if err != nil || missing != nil {
		t.Errorf("ScoreByRun(missing) = %v, %v", missing, err)
	}
}

func TestStoreRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreEntry{Outcome: "quit", Score: 10}); err == nil {
		t.Error("unknown outcome should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore(ScoreEntry{Outcome: OutcomeGameOver, Score: (i + 1) * 100})
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Player: "ana", Outcome: OutcomeGameOver, Score: 10})
	store.SaveScore(ScoreEntry{Player: "bo", Outcome: OutcomeGameOver, Score: 20})
	store.SaveScore(ScoreEntry{Player: "ana", Outcome: OutcomeWon, Score: 30})

	scores, err := store.PlayerScores("ana", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 30 {
		t.Errorf("PlayerScores(ana) = %v, expected newest first", scores)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 when empty, got %d", high)
	}

	empty, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(ScoreEntry{Outcome: OutcomeGameOver, Score: 100})
	store.SaveScore(ScoreEntry{Outcome: OutcomeWon, Score: 300})
	store.SaveScore(ScoreEntry{Outcome: OutcomeGameOver, Score: 200})

	high, _ = store.HighScore()
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Wins != 1 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Outcome: OutcomeGameOver, Score: 100})
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
