package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("ada", 1200, 4, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("HighScore() = %d after reopen, expected 1200", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	games := []struct {
		player              string
		score, lines, level int
	}{
		{"ada", 100, 3, 0},
		{"bob", 2400, 14, 1},
		{"ada", 880, 9, 0},
		{"", 40, 1, 0},
	}
	for _, g := range games {
		if _, err := store.SaveScore(g.player, g.score, g.lines, g.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	top := scores[0]
	if top.Player != "bob" || top.Score != 2400 || top.Lines != 14 || top.Level != 1 {
		t.Errorf("top entry = %+v", top)
	}
	if scores[1].Score != 880 || scores[2].Score != 100 || scores[3].Score != 40 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if scores[3].Player != "anonymous" {
		t.Errorf("empty player stored as %q, expected anonymous", scores[3].Player)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100, i, 0)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to ten
	for range 10 {
		store.SaveScore("test", 1, 0, 0)
	}
	scores, _ = store.TopScores(0)
	if len(scores) != 10 {
		t.Errorf("TopScores(0) returned %d entries, expected 10", len(scores))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("first", 300, 3, 0)
	store.SaveScore("second", 300, 3, 0)

	scores, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tie order = %s, %s", scores[0].Player, scores[1].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore("ada", 100, 1, 0)
	store.SaveScore("bob", 300, 3, 0)
	store.SaveScore("ada", 200, 2, 0)

	if high, _ = store.HighScore(); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if best, _ := store.PlayerBest("ada"); best != 200 {
		t.Errorf("PlayerBest(ada) = %d, expected 200", best)
	}
	if best, _ := store.PlayerBest("nobody"); best != 0 {
		t.Errorf("PlayerBest(nobody) = %d, expected 0", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("empty Stats() = %+v", st)
	}

	store.SaveScore("ada", 100, 3, 0)
	store.SaveScore("bob", 2400, 14, 1)

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := Stats{Games: 2, Best: 2400, TotalLines: 17, MaxLevel: 1}
	if st != want {
		t.Errorf("Stats() = %+v, expected %+v", st, want)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("ada", 100, 1, 0)
	store.SaveScore("bob", 200, 2, 0)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}
