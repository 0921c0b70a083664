package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/kids-arcade/internal/multiplayer"
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

	saves := []struct {
		game  string
		mode  string
		level int
		score int
	}{
		{"monster-munch", "addition", 2, 100},
		{"monster-munch", "subtraction", 1, 50},
		{"monster-munch", "mixed", 4, 200},
		{"counting-farm", "counting", 3, 500},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.mode, s.level, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("monster-munch", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Mode != "mixed" || scores[0].Level != 4 {
		t.Errorf("top entry = %+v, want mixed at level 4", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	farm, err := store.TopScores("counting-farm", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(farm) != 1 {
		t.Errorf("Expected 1 counting-farm score, got %d", len(farm))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "addition", 1, (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("monster-munch")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("monster-munch", "addition", 1, 100)
	store.SaveScore("monster-munch", "addition", 3, 300)
	store.SaveScore("monster-munch", "addition", 2, 200)

	high, err = store.HighScore("monster-munch")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("memory-match", "easy", 1, 100)
	store.SaveScore("memory-match", "easy", 1, 200)
	store.SaveScore("number-bubbles", "ascending", 2, 300)
	store.SaveDuel(DuelResult{GameID: "memory-match", Player1: "Ana", Player2: "Ben"})

	if err := store.ClearScores("memory-match"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("memory-match", 10); len(scores) != 0 {
		t.Errorf("Expected 0 memory-match scores after clear, got %d", len(scores))
	}
	if duels, _ := store.RecentDuels("memory-match", 10); len(duels) != 0 {
		t.Errorf("Expected 0 duels after clear, got %d", len(duels))
	}
	if scores, _ := store.TopScores("number-bubbles", 10); len(scores) != 1 {
		t.Error("number-bubbles scores should not be affected")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", "counting", 1, i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreDuels(t *testing.T) {
	store := openTestStore(t)

	id := multiplayer.NewMatchID()
	if _, err := store.SaveDuel(DuelResult{
		MatchID:  id,
		GameID:   "memory-match",
		Player1:  "Ana",
		Player2:  "Ben",
		Pairs1:   4,
		Pairs2:   2,
		Winner:   "Ana",
		Moves:    11,
		Duration: 95,
	}); err != nil {
		t.Fatalf("SaveDuel() failed: %v", err)
	}
	if _, err := store.SaveDuel(DuelResult{
		GameID:  "memory-match",
		Player1: "Ben",
		Player2: "Cleo",
		Pairs1:  3,
		Pairs2:  3,
	}); err != nil {
		t.Fatalf("SaveDuel() tie failed: %v", err)
	}

	got, err := store.DuelByMatchID(id)
	if err != nil {
		t.Fatalf("DuelByMatchID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("DuelByMatchID() = nil")
	}
	if got.Winner != "Ana" || got.Pairs1 != 4 || got.Moves != 11 || got.Duration != 95 {
		t.Errorf("DuelByMatchID() = %+v", got)
	}

	missing, err := store.DuelByMatchID("no-such-match")
	if err != nil || missing != nil {
		t.Errorf("DuelByMatchID(missing) = %v, %v", missing, err)
	}

	recent, err := store.RecentDuels("memory-match", 10)
	if err != nil {
		t.Fatalf("RecentDuels() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentDuels() = %d rows, want 2", len(recent))
	}
	if recent[0].Player2 != "Cleo" || recent[0].Winner != "" || recent[0].MatchID == "" {
		t.Errorf("newest duel = %+v, want generated id and no winner", recent[0])
	}

	ben, err := store.PlayerDuels("Ben", 10)
	if err != nil {
		t.Fatalf("PlayerDuels() failed: %v", err)
	}
	if len(ben) != 2 {
		t.Errorf("PlayerDuels(Ben) = %d rows, want 2", len(ben))
	}
	if cleo, _ := store.PlayerDuels("Cleo", 10); len(cleo) != 1 {
		t.Errorf("PlayerDuels(Cleo) = %d rows, want 1", len(cleo))
	}

	if _, err := store.SaveDuel(DuelResult{MatchID: id, GameID: "memory-match"}); err == nil {
		t.Error("SaveDuel() with a duplicate match id should fail")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("monster-munch", "addition", 2, 40)
	store.SaveScore("monster-munch", "mixed", 5, 160)
	store.SaveScore("number-bubbles", "odd", 3, 90)
	store.SaveDuel(DuelResult{GameID: "monster-munch", Player1: "A", Player2: "B"})

	stats, err := store.GetGameStats("monster-munch")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 160 || stats.TotalScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 100 || stats.BestLevel != 5 || stats.Duels != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}

	empty, err := store.GetGameStats("memory-match")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["number-bubbles"].HighScore != 90 {
		t.Errorf("GetAllGamesStats() = %v", all)
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

func TestStoreExpandHomePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/.kidsarcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".kidsarcade", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
