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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("escape", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// A second game's scores must stay separate
	if _, err := store.SaveScore("escape_practice", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("escape", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
	}

	practiceScores, err := store.TopScores("escape_practice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(practiceScores) != 1 {
		t.Errorf("Expected 1 practice score, got %d", len(practiceScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("escape")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("escape", 100)
	store.SaveScore("escape", 300)
	store.SaveScore("escape", 200)

	high, err = store.HighScore("escape")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("escape", 100)
	store.SaveScore("escape", 200)
	store.SaveScore("escape_practice", 300)

	if err := store.ClearScores("escape"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	campaignScores, _ := store.TopScores("escape", 10)
	if len(campaignScores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaignScores))
	}

	practiceScores, _ := store.TopScores("escape_practice", 10)
	if len(practiceScores) != 1 {
		t.Errorf("Practice scores should not be affected by clearing the campaign")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("escape", 2)
	store.SaveScore("escape", 4)
	store.SaveScore("escape_practice", 10)

	stats, err := store.GetGameStats("escape")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 4 {
		t.Errorf("Stats = %+v, want 2 games with best 4", stats)
	}
	if stats.AvgScore != 3 {
		t.Errorf("Expected average of 3, got %v", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["escape_practice"].HighScore != 10 {
		t.Errorf("Practice high score = %d, want 10", all["escape_practice"].HighScore)
	}
}

func TestStoreRecordAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct {
		game, level, outcome string
		ticks                int
	}{
		{"escape", "level1", "caught", 600},
		{"escape", "level1", "escaped", 900},
		{"escape", "level2", "fell", 300},
		// Practice runs must not bleed into campaign history
		{"escape_practice", "level1", "escaped", 450},
	} {
		if _, err := store.RecordRun(run.game, run.level, run.outcome, run.ticks); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("escape", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}

	// Newest first
	if runs[0].LevelName != "level2" || runs[0].Outcome != "fell" {
		t.Errorf("Expected newest run level2/fell first, got %s/%s", runs[0].LevelName, runs[0].Outcome)
	}
	if runs[1].LevelName != "level1" || runs[1].Outcome != "escaped" {
		t.Errorf("Expected level1/escaped second, got %s/%s", runs[1].LevelName, runs[1].Outcome)
	}
	if runs[0].DurationTicks != 300 {
		t.Errorf("Expected duration 300, got %d", runs[0].DurationTicks)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("escape", "level1", "escaped", 900)
	store.RecordRun("escape", "level1", "caught", 1200)
	store.RecordRun("escape", "level1", "escaped", 800)
	store.RecordRun("escape", "level2", "fell", 300)

	stats, err := store.GetLevelStats("escape")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 boards, got %d", len(stats))
	}

	l1 := stats[0]
	if l1.LevelName != "level1" {
		t.Errorf("Expected level1 first, got %s", l1.LevelName)
	}
	if l1.Attempts != 3 || l1.Escapes != 2 || l1.Catches != 1 || l1.Falls != 0 {
		t.Errorf("level1 stats = %+v, want 3 attempts, 2 escapes, 1 catch", l1)
	}
	if l1.BestTicks != 800 {
		t.Errorf("Expected best escape of 800 ticks, got %d", l1.BestTicks)
	}

	l2 := stats[1]
	if l2.Attempts != 1 || l2.Falls != 1 {
		t.Errorf("level2 stats = %+v, want 1 attempt, 1 fall", l2)
	}
	if l2.BestTicks != 0 {
		t.Errorf("Uncleared board should report best of 0, got %d", l2.BestTicks)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("escape", "level1", "escaped", 900)
	store.RecordRun("escape_practice", "level1", "caught", 600)

	if err := store.ClearRuns("escape"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("escape", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 campaign runs after clear, got %d", len(runs))
	}

	practiceRuns, _ := store.RecentRuns("escape_practice", 10)
	if len(practiceRuns) != 1 {
		t.Errorf("Practice runs should not be affected by clearing the campaign")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
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

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := expandHome("~/x/test.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, "x", "test.db"); got != want {
		t.Errorf("expandHome() = %q, want %q", got, want)
	}

	got, err = expandHome("/abs/test.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if got != "/abs/test.db" {
		t.Errorf("Absolute path should pass through unchanged, got %q", got)
	}
}
