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
	dbPath := filepath.Join(tmpDir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	records := []MatchRecord{
		{Black: "human", White: "random", Winner: ResultBlackWin, Moves: 17, Duration: 65},
		{Black: "random", White: "random", Winner: ResultDraw, Moves: 42, Duration: 3},
		{Black: "random", White: "human", Winner: ResultWhiteWin, Moves: 24, Duration: 101},
	}
	for _, rec := range records {
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	got, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(got))
	}

	// Newest first
	if got[0].Winner != ResultWhiteWin || got[0].Moves != 24 {
		t.Errorf("First record = %+v, want the last saved match", got[0])
	}
	if got[2].Black != "human" || got[2].White != "random" {
		t.Errorf("Oldest record providers = %q/%q", got[2].Black, got[2].White)
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveMatch(MatchRecord{Black: "random", White: "random", Winner: ResultDraw, Moves: 42})
	}

	got, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 matches with limit, got %d", len(got))
	}
}

func TestStoreMatchStats(t *testing.T) {
	store := openTestStore(t)

	// No matches yet
	stats, err := store.MatchStats()
	if err != nil {
		t.Fatalf("MatchStats() failed: %v", err)
	}
	if stats.Matches != 0 {
		t.Errorf("Expected 0 matches, got %d", stats.Matches)
	}

	store.SaveMatch(MatchRecord{Black: "a", White: "b", Winner: ResultBlackWin, Moves: 10})
	store.SaveMatch(MatchRecord{Black: "a", White: "b", Winner: ResultBlackWin, Moves: 20})
	store.SaveMatch(MatchRecord{Black: "a", White: "b", Winner: ResultWhiteWin, Moves: 30})
	store.SaveMatch(MatchRecord{Black: "a", White: "b", Winner: ResultDraw, Moves: 40})

	stats, err = store.MatchStats()
	if err != nil {
		t.Fatalf("MatchStats() failed: %v", err)
	}
	if stats.Matches != 4 || stats.BlackWins != 2 || stats.WhiteWins != 1 || stats.Draws != 1 {
		t.Errorf("Stats = %+v", stats)
	}
	if stats.AvgMoves != 25 {
		t.Errorf("AvgMoves = %v, want 25", stats.AvgMoves)
	}
}

func TestStoreProviderStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchRecord{Black: "random", White: "human", Winner: ResultBlackWin, Moves: 9})
	store.SaveMatch(MatchRecord{Black: "human", White: "random", Winner: ResultBlackWin, Moves: 11})
	store.SaveMatch(MatchRecord{Black: "random", White: "human", Winner: ResultDraw, Moves: 42})

	wins, losses, draws, err := store.ProviderStats("random")
	if err != nil {
		t.Fatalf("ProviderStats() failed: %v", err)
	}
	if wins != 1 || losses != 1 || draws != 1 {
		t.Errorf("random stats = %d/%d/%d, want 1/1/1", wins, losses, draws)
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchRecord{Black: "a", White: "b", Winner: ResultDraw, Moves: 42})
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	got, _ := store.RecentMatches(10)
	if len(got) != 0 {
		t.Errorf("Expected 0 matches after clear, got %d", len(got))
	}
}
