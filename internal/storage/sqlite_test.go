package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("tetris", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tetris", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tetris", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different mode
	_, err = store.SaveScore("tetris_puzzle", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for tetris
	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for the puzzle mode
	puzzleScores, err := store.TopScores("tetris_puzzle", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(puzzleScores) != 1 {
		t.Errorf("Expected 1 puzzle mode score, got %d", len(puzzleScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 300)
	store.SaveScore("tetris", 200)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 200)
	store.SaveScore("tetris_puzzle", 300)

	// Clear only endless scores
	err = store.ClearScores("tetris")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Endless should be empty
	endlessScores, _ := store.TopScores("tetris", 10)
	if len(endlessScores) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(endlessScores))
	}

	// Puzzle mode should still have scores
	puzzleScores, _ := store.TopScores("tetris_puzzle", 10)
	if len(puzzleScores) != 1 {
		t.Errorf("Puzzle scores should not be affected by clearing endless")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStorePuzzleResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, err = store.SavePuzzleResult(PuzzleResult{
		PuzzleName: "First Clear",
		Solved:     false,
		Score:      38,
		PiecesUsed: 3,
		Lines:      0,
		Duration:   12.5,
	})
	if err != nil {
		t.Fatalf("SavePuzzleResult() failed: %v", err)
	}

	_, err = store.SavePuzzleResult(PuzzleResult{
		PuzzleName: "First Clear",
		Solved:     true,
		Score:      138,
		PiecesUsed: 2,
		Lines:      1,
		Duration:   8.0,
	})
	if err != nil {
		t.Fatalf("SavePuzzleResult() failed: %v", err)
	}

	results, err := store.PuzzleResults(10)
	if err != nil {
		t.Fatalf("PuzzleResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	history, err := store.PuzzleHistory("First Clear", 10)
	if err != nil {
		t.Fatalf("PuzzleHistory() failed: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("Expected 2 history entries, got %d", len(history))
	}

	// Solved flag round-trips through the integer column
	solvedCount := 0
	for _, r := range history {
		if r.Solved {
			solvedCount++
		}
	}
	if solvedCount != 1 {
		t.Errorf("Expected exactly 1 solved attempt, got %d", solvedCount)
	}
}

func TestStoreSolvedPuzzles(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SavePuzzleResult(PuzzleResult{PuzzleName: "Clean Sweep", Solved: true})
	store.SavePuzzleResult(PuzzleResult{PuzzleName: "Marathon", Solved: false})
	store.SavePuzzleResult(PuzzleResult{PuzzleName: "Clean Sweep", Solved: true})

	solved, err := store.SolvedPuzzles()
	if err != nil {
		t.Fatalf("SolvedPuzzles() failed: %v", err)
	}

	if len(solved) != 1 || solved[0] != "Clean Sweep" {
		t.Errorf("Expected only Clean Sweep solved, got %v", solved)
	}
}

func TestStoreBestPuzzleResult(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Never solved returns nil
	best, err := store.BestPuzzleResult("Marathon")
	if err != nil {
		t.Fatalf("BestPuzzleResult() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil for unsolved puzzle, got %+v", best)
	}

	store.SavePuzzleResult(PuzzleResult{PuzzleName: "Marathon", Solved: true, PiecesUsed: 9, Duration: 70})
	store.SavePuzzleResult(PuzzleResult{PuzzleName: "Marathon", Solved: true, PiecesUsed: 5, Duration: 61})
	store.SavePuzzleResult(PuzzleResult{PuzzleName: "Marathon", Solved: false, PiecesUsed: 2, Duration: 10})

	best, err = store.BestPuzzleResult("Marathon")
	if err != nil {
		t.Fatalf("BestPuzzleResult() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best result")
	}

	// Fewest pieces among solved attempts wins
	if best.PiecesUsed != 5 {
		t.Errorf("Expected best to use 5 pieces, got %d", best.PiecesUsed)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
