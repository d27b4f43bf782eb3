package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveScores(t *testing.T, store *storage.Store, variantID string, scores ...int) {
	t.Helper()
	for _, s := range scores {
		if _, err := store.SaveScore(storage.ScoreEntry{VariantID: variantID, Score: s, MaxTile: 64, Moves: 10}); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
}

func mustVariant(t *testing.T, id string) game.Variant {
	t.Helper()
	v, ok := game.ParseVariantID(id)
	if !ok {
		t.Fatalf("ParseVariantID(%q) failed", id)
	}
	return v
}

func TestOpenScoresDBDisabled(t *testing.T) {
	saved := appConfig
	t.Cleanup(func() { appConfig = saved })

	path := filepath.Join(t.TempDir(), "scores.db")
	appConfig.Storage.Path = path
	appConfig.Storage.Disabled = true

	if _, err := openScoresDB(); !errors.Is(err, errStorageDisabled) {
		t.Fatalf("openScoresDB() error = %v, want errStorageDisabled", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("database file created while storage is disabled (stat err = %v)", err)
	}

	appConfig.Storage.Disabled = false
	store, err := openScoresDB()
	if err != nil {
		t.Fatalf("openScoresDB() enabled: %v", err)
	}
	store.Close()
}

func TestPrintScoresCustomBoard(t *testing.T) {
	store := testStore(t)
	saveScores(t, store, "2048_7x7", 700)

	var out bytes.Buffer
	if err := printScores(&out, store, mustVariant(t, "2048_7x7"), 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "High Scores - 2048 (7x7)") || !strings.Contains(text, "700") {
		t.Errorf("custom board scores missing:\n%s", text)
	}
}

func TestPrintScoresLimitAndAll(t *testing.T) {
	store := testStore(t)
	saveScores(t, store, game.ClassicID, 10, 20, 30, 40, 50)
	v := mustVariant(t, game.ClassicID)

	var top bytes.Buffer
	if err := printScores(&top, store, v, 3); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if n := strings.Count(top.String(), storage.DefaultPlayer); n != 3 {
		t.Errorf("limit 3 printed %d rows", n)
	}

	var all bytes.Buffer
	if err := printScores(&all, store, v, 0); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if n := strings.Count(all.String(), storage.DefaultPlayer); n != 5 {
		t.Errorf("limit 0 printed %d rows, want all 5", n)
	}
}

func TestPrintScoresEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := printScores(&out, testStore(t), mustVariant(t, "2048_7x7"), 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(out.String(), "t2048 play 2048_7x7") {
		t.Errorf("empty board should suggest playing it:\n%s", out.String())
	}
}

func TestClearScores(t *testing.T) {
	store := testStore(t)
	saveScores(t, store, "2048_3x3", 10, 20)
	saveScores(t, store, game.ClassicID, 30)

	var out bytes.Buffer
	if err := clearScores(&out, store, mustVariant(t, "2048_3x3")); err != nil {
		t.Fatalf("clearScores: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared scores for 2048 (3x3)") {
		t.Errorf("unexpected output: %q", out.String())
	}

	if best, _ := store.HighScore("2048_3x3"); best != 0 {
		t.Errorf("cleared board high score = %d, want 0", best)
	}
	if best, _ := store.HighScore(game.ClassicID); best != 30 {
		t.Errorf("other board high score = %d, want 30", best)
	}
}

func TestPrintSummary(t *testing.T) {
	store := testStore(t)

	var empty bytes.Buffer
	if err := printSummary(&empty, store); err != nil {
		t.Fatalf("printSummary: %v", err)
	}
	if !strings.Contains(empty.String(), "No scores recorded yet.") {
		t.Errorf("empty summary = %q", empty.String())
	}

	saveScores(t, store, game.ClassicID, 100)
	saveScores(t, store, "2048_7x7", 700)
	var out bytes.Buffer
	if err := printSummary(&out, store); err != nil {
		t.Fatalf("printSummary: %v", err)
	}
	for _, id := range []string{"2048 ", "2048_7x7"} {
		if !strings.Contains(out.String(), id) {
			t.Errorf("summary missing %q:\n%s", id, out.String())
		}
	}
}
