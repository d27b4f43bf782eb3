package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var errStorageDisabled = errors.New("score storage is disabled (storage.disabled in config)")

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top high scores for the given board, or a summary of
every board that has been played. Custom sizes are named like 2048_7x7.

Examples:
  t2048 scores
  t2048 scores 2048
  t2048 scores 2048_5x5 --limit 25
  t2048 scores 2048_7x7 --all
  t2048 scores 2048_3x3 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the board")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := openScoresDB()
	if err != nil {
		fail("%v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			fail("--clear needs a board, e.g. 't2048 scores 2048 --clear'")
		}
		if err := printSummary(os.Stdout, store); err != nil {
			fail("%v", err)
		}
		return
	}

	v, ok := game.ParseVariantID(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := clearScores(os.Stdout, store, v); err != nil {
			fail("%v", err)
		}
		return
	}

	limit := flagScoresLimit
	if flagScoresAll {
		limit = 0
	}
	if err := printScores(os.Stdout, store, v, limit); err != nil {
		fail("%v", err)
	}
}

// openScoresDB opens the score database for reading. Unlike openStore it
// reports failures, since the command has nothing to show without scores.
func openScoresDB() (*storage.Store, error) {
	if appConfig.Storage.Disabled {
		return nil, errStorageDisabled
	}
	store, err := storage.Open(dbPath())
	if err != nil {
		return nil, fmt.Errorf("opening scores database: %w", err)
	}
	return store, nil
}

// clearScores deletes every score of a board.
func clearScores(w io.Writer, store *storage.Store, v game.Variant) error {
	if err := store.ClearScores(v.ID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared scores for %s.\n", v.Title())
	return nil
}

// printScores prints the top scores of a board. A limit of 0 prints all.
func printScores(w io.Writer, store *storage.Store, v game.Variant, limit int) error {
	var scores []storage.ScoreEntry
	var err error
	if limit == 0 {
		scores, err = store.AllScores(v.ID)
	} else {
		scores, err = store.TopScores(v.ID, limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", v.Title())

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 't2048 play %s' to set the first high score!\n", v.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-6d  %-12s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if stats, err := store.GetVariantStats(v.ID); err == nil {
		fmt.Fprintf(w, "Best: %d  |  Best tile: %d  |  Games: %d  |  Avg: %.0f\n",
			stats.HighScore, stats.BestTile, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printSummary prints one line per played variant.
func printSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.GetAllVariantStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Fprintf(w, "  %-10s  %-6s  %-8s  %-6s  %s\n", "Board", "Games", "Best", "Tile", "Last played")
	fmt.Fprintf(w, "  %-10s  %-6s  %-8s  %-6s  %s\n", "-----", "-----", "----", "----", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(w, "  %-10s  %-6d  %-8d  %-6d  %s\n",
			id, s.GamesCount, s.HighScore, s.BestTile, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
