package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// runPlain plays one board as a line-oriented session: the text board is
// printed after every move and moves are read one per line from in.
// It returns at game over, on "q"/"quit" or at end of input. A finished game
// is recorded in store when store is non-nil.
func runPlain(in io.Reader, out io.Writer, v game.Variant, seed int64, store *storage.Store) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	board, err := engine.New(v.Size, v.StartTiles, engine.NewSource(seed))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, board.Snapshot())

	scanner := bufio.NewScanner(in)
	for !board.IsFinished() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		}

		dir, err := engine.ParseDirection(line)
		if err != nil {
			fmt.Fprintln(out, "Use up/down/left/right or w/a/s/d, q to quit.")
			continue
		}

		res := board.Move(dir)
		if !res.Changed {
			fmt.Fprintf(out, "Nothing moves %s.\n", dir)
			continue
		}
		fmt.Fprintln(out, moveSummary(board, dir, res))
		fmt.Fprintln(out, board.Snapshot())
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading moves: %w", err)
	}

	if !board.IsFinished() {
		return nil
	}

	fmt.Fprintf(out, "Game over. Score %d, max tile %d, %d moves.\n", board.Score(), board.MaxTile(), board.Moves())
	if store != nil && board.Score() > 0 {
		_, err := store.SaveScore(storage.ScoreEntry{
			VariantID: v.ID,
			Score:     board.Score(),
			MaxTile:   board.MaxTile(),
			Moves:     board.Moves(),
		})
		if err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}
	return nil
}

// moveSummary describes a changed move, e.g. "right: +8, 2 merges, new 2 at row 1 col 3".
// Rows and columns are 1-based.
func moveSummary(board *engine.Board, dir engine.Direction, res engine.MoveResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: +%d", dir, res.Gained)
	switch len(res.Merged) {
	case 0:
	case 1:
		b.WriteString(", 1 merge")
	default:
		fmt.Fprintf(&b, ", %d merges", len(res.Merged))
	}
	if res.HasSpawn {
		row, col := board.IndexToCoords(res.Spawned)
		fmt.Fprintf(&b, ", new %d at row %d col %d", board.Cell(row, col), row+1, col+1)
	}
	return b.String()
}
