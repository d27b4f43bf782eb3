package engine

import (
	"fmt"
	"strings"
)

// Coord is a (row, col) position on the grid.
type Coord struct {
	Row int
	Col int
}

// Snapshot is a read-only copy of the board for rendering and tests.
type Snapshot struct {
	Size      int
	Cells     [][]int // Cells[row][col]
	Score     int
	Moves     int
	MaxTile   int
	LastSpawn *Coord // nil when no tile is highlighted
	Finished  bool
}

// Snapshot returns a copy of the current board state.
func (b *Board) Snapshot() Snapshot {
	cells := make([][]int, b.size)
	for row := range b.size {
		cells[row] = make([]int, b.size)
		copy(cells[row], b.cells[row*b.size:(row+1)*b.size])
	}

	snap := Snapshot{
		Size:     b.size,
		Cells:    cells,
		Score:    b.score,
		Moves:    b.moves,
		MaxTile:  b.MaxTile(),
		Finished: b.IsFinished(),
	}
	if index, ok := b.LastSpawn(); ok {
		row, col := b.IndexToCoords(index)
		snap.LastSpawn = &Coord{Row: row, Col: col}
	}
	return snap
}

// IsLastSpawn reports whether (row, col) holds the last spawned tile.
func (s Snapshot) IsLastSpawn(row, col int) bool {
	return s.LastSpawn != nil && s.LastSpawn.Row == row && s.LastSpawn.Col == col
}

// String renders the snapshot as a plain-text grid.
// The last spawned tile is wrapped in dashes.
func (s Snapshot) String() string {
	width := s.Size*4 + (s.Size-1)*3 + 4
	rule := strings.Repeat("-", width)

	lines := []string{
		fmt.Sprintf("Score: %12d - Finished: %t", s.Score, s.Finished),
		rule,
	}

	for row := range s.Size {
		parts := make([]string, 0, s.Size+2)
		parts = append(parts, "")
		for col := range s.Size {
			cell := centerCell(s.Cells[row][col], 4)
			if s.IsLastSpawn(row, col) {
				parts = append(parts, "-"+cell+"-")
			} else {
				parts = append(parts, " "+cell+" ")
			}
		}
		parts = append(parts, "")
		lines = append(lines, strings.Join(parts, "|"))
	}

	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

// centerCell centers the decimal value in a field of the given width.
// Extra padding goes to the right.
func centerCell(value, width int) string {
	text := fmt.Sprint(value)
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
