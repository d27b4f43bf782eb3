// Package engine implements the grid rules of the 2048 sliding-tile puzzle:
// board storage, sliding and merging, random tile spawning and the
// end-of-game check. It has no notion of time or rendering; a shell drives it
// with discrete moves and reads back a Snapshot.
package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidGridSize is returned when a board is built with a non-positive size.
	ErrInvalidGridSize = errors.New("engine: grid size must be positive")

	// ErrInvalidStartTiles is returned for a negative start tile count.
	ErrInvalidStartTiles = errors.New("engine: start tile count must not be negative")
)

// Board is a square grid of tiles together with its score and spawn bookkeeping.
// A Board is not safe for concurrent use.
type Board struct {
	size  int
	cells []int // row-major, 0 = empty
	score int
	moves int

	lastSpawn int // -1 when nothing to highlight
	rng       Source
}

// New creates a board of size x size cells seeded with startTiles random tiles.
// The initial spawns are not reported as the last spawned tile.
func New(size, startTiles int, rng Source) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, size)
	}
	if startTiles < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStartTiles, startTiles)
	}
	if rng == nil {
		rng = NewSource(time.Now().UnixNano())
	}

	b := &Board{
		size:      size,
		cells:     make([]int, size*size),
		lastSpawn: -1,
		rng:       rng,
	}

	for range startTiles {
		b.Spawn()
	}
	b.lastSpawn = -1

	return b, nil
}

// FromCells builds a board from explicit row-major cell values.
// len(cells) must be a positive perfect square. Used for fixtures and replays.
func FromCells(cells []int, rng Source) (*Board, error) {
	size := 0
	for size*size < len(cells) {
		size++
	}
	if size == 0 || size*size != len(cells) {
		return nil, fmt.Errorf("%w: %d cells do not form a square", ErrInvalidGridSize, len(cells))
	}
	if rng == nil {
		rng = NewSource(time.Now().UnixNano())
	}

	b := &Board{
		size:      size,
		cells:     make([]int, len(cells)),
		lastSpawn: -1,
		rng:       rng,
	}
	copy(b.cells, cells)
	return b, nil
}

// Size returns the grid dimension N.
func (b *Board) Size() int {
	return b.size
}

// Score returns the accumulated score.
func (b *Board) Score() int {
	return b.score
}

// Moves returns how many moves changed the board.
func (b *Board) Moves() int {
	return b.moves
}

// IndexToCoords converts a linear index to (row, col).
func (b *Board) IndexToCoords(index int) (row, col int) {
	return index / b.size, index % b.size
}

// CoordsToIndex converts (row, col) to a linear index.
// Callers keep row and col within [0, N).
func (b *Board) CoordsToIndex(row, col int) int {
	return row*b.size + col
}

// Cell returns the value at (row, col).
func (b *Board) Cell(row, col int) int {
	return b.cells[b.CoordsToIndex(row, col)]
}

// Cells returns a copy of the row-major cell values.
func (b *Board) Cells() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)
	return out
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (b *Board) EmptyCells() []int {
	var empty []int
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

// LastSpawn returns the index of the most recently spawned tile.
func (b *Board) LastSpawn() (int, bool) {
	if b.lastSpawn < 0 {
		return 0, false
	}
	return b.lastSpawn, true
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}
