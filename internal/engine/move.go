package engine

// MoveResult describes what a single move did to the board.
type MoveResult struct {
	Changed  bool  // Any tile slid or merged
	Gained   int   // Score added by merges in this move
	Merged   []int // Indices that absorbed a merge, ascending
	Spawned  int   // Index of the tile spawned after the move
	HasSpawn bool  // Whether a tile was spawned
}

// Move slides and merges every tile in direction dir and, if anything
// changed, spawns one new tile. A move that changes nothing is a no-op.
func (b *Board) Move(dir Direction) MoveResult {
	res := b.Slide(dir)
	if !res.Changed {
		return res
	}

	b.moves++
	if b.Spawn() {
		res.Spawned = b.lastSpawn
		res.HasSpawn = true
	}
	return res
}

// Slide applies the slide/merge phase of a move without spawning.
func (b *Board) Slide(dir Direction) MoveResult {
	locked := make([]bool, len(b.cells))
	scoreBefore := b.score
	changed := false

	for _, index := range b.traversal(dir) {
		if b.tryMove(index, dir, locked) {
			changed = true
		}
	}

	res := MoveResult{
		Changed: changed,
		Gained:  b.score - scoreBefore,
	}
	for i, l := range locked {
		if l {
			res.Merged = append(res.Merged, i)
		}
	}
	return res
}

// tryMove pushes the tile at index one step towards dir, continuing to slide
// until it is blocked or merges. Reports whether the board changed.
func (b *Board) tryMove(index int, dir Direction, locked []bool) bool {
	next, ok := b.Neighbor(index, dir)
	if !ok {
		return false
	}

	value := b.cells[index]
	if value == 0 || locked[next] {
		return false
	}

	switch b.cells[next] {
	case 0:
		b.cells[next] = value
		b.cells[index] = 0
		b.tryMove(next, dir, locked)
		return true
	case value:
		b.cells[next] *= 2
		b.cells[index] = 0
		locked[next] = true
		b.score += b.cells[next]
		return true
	}
	return false
}

// traversal returns cell indices in the order they are processed for dir.
// Cells nearest the destination edge go first so they settle before the
// tiles behind them slide in.
func (b *Board) traversal(dir Direction) []int {
	n := b.size
	order := make([]int, 0, n*n)

	switch dir {
	case DirUp:
		for i := 0; i < n*n; i++ {
			order = append(order, i)
		}
	case DirDown:
		for i := n*n - 1; i >= 0; i-- {
			order = append(order, i)
		}
	case DirLeft:
		for col := 0; col < n; col++ {
			for row := 0; row < n; row++ {
				order = append(order, b.CoordsToIndex(row, col))
			}
		}
	case DirRight:
		for col := n - 1; col >= 0; col-- {
			for row := 0; row < n; row++ {
				order = append(order, b.CoordsToIndex(row, col))
			}
		}
	}
	return order
}
