package engine

// Neighbor returns the index adjacent to index in direction dir.
// The second result is false when index sits on that edge of the grid.
func (b *Board) Neighbor(index int, dir Direction) (int, bool) {
	row, col := b.IndexToCoords(index)
	last := b.size - 1

	switch dir {
	case DirUp:
		if row == 0 {
			return 0, false
		}
		return b.CoordsToIndex(row-1, col), true
	case DirDown:
		if row == last {
			return 0, false
		}
		return b.CoordsToIndex(row+1, col), true
	case DirLeft:
		if col == 0 {
			return 0, false
		}
		return b.CoordsToIndex(row, col-1), true
	case DirRight:
		if col == last {
			return 0, false
		}
		return b.CoordsToIndex(row, col+1), true
	}
	return 0, false
}
