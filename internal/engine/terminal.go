package engine

// IsFinished reports whether no move can change the board: every cell is
// filled and no cell equals its right or down neighbour. Checking right and
// down from every cell covers each adjacent pair once.
func (b *Board) IsFinished() bool {
	for index, value := range b.cells {
		if value == 0 {
			return false
		}
		if right, ok := b.Neighbor(index, DirRight); ok && b.cells[right] == value {
			return false
		}
		if down, ok := b.Neighbor(index, DirDown); ok && b.cells[down] == value {
			return false
		}
	}
	return true
}
