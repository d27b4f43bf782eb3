package game

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// boardDims returns the drawn width and height of an n x n grid.
func boardDims(n int) (int, int) {
	return n*cellWidth + 1, n*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.board.Snapshot()
	boardW, boardH := boardDims(snap.Size)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, snap, boardX, boardW)
	renderBoard(dst, snap, g.lastMove.Merged, boardX, boardY)

	board := core.NewRect(boardX, boardY, boardW, boardH)
	switch {
	case snap.Finished:
		drawOverlay(dst, board, "GAME OVER",
			fmt.Sprintf("Max tile: %d", snap.MaxTile), "Press R to restart")
	case g.justWon:
		drawOverlay(dst, board, fmt.Sprintf("%d reached!", g.variant.Target), "Keep going")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	_, y := dst.Bounds().Center()
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and target lines centered over the board.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot, boardX, boardW int) {
	score := fmt.Sprintf("Score: %d", snap.Score)
	if g.lastMove.Gained > 0 {
		score += fmt.Sprintf(" +%d", g.lastMove.Gained)
	}

	info := fmt.Sprintf("Max: %d", snap.MaxTile)
	if g.variant.Target > 0 && !g.won {
		info = fmt.Sprintf("Target: %d", g.variant.Target)
	}

	for y, line := range []string{
		g.variant.Title(),
		score,
		fmt.Sprintf("%s  Moves: %d", info, snap.Moves),
	} {
		dst.DrawText(max(0, boardX+(boardW-len(line))/2), y, line)
	}
}

// renderBoard draws the grid lines and tiles. The last spawned tile is
// flanked by dashes and tiles merged by the last move by brackets.
func renderBoard(dst *core.Screen, snap engine.Snapshot, merged []int, boardX, boardY int) {
	n := snap.Size
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, gridCorner(x, y, n))

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y := range n {
		for x := range n {
			val := snap.Cells[y][x]
			if val == 0 {
				continue
			}

			text := tileLabel(val, cellWidth-1)
			switch {
			case snap.IsLastSpawn(y, x):
				text = decorate(text, "-", "-")
			case slices.Contains(merged, y*n+x):
				text = decorate(text, "[", "]")
			}
			padLeft := max(0, (cellWidth-1-len(text))/2)
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			dst.DrawTextColored(cellX+padLeft, cellY, text, core.TileColor(val))
		}
	}
}

// tileLabel formats a tile value in at most width characters, switching to
// binary unit suffixes (1024 = 1k) for values that do not fit.
func tileLabel(val, width int) string {
	text := strconv.Itoa(val)
	for _, unit := range []string{"k", "M", "G", "T"} {
		if len(text) <= width || val < 1024 {
			break
		}
		val /= 1024
		text = strconv.Itoa(val) + unit
	}
	if len(text) > width {
		text = text[:width]
	}
	return text
}

// decorate wraps a label in markers when the result still fits in a cell.
func decorate(text, left, right string) string {
	if len(text)+len(left)+len(right) > cellWidth-1 {
		return text
	}
	return left + text + right
}

// gridCorner returns the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// drawOverlay draws a boxed message centered on area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
