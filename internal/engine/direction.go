package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a fixed order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a word or single-key shorthand to a Direction.
// Accepts "up"/"down"/"left"/"right", WASD and vim-style hjkl.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w", "k":
		return DirUp, nil
	case "down", "s", "j":
		return DirDown, nil
	case "left", "a", "h":
		return DirLeft, nil
	case "right", "d", "l":
		return DirRight, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}
