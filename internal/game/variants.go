// Package game wraps the grid engine as a playable variant for the platform:
// it maps input frames to moves, tracks game over and target state, and
// renders the board into a core.Screen.
package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ClassicID is the identifier of the standard 4x4 board.
const ClassicID = "2048"

// Variant defines a board configuration offered in the menu.
type Variant struct {
	ID         string
	Name       string
	Size       int // Grid dimension
	StartTiles int // Tiles placed before the first move
	Target     int // Tile value announced as a win; play continues past it
}

// Variants lists the built-in boards, smallest first.
// Targets are set to values that are realistic for each grid.
var Variants = []Variant{
	{ID: VariantID(3), Name: "Tiny", Size: 3, StartTiles: 2, Target: 256},
	{ID: VariantID(4), Name: "Classic", Size: 4, StartTiles: 2, Target: 2048},
	{ID: VariantID(5), Name: "Big", Size: 5, StartTiles: 2, Target: 4096},
	{ID: VariantID(6), Name: "Huge", Size: 6, StartTiles: 2, Target: 8192},
}

// VariantID returns the identifier used for a board of the given size.
// Scores are stored per variant ID.
func VariantID(size int) string {
	if size == 4 {
		return ClassicID
	}
	return fmt.Sprintf("%s_%dx%d", ClassicID, size, size)
}

// LookupVariant returns the built-in variant with the given ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// ParseVariantID resolves a variant ID, built in or custom ("2048_7x7").
// Only canonical IDs are accepted: the classic board is "2048", not "2048_4x4".
func ParseVariantID(id string) (Variant, bool) {
	if v, ok := LookupVariant(id); ok {
		return v, true
	}
	dims, ok := strings.CutPrefix(id, ClassicID+"_")
	if !ok {
		return Variant{}, false
	}
	w, h, ok := strings.Cut(dims, "x")
	if !ok || w != h {
		return Variant{}, false
	}
	size, err := strconv.Atoi(w)
	if err != nil || size <= 0 || VariantID(size) != id {
		return Variant{}, false
	}
	return CustomVariant(size, 0), true
}

// CustomVariant describes a board size that is not built in.
func CustomVariant(size, startTiles int) Variant {
	if v, ok := LookupVariant(VariantID(size)); ok {
		if startTiles > 0 {
			v.StartTiles = startTiles
		}
		return v
	}
	if startTiles <= 0 {
		startTiles = 2
	}
	return Variant{
		ID:         VariantID(size),
		Name:       "Custom",
		Size:       size,
		StartTiles: startTiles,
		Target:     defaultTarget(size),
	}
}

// Title returns the display name, e.g. "2048 (5x5)".
func (v Variant) Title() string {
	if v.Size == 4 {
		return "2048"
	}
	return fmt.Sprintf("2048 (%dx%d)", v.Size, v.Size)
}

// defaultTarget scales the win tile with the board area.
func defaultTarget(size int) int {
	switch {
	case size <= 2:
		return 32
	case size == 3:
		return 256
	case size == 4:
		return 2048
	case size == 5:
		return 4096
	default:
		return 8192
	}
}

