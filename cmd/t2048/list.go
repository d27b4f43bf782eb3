package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows every registered board with its size and target tile.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Size", "Target", "Title")
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "--", "----", "------", "-----")

	for _, info := range variants {
		size, target := "-", "-"
		if v, ok := game.LookupVariant(info.ID); ok {
			size = fmt.Sprintf("%dx%d", v.Size, v.Size)
			target = fmt.Sprintf("%d", v.Target)
		}
		fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, info.ID, size, target, info.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a board.")
}
