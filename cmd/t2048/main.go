// t2048 is the sliding-tile merge puzzle for the terminal.
//
// Usage:
//
//	t2048 list              - List available boards
//	t2048 play [variant]    - Play a board
//	t2048 menu              - Start menu to pick boards interactively
//	t2048 serve             - Start SSH server for remote play
//	t2048 scores [variant]  - Show high scores
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.t2048/scores.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-2048/internal/game"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the sliding-tile merge puzzle for the terminal.

Slide every tile in one direction; equal tiles that collide merge into
their sum. A new tile appears after every move that changes the board.
The game ends when no move can change the board.

Available commands:
  list     - Show all boards
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  t2048 play
  t2048 play 2048_5x5
  t2048 play --size 8
  t2048 play --plain --seed 42
  t2048 serve
  t2048 scores 2048`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.t2048/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
