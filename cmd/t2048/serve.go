package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a board picker menu and
its own board. Scores are stored per-server (all users share the same
leaderboard) and recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key_path from the config

Examples:
  t2048 serve                           # Listen on the configured address
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key
  t2048 serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2048`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = net.JoinHostPort(appConfig.Server.Host, strconv.Itoa(appConfig.Server.Port))
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	cfg.HostKeyPath = appConfig.Server.HostKeyPath
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	cfg.DBPath = dbPath()
	if appConfig.Storage.Disabled {
		cfg.DBPath = ""
	}
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GridSize = appConfig.Game.GridSize
	cfg.StartTiles = appConfig.Game.StartTiles

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("t2048-ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	_, port, _ := net.SplitHostPort(server.Addr())
	fmt.Printf("Starting t2048 SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
