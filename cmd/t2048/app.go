package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const defaultDBPath = "~/.t2048/scores.db"

var (
	appConfig config.Config
	logger    *log.Logger
)

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg

	logger = newLogger(os.Stderr, "t2048")
	return nil
}

// newLogger builds a logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(appConfig.Log.Level); err == nil {
		l.SetLevel(level)
	}
	return l
}

// sessionLogger returns the logger for full-screen programs. The terminal
// belongs to the UI, so output goes to ~/.t2048/t2048.log.
// The returned closer must be called when the program exits.
func sessionLogger() (*log.Logger, func()) {
	dir := config.UserDir()
	if dir == "" {
		return newLogger(io.Discard, "t2048"), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create log directory", "error", err)
		return newLogger(io.Discard, "t2048"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "t2048.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("cannot open log file", "error", err)
		return newLogger(io.Discard, "t2048"), func() {}
	}
	return newLogger(f, "t2048"), func() { f.Close() }
}

// dbPath returns the configured score database path.
func dbPath() string {
	if appConfig.Storage.Path != "" {
		return appConfig.Storage.Path
	}
	return defaultDBPath
}

// openStore opens score storage. Failures are logged and yield nil, the game
// still works without scores.
func openStore() *storage.Store {
	if appConfig.Storage.Disabled {
		return nil
	}
	store, err := storage.Open(dbPath())
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the game runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = appConfig.Game.Seed
	cfg.GridSize = appConfig.Game.GridSize
	cfg.StartTiles = appConfig.Game.StartTiles
	return cfg
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
