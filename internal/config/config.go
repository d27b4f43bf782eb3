// Package config provides YAML-based configuration loading for the 2048
// shell: board defaults, score storage, the SSH server and logging.
package config

import (
	"errors"
	"fmt"
)

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines board parameters.
type GameConfig struct {
	Variant    string `yaml:"variant"`     // Variant started by "play" without arguments
	GridSize   int    `yaml:"grid_size"`   // 0 = variant default
	StartTiles int    `yaml:"start_tiles"` // 0 = variant default
	Seed       int64  `yaml:"seed"`        // 0 = time based
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	Path     string `yaml:"path"` // Empty = ~/.t2048/scores.db
	Disabled bool   `yaml:"disabled"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

var (
	// ErrInvalidGridSize is returned by Validate for a negative grid size.
	ErrInvalidGridSize = errors.New("config: grid_size must not be negative")
	// ErrInvalidStartTiles is returned by Validate for a negative tile count.
	ErrInvalidStartTiles = errors.New("config: start_tiles must not be negative")
	// ErrInvalidPort is returned by Validate for a port outside 1-65535.
	ErrInvalidPort = errors.New("config: server port out of range")
)

// Validate checks the configuration for values the game cannot start with.
func (c Config) Validate() error {
	if c.Game.GridSize < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidGridSize, c.Game.GridSize)
	}
	if c.Game.StartTiles < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStartTiles, c.Game.StartTiles)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.Server.Port)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}
