package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Variant: "2048",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2048,
			HostKeyPath: ".ssh/t2048_ed25519",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
