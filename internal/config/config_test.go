package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points the search path at empty directories.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "game:\n  grid_size: 5\n  seed: 7\nlog:\n  level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.GridSize != 5 || cfg.Game.Seed != 7 || cfg.Log.Level != "debug" {
		t.Errorf("Load() = %+v, file values not applied", cfg)
	}
	// Unset values keep their defaults.
	if cfg.Server.Port != 2048 || cfg.Game.Variant != "2048" {
		t.Errorf("Load() = %+v, defaults lost", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "game: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "game:\n  start_tiles: -1\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidStartTiles) {
		t.Errorf("Load error = %v, want ErrInvalidStartTiles", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", fileName), "game:\n  grid_size: 3\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.GridSize != 3 {
		t.Errorf("GridSize = %d, want 3 from ./configs", cfg.Game.GridSize)
	}

	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "game:\n  grid_size: 6\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.GridSize != 6 {
		t.Errorf("GridSize = %d, want 6 from user config", cfg.Game.GridSize)
	}
}

func TestLoadSkipsMalformedUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "game: [unclosed\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"grid size override", func(c *Config) { c.Game.GridSize = 8 }, nil},
		{"negative grid size", func(c *Config) { c.Game.GridSize = -1 }, ErrInvalidGridSize},
		{"negative start tiles", func(c *Config) { c.Game.StartTiles = -2 }, ErrInvalidStartTiles},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, ErrInvalidPort},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, ErrInvalidPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	cfg := Default()
	cfg.Log.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}
