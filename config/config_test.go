package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Engine.CellSize != 64 {
		t.Errorf("CellSize = %v, want 64", cfg.Engine.CellSize)
	}
	if cfg.Engine.TickRate.Duration != 16*time.Millisecond {
		t.Errorf("TickRate = %v, want 16ms", cfg.Engine.TickRate.Duration)
	}
	if cfg.Pools.ProjectileCap != 64 {
		t.Errorf("ProjectileCap = %d, want 64", cfg.Pools.ProjectileCap)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio should default to enabled")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("logging defaults = %q/%q, want info/console", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	data := `
[world]
width = 3000.0

[engine]
cell_size = 128.0
max_step = "200ms"

[audio]
enabled = false

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.World.Width != 3000 {
		t.Errorf("Width = %v, want 3000", cfg.World.Width)
	}
	if cfg.Engine.CellSize != 128 {
		t.Errorf("CellSize = %v, want 128", cfg.Engine.CellSize)
	}
	if cfg.Engine.MaxStep.Duration != 200*time.Millisecond {
		t.Errorf("MaxStep = %v, want 200ms", cfg.Engine.MaxStep.Duration)
	}
	if cfg.Audio.Enabled {
		t.Error("audio override not applied")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}

	// Untouched sections keep their defaults.
	if cfg.World.Height != 1200 {
		t.Errorf("Height = %v, want default 1200", cfg.World.Height)
	}
	if cfg.Engine.TickRate.Duration != 16*time.Millisecond {
		t.Errorf("TickRate = %v, want default 16ms", cfg.Engine.TickRate.Duration)
	}
}

// TestLoadDurationForms verifies both accepted duration encodings: a
// duration string and raw integer nanoseconds.
func TestLoadDurationForms(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want time.Duration
	}{
		{"string", `tick_rate = "25ms"`, 25 * time.Millisecond},
		{"nanoseconds", `tick_rate = 200000000`, 200 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.toml")
			if err := os.WriteFile(path, []byte("[engine]\n"+tt.toml+"\n"), 0o644); err != nil {
				t.Fatalf("write temp config: %v", err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Engine.TickRate.Duration != tt.want {
				t.Errorf("TickRate = %v, want %v", cfg.Engine.TickRate.Duration, tt.want)
			}
		})
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("[engine]\nmax_step = \"soon\"\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with an unparseable duration returned nil error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load of a missing file returned nil error")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[world\nwidth ="), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed TOML returned nil error")
	}
}
