package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	World   WorldConfig   `toml:"world"`
	Engine  EngineConfig  `toml:"engine"`
	Pools   PoolConfig    `toml:"pools"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type WorldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type EngineConfig struct {
	CellSize float64  `toml:"cell_size"`
	TickRate Duration `toml:"tick_rate"`
	MaxStep  Duration `toml:"max_step"`
}

// Duration decodes from either a duration string ("16ms") or integer
// nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalTOML(v interface{}) error {
	switch t := v.(type) {
	case string:
		parsed, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", t, err)
		}
		d.Duration = parsed
	case int64:
		d.Duration = time.Duration(t)
	default:
		return fmt.Errorf("duration must be a string or integer nanoseconds, got %T", v)
	}
	return nil
}

type PoolConfig struct {
	ProjectileCap int `toml:"projectile_cap"` // retained free entities per ink color
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		World: WorldConfig{
			Width:  2000,
			Height: 1200,
		},
		Engine: EngineConfig{
			CellSize: 64,
			TickRate: Duration{16 * time.Millisecond},
			MaxStep:  Duration{100 * time.Millisecond},
		},
		Pools: PoolConfig{
			ProjectileCap: 64,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
