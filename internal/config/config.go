// Package config loads run settings from defaults, an optional config file,
// CASCADE_* environment variables and explicit overrides, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cascade-ca/internal/logs"
)

// EnvPrefix prefixes environment overrides, e.g. CASCADE_TICKS or
// CASCADE_LOG_LEVEL.
const EnvPrefix = "CASCADE"

// Config holds all settings for a headless run or the viewer.
type Config struct {
	Input        string       `mapstructure:"input"`
	Ticks        int          `mapstructure:"ticks"`
	MaxSyncTicks int          `mapstructure:"max_sync_ticks"`
	Print        bool         `mapstructure:"print"`
	Log          logs.Config  `mapstructure:"log"`
	Viewer       ViewerConfig `mapstructure:"viewer"`
}

// ViewerConfig controls the GUI viewer.
type ViewerConfig struct {
	Sim    string `mapstructure:"sim"`
	Scale  int    `mapstructure:"scale"`
	TPS    int    `mapstructure:"tps"`
	Seed   int64  `mapstructure:"seed"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("ticks", 100)
	v.SetDefault("max_sync_ticks", 0)
	v.SetDefault("print", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.dev", false)

	v.SetDefault("viewer.sim", "cascade")
	v.SetDefault("viewer.scale", 40)
	v.SetDefault("viewer.tps", 10)
	v.SetDefault("viewer.seed", 42)
	v.SetDefault("viewer.width", 10)
	v.SetDefault("viewer.height", 10)
}

// Load resolves a Config. path may be empty; overrides are keyed like the
// config file (e.g. "log.level").
func Load(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no run could use.
func (c *Config) Validate() error {
	var errs []error
	if c.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks must be >= 0, got %d", c.Ticks))
	}
	if c.MaxSyncTicks < 0 {
		errs = append(errs, fmt.Errorf("max_sync_ticks must be >= 0, got %d", c.MaxSyncTicks))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Viewer.Scale <= 0 {
		errs = append(errs, fmt.Errorf("viewer.scale must be > 0, got %d", c.Viewer.Scale))
	}
	if c.Viewer.TPS <= 0 {
		errs = append(errs, fmt.Errorf("viewer.tps must be > 0, got %d", c.Viewer.TPS))
	}
	return errors.Join(errs...)
}
