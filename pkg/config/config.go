// Package config provides configuration management for the parloopctl CLI
// demo. None of these settings reach the parallel package's public API —
// per-call chunk tuning is the engine's only knob (spec §6); this config
// only covers the process-level override hook parallel.SetTestParallelism
// exposes, plus the demo's own logging and telemetry toggles.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the parloopctl CLI demo.
type Config struct {
	Engine    EngineConfig    `mapstructure:"engine"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// EngineConfig holds parallel-engine tuning overrides.
type EngineConfig struct {
	// Parallelism overrides the detected worker count when > 0.
	// Corresponds to the "implementation-level override for testing"
	// spec §9's Design Notes call for.
	Parallelism int `mapstructure:"parallelism"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text (only format currently supported)
}

// TelemetryConfig holds CLI-level tracing configuration.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from the specified file path, falling back to
// defaults (and then environment variables) when no file is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("parloopctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/parloopctl")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Printf("Config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("PARLOOP")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.parallelism", 0) // 0 == auto-detect (GOMAXPROCS)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("telemetry.enabled", false)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Engine.Parallelism < 0 {
		return fmt.Errorf("engine.parallelism must be >= 0, got %d", c.Engine.Parallelism)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", c.Log.Level)
	}
	return nil
}
