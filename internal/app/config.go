package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by applyEnvOverrides.
const (
	EnvHome      = "CHECKPOINTS_HOME"
	EnvLogLevel  = "CHECKPOINTS_LOG_LEVEL"
	EnvLogFormat = "CHECKPOINTS_LOG_FORMAT"
)

// ConfigFilename is the config file looked up inside the home directory.
const ConfigFilename = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string         `yaml:"home"`      // state directory, e.g. $HOME/.checkpoints
	Ephemeral bool           `yaml:"ephemeral"` // keep cars in memory only
	Log       LogConfig      `yaml:"log"`
	Defaults  DefaultsConfig `yaml:"defaults"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultsConfig supplies attribute defaults for `new`.
type DefaultsConfig struct {
	Model string `yaml:"model"`
	Seats int    `yaml:"seats"`
	Gear  int    `yaml:"gear"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home := ".checkpoints"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".checkpoints")
	}
	return &Config{
		Home: home,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Defaults: DefaultsConfig{
			Model: "Peugeot",
			Seats: 5,
			Gear:  0,
		},
	}
}

// LoadConfig reads path over the defaults. A missing file yields defaults.
// Environment overrides are applied in both cases.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ExpandHome resolves a leading "~" in Home.
func (c *Config) ExpandHome() error {
	if c.Home != "~" && !strings.HasPrefix(c.Home, "~/") {
		return nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.Home = filepath.Join(dir, strings.TrimPrefix(c.Home, "~"))
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvHome); v != "" {
		c.Home = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
}
