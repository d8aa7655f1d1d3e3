// Package config loads the marketplace configuration from a YAML file,
// environment variables and a local .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override,
// e.g. MARKETPLACE_CATALOG_MOCK=true.
const EnvPrefix = "MARKETPLACE"

// Config is the complete marketplace configuration.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
	Catalog     CatalogConfig     `mapstructure:"catalog" yaml:"catalog"`
	Preferences PreferencesConfig `mapstructure:"preferences" yaml:"preferences"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is stdout, stderr, or a file path.
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// CatalogConfig selects and tunes the catalog source.
type CatalogConfig struct {
	// Mock serves the built-in dataset instead of the remote document.
	Mock bool `mapstructure:"mock" yaml:"mock"`

	SourceURL string `mapstructure:"source_url" validate:"omitempty,url" yaml:"source_url"`

	MockDelay time.Duration `mapstructure:"mock_delay" validate:"gte=0" yaml:"mock_delay"`

	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0" yaml:"timeout"`

	MaxRetries int `mapstructure:"max_retries" validate:"gte=0,lte=10" yaml:"max_retries"`

	UserAgent string `mapstructure:"user_agent" validate:"required" yaml:"user_agent"`

	// BreakerThreshold is the number of consecutive failures that open a
	// host's circuit breaker. Zero disables it.
	BreakerThreshold int `mapstructure:"breaker_threshold" validate:"gte=0" yaml:"breaker_threshold"`
}

// PreferencesConfig controls where preferences are persisted.
type PreferencesConfig struct {
	// Path is the preference database directory. Empty keeps preferences
	// in memory for the lifetime of the process.
	Path string `mapstructure:"path" yaml:"path"`

	// SystemDark overrides system theme detection when set.
	SystemDark *bool `mapstructure:"system_dark" yaml:"system_dark,omitempty"`
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (MARKETPLACE_*), including those from ./.env
//  2. Configuration file
//  3. Default values
//
// An empty configPath uses the default location. A missing file is not an
// error.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setupViper(v, configPath)
	setDefaults(v)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes cfg to path as YAML, creating parent directories.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setupViper(v *viper.Viper, configPath string) {
	// MARKETPLACE_CATALOG_SOURCE_URL -> catalog.source_url
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(getConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// setDefaults registers every key with viper so that environment
// overrides are seen by Unmarshal even without a config file.
func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("catalog.mock", d.Catalog.Mock)
	v.SetDefault("catalog.source_url", d.Catalog.SourceURL)
	v.SetDefault("catalog.mock_delay", d.Catalog.MockDelay)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("catalog.max_retries", d.Catalog.MaxRetries)
	v.SetDefault("catalog.user_agent", d.Catalog.UserAgent)
	v.SetDefault("catalog.breaker_threshold", d.Catalog.BreakerThreshold)
	v.SetDefault("preferences.path", d.Preferences.Path)
	_ = v.BindEnv("preferences.system_dark")
}

// readConfigFile reports whether a configuration file was read.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// getConfigDir returns $XDG_CONFIG_HOME/marketplace, falling back to
// ~/.config/marketplace and finally the current directory.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "marketplace")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "marketplace")
}

// getDataDir returns $XDG_DATA_HOME/marketplace, falling back to
// ~/.local/share/marketplace.
func getDataDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "marketplace")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "marketplace")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists checks if a config file exists at the default location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}
