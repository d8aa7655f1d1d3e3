package config

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultSourceURL        = "https://raw.githubusercontent.com/sharwapi/sharwapi_Plugins_Collection/main/plugins.json"
	DefaultMockDelay        = 500 * time.Millisecond
	DefaultTimeout          = 30 * time.Second
	DefaultUserAgent        = "marketplace"
	DefaultBreakerThreshold = 5
)

// GetDefaultConfig returns a configuration with every default applied.
func GetDefaultConfig() *Config {
	cfg := &Config{
		Catalog: CatalogConfig{
			BreakerThreshold: DefaultBreakerThreshold,
		},
		Preferences: PreferencesConfig{
			Path: filepath.Join(getDataDir(), "preferences"),
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults sets default values for any unspecified configuration
// fields. Explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyCatalogDefaults(&cfg.Catalog)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "WARN"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	// stdout carries command output
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

// BreakerThreshold is left alone: zero is a valid setting.
func applyCatalogDefaults(cfg *CatalogConfig) {
	if cfg.SourceURL == "" {
		cfg.SourceURL = DefaultSourceURL
	}
	if cfg.MockDelay == 0 {
		cfg.MockDelay = DefaultMockDelay
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
}
