package config

import (
	"log/slog"
	"strings"
)

const defaultMetricsPrefix = "blueweb"

// MetricsConfig controls emission of metrics to StatsD.
type MetricsConfig struct {
	Enabled       bool   `env:"ENABLED"        envDefault:"false"`
	StatsdAddress string `env:"STATSD_ADDRESS" envDefault:"127.0.0.1:8125"`
	Prefix        string `env:"PREFIX"         envDefault:"blueweb"`
}

// Sanitize normalises derived fields and enforces safe defaults.
func (c *MetricsConfig) Sanitize() {
	c.StatsdAddress = strings.TrimSpace(c.StatsdAddress)
	if c.StatsdAddress == "" {
		c.Enabled = false
	}
	if c.Prefix = strings.TrimSpace(c.Prefix); c.Prefix == "" {
		c.Prefix = defaultMetricsPrefix
	}
}

// IsEnabled returns true when metrics emission is active after sanitisation.
func (c *MetricsConfig) IsEnabled() bool {
	return c.Enabled && c.StatsdAddress != ""
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `env:"LEVEL" envDefault:"info"`

	// File additionally writes logs to a rotating file when set.
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB"  envDefault:"100"`
	MaxBackups int    `env:"MAX_BACKUPS"  envDefault:"5"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"28"`
}

// Sanitize normalises logging configuration values.
func (c *LogConfig) Sanitize() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.File = strings.TrimSpace(c.File)
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 100
	}
	if c.MaxBackups < 0 {
		c.MaxBackups = 0
	}
	if c.MaxAgeDays < 0 {
		c.MaxAgeDays = 0
	}
}

// SlogLevel maps Level onto slog, defaulting to info.
func (c *LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
