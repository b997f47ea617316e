package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - backend.go: blue-latex backend client
//   - database.go: Postgres, Redis and preference storage
//   - http.go: HTTP server and cookies
//   - session.go: browser sessions and per-session views
//   - observability.go: metrics and logging
type AppConfig struct {
	// IsDev serves templates and static files from disk.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	HTTP    HTTPConfig    `envPrefix:"HTTP_"`
	Backend BackendConfig `envPrefix:"BACKEND_"`
	Session SessionConfig `envPrefix:"SESSION_"`

	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// PreferencesBackend selects where paper list preferences are stored.
	PreferencesBackend PreferencesBackend `env:"PREFERENCES_BACKEND" envDefault:"postgres"`

	Metrics MetricsConfig `envPrefix:"METRICS_"`
	Log     LogConfig     `envPrefix:"LOG_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Backend.Sanitize()
	c.Session.Sanitize()
	c.Metrics.Sanitize()
	c.Log.Sanitize()

	c.detectDevMode()
}

// detectDevMode falls back to NODE_ENV, which frontend tooling commonly sets.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// NeedsDatabase reports whether Postgres must be reachable at startup.
func (c *AppConfig) NeedsDatabase() bool {
	return c.PreferencesBackend == PreferencesPostgres
}
