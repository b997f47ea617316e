package config

import "time"

// SessionConfig controls browser sessions and the per-session paper list views.
type SessionConfig struct {
	// TTL is how long an idle session survives in Redis.
	TTL time.Duration `env:"TTL" envDefault:"24h"`

	// ViewCapacity bounds how many sessions keep a loaded paper list in memory.
	ViewCapacity int `env:"VIEW_CAPACITY" envDefault:"1024"`

	// ViewTTL expires paper lists of sessions that stopped browsing.
	ViewTTL time.Duration `env:"VIEW_TTL" envDefault:"30m"`

	// ProfileCacheTTL is how long user profiles stay cached in Redis.
	ProfileCacheTTL time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"10m"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
	if s.ViewCapacity <= 0 {
		s.ViewCapacity = 1024
	}
	if s.ViewTTL <= 0 {
		s.ViewTTL = 30 * time.Minute
	}
	if s.ProfileCacheTTL < 0 {
		s.ProfileCacheTTL = 0
	}
}
