package config

import (
	"strings"
	"time"
)

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"ADDR" envDefault:":8080"`

	// CookieDomain is the domain for session, profile and CSRF cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"COOKIE_DOMAIN" envDefault:""`

	// SecureCookies forces the Secure attribute even behind a TLS-terminating proxy
	// that does not set X-Forwarded-Proto.
	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"false"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"30s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"60s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT"     envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	h.Addr = strings.TrimSpace(h.Addr)
	if h.Addr == "" {
		h.Addr = ":8080"
	}
	h.CookieDomain = strings.TrimSpace(h.CookieDomain)
	if h.ReadTimeout <= 0 {
		h.ReadTimeout = 30 * time.Second
	}
	// The PDF proxy streams large bodies.
	if h.WriteTimeout <= 0 {
		h.WriteTimeout = 60 * time.Second
	}
	if h.IdleTimeout <= 0 {
		h.IdleTimeout = 120 * time.Second
	}
	if h.ShutdownTimeout <= 0 {
		h.ShutdownTimeout = 10 * time.Second
	}
}
