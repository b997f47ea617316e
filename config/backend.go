package config

import (
	"strings"
	"time"
)

const (
	defaultBackendTimeout = 15 * time.Second
	maxBackendTimeout     = 5 * time.Minute
)

// BackendConfig configures the blue-latex REST client.
type BackendConfig struct {
	// URL is the base URL of the blue-latex API, e.g. "http://localhost:18080/api".
	URL string `env:"URL,required"`

	// Timeout bounds every backend call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// PapersProjection is a JMESPath expression mapping the user papers
	// response onto [{id, title, role, date}]. Empty uses the built-in default.
	PapersProjection string `env:"PAPERS_PROJECTION"`

	// OverwritePaperDates stamps every loaded paper with the load time
	// instead of keeping backend dates.
	OverwritePaperDates bool `env:"OVERWRITE_PAPER_DATES" envDefault:"false"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.URL = strings.TrimRight(strings.TrimSpace(b.URL), "/")
	b.PapersProjection = strings.TrimSpace(b.PapersProjection)
	if b.Timeout <= 0 {
		b.Timeout = defaultBackendTimeout
	}
	if b.Timeout > maxBackendTimeout {
		b.Timeout = maxBackendTimeout
	}
}
