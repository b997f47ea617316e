package config

import (
	"log/slog"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/google/go-cmp/cmp"
)

func TestAppConfig_ParseDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://localhost:18080/api/")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Backend.URL != "http://localhost:18080/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Fatalf("unexpected backend timeout %v", cfg.Backend.Timeout)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.HTTP.Addr)
	}
	if cfg.PreferencesBackend != PreferencesPostgres || !cfg.NeedsDatabase() {
		t.Fatalf("expected postgres preferences by default, got %q", cfg.PreferencesBackend)
	}
	if cfg.Session.ViewCapacity != 1024 || cfg.Session.ViewTTL != 30*time.Minute {
		t.Fatalf("unexpected session view defaults: %+v", cfg.Session)
	}
	if cfg.Redis.KeyPrefix != "blueweb:" {
		t.Fatalf("unexpected redis key prefix %q", cfg.Redis.KeyPrefix)
	}
}

func TestAppConfig_BackendURLRequired(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err == nil {
		t.Fatal("expected an error without BACKEND_URL")
	}
}

func TestAppConfig_ParseBackendEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://latex.example.org/api")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("BACKEND_PAPERS_PROJECTION", " papers[].{id: id, title: name, role: role} ")
	t.Setenv("BACKEND_OVERWRITE_PAPER_DATES", "true")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	expected := BackendConfig{
		URL:                 "https://latex.example.org/api",
		Timeout:             3 * time.Second,
		PapersProjection:    "papers[].{id: id, title: name, role: role}",
		OverwritePaperDates: true,
	}
	if diff := cmp.Diff(expected, cfg.Backend); diff != "" {
		t.Fatalf("unexpected backend configuration (-want +got):\n%s", diff)
	}
}

func TestAppConfig_ParseMemoryPreferences(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://localhost:18080")
	t.Setenv("PREFERENCES_BACKEND", "Memory")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.PreferencesBackend != PreferencesMemory {
		t.Fatalf("expected memory, got %q", cfg.PreferencesBackend)
	}
	if cfg.NeedsDatabase() {
		t.Fatal("memory preferences should not need a database")
	}
}

func TestPreferencesBackend_UnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    PreferencesBackend
		wantErr bool
	}{
		{input: "postgres", want: PreferencesPostgres},
		{input: " MEMORY ", want: PreferencesMemory},
		{input: "sqlite", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got PreferencesBackend
			err := got.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBackendConfig_SanitizeClampsTimeout(t *testing.T) {
	cfg := BackendConfig{URL: " http://x/ ", Timeout: -1}
	cfg.Sanitize()
	if cfg.Timeout != defaultBackendTimeout {
		t.Fatalf("expected default timeout, got %v", cfg.Timeout)
	}
	if cfg.URL != "http://x" {
		t.Fatalf("unexpected url %q", cfg.URL)
	}

	cfg.Timeout = time.Hour
	cfg.Sanitize()
	if cfg.Timeout != maxBackendTimeout {
		t.Fatalf("expected clamped timeout, got %v", cfg.Timeout)
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	cfg := HTTPConfig{Addr: "  ", CookieDomain: " example.org "}
	cfg.Sanitize()

	expected := HTTPConfig{
		Addr:            ":8080",
		CookieDomain:    "example.org",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    60 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("unexpected http configuration (-want +got):\n%s", diff)
	}
}

func TestSessionConfig_Sanitize(t *testing.T) {
	cfg := SessionConfig{ProfileCacheTTL: -time.Second}
	cfg.Sanitize()

	expected := SessionConfig{
		TTL:          24 * time.Hour,
		ViewCapacity: 1024,
		ViewTTL:      30 * time.Minute,
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("unexpected session configuration (-want +got):\n%s", diff)
	}
}

func TestMetricsConfig_Sanitize(t *testing.T) {
	cfg := MetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}

	cfg = MetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
	if cfg.Prefix != defaultMetricsPrefix {
		t.Fatalf("expected default prefix, got %q", cfg.Prefix)
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: " WARN ", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "", want: slog.LevelInfo},
		{level: "chatty", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := LogConfig{Level: tt.level}
			cfg.Sanitize()
			if got := cfg.SlogLevel(); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppConfig_DetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := AppConfig{}
	cfg.Sanitize()
	if !cfg.IsDev {
		t.Fatal("expected NODE_ENV=development to enable dev mode")
	}
}
