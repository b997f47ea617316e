package config

import (
	"fmt"
	"strings"
)

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"                    envDefault:"localhost"`
	Port     int    `env:"PORT"                    envDefault:"5432"`
	User     string `env:"USER"                    envDefault:"blueweb"`
	Password string `env:"PASSWORD"                envDefault:"blueweb"`
	Name     string `env:"NAME"                    envDefault:"blueweb"`
	SSLMode  string `env:"SSL_MODE"                envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration. Sessions and the profile cache live here.
type RedisConfig struct {
	// URI is either host:port or a redis:// / rediss:// URL.
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
	// KeyPrefix namespaces every key this application writes.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"blueweb:"`
}

// PreferencesBackend names the preference storage implementation.
type PreferencesBackend string

const (
	// PreferencesPostgres persists preferences in Postgres.
	PreferencesPostgres PreferencesBackend = "postgres"
	// PreferencesMemory keeps preferences in process memory (development only).
	PreferencesMemory PreferencesBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for PreferencesBackend.
func (p *PreferencesBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch PreferencesBackend(v) {
	case PreferencesPostgres, PreferencesMemory:
		*p = PreferencesBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid PreferencesBackend: %q (valid options: postgres, memory)", v)
	}
}
