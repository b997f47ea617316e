package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTestDBConfig(t *testing.T) {
	t.Run("local compose defaults", func(t *testing.T) {
		for _, key := range []string{"TEST_DB_HOST", "TEST_DB_PORT", "TEST_DB_USER", "TEST_DB_PASSWORD", "TEST_DB_NAME"} {
			t.Setenv(key, "")
		}
		assert.Equal(t, TestDBConfig{
			Host:     "localhost",
			Port:     "55432",
			User:     "blueweb",
			Password: "blueweb",
			DBName:   "blueweb",
		}, DefaultTestDBConfig())
	})

	t.Run("CI overrides", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "postgres")
		t.Setenv("TEST_DB_PORT", "5432")
		t.Setenv("TEST_DB_NAME", "blueweb_ci")

		cfg := DefaultTestDBConfig()
		assert.Equal(t, "postgres", cfg.Host)
		assert.Equal(t, "5432", cfg.Port)
		assert.Equal(t, "blueweb_ci", cfg.DBName)
	})
}

func TestTestDBConfig_DSN(t *testing.T) {
	t.Setenv("DB_SSL_MODE", "")
	cfg := TestDBConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n"}
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", cfg.DSN())

	t.Setenv("DB_SSL_MODE", "require")
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=require", cfg.DSN())
}

func TestTestTime(t *testing.T) {
	assert.Equal(t, time.Friday, TestTime().Weekday())
	assert.Equal(t, TestTime(), FixedTimeFunc(TestTime())())
}
