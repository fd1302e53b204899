package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "LOG_LEVEL", "DB_MAX_CONNS", "DB_ACQUIRE_TIMEOUT", "DB_IDLE_TIMEOUT", "DB_MAX_LIFETIME"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite:db/dojo.db", cfg.DatabaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.DB.AcquireTimeout)
	assert.Equal(t, 10*time.Second, cfg.DB.IdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxLifetime)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/dojo")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_MAX_CONNS", "3")
	t.Setenv("DB_ACQUIRE_TIMEOUT", "2s")

	cfg := Load()

	assert.Equal(t, "postgres://u:p@localhost:5432/dojo", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.DB.MaxConns)
	assert.Equal(t, 2*time.Second, cfg.DB.AcquireTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "-1")
	t.Setenv("DB_IDLE_TIMEOUT", "soon")
	t.Setenv("DB_MAX_LIFETIME", "0s")

	cfg := Load()

	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 10*time.Second, cfg.DB.IdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxLifetime)
}
