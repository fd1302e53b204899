package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	DB          DBConfig
}

// DBConfig - ограничения пула соединений
type DBConfig struct {
	MaxConns       int
	AcquireTimeout time.Duration
	IdleTimeout    time.Duration
	MaxLifetime    time.Duration
}

func Load() Config {
	_ = godotenv.Load() // .env необязателен

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "sqlite:db/dojo.db"),
		LogLevel:    getEnv("LOG_LEVEL", "warn"),
		DB: DBConfig{
			MaxConns:       getEnvInt("DB_MAX_CONNS", 10),
			AcquireTimeout: getEnvDuration("DB_ACQUIRE_TIMEOUT", 5*time.Second),
			IdleTimeout:    getEnvDuration("DB_IDLE_TIMEOUT", 10*time.Second),
			MaxLifetime:    getEnvDuration("DB_MAX_LIFETIME", 30*time.Second),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
