package db

import (
	"errors"
	"fmt"
	"strings"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverMySQL    Driver = "mysql"
	DriverSQLite   Driver = "sqlite"
)

var ErrUnsupportedURL = errors.New("unsupported database url")

// Target - разобранный DATABASE_URL
type Target struct {
	Driver Driver
	DSN    string
	// Path - путь к файлу sqlite, пустой для in-memory и сетевых БД
	Path string
}

func ParseURL(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return Target{}, fmt.Errorf("%w: empty", ErrUnsupportedURL)
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return Target{Driver: DriverPostgres, DSN: raw}, nil
	case strings.HasPrefix(raw, "mysql://"):
		dsn := strings.TrimPrefix(raw, "mysql://")
		if dsn == "" {
			return Target{}, fmt.Errorf("%w: empty mysql dsn", ErrUnsupportedURL)
		}
		return Target{Driver: DriverMySQL, DSN: dsn}, nil
	case strings.HasPrefix(raw, "sqlite:"), strings.HasPrefix(raw, "file:"):
		return sqliteTarget(raw)
	}
	return Target{}, fmt.Errorf("%w: %q", ErrUnsupportedURL, raw)
}

func sqliteTarget(raw string) (Target, error) {
	rest := strings.TrimPrefix(raw, "sqlite:")
	rest = strings.TrimPrefix(rest, "//")
	rest = strings.TrimPrefix(rest, "file:")

	path, query, _ := strings.Cut(rest, "?")
	if path == "" {
		return Target{}, fmt.Errorf("%w: empty sqlite path", ErrUnsupportedURL)
	}

	params := []string{}
	if query != "" {
		params = append(params, query)
	}
	if !strings.Contains(query, "busy_timeout") {
		params = append(params, "_pragma=busy_timeout(5000)")
	}

	t := Target{
		Driver: DriverSQLite,
		DSN:    "file:" + path + "?" + strings.Join(params, "&"),
	}
	if path != ":memory:" && !strings.Contains(query, "mode=memory") {
		t.Path = path
	}
	return t, nil
}
