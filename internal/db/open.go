package db

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/BuzzLyutic/dojo/internal/config"
	"github.com/BuzzLyutic/dojo/internal/repo"
	"github.com/BuzzLyutic/dojo/migrations"
)

func init() {
	// modernc регистрируется как "sqlite", sqlx знает только "sqlite3"
	sqlx.BindDriver(string(DriverSQLite), sqlx.QUESTION)
}

// DB - открытое хранилище задач; закрывается один раз перед выходом процесса
type DB struct {
	Tasks  repo.TaskRepository
	Driver Driver
	close  func()
}

func (d *DB) Close() {
	if d != nil && d.close != nil {
		d.close()
		d.close = nil
	}
}

// Open подключается к БД из DATABASE_URL, применяет миграции и собирает репозиторий
func Open(ctx context.Context, rawURL string, cfg config.DBConfig, logger *zap.Logger) (*DB, error) {
	target, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	var d *DB
	switch target.Driver {
	case DriverPostgres:
		d, err = openPostgres(ctx, target, cfg)
	default:
		d, err = openSQL(ctx, target, cfg)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Connected to the Database", zap.String("driver", string(target.Driver)))
	return d, nil
}

func openPostgres(ctx context.Context, target Target, cfg config.DBConfig) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(target.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}
	poolCfg.MaxConns = maxConns(cfg.MaxConns)
	poolCfg.MaxConnIdleTime = cfg.IdleTimeout
	poolCfg.MaxConnLifetime = cfg.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.AcquireTimeout)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := migratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &DB{
		Tasks:  repo.NewTaskRepo(pool, cfg.AcquireTimeout),
		Driver: DriverPostgres,
		close:  pool.Close,
	}, nil
}

func openSQL(ctx context.Context, target Target, cfg config.DBConfig) (*DB, error) {
	if target.Path != "" {
		if dir := filepath.Dir(target.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database dir: %w", err)
			}
		}
	}

	conn, err := sqlx.Open(string(target.Driver), target.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", target.Driver, err)
	}
	if target.Driver == DriverSQLite && target.Path == "" {
		// in-memory БД живет, пока жива хотя бы одна ее коннекция:
		// держим ровно одну и никогда ее не закрываем
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxIdleTime(0)
		conn.SetConnMaxLifetime(0)
	} else {
		conn.SetMaxOpenConns(int(maxConns(cfg.MaxConns)))
		conn.SetConnMaxIdleTime(cfg.IdleTimeout)
		conn.SetConnMaxLifetime(cfg.MaxLifetime)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.AcquireTimeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", target.Driver, err)
	}
	if err := migrateSQL(ctx, conn, target.Driver); err != nil {
		conn.Close()
		return nil, err
	}

	return &DB{
		Tasks:  repo.NewSQLTaskRepo(conn, cfg.AcquireTimeout),
		Driver: target.Driver,
		close:  func() { conn.Close() },
	}, nil
}

// maxConns приводит размер пула к диапазону [1, MaxInt32]
func maxConns(n int) int32 {
	switch {
	case n < 1:
		return 1
	case n > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(n)
}

func migratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	scripts, err := migrations.Scripts(string(DriverPostgres))
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	for _, s := range scripts {
		if _, err := pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}

func migrateSQL(ctx context.Context, conn *sqlx.DB, driver Driver) error {
	scripts, err := migrations.Scripts(string(driver))
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	for _, s := range scripts {
		if _, err := conn.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
