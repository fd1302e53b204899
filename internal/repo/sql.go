package repo

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/BuzzLyutic/dojo/internal/model"
)

// SQLTaskRepo работает через database/sql драйверы (sqlite, mysql).
// Плейсхолдеры приводятся к нужному виду через Rebind.
type SQLTaskRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewSQLTaskRepo(db *sqlx.DB, timeout time.Duration) *SQLTaskRepo {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SQLTaskRepo{
		db:      db,
		timeout: timeout,
	}
}

func (r *SQLTaskRepo) Insert(ctx context.Context, message string, completed bool, createdAt int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO tasks (message, is_done, created_at)
		VALUES (?, ?, ?)
	`), message, completed, createdAt)
	if err != nil {
		return 0, mapError("insert task", err)
	}

	id, err := res.LastInsertId()
	return id, mapError("insert task", err)
}

func (r *SQLTaskRepo) ListAll(ctx context.Context) ([]model.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tasks := make([]model.Task, 0)
	err := r.db.SelectContext(ctx, &tasks, `
		SELECT id, message, is_done, created_at
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, mapError("list tasks", err)
	}
	return tasks, nil
}

func (r *SQLTaskRepo) UpdateCompleted(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, r.db.Rebind("UPDATE tasks SET is_done = ? WHERE id = ?"), true, id)
	return mapError("update task", err)
}

func (r *SQLTaskRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM tasks WHERE id = ?"), id)
	return mapError("delete task", err)
}
