package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/dojo/internal/model"
)

const DefaultTimeout = 5 * time.Second

type TaskRepo struct { // Репозиторий для работы непосредственно с PostgreSQL
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewTaskRepo(pool *pgxpool.Pool, timeout time.Duration) *TaskRepo { // Конструктор
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &TaskRepo{
		pool:    pool,
		timeout: timeout,
	}
}

func (r *TaskRepo) Insert(ctx context.Context, message string, completed bool, createdAt int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (message, is_done, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, message, completed, createdAt).Scan(&id)
	return id, mapError("insert task", err)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]model.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, message, is_done, created_at
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, mapError("list tasks", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Message, &t.Completed, &t.CreatedAt); err != nil {
			return nil, mapError("scan task", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, mapError("list tasks", rows.Err())
}

func (r *TaskRepo) UpdateCompleted(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Отсутствующий id не ошибка
	_, err := r.pool.Exec(ctx, "UPDATE tasks SET is_done = true WHERE id = $1", id)
	return mapError("update task", err)
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	return mapError("delete task", err)
}
