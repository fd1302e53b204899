package repo

import (
	"context"

	"github.com/BuzzLyutic/dojo/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Insert(ctx context.Context, message string, completed bool, createdAt int64) (int64, error)
	ListAll(ctx context.Context) ([]model.Task, error)
	UpdateCompleted(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
