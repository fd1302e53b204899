package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/dojo/internal/model"
	"github.com/BuzzLyutic/dojo/internal/repo"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrParse           = errors.New("invalid task id")
)

// SkippedID - id из пакета, который не удалось разобрать как число
type SkippedID struct {
	Raw string
	Err error
}

// BatchResult - итог пакетной операции done/delete
type BatchResult struct {
	Processed []int64
	Skipped   []SkippedID
}

type TaskService struct {
	repo   repo.TaskRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewTaskService(repo repo.TaskRepository, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

// Add склеивает аргументы в одно сообщение и сохраняет новую задачу
func (s *TaskService) Add(ctx context.Context, args []string) (model.Task, error) {
	if len(args) == 0 {
		return model.Task{}, fmt.Errorf("%w: task message is required", ErrInvalidArgument)
	}

	t := model.Task{
		Message:   strings.TrimSpace(strings.Join(args, " ")),
		CreatedAt: s.now().Unix(),
	}
	if t.Message == "" {
		return model.Task{}, fmt.Errorf("%w: task message is empty", ErrInvalidArgument)
	}

	id, err := s.repo.Insert(ctx, t.Message, t.Completed, t.CreatedAt)
	if err != nil {
		return model.Task{}, err
	}
	t.ID = id

	s.logger.Debug("task added", zap.Int64("task_id", id))
	return t, nil
}

// List возвращает все задачи; пустой список - это успех, а не ошибка
func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.ListAll(ctx)
}

func (s *TaskService) MarkDone(ctx context.Context, ids []string) (BatchResult, error) {
	return s.batch(ctx, "done", ids, s.repo.UpdateCompleted)
}

func (s *TaskService) Delete(ctx context.Context, ids []string) (BatchResult, error) {
	return s.batch(ctx, "delete", ids, s.repo.Delete)
}

// batch обрабатывает id по одному: нечисловые пропускаются, ошибка хранилища прерывает пакет
func (s *TaskService) batch(ctx context.Context, op string, ids []string, apply func(context.Context, int64) error) (BatchResult, error) {
	var res BatchResult
	if len(ids) == 0 {
		return res, fmt.Errorf("%w: at least one task id is required", ErrInvalidArgument)
	}

	for _, raw := range ids {
		id, err := parseID(raw)
		if err != nil {
			s.logger.Warn("skipping task id", zap.String("op", op), zap.String("id", raw), zap.Error(err))
			res.Skipped = append(res.Skipped, SkippedID{Raw: raw, Err: err})
			continue
		}

		if err := apply(ctx, id); err != nil {
			return res, err
		}
		res.Processed = append(res.Processed, id)
	}

	s.logger.Debug("batch finished",
		zap.String("op", op),
		zap.Int("processed", len(res.Processed)),
		zap.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrParse, raw, err)
	}
	return id, nil
}
