package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/dojo/internal/handler"
	"github.com/BuzzLyutic/dojo/internal/metrics"
	"github.com/BuzzLyutic/dojo/internal/service"
	"github.com/BuzzLyutic/dojo/pkg/respond"
)

const shutdownTimeout = 10 * time.Second

// NewRouter собирает роутер HTTP API поверх сервиса задач
func NewRouter(svc *service.TaskService, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	h := handler.NewTaskHandler(svc, m, logger)

	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := respond.Status(w, r, "ok"); err != nil {
			logger.Warn("failed to write health response", zap.Error(err))
		}
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Patch("/{id}/done", h.Done)
		r.Delete("/{id}", h.Delete)
	})

	r.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	return r
}

// Run слушает addr до отмены ctx, затем плавно останавливает сервер
func Run(ctx context.Context, addr string, h http.Handler, logger *zap.Logger) error {
	srv := http.Server{ // Создаем сервер
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Graceful shutdown
	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped successfully")
	return nil
}
