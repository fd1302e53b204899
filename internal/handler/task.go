package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/dojo/internal/metrics"
	"github.com/BuzzLyutic/dojo/internal/service"
	"github.com/BuzzLyutic/dojo/pkg/respond"
)

// maxBodyBytes - предел тела запроса на создание задачи
const maxBodyBytes = 64 << 10

type createRequest struct {
	Message string `json:"message"`
}

type TaskHandler struct {
	service *service.TaskService
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, m *metrics.Metrics, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		metrics: m,
		logger:  logger,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		h.writeError(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode json", zap.Error(err))

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		h.writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	task, err := h.service.Add(r.Context(), []string{req.Message})
	h.metrics.Observe("add", err)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", task.ID))
	h.writeJSON(w, r, http.StatusCreated, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	h.metrics.Observe("list", err)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Done(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.MarkDone(r.Context(), []string{chi.URLParam(r, "id")})
	h.writeBatch(w, r, "done", res, err)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Delete(r.Context(), []string{chi.URLParam(r, "id")})
	h.writeBatch(w, r, "delete", res, err)
}

func (h *TaskHandler) writeBatch(w http.ResponseWriter, r *http.Request, op string, res service.BatchResult, err error) {
	if err == nil && len(res.Skipped) > 0 {
		err = res.Skipped[0].Err
	}
	h.metrics.Observe(op, err)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		h.writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrParse):
		h.writeError(w, r, http.StatusBadRequest, "invalid task id")
	default:
		h.logger.Error("internal error", zap.Error(err))
		h.writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func (h *TaskHandler) writeJSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	if err := respond.JSON(w, r, code, data); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}

func (h *TaskHandler) writeError(w http.ResponseWriter, r *http.Request, code int, message string) {
	if err := respond.Error(w, r, code, message); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}
