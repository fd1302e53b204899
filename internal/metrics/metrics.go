package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BuzzLyutic/dojo/internal/repo"
	"github.com/BuzzLyutic/dojo/internal/service"
)

// Metrics - счетчики операций над задачами
type Metrics struct {
	Registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dojo_task_operations_total",
				Help: "Task operations by name and outcome",
			},
			[]string{"op", "outcome"},
		),
	}
	m.Registry.MustRegister(m.operations)
	return m
}

func (m *Metrics) Observe(op string, err error) {
	m.operations.WithLabelValues(op, Outcome(err)).Inc()
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrParse):
		return "invalid"
	case errors.Is(err, repo.ErrorStorage):
		return "storage_error"
	default:
		return "error"
	}
}
