package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workerIterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "worker",
		Name:      "iterations_total",
		Help:      "Count of background worker iterations by outcome.",
	}, []string{"worker", "outcome", "status"})

	workerIterationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "worker",
		Name:      "iteration_duration_seconds",
		Help:      "Duration of background worker iterations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"worker", "status"})
)

// Worker tracks metrics of one background worker.
type Worker struct {
	name string
}

// NewWorker constructs a Worker collector labelled with name.
func NewWorker(name string) *Worker {
	if name == "" {
		name = "unknown"
	}
	return &Worker{name: name}
}

// ObserveIteration records a single loop iteration.
func (m Worker) ObserveIteration(outcome string, err error, started time.Time) {
	status := statusOf(err)
	workerIterationsTotal.WithLabelValues(m.name, outcome, status).Inc()
	workerIterationDuration.WithLabelValues(m.name, status).Observe(time.Since(started).Seconds())
}
