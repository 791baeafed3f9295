// Package metrics exposes prometheus collectors for the mock node components.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mocknode"

var (
	pipelineOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "operations_total",
		Help:      "Count of pipeline operations.",
	}, []string{"operation", "status"})

	pipelineOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "operation_duration_seconds",
		Help:      "Time spent holding the node lock per operation.",
		Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"operation", "status"})

	pipelineEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "events_total",
		Help:      "Count of events appended to the event log.",
	}, []string{"operation"})

	pipelineLockWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "lock_wait_seconds",
		Help:      "Time spent waiting for the node lock.",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5},
	}, []string{"operation"})
)

// Pipeline tracks metrics for node pipeline runs.
type Pipeline struct{}

// NewPipeline constructs a Pipeline metrics collector.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// ObserveOperation records outcome, duration and produced events of one run.
func (m Pipeline) ObserveOperation(operation string, err error, events int, started time.Time) {
	status := statusOf(err)
	pipelineOperationsTotal.WithLabelValues(operation, status).Inc()
	pipelineOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
	if events > 0 {
		pipelineEventsTotal.WithLabelValues(operation).Add(float64(events))
	}
}

// ObserveLockWait records how long a run waited for the node lock.
func (m Pipeline) ObserveLockWait(operation string, waited time.Duration) {
	pipelineLockWait.WithLabelValues(operation).Observe(waited.Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
