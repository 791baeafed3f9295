package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exporterDrainedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "exporter",
		Name:      "drained_events_total",
		Help:      "Count of events drained from the node event log.",
	})

	exporterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "exporter",
		Name:      "flush_total",
		Help:      "Count of event batches written to storage.",
	}, []string{"status"})

	exporterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "exporter",
		Name:      "flush_duration_seconds",
		Help:      "Duration of writing an event batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	exporterFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "exporter",
		Name:      "flush_size",
		Help:      "Number of events per written batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// Exporter tracks metrics for the event exporter.
type Exporter struct{}

// NewExporter constructs an Exporter collector.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ObserveDrain records the number of events taken from the log.
func (m Exporter) ObserveDrain(events int) {
	exporterDrainedEvents.Add(float64(events))
}

// ObserveFlush records a batch write.
func (m Exporter) ObserveFlush(err error, events int, started time.Time) {
	status := statusOf(err)
	exporterFlushTotal.WithLabelValues(status).Inc()
	exporterFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	exporterFlushSize.Observe(float64(events))
}
