package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for distribution passes.
type Metrics struct {
	// Gifts handed out, by gift kind and whether the fallback was used
	Assignments *prometheus.CounterVec

	// Per-person failures by stage: "match" (criterion missing) or "receipt"
	// (identity incomplete or an observer failed)
	DeliveryFailures *prometheus.CounterVec

	// Duration of a whole pass
	DistributeLatency prometheus.Histogram
}

// New registers the distribution metrics on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Assignments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "giftmatch_assignments_total",
			Help: "Total gifts assigned by kind and fallback usage",
		}, []string{"kind", "fallback"}),

		DeliveryFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "giftmatch_delivery_failures_total",
			Help: "Total per-person failures during distribution by stage",
		}, []string{"stage"}),

		DistributeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "giftmatch_distribute_duration_seconds",
			Help:    "Duration of a full distribution pass including receipt observers",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementAssignment records one gift handed to one person.
func (m *Metrics) IncrementAssignment(kind string, fallback bool) {
	if m != nil {
		m.Assignments.WithLabelValues(kind, strconv.FormatBool(fallback)).Inc()
	}
}

// IncrementFailure records a per-person failure at the given stage.
func (m *Metrics) IncrementFailure(stage string) {
	if m != nil {
		m.DeliveryFailures.WithLabelValues(stage).Inc()
	}
}

// ObserveDistribute records the duration of a pass.
func (m *Metrics) ObserveDistribute(d time.Duration) {
	if m != nil {
		m.DistributeLatency.Observe(d.Seconds())
	}
}
