package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the prediction module.
type Metrics struct {
	// Verdicts by outcome and reason
	Verdicts *prometheus.CounterVec

	// Full evaluation latency, holiday lookup included
	EvaluateLatency prometheus.Histogram

	// Holiday lookup failures by source
	LookupFailures *prometheus.CounterVec
}

// New creates a Metrics instance with all prediction metrics registered.
func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "picoplaca_prediction_verdicts_total",
			Help: "Total verdicts by outcome and reason",
		}, []string{"outcome", "reason"}), // outcome: "can_circulate", "restricted"

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "picoplaca_prediction_evaluate_duration_seconds",
			Help:    "Duration of full verdict evaluation including holiday lookup",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		LookupFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "picoplaca_holiday_lookup_failures_total",
			Help: "Total holiday oracle failures by source",
		}, []string{"source"}), // source: "offline", "online"
	}
}

// IncrementVerdict records a verdict outcome.
func (m *Metrics) IncrementVerdict(outcome, reason string) {
	if m != nil {
		m.Verdicts.WithLabelValues(outcome, reason).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// IncrementLookupFailure records a holiday oracle failure.
func (m *Metrics) IncrementLookupFailure(source string) {
	if m != nil {
		m.LookupFailures.WithLabelValues(source).Inc()
	}
}
