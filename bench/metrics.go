package bench

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports run results in the prometheus exposition format.
type Metrics struct {
	registry *prometheus.Registry
	evalTime *prometheus.HistogramVec
	computed *prometheus.GaugeVec
	lookups  *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		evalTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "splaymemo",
			Name:      "eval_seconds",
			Help:      "Time to evaluate one Fibonacci index through a memo backend.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 14),
		}, []string{"backend"}),
		computed: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "splaymemo",
			Name:      "computed_total",
			Help:      "Memo misses that ran the recurrence during the last run.",
		}, []string{"backend"}),
		lookups: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "splaymemo",
			Name:      "lookups_total",
			Help:      "Memo lookups made during the last run.",
		}, []string{"backend"}),
	}
}

// Observe records every sample of r.
func (m *Metrics) Observe(r Report) {
	for _, s := range r.Series {
		h := m.evalTime.WithLabelValues(s.Backend)
		for _, sm := range s.Samples {
			h.Observe(sm.Duration().Seconds())
		}
		m.computed.WithLabelValues(s.Backend).Set(float64(s.Computed))
		m.lookups.WithLabelValues(s.Backend).Set(float64(s.Calls))
	}
}

func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteTextfile writes all metrics to path, atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
