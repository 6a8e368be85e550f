// Package metrics records goshape validation results with Prometheus.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	goshape "github.com/reoring/goshape"
)

// Collector holds the validation metrics.
type Collector struct {
	Validations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. A nil reg skips
// registration.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goshape_validations_total",
				Help: "Total number of validations by schema name, outcome and code",
			},
			[]string{"name", "outcome", "code"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goshape_validation_duration_seconds",
				Help:    "Duration of validation calls",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"name"},
		),
	}
	if reg != nil {
		for _, col := range []prometheus.Collector{c.Validations, c.Duration} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Hooks returns lifecycle hooks feeding c, for goshape.WithHooks.
func (c *Collector) Hooks() goshape.Hooks {
	return goshape.Hooks{
		OnValidate: func(_ context.Context, e *goshape.Event) {
			c.Validations.WithLabelValues(e.Name, string(e.Outcome), e.Code).Inc()
			c.Duration.WithLabelValues(e.Name).Observe(e.Duration.Seconds())
		},
	}
}
