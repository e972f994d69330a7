package store

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the prometheus collectors of one instrumented store.
type Metrics struct {
	Stored    prometheus.Counter
	Popped    prometheus.Counter
	EmptyPops prometheus.Counter
	Evicted   prometheus.Counter
	Depth     prometheus.Gauge
}

// NewMetrics creates the collectors for the store called name and registers
// them with reg.
func NewMetrics(reg prometheus.Registerer, name string) (*Metrics, error) {
	labels := prometheus.Labels{"store": name}
	m := &Metrics{
		Stored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "errstack",
			Name:        "stored_total",
			Help:        "Total number of error codes stored",
			ConstLabels: labels,
		}),
		Popped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "errstack",
			Name:        "popped_total",
			Help:        "Total number of error codes popped",
			ConstLabels: labels,
		}),
		EmptyPops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "errstack",
			Name:        "empty_pops_total",
			Help:        "Total number of pops on an empty store",
			ConstLabels: labels,
		}),
		Evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "errstack",
			Name:        "evicted_total",
			Help:        "Total number of error codes dropped to make room for newer ones",
			ConstLabels: labels,
		}),
		Depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "errstack",
			Name:        "depth",
			Help:        "Current number of retained error codes",
			ConstLabels: labels,
		}),
	}

	for _, c := range []prometheus.Collector{m.Stored, m.Popped, m.EmptyPops, m.Evicted, m.Depth} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register metrics for store %q: %w", name, err)
		}
	}
	return m, nil
}

// Snapshot reads the current value of every collector.
func (m *Metrics) Snapshot() map[string]float64 {
	return map[string]float64{
		"stored":     counterValue(m.Stored),
		"popped":     counterValue(m.Popped),
		"empty_pops": counterValue(m.EmptyPops),
		"evicted":    counterValue(m.Evicted),
		"depth":      gaugeValue(m.Depth),
	}
}

func counterValue(c prometheus.Counter) float64 {
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		return 0
	}
	return metric.GetCounter().GetValue()
}

func gaugeValue(g prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		return 0
	}
	return metric.GetGauge().GetValue()
}
