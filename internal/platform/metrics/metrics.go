// Package metrics exposes prometheus collectors for repository calls and
// store state.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives repository call outcomes.
type Recorder interface {
	ObserveRepo(entity, op string, success bool, duration time.Duration)
}

// StoreRecorder receives store state changes.
type StoreRecorder interface {
	SetStoreState(store, state string)
	SetStoreSize(store string, size int)
}

// Nop discards everything.
type Nop struct{}

func (Nop) ObserveRepo(string, string, bool, time.Duration) {}
func (Nop) SetStoreState(string, string)                    {}
func (Nop) SetStoreSize(string, int)                        {}

var loadingStates = []string{"not_loaded", "loading", "loaded", "error"}

// Prometheus implements Recorder and StoreRecorder.
type Prometheus struct {
	registry     *prometheus.Registry
	repoCalls    *prometheus.CounterVec
	repoDuration *prometheus.HistogramVec
	storeState   *prometheus.GaugeVec
	storeSize    *prometheus.GaugeVec
}

// NewPrometheus registers the collectors on a fresh registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	p := &Prometheus{
		registry: reg,
		repoCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "donation_tracker",
			Subsystem: "repository",
			Name:      "calls_total",
			Help:      "Repository calls by entity, operation and result.",
		}, []string{"entity", "op", "result"}),
		repoDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "donation_tracker",
			Subsystem: "repository",
			Name:      "call_duration_seconds",
			Help:      "Repository call latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"entity", "op"}),
		storeState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "donation_tracker",
			Subsystem: "store",
			Name:      "loading_state",
			Help:      "1 for the current loading state of each store.",
		}, []string{"store", "state"}),
		storeSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "donation_tracker",
			Subsystem: "store",
			Name:      "entities",
			Help:      "Number of cached entities per store.",
		}, []string{"store"}),
	}
	reg.MustRegister(
		p.repoCalls,
		p.repoDuration,
		p.storeState,
		p.storeSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) ObserveRepo(entity, op string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "error"
	}
	p.repoCalls.WithLabelValues(entity, op, result).Inc()
	p.repoDuration.WithLabelValues(entity, op).Observe(duration.Seconds())
}

func (p *Prometheus) SetStoreState(store, state string) {
	for _, s := range loadingStates {
		v := 0.0
		if s == state {
			v = 1
		}
		p.storeState.WithLabelValues(store, s).Set(v)
	}
}

func (p *Prometheus) SetStoreSize(store string, size int) {
	p.storeSize.WithLabelValues(store).Set(float64(size))
}

// Registry exposes the underlying registry, mostly for tests.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
