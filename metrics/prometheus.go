// Package metrics exposes Prometheus counters for director operations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "swiss_tournament"

// Recorder holds the collectors registered for the service.
type Recorder struct {
	registry *prometheus.Registry

	playersRegistered prometheus.Counter
	matchesReported   prometheus.Counter
	pairingsGenerated prometheus.Counter
	resets            *prometheus.CounterVec
	operationErrors   *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := func(c prometheus.Collector) prometheus.Collector {
		registry.MustRegister(c)
		return c
	}

	return &Recorder{
		registry: registry,
		playersRegistered: factory(prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "players_registered_total",
			Help:      "Number of players registered.",
		})).(prometheus.Counter),
		matchesReported: factory(prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_reported_total",
			Help:      "Number of match results recorded.",
		})).(prometheus.Counter),
		pairingsGenerated: factory(prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairings_generated_total",
			Help:      "Number of successful next-round pairing computations.",
		})).(prometheus.Counter),
		resets: factory(prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Number of roster or match history resets.",
		}, []string{"target"})).(*prometheus.CounterVec),
		operationErrors: factory(prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Number of failed operations by name.",
		}, []string{"operation"})).(*prometheus.CounterVec),
	}
}

func (r *Recorder) PlayerRegistered()  { r.playersRegistered.Inc() }
func (r *Recorder) MatchReported()     { r.matchesReported.Inc() }
func (r *Recorder) PairingsGenerated() { r.pairingsGenerated.Inc() }

// Reset counts a reset of "players" or "matches".
func (r *Recorder) Reset(target string) { r.resets.WithLabelValues(target).Inc() }

func (r *Recorder) OperationFailed(operation string) {
	r.operationErrors.WithLabelValues(operation).Inc()
}

// Registry returns the underlying registry, mostly for tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
