// Package metrics exports search activity as Prometheus metrics.
//
// A Recorder owns one set of collectors registered on the Registerer given to
// NewRecorder. Hooks converts a Recorder into engine options, so any node
// type can be instrumented without the engine knowing about Prometheus.
//
// All operations are safe for concurrent use.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/wayfind/astar"
)

const namespace = "wayfind"

// Outcome labels for wayfind_searches_total.
const (
	OutcomeFound       = "found"
	OutcomeExhausted   = "exhausted"
	OutcomeInterrupted = "interrupted"
)

// Recorder holds the search collectors.
type Recorder struct {
	// Expansions counts nodes moved to the closed set.
	Expansions prometheus.Counter
	// Relaxations counts improving relaxations that entered the frontier.
	Relaxations prometheus.Counter
	// Suppressions counts relaxations vetoed by a beam filter.
	Suppressions prometheus.Counter
	// Searches counts finished searches by outcome.
	Searches *prometheus.CounterVec
	// PathLength observes the node count of every path found.
	PathLength prometheus.Histogram
}

// NewRecorder creates the collectors and registers them on reg.
// A nil reg leaves them unregistered. Registering twice on the same
// registry panics, as with promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		Expansions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansions_total",
			Help:      "Nodes expanded by the search engine.",
		}),
		Relaxations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Improving relaxations admitted to the frontier.",
		}),
		Suppressions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suppressions_total",
			Help:      "Improving relaxations rejected by the beam filter.",
		}),
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished searches by outcome.",
		}, []string{"outcome"}),
		PathLength: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_length",
			Help:      "Number of nodes on each path found, endpoints included.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// Hooks returns engine options that feed r. Options set later for the same
// hook replace these.
func Hooks[N any](r *Recorder) []astar.Option[N] {
	return []astar.Option[N]{
		astar.WithOnExpand(func(N) { r.Expansions.Inc() }),
		astar.WithOnRelax(func(N, N) { r.Relaxations.Inc() }),
		astar.WithOnSuppress(func(N) { r.Suppressions.Inc() }),
	}
}

// ObserveOutcome records a terminal search. pathLen is ignored unless found.
func (r *Recorder) ObserveOutcome(found bool, pathLen int) {
	if !found {
		r.Searches.WithLabelValues(OutcomeExhausted).Inc()

		return
	}
	r.Searches.WithLabelValues(OutcomeFound).Inc()
	r.PathLength.Observe(float64(pathLen))
}

// ObserveInterrupted records a search abandoned before reaching a terminal state.
func (r *Recorder) ObserveInterrupted() {
	r.Searches.WithLabelValues(OutcomeInterrupted).Inc()
}
