// Package metrics provides the centralized Prometheus registry for the prop
// edge engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PipelineRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "pipeline_runs_total",
		Help:      "Total number of pipeline runs by outcome",
	}, []string{"outcome"})
	PropsLoadedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "props_loaded_total",
		Help:      "Total number of sportsbook props loaded",
	})
	ProjectionsLoadedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "projections_loaded_total",
		Help:      "Total number of projections loaded",
	})
	PairsMatchedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "pairs_matched_total",
		Help:      "Total number of matched prop/projection pairs by method",
	}, []string{"method"})
	PropsUnmatchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "props_unmatched_total",
		Help:      "Total number of props with no projection match",
	})
	EdgesComputedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "edges_computed_total",
		Help:      "Total number of edge results computed",
	})
	EdgesUnavailableTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "edges_unavailable_total",
		Help:      "Total number of matched pairs with no computable edge",
	})
	FetchRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "fetch_requests_total",
		Help:      "Total number of odds API requests",
	})
	FetchFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "prop_edge",
		Name:      "fetch_failures_total",
		Help:      "Total number of odds API fetches that exhausted retries",
	})
)

// Histogram metrics
var (
	PipelineDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "prop_edge",
		Name:      "pipeline_duration_seconds",
		Help:      "Duration of full pipeline runs in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	MatchScores = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "prop_edge",
		Name:      "match_scores",
		Help:      "Distribution of fuzzy match scores for accepted pairs",
		Buckets:   []float64{50, 60, 70, 80, 85, 90, 95, 100},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PipelineRunsTotal)
		registry.MustRegister(PropsLoadedTotal)
		registry.MustRegister(ProjectionsLoadedTotal)
		registry.MustRegister(PairsMatchedTotal)
		registry.MustRegister(PropsUnmatchedTotal)
		registry.MustRegister(EdgesComputedTotal)
		registry.MustRegister(EdgesUnavailableTotal)
		registry.MustRegister(FetchRequestsTotal)
		registry.MustRegister(FetchFailuresTotal)

		registry.MustRegister(PipelineDuration)
		registry.MustRegister(MatchScores)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordRun records a completed pipeline run.
func RecordRun(outcome string, durationSeconds float64) {
	PipelineRunsTotal.WithLabelValues(outcome).Inc()
	PipelineDuration.Observe(durationSeconds)
}

// RecordMatch records an accepted pair.
func RecordMatch(method string, score float64) {
	PairsMatchedTotal.WithLabelValues(method).Inc()
	MatchScores.Observe(score)
}
