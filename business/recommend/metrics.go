package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	InteractionsTrackedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interactions_tracked_total",
			Help: "Count of interaction tracking calls by type and outcome.",
		},
		[]string{"interaction_type", "status"},
	)

	RecommendationsComputedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_computed_total",
			Help: "Count of recommendation computations by source.",
		},
		[]string{"source"},
	)

	RecommendationCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_cache_total",
			Help: "Cache lookups for recommendation sets by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		InteractionsTrackedTotal,
		RecommendationsComputedTotal,
		RecommendationCacheTotal,
	)
}
