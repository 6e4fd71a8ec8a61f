package metrics

import "github.com/prometheus/client_golang/prometheus"

// Solr upstream Prometheus metrics.
var (
	SolrRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "solr_requests_total",
			Help:      "Total number of Solr requests",
		},
		[]string{"core", "operation", "status"},
	)

	SolrRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchapi",
			Name:      "solr_request_duration_seconds",
			Help:      "Solr request duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"core", "operation"},
	)

	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchapi",
			Name:      "search_cache_total",
			Help:      "Select-response cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var solrMetricsRegistered bool

// RegisterSolrMetrics registers Prometheus Solr metrics. Must be called once from main.
func RegisterSolrMetrics() {
	if solrMetricsRegistered {
		return
	}
	prometheus.MustRegister(SolrRequestsTotal)
	prometheus.MustRegister(SolrRequestDuration)
	prometheus.MustRegister(SearchCacheTotal)
	solrMetricsRegistered = true
}
