package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// searchTrialsTotal counts Monte Carlo trials by outcome
	searchTrialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hex_search_trials_total",
		Help: "Total Monte Carlo trials by outcome",
	}, []string{"result"})

	// searchDuration tracks how long a move search takes
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hex_search_duration_seconds",
		Help:    "Move search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~30s
	})

	// searchCandidates tracks the number of empty cells considered per search
	searchCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hex_search_candidates",
		Help:    "Number of candidate moves per search",
		Buckets: []float64{1, 4, 9, 16, 25, 49, 81, 121, 169, 225},
	})
)

type prometheusCollector struct {
	*collector
}

// NewPrometheusCollector returns a Collector that also exports its counts to
// the default Prometheus registry.
func NewPrometheusCollector() Collector {
	return &prometheusCollector{collector: &collector{}}
}

func (m *prometheusCollector) AddTrial() {
	m.collector.AddTrial()
	searchTrialsTotal.WithLabelValues("played").Inc()
}

func (m *prometheusCollector) AddWin() {
	m.collector.AddWin()
	searchTrialsTotal.WithLabelValues("won").Inc()
}

func (m *prometheusCollector) Complete() SearchMetric {
	metric := m.collector.Complete()
	searchDuration.Observe(metric.Duration.Seconds())
	searchCandidates.Observe(float64(metric.Candidates))
	return metric
}

// Handler serves the default registry, including the search metrics above.
func Handler() http.Handler {
	return promhttp.Handler()
}
