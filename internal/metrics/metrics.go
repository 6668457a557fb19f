package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecomputesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "limpo_hotspot_recomputes_total",
		Help: "Total number of hotspot aggregation passes",
	})
	RecomputeDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "limpo_hotspot_recompute_duration_ms",
		Help:    "Aggregation pass duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	HotspotsCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "limpo_hotspots_current",
		Help: "Number of hotspots emitted by the latest aggregation pass",
	})
	OccurrencesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "limpo_occurrences_created_total",
		Help: "Total occurrences registered",
	})
	DetectionsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "limpo_detections_created_total",
		Help: "Total camera detections injected",
	})
	RoutesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "limpo_routes_created_total",
		Help: "Total cleanup routes created",
	})
	AlertsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "limpo_collection_alerts_created_total",
		Help: "Total cooperative collection alerts emitted",
	})
)

func init() {
	prometheus.MustRegister(RecomputesTotal)
	prometheus.MustRegister(RecomputeDurationMs)
	prometheus.MustRegister(HotspotsCurrent)
	prometheus.MustRegister(OccurrencesCreatedTotal)
	prometheus.MustRegister(DetectionsCreatedTotal)
	prometheus.MustRegister(RoutesCreatedTotal)
	prometheus.MustRegister(AlertsCreatedTotal)
}

// Handler exposes the prometheus scrape endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
