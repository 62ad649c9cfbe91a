package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// snow-data resolution pipeline.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec // labels: outcome={ok,not_found}
	RequestDuration prometheus.Histogram

	// Geocoding metrics.
	GeocodeLookups *prometheus.CounterVec // labels: source={static,cache,remote}, outcome={hit,miss,error}

	// Upstream call metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: service={nominatim,fmi_observation,fmi_forecast}, outcome={success,error,empty}
	UpstreamDuration *prometheus.HistogramVec // labels: service

	// Fallback-tier metrics.
	StationSearchTier *prometheus.CounterVec // labels: tier={override,bbox25,bbox50,estimate}
	ForecastFallbacks prometheus.Counter
	WarningsIssued    prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.GeocodeLookups,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.StationSearchTier,
		m.ForecastFallbacks,
		m.WarningsIssued,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowload",
			Name:      "requests_total",
			Help:      "Snow data requests by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "snowload",
			Name:      "request_duration_seconds",
			Help:      "Duration of a complete snow data resolution.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		GeocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowload",
			Name:      "geocode_lookups_total",
			Help:      "Postal code lookups by source and outcome.",
		}, []string{"source", "outcome"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowload",
			Name:      "upstream_requests_total",
			Help:      "Upstream service requests by service and outcome.",
		}, []string{"service", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "snowload",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"service"}),
		StationSearchTier: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snowload",
			Name:      "station_search_tier_total",
			Help:      "Station locator results by fallback tier.",
		}, []string{"tier"}),
		ForecastFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snowload",
			Name:      "forecast_fallbacks_total",
			Help:      "Forecasts served from the seasonal synthetic fallback.",
		}),
		WarningsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snowload",
			Name:      "heavy_wet_snow_warnings_total",
			Help:      "Results carrying an active heavy wet snow warning.",
		}),
	}
}
