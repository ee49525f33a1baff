package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the alert service and HTTP API.
type Metrics struct {
	WeatherFetches  *prometheus.CounterVec // labels: outcome={success,error}
	AlertsPublished prometheus.Counter
	MonitorRunning  prometheus.Gauge
	RainfallLevel   prometheus.Gauge

	HTTPRequests *prometheus.CounterVec // labels: method, path, status
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.WeatherFetches,
		m.AlertsPublished,
		m.MonitorRunning,
		m.RainfallLevel,
		m.HTTPRequests,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		WeatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_response",
			Name:      "weather_fetches_total",
			Help:      "OpenWeatherMap fetch attempts by outcome.",
		}, []string{"outcome"}),
		AlertsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_response",
			Name:      "alerts_published_total",
			Help:      "Flood warnings broadcast to subscribers.",
		}),
		MonitorRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flood_response",
			Name:      "rainfall_monitor_running",
			Help:      "1 when the rainfall monitor loop is active, 0 when stopped.",
		}),
		RainfallLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flood_response",
			Name:      "rainfall_mm_last_hour",
			Help:      "Last observed rainfall in mm for the monitored point.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_response",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "path", "status"}),
	}
}
