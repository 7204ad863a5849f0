package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records routing activity. It implements campus.Observer.
type Metrics struct {
	// RouteQueries counts routed queries by outcome
	RouteQueries *prometheus.CounterVec
	// RouteDuration tracks query latency by outcome
	RouteDuration *prometheus.HistogramVec
	// MapLocations is the number of locations in the served map
	MapLocations prometheus.Gauge
	// MapRoads is the number of roads in the served map
	MapRoads prometheus.Gauge
}

// New creates the collectors and registers them with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		RouteQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusnav_route_queries_total",
				Help: "Total number of route queries processed",
			},
			[]string{"outcome"},
		),
		RouteDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campusnav_route_duration_seconds",
				Help:    "Route query latency",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"outcome"},
		),
		MapLocations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "campusnav_map_locations",
			Help: "Number of locations in the served campus map",
		}),
		MapRoads: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "campusnav_map_roads",
			Help: "Number of roads in the served campus map",
		}),
	}

	for _, c := range []prometheus.Collector{m.RouteQueries, m.RouteDuration, m.MapLocations, m.MapRoads} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveQuery records one routed query.
func (m *Metrics) ObserveQuery(outcome string, elapsed time.Duration) {
	m.RouteQueries.WithLabelValues(outcome).Inc()
	m.RouteDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// SetMap publishes the size of the served map.
func (m *Metrics) SetMap(locations, roads int) {
	m.MapLocations.Set(float64(locations))
	m.MapRoads.Set(float64(roads))
}
