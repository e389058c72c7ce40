package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	Registry        *prometheus.Registry
	CommandsTotal   *prometheus.CounterVec
	FlightsAdded    prometheus.Counter
	FlightsSelected prometheus.Counter
	StorageDuration *prometheus.HistogramVec
	ErrorsCount     *prometheus.CounterVec
}

// NewMetrics creates metrics on a private registry. A process runs one
// command, so nothing is registered globally.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "The total number of executed commands",
		}, []string{"command"}),
		FlightsAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "added_total",
			Help:      "The total number of appended flights",
		}),
		FlightsSelected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selected_total",
			Help:      "The total number of flights matched by select",
		}),
		StorageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_duration_seconds",
			Help:      "Time taken by storage loads and saves",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

// ObserveStorage records the duration of a storage operation started at start
func (m *Metrics) ObserveStorage(operation string, start time.Time) {
	m.StorageDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Push sends the registry to a Pushgateway under the given job name
func (m *Metrics) Push(url, job string) error {
	return push.New(url, job).Gatherer(m.Registry).Push()
}
