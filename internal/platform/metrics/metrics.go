package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	FarmersRegistered    prometheus.Counter
	PlotsCreated         prometheus.Counter
	FarmsCreated         prometheus.Counter
	IrrigationsCreated   prometheus.Counter
	RegistrationFailures prometheus.Counter
	RegistrationDuration prometheus.Histogram
	SyncFailures         *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		FarmersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "farmgate_farmers_registered_total",
			Help: "Total number of farmers registered",
		}),
		PlotsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "farmgate_plots_created_total",
			Help: "Total number of plots created through registration",
		}),
		FarmsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "farmgate_farms_created_total",
			Help: "Total number of farms created through registration",
		}),
		IrrigationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "farmgate_irrigations_created_total",
			Help: "Total number of farm irrigation setups created",
		}),
		RegistrationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "farmgate_registration_failures_total",
			Help: "Total number of registrations aborted with a hard failure",
		}),
		RegistrationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "farmgate_registration_duration_seconds",
			Help:    "End-to-end duration of registration calls",
			Buckets: prometheus.DefBuckets,
		}),
		SyncFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "farmgate_plot_sync_failures_total",
			Help: "Plot sync failures by downstream target",
		}, []string{"target"}),
	}
}

// IncrementSyncFailure records a failed sync attempt for a target.
func (m *Metrics) IncrementSyncFailure(target string) {
	if m == nil {
		return
	}
	m.SyncFailures.WithLabelValues(target).Inc()
}
