package asynclog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/erc7824/asynclog/pkg/log"
)

// Metrics contains the Prometheus metrics of a Decorator.
// A nil *Metrics records nothing.
type Metrics struct {
	RecordsForwarded  *prometheus.CounterVec
	RecordsSuppressed *prometheus.CounterVec

	// Call-site resolution
	CallerResolutions prometheus.Counter
	CallerMisses      prometheus.Counter

	ProviderPanics prometheus.Counter
}

// NewMetrics initializes and registers the metrics with the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers the metrics with a custom registry.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		RecordsForwarded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asynclog_records_forwarded_total",
				Help: "The total number of decorated records handed to the backend",
			},
			[]string{"level"},
		),
		RecordsSuppressed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asynclog_records_suppressed_total",
				Help: "The total number of records dropped by the backend or the installed level",
			},
			[]string{"level"},
		),
		CallerResolutions: factory.NewCounter(prometheus.CounterOpts{
			Name: "asynclog_caller_resolutions_total",
			Help: "The total number of stack walks performed to find a call site",
		}),
		CallerMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "asynclog_caller_misses_total",
			Help: "The total number of stack walks that did not find the call site",
		}),
		ProviderPanics: factory.NewCounter(prometheus.CounterOpts{
			Name: "asynclog_provider_panics_total",
			Help: "The total number of context provider calls that panicked",
		}),
	}
}

func (m *Metrics) recordForwarded(level log.Level) {
	if m == nil {
		return
	}
	m.RecordsForwarded.WithLabelValues(string(level)).Inc()
}

func (m *Metrics) recordSuppressed(level log.Level) {
	if m == nil {
		return
	}
	m.RecordsSuppressed.WithLabelValues(string(level)).Inc()
}

func (m *Metrics) recordResolution() {
	if m == nil {
		return
	}
	m.CallerResolutions.Inc()
}

func (m *Metrics) recordCallerMiss() {
	if m == nil {
		return
	}
	m.CallerMisses.Inc()
}

func (m *Metrics) recordProviderPanic() {
	if m == nil {
		return
	}
	m.ProviderPanics.Inc()
}
