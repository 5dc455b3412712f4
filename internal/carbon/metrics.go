package carbon

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts the degraded-fidelity paths of the engine: default-factor
// fallbacks and remote-service fallbacks. Neither condition is an error for
// the caller, but both should be visible to operators.
//
// A nil *Metrics is valid and records nothing, so tests and library callers
// can skip metrics wiring entirely.
type Metrics struct {
	defaultFallbacks *prometheus.CounterVec
	remoteFallbacks  prometheus.Counter
	remoteRequests   prometheus.Counter
}

// NewMetrics builds and registers the engine counters on the given
// registerer. Pass prometheus.DefaultRegisterer for process-wide metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		defaultFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecopack_factor_default_fallbacks_total",
			Help: "Calculations that fell back to a category default factor.",
		}, []string{"category"}),
		remoteFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecopack_remote_fallbacks_total",
			Help: "Remote factor lookups that fell back to the local tables.",
		}),
		remoteRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecopack_remote_requests_total",
			Help: "Remote factor lookup attempts.",
		}),
	}

	reg.MustRegister(m.defaultFallbacks, m.remoteFallbacks, m.remoteRequests)
	return m
}

// DefaultFallback records a lookup that resolved to the category default.
func (m *Metrics) DefaultFallback(cat Category) {
	if m == nil {
		return
	}
	m.defaultFallbacks.WithLabelValues(cat.String()).Inc()
}

// RemoteFallback records a remote lookup recovered by the local calculator.
func (m *Metrics) RemoteFallback() {
	if m == nil {
		return
	}
	m.remoteFallbacks.Inc()
}

// RemoteRequest records one remote lookup attempt.
func (m *Metrics) RemoteRequest() {
	if m == nil {
		return
	}
	m.remoteRequests.Inc()
}
