package panelauth

import "sync/atomic"

// MetricID identifies a counter in the in-process metrics system.
type MetricID uint16

const (
	// MetricLoginSuccess counts logins accepted by the panel API.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts logins rejected or failed in transport.
	MetricLoginFailure
	// MetricRegisterSuccess counts accepted registrations.
	MetricRegisterSuccess
	// MetricRegisterFailure counts rejected or failed registrations.
	MetricRegisterFailure
	// MetricCheckAuthHydrated counts startup checks that restored a session.
	MetricCheckAuthHydrated
	// MetricCheckAuthRejected counts startup checks whose persisted token the
	// server refused.
	MetricCheckAuthRejected
	// MetricCheckAuthSkipped counts startup checks resolved without a network
	// call (no persisted token, or preflight expiry).
	MetricCheckAuthSkipped
	// MetricLogout counts logout operations.
	MetricLogout
	// MetricStaleDiscarded counts resolutions discarded because a newer
	// operation had been issued.
	MetricStaleDiscarded
	// MetricGuardAllowed counts guard evaluations that rendered content.
	MetricGuardAllowed
	// MetricGuardDenied counts guard evaluations that redirected.
	MetricGuardDenied
	// MetricGuardPending counts guard evaluations made while the startup
	// check was unresolved.
	MetricGuardPending

	metricIDCount
)

// MetricIDCount is the number of defined metric IDs, exported for exporters
// that preallocate per-metric state.
const MetricIDCount = int(metricIDCount)

// Metrics holds atomic counters for session and guard events. All methods
// are safe for concurrent use; a disabled instance turns every operation
// into a no-op.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics creates a [Metrics] instance. When cfg.Enabled is false, Inc is
// a no-op and Snapshot returns an empty map.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments the counter for id. Out-of-range IDs are ignored.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// Snapshot returns a deep copy of all counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricIDCount)}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	return snap
}
