package freshcart

import "sync/atomic"

// MetricID indexes the client's in-process counters.
type MetricID uint16

const (
	MetricSignInSuccess MetricID = iota
	MetricSignInFailure
	MetricSignUpSuccess
	MetricSignUpFailure
	MetricSignOut
	MetricRefreshSuccess
	MetricRefreshFailure
	// MetricRefreshSkippedUnauthenticated counts refresh attempts rejected
	// locally for missing credentials, with no network call made.
	MetricRefreshSkippedUnauthenticated
	MetricSessionCleared
	MetricStaleTokenDetected
	metricCount
)

// Metrics is a fixed-size set of atomic counters. All methods are safe for
// concurrent use; a nil receiver is a no-op so callers never guard.
type Metrics struct {
	counters [metricCount]atomic.Uint64
}

// NewMetrics allocates the counter set.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Inc increments one counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot copies the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricCount)}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	return snap
}
