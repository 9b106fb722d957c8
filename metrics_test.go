package panelauth

import (
	"sync"
	"testing"
)

func TestMetricsIncAndSnapshot(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLogout)

	snap := m.Snapshot()
	if snap.Counters[MetricLoginSuccess] != 2 {
		t.Fatalf("login success = %d, want 2", snap.Counters[MetricLoginSuccess])
	}
	if snap.Counters[MetricLogout] != 1 {
		t.Fatalf("logout = %d, want 1", snap.Counters[MetricLogout])
	}
	if snap.Counters[MetricLoginFailure] != 0 {
		t.Fatalf("login failure = %d, want 0", snap.Counters[MetricLoginFailure])
	}
}

func TestMetricsDisabledIsNoOp(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricLoginSuccess)

	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Fatalf("disabled metrics reported %d counters", len(snap.Counters))
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricLoginSuccess) // must not panic
	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Fatal("nil metrics reported counters")
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Inc(MetricGuardAllowed)
			}
		}()
	}
	wg.Wait()

	if got := m.Snapshot().Counters[MetricGuardAllowed]; got != 8000 {
		t.Fatalf("guard allowed = %d, want 8000", got)
	}
}
