package guard

import (
	"context"
	"net/http"

	panelauth "github.com/hostpanel/panelauth"
)

type snapshotContextKey struct{}

// FromContext returns the session snapshot a [Middleware] evaluation stored
// for the wrapped handler.
func FromContext(ctx context.Context) (panelauth.Snapshot, bool) {
	snap, ok := ctx.Value(snapshotContextKey{}).(panelauth.Snapshot)
	return snap, ok
}

// SnapshotSource yields the current session snapshot. *panelauth.Session
// satisfies it.
type SnapshotSource interface {
	Snapshot() panelauth.Snapshot
}

// metricsSource is satisfied by sources that also expose counters, such as
// *panelauth.Session. Guard outcomes are counted when available.
type metricsSource interface {
	Metrics() *panelauth.Metrics
}

// Middleware gates an http.Handler with requirement req. A Pending decision
// answers 503 with Retry-After so clients poll until the startup check
// resolves; a Denied decision answers 303 toward the decision's redirect
// target; Allowed invokes the wrapped handler with the evaluated snapshot in
// the request context.
func Middleware(src SnapshotSource, req Requirement, routes Routes) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if src == nil {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}

			snap := src.Snapshot()
			decision := Evaluate(snap, req, routes)
			note(src, decision.Outcome)

			switch decision.Outcome {
			case Pending:
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session check in progress", http.StatusServiceUnavailable)
			case Denied:
				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
			case Allowed:
				ctx := context.WithValue(r.Context(), snapshotContextKey{}, snap)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

func note(src SnapshotSource, outcome Outcome) {
	ms, ok := src.(metricsSource)
	if !ok {
		return
	}
	m := ms.Metrics()
	switch outcome {
	case Allowed:
		m.Inc(panelauth.MetricGuardAllowed)
	case Denied:
		m.Inc(panelauth.MetricGuardDenied)
	case Pending:
		m.Inc(panelauth.MetricGuardPending)
	}
}
