// Package panelauth implements the session core of a hosting-panel admin
// dashboard: a single source of truth for the currently signed-in identity,
// backed by a remote panel API and a persisted-token store.
//
// The package is designed for UI-driven workloads: Session methods are safe to
// call from multiple goroutines after initialization through [Builder.Build],
// and overlapping authentication attempts resolve deterministically — the most
// recently issued operation wins, stale responses are discarded.
//
// # Architecture boundaries
//
// panelauth is the public surface. It exposes [Session], [Builder], [Config],
// and value types (Snapshot, User, Role, MetricsSnapshot). The remote API and
// the persisted-token store are external collaborators reached only through
// the [panelapi.AuthAPI] and [tokenstore.Store] interfaces. Route gating lives
// in the guard sub-package and reads Session state through [Session.Snapshot].
//
// # What this package must NOT do
//
//   - Verify or mint credentials — authentication decisions belong to the
//     remote panel API; the token is opaque to this package.
//   - Retry failed logins or registrations. Failures resolve immediately to an
//     unauthenticated state and propagate to the caller.
//   - Expose mutable session fields. All mutation funnels through the named
//     operations Login, Register, Logout, and CheckAuth.
package panelauth
