// Package prometheus renders panelauth metrics in Prometheus text
// exposition format.
//
// [NewExporter] accepts anything exposing a MetricsSnapshot (a
// *panelauth.Session does) and returns an [http.Handler] plus a
// deterministic Render method. Counter names are prefixed panelauth_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the
//     Handler.
//   - Mutate session state.
package prometheus
