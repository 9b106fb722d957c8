// Package guard decides whether a protected panel view may render for the
// current session.
//
// [Evaluate] is the pure decision function: given a session snapshot and a
// view's declared [Requirement] it produces Pending, Denied (with a redirect
// target), or Allowed. [Middleware] adapts that decision to net/http: Pending
// renders a retryable 503, Denied issues a redirect, Allowed passes through
// with the snapshot in the request context.
//
// Checks run in a fixed short-circuit order: startup-pending first, then
// authentication, then admin, then super-admin. An unauthenticated visitor is
// never evaluated against a role requirement.
//
// # Architecture boundaries
//
// This package translates session state into render/redirect decisions. It
// does NOT mutate the session, contact the panel API, or interpret tokens —
// it consumes [panelauth.Snapshot] values read-only.
//
// # What this package must NOT do
//
//   - Import panelapi or tokenstore.
//   - Cache snapshots between requests; every evaluation reads fresh state.
//   - Make authorization decisions finer than the three role tiers.
package guard
