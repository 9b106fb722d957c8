// Package tokenstore provides durable storage for the single persisted
// credential that lets a panel session survive a process restart.
//
// The stored value is one opaque string under a fixed key; absence means
// "logged out". Three implementations are provided: [Memory] for tests and
// ephemeral sessions, [File] as the desktop analog of browser-local storage,
// and [Redis] for deployments that already run Redis.
//
// # Architecture boundaries
//
// This package owns persistence only. It does NOT interpret the token,
// contact the panel API, or decide authentication state — those
// responsibilities belong to the panelauth Session.
//
// # What this package must NOT do
//
//   - Import panelauth or any sibling package (no upward imports).
//   - Cache a loaded token in memory on behalf of the caller.
//   - Log token values.
package tokenstore
