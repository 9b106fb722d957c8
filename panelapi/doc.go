// Package panelapi is the HTTP client for the remote hosting-panel API.
//
// [Client] implements [panelauth.AuthAPI] (login, register, who-am-I) and
// adds thin typed wrappers for the resource listings the dashboard screens
// fetch on demand: servers, plans, orders, and the user directory. Every
// authorized call attaches "Authorization: Bearer <token>" and an
// X-Request-ID header, and is logged at debug level.
//
// # Error mapping
//
// Server rejections become the panelauth sentinel errors so the session core
// and its callers can branch with errors.Is: invalid credentials, duplicate
// email, rejected registration, rejected token. Any failure before an HTTP
// response becomes [panelauth.ErrAPIUnavailable]. The server's detail
// message, when present, is preserved in the wrapped error text.
//
// # What this package must NOT do
//
//   - Hold session state or cache tokens — callers pass the credential per
//     request.
//   - Retry. The session core's contract is fail-fast.
//   - Log request bodies or token values.
package panelapi
