package internaldefs

import (
	panelauth "github.com/hostpanel/panelauth"
)

// CounterDef binds a panelauth metric ID to its exported name and help text.
type CounterDef struct {
	ID   panelauth.MetricID
	Name string
	Help string
}

// CounterDefs enumerates every exported counter. Exporters iterate this
// slice so the Prometheus and OTel surfaces can never drift apart.
var CounterDefs = []CounterDef{
	{ID: panelauth.MetricLoginSuccess, Name: "panelauth_login_success_total", Help: "Logins accepted by the panel API."},
	{ID: panelauth.MetricLoginFailure, Name: "panelauth_login_failure_total", Help: "Logins rejected or failed in transport."},
	{ID: panelauth.MetricRegisterSuccess, Name: "panelauth_register_success_total", Help: "Accepted registrations."},
	{ID: panelauth.MetricRegisterFailure, Name: "panelauth_register_failure_total", Help: "Rejected or failed registrations."},
	{ID: panelauth.MetricCheckAuthHydrated, Name: "panelauth_checkauth_hydrated_total", Help: "Startup checks that restored a session."},
	{ID: panelauth.MetricCheckAuthRejected, Name: "panelauth_checkauth_rejected_total", Help: "Startup checks whose persisted token the server refused."},
	{ID: panelauth.MetricCheckAuthSkipped, Name: "panelauth_checkauth_skipped_total", Help: "Startup checks resolved without a network call."},
	{ID: panelauth.MetricLogout, Name: "panelauth_logout_total", Help: "Logout operations."},
	{ID: panelauth.MetricStaleDiscarded, Name: "panelauth_stale_discarded_total", Help: "Resolutions discarded because a newer operation was issued."},
	{ID: panelauth.MetricGuardAllowed, Name: "panelauth_guard_allowed_total", Help: "Guard evaluations that rendered content."},
	{ID: panelauth.MetricGuardDenied, Name: "panelauth_guard_denied_total", Help: "Guard evaluations that redirected."},
	{ID: panelauth.MetricGuardPending, Name: "panelauth_guard_pending_total", Help: "Guard evaluations made while the startup check was unresolved."},
}
