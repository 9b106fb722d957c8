package guard

import (
	panelauth "github.com/hostpanel/panelauth"
)

// Requirement is a view's declared access requirement.
type Requirement uint8

const (
	// RequireNone marks a public view.
	RequireNone Requirement = iota
	// RequireAuthenticated marks a view for any signed-in user.
	RequireAuthenticated
	// RequireAdmin marks a view for admins and super-admins.
	RequireAdmin
	// RequireSuperAdmin marks a view for super-admins only.
	RequireSuperAdmin
)

// String returns the requirement name used in logs.
func (r Requirement) String() string {
	switch r {
	case RequireNone:
		return "none"
	case RequireAuthenticated:
		return "authenticated"
	case RequireAdmin:
		return "admin"
	case RequireSuperAdmin:
		return "super_admin"
	default:
		return "unknown"
	}
}

// Outcome is the result of a guard evaluation.
type Outcome uint8

const (
	// Pending means the startup check has not resolved; render a neutral
	// loading state and make no navigation decision.
	Pending Outcome = iota
	// Denied means the requirement is unmet; navigate to RedirectTo.
	Denied
	// Allowed means the protected content renders unchanged.
	Allowed
)

// Decision is the full outcome of an evaluation. RedirectTo is set only
// when Outcome is Denied.
type Decision struct {
	Outcome    Outcome
	RedirectTo string
}

// Routes names the two fallback destinations of a denial: Login for
// unauthenticated visitors, Landing for signed-in users lacking the
// required role.
type Routes struct {
	Login   string
	Landing string
}

// DefaultRoutes matches the dashboard's conventional layout.
func DefaultRoutes() Routes {
	return Routes{
		Login:   "/login",
		Landing: "/dashboard",
	}
}

// Evaluate gates a view with requirement req against the session snapshot.
//
// Order matters and each step short-circuits the rest: a public view is
// always allowed, an unresolved startup check defers the decision, an
// unauthenticated visitor goes to the login route before any role is
// considered, and an under-privileged user goes to the landing route.
func Evaluate(snap panelauth.Snapshot, req Requirement, routes Routes) Decision {
	if req == RequireNone {
		return Decision{Outcome: Allowed}
	}

	if snap.Loading && !snap.Checked {
		return Decision{Outcome: Pending}
	}

	if !snap.Authenticated {
		return Decision{Outcome: Denied, RedirectTo: routes.Login}
	}

	if req >= RequireAdmin && !snap.User.Role.AtLeast(panelauth.RoleAdmin) {
		return Decision{Outcome: Denied, RedirectTo: routes.Landing}
	}

	if req == RequireSuperAdmin && !snap.User.Role.AtLeast(panelauth.RoleSuperAdmin) {
		return Decision{Outcome: Denied, RedirectTo: routes.Landing}
	}

	return Decision{Outcome: Allowed}
}
