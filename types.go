package panelauth

import "time"

// Role is an ordered privilege tier attached to a user identity.
// The ordering is total: RoleUser < RoleAdmin < RoleSuperAdmin.
type Role string

const (
	// RoleUser is the default tier for hosting customers.
	RoleUser Role = "user"
	// RoleAdmin can manage users, servers, plans, and orders.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin can additionally manage admins and panel settings.
	RoleSuperAdmin Role = "super_admin"
)

// rank maps a role to its position in the privilege order. Unknown roles
// rank below RoleUser so a malformed record never gains privileges.
func (r Role) rank() int {
	switch r {
	case RoleUser:
		return 1
	case RoleAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether r carries at least the privilege of other.
// An admin check passes for admin and super_admin; a super_admin check
// passes only for super_admin.
func (r Role) AtLeast(other Role) bool {
	return r.rank() >= other.rank()
}

// Valid reports whether r is one of the three known tiers.
func (r Role) Valid() bool {
	return r.rank() > 0
}

// AccountStatus is the lifecycle state of a panel account as reported by
// the remote API.
type AccountStatus string

const (
	// AccountActive is an account in good standing.
	AccountActive AccountStatus = "active"
	// AccountSuspended is an account blocked by an administrator.
	AccountSuspended AccountStatus = "suspended"
	// AccountPending is an account awaiting first activation.
	AccountPending AccountStatus = "pending"
)

// User is the identity record returned by the panel API. Fields beyond ID,
// Email, and Role are informational; the session core never interprets them.
type User struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	FullName  string        `json:"full_name"`
	Role      Role          `json:"role"`
	Status    AccountStatus `json:"status"`
	Balance   float64       `json:"balance"`
	CreatedAt time.Time     `json:"created_at"`
}

// RegisterRequest is the input for [Session.Register]. Email, Password, and
// FullName are required; ReferralCode is optional.
type RegisterRequest struct {
	Email        string
	Password     string
	FullName     string
	ReferralCode string
}

// Snapshot is an immutable point-in-time view of the session, safe to hand
// to the guard package or any view needing identity.
//
// Authenticated is derived, never stored: it is true exactly when Token and
// User are both present, so no sequence of operations can observe a token
// without a user or vice versa.
type Snapshot struct {
	// User is the current identity, nil when unauthenticated.
	User *User
	// Token is the opaque credential, empty when unauthenticated.
	Token string
	// Authenticated is true iff Token != "" and User != nil.
	Authenticated bool
	// Loading is true while the most recently issued login, registration,
	// or startup check has not resolved.
	Loading bool
	// Checked is true once the one-shot startup check has resolved, whether
	// or not it hydrated a session.
	Checked bool
	// LastError is the human-readable message of the most recent failed
	// login or registration, empty after success, logout, or while loading.
	LastError string
}

func snapshotOf(user *User, token string, loading, checked bool, lastErr string) Snapshot {
	var u *User
	if user != nil {
		copied := *user
		u = &copied
	}
	return Snapshot{
		User:          u,
		Token:         token,
		Authenticated: token != "" && u != nil,
		Loading:       loading,
		Checked:       checked,
		LastError:     lastErr,
	}
}
