// Package guard implements navigation gating: a cached authorization
// context plus the two route guards that consult it. Guards hold no
// state of their own; every decision is recomputed from the live
// context snapshot.
package guard

import "github.com/mayurpawar7875/plantops/internal/rbac"

// Redirect destinations. The non-admin landing page differs from the
// sign-in page so "insufficient privilege" is distinguishable from
// "not logged in".
const (
	RedirectSignIn       = "/auth"
	RedirectNonAdminHome = "/plant-manager/dashboard"
)

// State is a guard evaluation state. Loading is the only non-terminal
// state; all others carry a final render-or-redirect decision.
type State int

const (
	StateLoading State = iota
	StateUnauthenticated
	StateInactiveProfile
	StateAuthorized
	StateAuthorizedNonAdmin
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateInactiveProfile:
		return "inactive_profile"
	case StateAuthorized:
		return "authorized"
	case StateAuthorizedNonAdmin:
		return "authorized_non_admin"
	}
	return "unknown"
}

// Snapshot is the authorization context view guards evaluate:
// identity, profile, derived admin flag and the loading indicator.
type Snapshot struct {
	Loading bool
	User    *rbac.Identity
	Profile *rbac.Profile
	IsAdmin bool
}

// Decision is a guard outcome. Render means show the protected content;
// otherwise Redirect carries the destination. While Pending, no
// navigation decision has been made yet.
type Decision struct {
	State    State
	Pending  bool
	Render   bool
	Redirect string
}

// Authenticated gates content on a valid, active session. An inactive
// profile redirects to the same destination as no session at all.
func Authenticated(s Snapshot) Decision {
	if s.Loading {
		return Decision{State: StateLoading, Pending: true}
	}
	if s.User == nil || s.Profile == nil {
		return Decision{State: StateUnauthenticated, Redirect: RedirectSignIn}
	}
	if !s.Profile.Active {
		return Decision{State: StateInactiveProfile, Redirect: RedirectSignIn}
	}
	return Decision{State: StateAuthorized, Render: true}
}

// Admin gates content on a valid, active session holding the admin
// role. The authentication checks run first, so a missing session
// redirects to sign-in, not to the non-admin landing page.
func Admin(s Snapshot) Decision {
	d := Authenticated(s)
	if !d.Render {
		return d
	}
	if !s.IsAdmin {
		return Decision{State: StateAuthorizedNonAdmin, Redirect: RedirectNonAdminHome}
	}
	return d
}
