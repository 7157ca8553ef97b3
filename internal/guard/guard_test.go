package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mayurpawar7875/plantops/internal/rbac"
)

func activeSession(isAdmin bool) Snapshot {
	return Snapshot{
		User:    &rbac.Identity{ID: "u1", Email: "dana@plantops.local"},
		Profile: &rbac.Profile{ID: "p1", UserID: "u1", Name: "Dana", Active: true},
		IsAdmin: isAdmin,
	}
}

func TestAuthenticatedGuard(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want Decision
	}{
		{
			name: "loading is the only non-terminal state",
			snap: Snapshot{Loading: true},
			want: Decision{State: StateLoading, Pending: true},
		},
		{
			name: "no user redirects to sign-in",
			snap: Snapshot{},
			want: Decision{State: StateUnauthenticated, Redirect: RedirectSignIn},
		},
		{
			name: "user without profile redirects to sign-in",
			snap: Snapshot{User: &rbac.Identity{ID: "u1"}},
			want: Decision{State: StateUnauthenticated, Redirect: RedirectSignIn},
		},
		{
			name: "inactive profile treated like no account",
			snap: Snapshot{
				User:    &rbac.Identity{ID: "u1"},
				Profile: &rbac.Profile{ID: "p1", UserID: "u1", Active: false},
			},
			want: Decision{State: StateInactiveProfile, Redirect: RedirectSignIn},
		},
		{
			name: "active session renders",
			snap: activeSession(false),
			want: Decision{State: StateAuthorized, Render: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authenticated(tt.snap))
		})
	}
}

func TestAdminGuard(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want Decision
	}{
		{
			name: "loading waits",
			snap: Snapshot{Loading: true},
			want: Decision{State: StateLoading, Pending: true},
		},
		{
			name: "no user redirects to sign-in, not the landing page",
			snap: Snapshot{},
			want: Decision{State: StateUnauthenticated, Redirect: RedirectSignIn},
		},
		{
			name: "inactive profile redirects to sign-in regardless of role",
			snap: Snapshot{
				User:    &rbac.Identity{ID: "u1"},
				Profile: &rbac.Profile{ID: "p1", UserID: "u1", Active: false},
				IsAdmin: true,
			},
			want: Decision{State: StateInactiveProfile, Redirect: RedirectSignIn},
		},
		{
			name: "active non-admin redirects to the landing page",
			snap: activeSession(false),
			want: Decision{State: StateAuthorizedNonAdmin, Redirect: RedirectNonAdminHome},
		},
		{
			name: "active admin renders",
			snap: activeSession(true),
			want: Decision{State: StateAuthorized, Render: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Admin(tt.snap))
		})
	}
}
