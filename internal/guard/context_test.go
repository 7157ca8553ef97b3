package guard

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type stubProfiles struct {
	profiles map[string]*rbac.Profile
	err      error
}

func (s *stubProfiles) Get(_ context.Context, userID string) (*rbac.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profiles[userID], nil
}

type stubRoles struct {
	roles map[string]rbac.Role
	err   error
}

func (s *stubRoles) Get(_ context.Context, userID string) (rbac.Role, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	role, ok := s.roles[userID]
	return role, ok, nil
}

func (s *stubRoles) Upsert(_ context.Context, userID string, role rbac.Role) (rbac.Role, bool, error) {
	previous, existed := s.roles[userID]
	s.roles[userID] = role
	return previous, existed, nil
}

func newTestContext() (*AuthContext, *stubRoles) {
	roles := &stubRoles{roles: map[string]rbac.Role{"u1": rbac.RolePlantManager}}
	profiles := &stubProfiles{profiles: map[string]*rbac.Profile{
		"u1": {ID: "p1", UserID: "u1", Name: "Dana", Active: true},
	}}
	return NewAuthContext(profiles, roles), roles
}

func TestAuthContext_StartsLoading(t *testing.T) {
	ac, _ := newTestContext()
	snap := ac.Snapshot()
	assert.True(t, snap.Loading)
	assert.True(t, Authenticated(snap).Pending)
}

func TestAuthContext_SetSessionResolvesProfileAndRole(t *testing.T) {
	ac, _ := newTestContext()

	err := ac.SetSession(context.Background(), &rbac.Identity{ID: "u1", Email: "dana@plantops.local"})
	require.NoError(t, err)

	snap := ac.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.User)
	assert.Equal(t, "u1", snap.User.ID)
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Dana", snap.Profile.Name)
	assert.False(t, snap.IsAdmin)
	assert.True(t, Authenticated(snap).Render)
}

func TestAuthContext_SignOutClearsCache(t *testing.T) {
	ac, _ := newTestContext()
	require.NoError(t, ac.SetSession(context.Background(), &rbac.Identity{ID: "u1"}))

	require.NoError(t, ac.SetSession(context.Background(), nil))

	snap := ac.Snapshot()
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.User)
	assert.Equal(t, RedirectSignIn, Authenticated(snap).Redirect)
}

func TestAuthContext_RefreshPicksUpRoleChange(t *testing.T) {
	ac, roles := newTestContext()
	require.NoError(t, ac.SetSession(context.Background(), &rbac.Identity{ID: "u1"}))
	assert.False(t, ac.Snapshot().IsAdmin)

	// An administrative role change lands; the next refresh observes it.
	roles.roles["u1"] = rbac.RoleAdmin
	require.NoError(t, ac.Refresh(context.Background()))

	snap := ac.Snapshot()
	assert.True(t, snap.IsAdmin)
	assert.True(t, Admin(snap).Render)
}

func TestAuthContext_NotifiesSubscribersOnChange(t *testing.T) {
	ac, _ := newTestContext()

	var seen []Snapshot
	unsubscribe := ac.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap)
	})

	require.NoError(t, ac.SetSession(context.Background(), &rbac.Identity{ID: "u1"}))

	// Loading edge followed by the resolved snapshot.
	require.Len(t, seen, 2)
	assert.True(t, seen[0].Loading)
	assert.False(t, seen[1].Loading)
	require.NotNil(t, seen[1].Profile)

	unsubscribe()
	require.NoError(t, ac.SetSession(context.Background(), nil))
	assert.Len(t, seen, 2, "unsubscribed listener must not fire")
}

func TestAuthContext_LoadFailureClearsToSignedOut(t *testing.T) {
	roles := &stubRoles{roles: map[string]rbac.Role{}}
	profiles := &stubProfiles{err: errors.New("db down")}
	ac := NewAuthContext(profiles, roles)

	err := ac.SetSession(context.Background(), &rbac.Identity{ID: "u1"})
	require.Error(t, err)

	snap := ac.Snapshot()
	assert.Nil(t, snap.User)
	assert.False(t, snap.Loading)
}
