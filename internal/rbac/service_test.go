package rbac

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	identity Identity
	err      error
}

func (f fakeVerifier) Verify(_ context.Context, _ string) (Identity, error) {
	if f.err != nil {
		return Identity{}, f.err
	}
	return f.identity, nil
}

type fakeProfiles struct {
	profiles map[string]*Profile
	err      error
}

func (f *fakeProfiles) Get(_ context.Context, userID string) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

type fakeRoles struct {
	roles     map[string]Role
	getErr    error
	upsertErr error
	upserts   int
}

func (f *fakeRoles) Get(_ context.Context, userID string) (Role, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	role, ok := f.roles[userID]
	return role, ok, nil
}

func (f *fakeRoles) Upsert(_ context.Context, userID string, role Role) (Role, bool, error) {
	f.upserts++
	previous, existed := f.roles[userID]
	if f.upsertErr != nil {
		return previous, existed, f.upsertErr
	}
	if f.roles == nil {
		f.roles = make(map[string]Role)
	}
	f.roles[userID] = role
	return previous, existed, nil
}

type recordingAudit struct {
	events []RoleChangeEvent
}

func (r *recordingAudit) RoleChanged(_ context.Context, event RoleChangeEvent) {
	r.events = append(r.events, event)
}

// newAdminFixture builds a service with an admin caller "admin-1", an
// existing target "u1" (active profile, no role yet) and recording audit.
func newAdminFixture() (*Service, *fakeRoles, *recordingAudit) {
	roles := &fakeRoles{roles: map[string]Role{"admin-1": RoleAdmin}}
	profiles := &fakeProfiles{profiles: map[string]*Profile{
		"admin-1": {ID: "p-admin", UserID: "admin-1", Name: "Root", Active: true},
		"u1":      {ID: "p-u1", UserID: "u1", Name: "Dana", Active: true},
	}}
	audit := &recordingAudit{}
	svc := NewService(
		fakeVerifier{identity: Identity{ID: "admin-1", Email: "root@plantops.local"}},
		profiles,
		roles,
		audit,
	)
	return svc, roles, audit
}

func TestUpdateUserRole_NoAuthHeader(t *testing.T) {
	svc, roles, _ := newAdminFixture()

	for _, header := range []string{"", "   "} {
		result, appErr := svc.UpdateUserRole(context.Background(), header, UpdateRequest{TargetUserID: "u1", NewRole: "accountant"})
		require.Nil(t, result)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
		assert.Equal(t, "No authorization header", appErr.Message)
	}
	assert.Zero(t, roles.upserts)
}

func TestUpdateUserRole_InvalidToken(t *testing.T) {
	svc := NewService(
		fakeVerifier{err: errors.New("token is expired")},
		&fakeProfiles{},
		&fakeRoles{},
		nil,
	)

	result, appErr := svc.UpdateUserRole(context.Background(), "Bearer bad", UpdateRequest{TargetUserID: "u1", NewRole: "accountant"})
	require.Nil(t, result)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	assert.Equal(t, "Invalid token", appErr.Message)
}

func TestUpdateUserRole_NonAdminForbidden(t *testing.T) {
	tests := []struct {
		name       string
		callerRole map[string]Role
	}{
		{"caller has non-admin role", map[string]Role{"caller-1": RolePlantManager}},
		{"caller has no role at all", map[string]Role{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := &fakeRoles{roles: tt.callerRole}
			svc := NewService(
				fakeVerifier{identity: Identity{ID: "caller-1"}},
				&fakeProfiles{},
				roles,
				nil,
			)

			// Forbidden regardless of how broken the body is.
			result, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", UpdateRequest{NewRole: "not-a-role"})
			require.Nil(t, result)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
			assert.Equal(t, "Unauthorized: Admin access required", appErr.Message)
			assert.Zero(t, roles.upserts)
		})
	}
}

func TestUpdateUserRole_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  UpdateRequest
	}{
		{"both missing", UpdateRequest{}},
		{"target missing", UpdateRequest{NewRole: "accountant"}},
		{"role missing", UpdateRequest{TargetUserID: "u1"}},
		{"whitespace only", UpdateRequest{TargetUserID: "  ", NewRole: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, roles, _ := newAdminFixture()

			result, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", tt.req)
			require.Nil(t, result)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Equal(t, "Missing required fields: targetUserId and newRole", appErr.Message)
			assert.Zero(t, roles.upserts)
		})
	}
}

func TestUpdateUserRole_InvalidRoleNeverTouchesStore(t *testing.T) {
	svc, roles, _ := newAdminFixture()

	result, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", UpdateRequest{TargetUserID: "u1", NewRole: "superadmin"})
	require.Nil(t, result)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "Invalid role. Must be one of: admin, plantManager, productionManager, accountant", appErr.Message)
	assert.Zero(t, roles.upserts)
}

func TestUpdateUserRole_SelfModifyBlocked(t *testing.T) {
	svc, roles, _ := newAdminFixture()

	result, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", UpdateRequest{TargetUserID: "admin-1", NewRole: "accountant"})
	require.Nil(t, result)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "You cannot modify your own role", appErr.Message)
	assert.Zero(t, roles.upserts)
	assert.Equal(t, RoleAdmin, roles.roles["admin-1"], "caller's own assignment must be untouched")
}

func TestUpdateUserRole_TargetNotFound(t *testing.T) {
	svc, roles, _ := newAdminFixture()

	result, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", UpdateRequest{TargetUserID: "ghost", NewRole: "accountant"})
	require.Nil(t, result)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, "Target user not found", appErr.Message)
	assert.Zero(t, roles.upserts)
}

func TestUpdateUserRole_FirstAssignment(t *testing.T) {
	svc, roles, audit := newAdminFixture()

	result, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", UpdateRequest{TargetUserID: "u1", NewRole: "accountant"})
	require.Nil(t, appErr)
	require.NotNil(t, result)
	assert.Equal(t, RoleNone, result.PreviousRole)
	assert.Equal(t, RoleAccountant, result.NewRole)
	assert.Equal(t, "Dana", result.TargetName)
	assert.Equal(t, RoleAccountant, roles.roles["u1"])

	require.Len(t, audit.events, 1)
	event := audit.events[0]
	assert.Equal(t, "u1", event.TargetID)
	assert.Equal(t, "Dana", event.TargetName)
	assert.Equal(t, RoleNone, event.PreviousRole)
	assert.Equal(t, "accountant", event.NewRole)
	assert.Equal(t, "admin-1", event.Actor)
	assert.False(t, event.At.IsZero())
}

func TestUpdateUserRole_UpdatesExistingAssignment(t *testing.T) {
	svc, roles, _ := newAdminFixture()
	roles.roles["u1"] = RolePlantManager

	result, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", UpdateRequest{TargetUserID: "u1", NewRole: "admin"})
	require.Nil(t, appErr)
	require.NotNil(t, result)
	assert.Equal(t, "plantManager", result.PreviousRole)
	assert.Equal(t, RoleAdmin, result.NewRole)
	assert.Equal(t, RoleAdmin, roles.roles["u1"])
}

func TestUpdateUserRole_Idempotent(t *testing.T) {
	svc, _, _ := newAdminFixture()
	req := UpdateRequest{TargetUserID: "u1", NewRole: "productionManager"}

	first, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", req)
	require.Nil(t, appErr)
	assert.Equal(t, RoleNone, first.PreviousRole)

	second, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", req)
	require.Nil(t, appErr)
	assert.Equal(t, "productionManager", second.PreviousRole)
	assert.Equal(t, RoleProductionManager, second.NewRole)
}

func TestUpdateUserRole_WriteFailureMessages(t *testing.T) {
	tests := []struct {
		name     string
		existing map[string]Role
		wantMsg  string
	}{
		{
			name:     "update failure on existing assignment",
			existing: map[string]Role{"admin-1": RoleAdmin, "u1": RoleAccountant},
			wantMsg:  "Failed to update role",
		},
		{
			name:     "insert failure on first assignment",
			existing: map[string]Role{"admin-1": RoleAdmin},
			wantMsg:  "Failed to assign role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := &fakeRoles{roles: tt.existing, upsertErr: errors.New("connection reset")}
			svc := NewService(
				fakeVerifier{identity: Identity{ID: "admin-1"}},
				&fakeProfiles{profiles: map[string]*Profile{
					"u1": {ID: "p-u1", UserID: "u1", Name: "Dana", Active: true},
				}},
				roles,
				nil,
			)

			result, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", UpdateRequest{TargetUserID: "u1", NewRole: "plantManager"})
			require.Nil(t, result)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestUpdateUserRole_LookupFailureIsInternal(t *testing.T) {
	svc := NewService(
		fakeVerifier{identity: Identity{ID: "admin-1"}},
		&fakeProfiles{err: errors.New("db down")},
		&fakeRoles{roles: map[string]Role{"admin-1": RoleAdmin}},
		nil,
	)

	result, appErr := svc.UpdateUserRole(context.Background(), "Bearer t", UpdateRequest{TargetUserID: "u1", NewRole: "admin"})
	require.Nil(t, result)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, "Internal server error", appErr.Message)
}
