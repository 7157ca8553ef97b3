package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayurpawar7875/plantops/internal/rbac"
)

type fakeVerifier struct {
	identity rbac.Identity
	err      error
}

func (f fakeVerifier) Verify(_ context.Context, _ string) (rbac.Identity, error) {
	if f.err != nil {
		return rbac.Identity{}, f.err
	}
	return f.identity, nil
}

type fakeProfiles struct {
	profiles map[string]*rbac.Profile
}

func (f *fakeProfiles) Get(_ context.Context, userID string) (*rbac.Profile, error) {
	return f.profiles[userID], nil
}

type fakeRoles struct {
	roles map[string]rbac.Role
}

func (f *fakeRoles) Get(_ context.Context, userID string) (rbac.Role, bool, error) {
	role, ok := f.roles[userID]
	return role, ok, nil
}

func (f *fakeRoles) Upsert(_ context.Context, userID string, role rbac.Role) (rbac.Role, bool, error) {
	previous, existed := f.roles[userID]
	f.roles[userID] = role
	return previous, existed, nil
}

// newRoleUpdateRouter wires the role-update endpoint exactly as the app
// router does: no JWT middleware in front, flat error bodies.
func newRoleUpdateRouter(svc *rbac.Service) *gin.Engine {
	server := NewServer(ServerDeps{RoleService: svc})
	router := gin.New()
	router.POST("/api/v1/admin/update-user-role", server.UpdateUserRole)
	return router
}

func newAdminService() *rbac.Service {
	return rbac.NewService(
		fakeVerifier{identity: rbac.Identity{ID: "admin-1", Email: "root@plantops.local"}},
		&fakeProfiles{profiles: map[string]*rbac.Profile{
			"u1": {ID: "p1", UserID: "u1", Name: "Dana", Active: true},
		}},
		&fakeRoles{roles: map[string]rbac.Role{"admin-1": rbac.RoleAdmin}},
		nil,
	)
}

func postRoleUpdate(router *gin.Engine, authHeader, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/update-user-role", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateUserRoleEndpoint_ErrorBodies(t *testing.T) {
	adminRouter := newRoleUpdateRouter(newAdminService())

	nonAdminRouter := newRoleUpdateRouter(rbac.NewService(
		fakeVerifier{identity: rbac.Identity{ID: "pm-1"}},
		&fakeProfiles{},
		&fakeRoles{roles: map[string]rbac.Role{"pm-1": rbac.RolePlantManager}},
		nil,
	))

	badTokenRouter := newRoleUpdateRouter(rbac.NewService(
		fakeVerifier{err: errors.New("expired")},
		&fakeProfiles{},
		&fakeRoles{},
		nil,
	))

	tests := []struct {
		name      string
		router    *gin.Engine
		auth      string
		body      string
		wantCode  int
		wantError string
	}{
		{
			name:      "no authorization header",
			router:    adminRouter,
			body:      `{"targetUserId":"u1","newRole":"accountant"}`,
			wantCode:  http.StatusUnauthorized,
			wantError: "No authorization header",
		},
		{
			name:      "invalid token",
			router:    badTokenRouter,
			auth:      "Bearer bad",
			body:      `{"targetUserId":"u1","newRole":"accountant"}`,
			wantCode:  http.StatusUnauthorized,
			wantError: "Invalid token",
		},
		{
			name:      "non-admin caller",
			router:    nonAdminRouter,
			auth:      "Bearer t",
			body:      `{"targetUserId":"u1","newRole":"accountant"}`,
			wantCode:  http.StatusForbidden,
			wantError: "Unauthorized: Admin access required",
		},
		{
			name:      "missing fields",
			router:    adminRouter,
			auth:      "Bearer t",
			body:      `{"targetUserId":"u1"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Missing required fields: targetUserId and newRole",
		},
		{
			name:      "malformed json surfaces as missing fields after auth",
			router:    adminRouter,
			auth:      "Bearer t",
			body:      `{not json`,
			wantCode:  http.StatusBadRequest,
			wantError: "Missing required fields: targetUserId and newRole",
		},
		{
			name:      "invalid role enumerates the valid set",
			router:    adminRouter,
			auth:      "Bearer t",
			body:      `{"targetUserId":"u1","newRole":"manager"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Invalid role. Must be one of: admin, plantManager, productionManager, accountant",
		},
		{
			name:      "self modification blocked",
			router:    adminRouter,
			auth:      "Bearer t",
			body:      `{"targetUserId":"admin-1","newRole":"accountant"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "You cannot modify your own role",
		},
		{
			name:      "target not found",
			router:    adminRouter,
			auth:      "Bearer t",
			body:      `{"targetUserId":"ghost","newRole":"accountant"}`,
			wantCode:  http.StatusNotFound,
			wantError: "Target user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRoleUpdate(tt.router, tt.auth, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{"error": tt.wantError}, body)
		})
	}
}

func TestUpdateUserRoleEndpoint_Success(t *testing.T) {
	router := newRoleUpdateRouter(newAdminService())

	w := postRoleUpdate(router, "Bearer t", `{"targetUserId":"u1","newRole":"plantManager"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		PreviousRole string `json:"previousRole"`
		NewRole      string `json:"newRole"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "none", body.PreviousRole)
	assert.Equal(t, "plantManager", body.NewRole)
	assert.Contains(t, body.Message, "Dana")
	assert.Contains(t, body.Message, "plantManager")

	// Second call with the same role: idempotent, previousRole now equals newRole.
	w = postRoleUpdate(router, "Bearer t", `{"targetUserId":"u1","newRole":"plantManager"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "plantManager", body.PreviousRole)
	assert.Equal(t, "plantManager", body.NewRole)
}
