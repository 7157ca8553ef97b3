package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayurpawar7875/plantops/internal/api/handlers"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type stubVerifier struct {
	identity rbac.Identity
}

func (s stubVerifier) Verify(_ context.Context, _ string) (rbac.Identity, error) {
	return s.identity, nil
}

type stubProfiles struct {
	profiles map[string]*rbac.Profile
}

func (s *stubProfiles) Get(_ context.Context, userID string) (*rbac.Profile, error) {
	return s.profiles[userID], nil
}

type stubRoles struct {
	roles map[string]rbac.Role
}

func (s *stubRoles) Get(_ context.Context, userID string) (rbac.Role, bool, error) {
	role, ok := s.roles[userID]
	return role, ok, nil
}

func (s *stubRoles) Upsert(_ context.Context, userID string, role rbac.Role) (rbac.Role, bool, error) {
	previous, existed := s.roles[userID]
	s.roles[userID] = role
	return previous, existed, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	roles := &stubRoles{roles: map[string]rbac.Role{"admin-1": rbac.RoleAdmin}}
	profiles := &stubProfiles{profiles: map[string]*rbac.Profile{
		"u1": {ID: "p1", UserID: "u1", Name: "Dana", Active: true},
	}}
	svc := rbac.NewService(stubVerifier{identity: rbac.Identity{ID: "admin-1"}}, profiles, roles, nil)

	server := handlers.NewServer(handlers.ServerDeps{RoleService: svc})
	return newRouter(server, []byte("test-signing-key-1234567890123456"), roles)
}

func TestRouter_PreflightCarriesPermissiveCORS(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/admin/update-user-role", nil)
	req.Header.Set("Origin", "https://admin.plantops.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RoleUpdateBypassesSharedJWTMiddleware(t *testing.T) {
	router := newTestRouter(t)

	// No Authorization header: the endpoint's own check must answer with
	// the flat error body, not the shared middleware's coded one.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/update-user-role",
		strings.NewReader(`{"targetUserId":"u1","newRole":"accountant"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://admin.plantops.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": "No authorization header"}, body)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), "error responses carry CORS headers too")
}

func TestRouter_RoleUpdateSuccessThroughFullChain(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/update-user-role",
		strings.NewReader(`{"targetUserId":"u1","newRole":"plantManager"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer t")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"previousRole":"none"`)
	assert.Contains(t, w.Body.String(), `"newRole":"plantManager"`)
}

func TestRouter_ProtectedRoutesRequireJWT(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leave-requests", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
