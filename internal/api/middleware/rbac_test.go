package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mayurpawar7875/plantops/internal/rbac"
)

type stubRoleStore struct {
	roles map[string]rbac.Role
	err   error
}

func (s *stubRoleStore) Get(_ context.Context, userID string) (rbac.Role, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	role, ok := s.roles[userID]
	return role, ok, nil
}

func (s *stubRoleStore) Upsert(_ context.Context, userID string, role rbac.Role) (rbac.Role, bool, error) {
	previous, existed := s.roles[userID]
	s.roles[userID] = role
	return previous, existed, nil
}

func adminGateRouter(store rbac.RoleStore, userID string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Request = c.Request.WithContext(SetUserContext(c.Request.Context(), userID, userID+"@plantops.local"))
		}
		c.Next()
	})
	router.Use(RequireAdmin(store))
	router.GET("/admin-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireAdmin(t *testing.T) {
	store := &stubRoleStore{roles: map[string]rbac.Role{
		"admin-1": rbac.RoleAdmin,
		"pm-1":    rbac.RolePlantManager,
	}}

	tests := []struct {
		name     string
		store    rbac.RoleStore
		userID   string
		wantCode int
	}{
		{"admin passes", store, "admin-1", http.StatusOK},
		{"non-admin role denied", store, "pm-1", http.StatusForbidden},
		{"no role denied", store, "nobody", http.StatusForbidden},
		{"unauthenticated request denied", store, "", http.StatusUnauthorized},
		{"store failure is internal", &stubRoleStore{err: errors.New("db down")}, "admin-1", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := adminGateRouter(tt.store, tt.userID)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
