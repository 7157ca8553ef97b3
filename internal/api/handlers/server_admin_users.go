package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mayurpawar7875/plantops/ent"
	entuser "github.com/mayurpawar7875/plantops/ent/user"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
)

// ListUsers handles GET /api/v1/admin/users. Admin-gated by middleware.
// Returns every user with their profile and role assignment so the
// admin UI can render the role-management table in one round trip.
func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.client.User.Query().
		WithProfile().
		WithRoleAssignment().
		Order(ent.Asc(entuser.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		entry := gin.H{
			"id":      u.ID,
			"email":   u.Email,
			"enabled": u.Enabled,
			"name":    "",
			"isActive": false,
			"role":    "",
		}
		if u.LastLoginAt != nil {
			entry["lastLoginAt"] = u.LastLoginAt
		}
		if p := u.Edges.Profile; p != nil {
			entry["name"] = p.Name
			entry["isActive"] = p.IsActive
		}
		if ra := u.Edges.RoleAssignment; ra != nil {
			entry["role"] = ra.Role
		}
		out = append(out, entry)
	}

	c.JSON(http.StatusOK, gin.H{"users": out})
}
