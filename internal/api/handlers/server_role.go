package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayurpawar7875/plantops/internal/rbac"
)

// UpdateUserRole handles POST /api/v1/admin/update-user-role.
//
// This endpoint owns its full check sequence, including Authorization
// header parsing, so it does not sit behind the shared JWT middleware.
// Every failure responds with a flat {"error": "..."} body; the check
// ordering in the role service is part of the contract, which is why a
// malformed body is tolerated here and surfaces as a missing-fields
// failure only after the auth checks have run.
func (s *Server) UpdateUserRole(c *gin.Context) {
	var req rbac.UpdateRequest
	_ = c.ShouldBindJSON(&req)

	result, appErr := s.roleService.UpdateUserRole(c.Request.Context(), c.GetHeader("Authorization"), req)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      fmt.Sprintf("Successfully updated %s's role to %s", result.TargetName, result.NewRole),
		"previousRole": result.PreviousRole,
		"newRole":      result.NewRole.String(),
	})
}
