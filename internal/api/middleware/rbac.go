package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

// RequireAdmin gates a route group to callers holding the admin role.
// The role is resolved from the store on every request so revocations
// take effect immediately; tokens never carry role claims.
func RequireAdmin(roles rbac.RoleStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c.Request.Context())
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "missing authenticated identity",
			})
			return
		}

		role, ok, err := roles.Get(c.Request.Context(), userID)
		if err != nil {
			logger.Error("admin gate: role lookup failed",
				zap.Error(err),
				zap.String("user_id", userID),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "An internal error occurred",
			})
			return
		}
		if !ok || role != rbac.RoleAdmin {
			logger.Warn("admin gate: access denied",
				zap.String("user_id", userID),
				zap.String("role", role.String()),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "FORBIDDEN",
				"message": "Unauthorized: Admin access required",
			})
			return
		}

		c.Next()
	}
}
