package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	entuser "github.com/mayurpawar7875/plantops/ent/user"
	"github.com/mayurpawar7875/plantops/internal/api/middleware"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "email and password are required"})
		return
	}

	user, err := s.client.User.Query().
		Where(entuser.EmailEQ(req.Email)).
		Where(entuser.EnabledEQ(true)).
		Only(c.Request.Context())
	if err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIALS", "message": "invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIALS", "message": "invalid email or password"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.Email)
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}

	now := time.Now()
	if err := s.client.User.UpdateOneID(user.ID).SetLastLoginAt(now).Exec(c.Request.Context()); err != nil {
		logger.Warn("failed to update last_login_at", zap.Error(err), zap.String("user_id", user.ID))
	}

	if s.audit != nil {
		if err := s.audit.LogLogin(c.Request.Context(), user.ID); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "auth.login"),
				zap.String("user_id", user.ID),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// GetCurrentUser handles GET /api/v1/auth/me. The response mirrors the
// authorization context shape clients cache: identity, profile and the
// derived admin flag.
func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "missing authenticated identity"})
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": "USER_NOT_FOUND", "message": "user not found"})
		return
	}

	profile, err := s.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to load profile for current user", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}

	role, hasRole, err := s.roles.Get(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to load role for current user", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"profile": nil,
		"role":    "",
		"isAdmin": false,
	}
	if profile != nil {
		resp["profile"] = gin.H{
			"id":       profile.ID,
			"name":     profile.Name,
			"isActive": profile.Active,
		}
	}
	if hasRole {
		resp["role"] = role.String()
		resp["isAdmin"] = role == rbac.RoleAdmin
	}

	c.JSON(http.StatusOK, resp)
}
