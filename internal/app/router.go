package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mayurpawar7875/plantops/internal/api/handlers"
	"github.com/mayurpawar7875/plantops/internal/api/middleware"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

func newRouter(server *handlers.Server, signingKey []byte, roles rbac.RoleStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	// Permissive CORS on every response, preflights included. The admin
	// UI is served from a different origin.
	corsCfg := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}
	router.Use(cors.New(corsCfg))
	router.Use(middleware.MustOpenAPIValidator())

	router.GET("/healthz", server.Healthz)
	router.GET("/readyz", server.Readyz)

	// The role-update endpoint parses its own Authorization header and
	// runs its checks in a fixed order, so it sits outside both the JWT
	// middleware and the admin gate.
	router.POST("/api/v1/admin/update-user-role", server.UpdateUserRole)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", server.Login)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuth(signingKey))
	authed.GET("/auth/me", server.GetCurrentUser)
	authed.POST("/leave-requests", server.CreateLeaveRequest)
	authed.GET("/leave-requests", server.ListMyLeaveRequests)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin(roles))
	admin.GET("/users", server.ListUsers)
	admin.GET("/audit-logs", server.ListAuditLogs)
	admin.POST("/leave-requests/:id/decision", server.DecideLeaveRequest)

	return router
}
