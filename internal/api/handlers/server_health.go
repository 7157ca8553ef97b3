package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
)

// Healthz handles GET /healthz. Liveness only; no dependency checks.
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz handles GET /readyz. Reports not-ready while the database is
// unreachable so load balancers drain traffic instead of serving 500s.
func (s *Server) Readyz(c *gin.Context) {
	if err := s.pool.Ping(c.Request.Context()); err != nil {
		logger.Warn("readiness check failed: database unreachable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
