package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mayurpawar7875/plantops/ent"
	"github.com/mayurpawar7875/plantops/ent/auditlog"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
)

const (
	defaultAuditLogLimit = 100
	maxAuditLogLimit     = 500
)

// ListAuditLogs handles GET /api/v1/admin/audit-logs. Admin-gated by
// middleware; entries are returned newest first.
func (s *Server) ListAuditLogs(c *gin.Context) {
	limit := defaultAuditLogLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "limit must be a positive integer"})
			return
		}
		if n > maxAuditLogLimit {
			n = maxAuditLogLimit
		}
		limit = n
	}

	entries, err := s.client.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(c.Request.Context())
	if err != nil {
		logger.Error("failed to list audit logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}

	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{
			"id":           e.ID,
			"action":       e.Action,
			"resourceType": e.ResourceType,
			"resourceId":   e.ResourceID,
			"actor":        e.Actor,
			"details":      e.Details,
			"createdAt":    e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"auditLogs": out})
}
