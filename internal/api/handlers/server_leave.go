package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mayurpawar7875/plantops/ent"
	"github.com/mayurpawar7875/plantops/ent/leaverequest"
	"github.com/mayurpawar7875/plantops/internal/api/middleware"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
)

type createLeaveRequest struct {
	Kind     string    `json:"kind" binding:"required"`
	StartsAt time.Time `json:"startsAt" binding:"required"`
	EndsAt   time.Time `json:"endsAt" binding:"required"`
	Reason   string    `json:"reason"`
}

type leaveDecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// CreateLeaveRequest handles POST /api/v1/leave-requests.
func (s *Server) CreateLeaveRequest(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "missing authenticated identity"})
		return
	}

	var req createLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "kind, startsAt and endsAt are required"})
		return
	}

	kind := leaverequest.Kind(req.Kind)
	if err := leaverequest.KindValidator(kind); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "kind must be leave or overtime"})
		return
	}
	if !req.EndsAt.After(req.StartsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "endsAt must be after startsAt"})
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	created, err := s.client.LeaveRequest.Create().
		SetID(id.String()).
		SetUserID(userID).
		SetKind(kind).
		SetStartsAt(req.StartsAt).
		SetEndsAt(req.EndsAt).
		SetReason(req.Reason).
		Save(c.Request.Context())
	if err != nil {
		logger.Error("failed to create leave request", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}

	c.JSON(http.StatusCreated, leaveRequestJSON(created))
}

// ListMyLeaveRequests handles GET /api/v1/leave-requests.
func (s *Server) ListMyLeaveRequests(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "missing authenticated identity"})
		return
	}

	rows, err := s.client.LeaveRequest.Query().
		Where(leaverequest.UserIDEQ(userID)).
		Order(ent.Desc(leaverequest.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		logger.Error("failed to list leave requests", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		out = append(out, leaveRequestJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"leaveRequests": out})
}

// DecideLeaveRequest handles POST /api/v1/admin/leave-requests/:id/decision.
// Admin-gated by middleware. Only pending requests can be decided.
func (s *Server) DecideLeaveRequest(c *gin.Context) {
	actor := middleware.GetUserID(c.Request.Context())
	requestID := c.Param("id")

	var req leaveDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "decision is required"})
		return
	}

	status := leaverequest.Status(req.Decision)
	if status != leaverequest.StatusApproved && status != leaverequest.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "decision must be approved or rejected"})
		return
	}

	row, err := s.client.LeaveRequest.Get(c.Request.Context(), requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"code": "LEAVE_REQUEST_NOT_FOUND", "message": "leave request not found"})
			return
		}
		logger.Error("failed to load leave request", zap.Error(err), zap.String("request_id", requestID))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}

	if row.Status != leaverequest.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"code": "LEAVE_REQUEST_ALREADY_DECIDED", "message": "leave request is already decided"})
		return
	}

	updated, err := s.client.LeaveRequest.UpdateOne(row).
		SetStatus(status).
		SetDecidedBy(actor).
		SetDecidedAt(time.Now().UTC()).
		Save(c.Request.Context())
	if err != nil {
		logger.Error("failed to decide leave request", zap.Error(err), zap.String("request_id", requestID))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
		return
	}

	if s.audit != nil {
		if err := s.audit.LogLeaveDecision(c.Request.Context(), requestID, string(status), actor); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "leave.decision"),
				zap.String("request_id", requestID),
			)
		}
	}

	c.JSON(http.StatusOK, leaveRequestJSON(updated))
}

func leaveRequestJSON(r *ent.LeaveRequest) gin.H {
	entry := gin.H{
		"id":        r.ID,
		"userId":    r.UserID,
		"kind":      r.Kind,
		"startsAt":  r.StartsAt,
		"endsAt":    r.EndsAt,
		"reason":    r.Reason,
		"status":    r.Status,
		"createdAt": r.CreatedAt,
	}
	if r.DecidedBy != "" {
		entry["decidedBy"] = r.DecidedBy
	}
	if r.DecidedAt != nil {
		entry["decidedAt"] = r.DecidedAt
	}
	return entry
}
