// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mayurpawar7875/plantops/ent"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
	"github.com/mayurpawar7875/plantops/internal/pkg/worker"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

// Logger writes audit records to the database. Writes dispatched through
// the worker pool are observational and never fail the calling request.
type Logger struct {
	client *ent.Client
	pools  *worker.Pools
}

// NewLogger creates a new audit Logger. pools may be nil, in which case
// asynchronous recording degrades to synchronous writes.
func NewLogger(client *ent.Client, pools *worker.Pools) *Logger {
	return &Logger{client: client, pools: pools}
}

// LogAction records an auditable action synchronously.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// RoleChanged records a role mutation on the audit pool, detached from
// the request context so it survives response completion. The role
// change itself has already committed; a lost audit row is logged but
// never surfaces to the caller.
func (l *Logger) RoleChanged(ctx context.Context, event rbac.RoleChangeEvent) {
	details := map[string]interface{}{
		"target_name":   event.TargetName,
		"previous_role": event.PreviousRole,
		"new_role":      event.NewRole,
		"changed_at":    event.At,
	}

	if l.pools == nil {
		_ = l.LogAction(ctx, "role.update", "role_assignment", event.TargetID, event.Actor, details)
		return
	}

	if err := l.pools.SubmitDetached("audit", func(taskCtx context.Context) {
		_ = l.LogAction(taskCtx, "role.update", "role_assignment", event.TargetID, event.Actor, details)
	}); err != nil {
		logger.Warn("Audit pool rejected role-change record",
			zap.String("target_id", event.TargetID),
			zap.Error(err),
		)
	}
}

// LogLogin records a successful authentication.
func (l *Logger) LogLogin(ctx context.Context, userID string) error {
	return l.LogAction(ctx, "auth.login", "user", userID, userID, nil)
}

// LogLeaveDecision records an approve/reject decision on a leave request.
func (l *Logger) LogLeaveDecision(ctx context.Context, requestID, decision, actor string) error {
	return l.LogAction(ctx, "leave."+decision, "leave_request", requestID, actor, map[string]interface{}{
		"decision": decision,
	})
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
