package rbac

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/mayurpawar7875/plantops/internal/pkg/errors"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
)

// Identity is a verified caller identity from the identity provider.
type Identity struct {
	ID    string
	Email string
}

// Profile is the read-only projection of a user profile the service
// needs: display name and the active flag consulted by gating.
type Profile struct {
	ID     string
	UserID string
	Name   string
	Active bool
}

// TokenVerifier resolves a bearer token to an identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// ProfileStore reads user profiles. Get returns (nil, nil) when no
// profile exists for the user.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*Profile, error)
}

// RoleStore persists role assignments, at most one per user.
// Upsert runs lookup + write in a single transaction and reports the
// prior role so previousRole in the response is authoritative.
type RoleStore interface {
	Get(ctx context.Context, userID string) (Role, bool, error)
	Upsert(ctx context.Context, userID string, role Role) (previous Role, existed bool, err error)
}

// RoleChangeEvent describes a committed role mutation for the audit trail.
type RoleChangeEvent struct {
	TargetID     string
	TargetName   string
	PreviousRole string
	NewRole      string
	Actor        string
	At           time.Time
}

// AuditRecorder receives role-change events. Recording is observational;
// implementations must never fail the calling request.
type AuditRecorder interface {
	RoleChanged(ctx context.Context, event RoleChangeEvent)
}

// UpdateRequest is the body of a role-update call.
type UpdateRequest struct {
	TargetUserID string `json:"targetUserId"`
	NewRole      string `json:"newRole"`
}

// UpdateResult is the success payload of a role-update call.
type UpdateResult struct {
	PreviousRole string
	NewRole      Role
	TargetName   string
}

// Service is the privileged role-update service. It is the only
// sanctioned path for changing a user's role and runs with service-level
// database credentials, so it performs its own authentication and
// authorization instead of relying on shared route middleware.
type Service struct {
	verifier TokenVerifier
	profiles ProfileStore
	roles    RoleStore
	audit    AuditRecorder // optional
}

// NewService creates a role-update service. audit may be nil.
func NewService(verifier TokenVerifier, profiles ProfileStore, roles RoleStore, audit AuditRecorder) *Service {
	return &Service{
		verifier: verifier,
		profiles: profiles,
		roles:    roles,
		audit:    audit,
	}
}

// UpdateUserRole validates and applies a role change. The precondition
// order is part of the contract: authentication, then authorization,
// then request validation, then target lookup, then the write. Every
// failure branch logs before returning.
func (s *Service) UpdateUserRole(ctx context.Context, authHeader string, req UpdateRequest) (*UpdateResult, *apperrors.AppError) {
	if strings.TrimSpace(authHeader) == "" {
		logger.Warn("role update rejected: no authorization header")
		return nil, apperrors.Unauthorized(apperrors.CodeNoAuthHeader, "No authorization header")
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	caller, err := s.verifier.Verify(ctx, token)
	if err != nil {
		logger.Warn("role update rejected: token verification failed", zap.Error(err))
		return nil, apperrors.Unauthorized(apperrors.CodeTokenInvalid, "Invalid token")
	}

	callerRole, hasRole, err := s.roles.Get(ctx, caller.ID)
	if err != nil {
		logger.Error("role update failed: caller role lookup",
			zap.Error(err),
			zap.String("caller_id", caller.ID),
		)
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Internal server error", 500)
	}
	if !hasRole || callerRole != RoleAdmin {
		logger.Warn("role update rejected: caller is not admin",
			zap.String("caller_id", caller.ID),
		)
		return nil, apperrors.Forbidden(apperrors.CodeNotAdmin, "Unauthorized: Admin access required")
	}

	targetID := strings.TrimSpace(req.TargetUserID)
	rawRole := strings.TrimSpace(req.NewRole)
	if targetID == "" || rawRole == "" {
		logger.Warn("role update rejected: missing fields",
			zap.String("caller_id", caller.ID),
		)
		return nil, apperrors.BadRequest(apperrors.CodeMissingFields, "Missing required fields: targetUserId and newRole")
	}

	newRole, ok := ParseRole(rawRole)
	if !ok {
		logger.Warn("role update rejected: invalid role",
			zap.String("caller_id", caller.ID),
			zap.String("new_role", rawRole),
		)
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRole, "Invalid role. Must be one of: "+RoleList())
	}

	if targetID == caller.ID {
		logger.Warn("role update rejected: self-modification blocked",
			zap.String("caller_id", caller.ID),
		)
		return nil, apperrors.BadRequest(apperrors.CodeSelfModify, "You cannot modify your own role")
	}

	profile, err := s.profiles.Get(ctx, targetID)
	if err != nil {
		logger.Error("role update failed: target profile lookup",
			zap.Error(err),
			zap.String("target_id", targetID),
		)
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Internal server error", 500)
	}
	if profile == nil {
		logger.Warn("role update rejected: target not found",
			zap.String("caller_id", caller.ID),
			zap.String("target_id", targetID),
		)
		return nil, apperrors.NotFound(apperrors.CodeTargetNotFound, "Target user not found")
	}

	previous, existed, err := s.roles.Upsert(ctx, targetID, newRole)
	if err != nil {
		logger.Error("role update failed: store write",
			zap.Error(err),
			zap.String("target_id", targetID),
			zap.String("new_role", newRole.String()),
			zap.Bool("existing_assignment", existed),
		)
		if existed {
			return nil, apperrors.Wrap(err, apperrors.CodeRoleUpdateFail, "Failed to update role", 500)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeRoleAssignFail, "Failed to assign role", 500)
	}

	previousRole := RoleNone
	if existed {
		previousRole = previous.String()
	}

	logger.Info("role updated",
		zap.String("target_id", targetID),
		zap.String("target_name", profile.Name),
		zap.String("previous_role", previousRole),
		zap.String("new_role", newRole.String()),
		zap.String("actor", caller.ID),
	)

	if s.audit != nil {
		s.audit.RoleChanged(ctx, RoleChangeEvent{
			TargetID:     targetID,
			TargetName:   profile.Name,
			PreviousRole: previousRole,
			NewRole:      newRole.String(),
			Actor:        caller.ID,
			At:           time.Now().UTC(),
		})
	}

	return &UpdateResult{
		PreviousRole: previousRole,
		NewRole:      newRole,
		TargetName:   profile.Name,
	}, nil
}
