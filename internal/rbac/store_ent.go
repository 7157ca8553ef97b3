package rbac

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mayurpawar7875/plantops/ent"
	"github.com/mayurpawar7875/plantops/ent/profile"
	"github.com/mayurpawar7875/plantops/ent/roleassignment"
)

// EntProfileStore reads profiles through the Ent client.
type EntProfileStore struct {
	client *ent.Client
}

// NewEntProfileStore creates a profile store backed by Ent.
func NewEntProfileStore(client *ent.Client) *EntProfileStore {
	return &EntProfileStore{client: client}
}

// Get returns the profile for userID, or (nil, nil) when none exists.
func (s *EntProfileStore) Get(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.client.Profile.Query().
		Where(profile.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile for user %s: %w", userID, err)
	}
	return &Profile{
		ID:     p.ID,
		UserID: p.UserID,
		Name:   p.Name,
		Active: p.IsActive,
	}, nil
}

// EntRoleStore persists role assignments through the Ent client. The
// role_assignments table carries a unique index on user_id, so at most
// one assignment per user survives concurrent writers.
type EntRoleStore struct {
	client *ent.Client
}

// NewEntRoleStore creates a role store backed by Ent.
func NewEntRoleStore(client *ent.Client) *EntRoleStore {
	return &EntRoleStore{client: client}
}

// Get returns the user's current role and whether an assignment exists.
func (s *EntRoleStore) Get(ctx context.Context, userID string) (Role, bool, error) {
	ra, err := s.client.RoleAssignment.Query().
		Where(roleassignment.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query role assignment for user %s: %w", userID, err)
	}
	return Role(ra.Role), true, nil
}

// Upsert writes the user's role assignment inside a single transaction,
// returning the role that was in place before the write. Lookup and
// write commit together, so previousRole cannot be stale relative to
// the row the write replaced.
func (s *EntRoleStore) Upsert(ctx context.Context, userID string, role Role) (Role, bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", false, fmt.Errorf("begin tx: %w", err)
	}

	existing, err := tx.RoleAssignment.Query().
		Where(roleassignment.UserIDEQ(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		_ = tx.Rollback()
		return "", false, fmt.Errorf("query role assignment for user %s: %w", userID, err)
	}

	if existing != nil {
		previous := Role(existing.Role)
		if _, err := tx.RoleAssignment.UpdateOne(existing).
			SetRole(string(role)).
			Save(ctx); err != nil {
			_ = tx.Rollback()
			return previous, true, fmt.Errorf("update role assignment for user %s: %w", userID, err)
		}
		if err := tx.Commit(); err != nil {
			return previous, true, fmt.Errorf("commit role update for user %s: %w", userID, err)
		}
		return previous, true, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	if _, err := tx.RoleAssignment.Create().
		SetID(id.String()).
		SetUserID(userID).
		SetRole(string(role)).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return "", false, fmt.Errorf("create role assignment for user %s: %w", userID, err)
	}
	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("commit role assignment for user %s: %w", userID, err)
	}
	return "", false, nil
}
