package guard

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

// AuthContext is the session-scoped authorization cache. It holds the
// current identity, profile and derived admin flag, and notifies
// subscribers on every change so guards re-evaluate without polling.
//
// The zero state is Loading: guards render a waiting indicator until
// the first session resolution lands.
type AuthContext struct {
	profiles rbac.ProfileStore
	roles    rbac.RoleStore

	mu        sync.RWMutex
	snap      Snapshot
	listeners map[int]func(Snapshot)
	nextID    int
}

// NewAuthContext creates an authorization context in the Loading state.
func NewAuthContext(profiles rbac.ProfileStore, roles rbac.RoleStore) *AuthContext {
	return &AuthContext{
		profiles:  profiles,
		roles:     roles,
		snap:      Snapshot{Loading: true},
		listeners: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current cached view.
func (a *AuthContext) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

// Subscribe registers a change listener and returns its unsubscribe
// function. The listener fires on every snapshot transition, including
// the Loading edges around a refresh.
func (a *AuthContext) Subscribe(fn func(Snapshot)) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.listeners, id)
		a.mu.Unlock()
	}
}

// SetSession reacts to an identity-provider session change. A nil user
// clears the cache to the signed-out state; otherwise the profile and
// role are reloaded for the new identity.
func (a *AuthContext) SetSession(ctx context.Context, user *rbac.Identity) error {
	if user == nil {
		a.publish(Snapshot{})
		return nil
	}
	return a.load(ctx, *user)
}

// Refresh reloads the profile and role for the current identity, e.g.
// after an administrative role change. Signed-out contexts are a no-op.
func (a *AuthContext) Refresh(ctx context.Context) error {
	a.mu.RLock()
	user := a.snap.User
	a.mu.RUnlock()

	if user == nil {
		return nil
	}
	return a.load(ctx, *user)
}

func (a *AuthContext) load(ctx context.Context, user rbac.Identity) error {
	a.publish(Snapshot{Loading: true, User: &user})

	profile, err := a.profiles.Get(ctx, user.ID)
	if err != nil {
		a.publish(Snapshot{})
		return fmt.Errorf("load profile for %s: %w", user.ID, err)
	}

	role, hasRole, err := a.roles.Get(ctx, user.ID)
	if err != nil {
		a.publish(Snapshot{})
		return fmt.Errorf("load role for %s: %w", user.ID, err)
	}

	snap := Snapshot{
		User:    &user,
		Profile: profile,
		IsAdmin: hasRole && role == rbac.RoleAdmin,
	}
	a.publish(snap)

	logger.Debug("authorization context refreshed",
		zap.String("user_id", user.ID),
		zap.Bool("is_admin", snap.IsAdmin),
		zap.Bool("has_profile", profile != nil),
	)
	return nil
}

func (a *AuthContext) publish(snap Snapshot) {
	a.mu.Lock()
	a.snap = snap
	fns := make([]func(Snapshot), 0, len(a.listeners))
	for _, fn := range a.listeners {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
