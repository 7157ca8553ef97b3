package rbac

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayurpawar7875/plantops/ent"
	"github.com/mayurpawar7875/plantops/ent/roleassignment"
	"github.com/mayurpawar7875/plantops/internal/testutil"
)

func seedUser(t *testing.T, client *ent.Client, id, email string) {
	t.Helper()
	_, err := client.User.Create().
		SetID(id).
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
}

func TestEntProfileStore_Get(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "profile_store")
	ctx := context.Background()

	seedUser(t, client, "u1", "dana@plantops.local")
	_, err := client.Profile.Create().
		SetID("p1").
		SetUserID("u1").
		SetName("Dana").
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)

	store := NewEntProfileStore(client)

	profile, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "p1", profile.ID)
	assert.Equal(t, "Dana", profile.Name)
	assert.False(t, profile.Active)

	missing, err := store.Get(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEntRoleStore_UpsertInsertsThenUpdates(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "role_store")
	ctx := context.Background()

	seedUser(t, client, "u1", "dana@plantops.local")
	store := NewEntRoleStore(client)

	_, hasRole, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, hasRole)

	previous, existed, err := store.Upsert(ctx, "u1", RoleAccountant)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Empty(t, previous)

	first, err := client.RoleAssignment.Query().
		Where(roleassignment.UserIDEQ("u1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "accountant", first.Role)

	previous, existed, err = store.Upsert(ctx, "u1", RoleAdmin)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, RoleAccountant, previous)

	// Update in place: same row id, exactly one row.
	rows, err := client.RoleAssignment.Query().
		Where(roleassignment.UserIDEQ("u1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, "admin", rows[0].Role)

	role, hasRole, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, hasRole)
	assert.Equal(t, RoleAdmin, role)
}
