package jobs

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayurpawar7875/plantops/ent"
	"github.com/mayurpawar7875/plantops/ent/leaverequest"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
	"github.com/mayurpawar7875/plantops/internal/testutil"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func seedLeaveRequest(t *testing.T, client *ent.Client, id string, status leaverequest.Status, age time.Duration) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	_, err := client.LeaveRequest.Create().
		SetID(id).
		SetUserID("u1").
		SetKind(leaverequest.KindLeave).
		SetStartsAt(now.Add(24 * time.Hour)).
		SetEndsAt(now.Add(48 * time.Hour)).
		SetStatus(status).
		SetCreatedAt(now.Add(-age)).
		Save(ctx)
	require.NoError(t, err)
}

func TestLeaveExpireWorker_ExpiresOnlyStalePendingRows(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "leave_expire")
	ctx := context.Background()

	_, err := client.User.Create().
		SetID("u1").
		SetEmail("dana@plantops.local").
		Save(ctx)
	require.NoError(t, err)

	ttl := 30 * 24 * time.Hour
	seedLeaveRequest(t, client, "stale-pending", leaverequest.StatusPending, ttl+time.Hour)
	seedLeaveRequest(t, client, "fresh-pending", leaverequest.StatusPending, time.Hour)
	seedLeaveRequest(t, client, "stale-approved", leaverequest.StatusApproved, ttl+time.Hour)

	worker := NewLeaveExpireWorker(client, ttl)
	require.NoError(t, worker.Work(ctx, nil))

	statusOf := func(id string) leaverequest.Status {
		row, err := client.LeaveRequest.Get(ctx, id)
		require.NoError(t, err)
		return row.Status
	}

	assert.Equal(t, leaverequest.StatusExpired, statusOf("stale-pending"))
	assert.Equal(t, leaverequest.StatusPending, statusOf("fresh-pending"))
	assert.Equal(t, leaverequest.StatusApproved, statusOf("stale-approved"), "decided rows are never touched")
}

func TestNewLeaveExpireWorker_DefaultsTTL(t *testing.T) {
	worker := NewLeaveExpireWorker(nil, 0)
	assert.Equal(t, DefaultLeavePendingTTL, worker.pendingTTL)
}

func TestLeaveExpireArgs_Kind(t *testing.T) {
	assert.Equal(t, "leave_expire", LeaveExpireArgs{}.Kind())
}
