// Package jobs contains River background job workers.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/mayurpawar7875/plantops/ent"
	"github.com/mayurpawar7875/plantops/ent/leaverequest"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
)

// DefaultLeavePendingTTL is how long a pending leave request may sit
// undecided before the expiry sweep marks it expired.
const DefaultLeavePendingTTL = 30 * 24 * time.Hour

// LeaveExpireArgs is a periodic maintenance job that expires stale
// pending leave requests.
type LeaveExpireArgs struct{}

// Kind returns the job kind identifier for the leave expiry sweep.
func (LeaveExpireArgs) Kind() string { return "leave_expire" }

// InsertOpts ensures at most one sweep is enqueued per hour.
func (LeaveExpireArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// LeaveExpireWorker marks pending leave requests older than the
// configured TTL as expired. Decided requests are never touched.
type LeaveExpireWorker struct {
	river.WorkerDefaults[LeaveExpireArgs]
	entClient  *ent.Client
	pendingTTL time.Duration
}

// NewLeaveExpireWorker creates an expiry worker. Non-positive TTL falls
// back to the 30-day default.
func NewLeaveExpireWorker(entClient *ent.Client, pendingTTL time.Duration) *LeaveExpireWorker {
	if pendingTTL <= 0 {
		pendingTTL = DefaultLeavePendingTTL
	}
	return &LeaveExpireWorker{
		entClient:  entClient,
		pendingTTL: pendingTTL,
	}
}

// Work expires stale pending rows.
func (w *LeaveExpireWorker) Work(ctx context.Context, _ *river.Job[LeaveExpireArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("leave expire worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.pendingTTL)
	expired, err := w.entClient.LeaveRequest.Update().
		Where(
			leaverequest.StatusEQ(leaverequest.StatusPending),
			leaverequest.CreatedAtLT(cutoff),
		).
		SetStatus(leaverequest.StatusExpired).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("expire pending leave requests before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	if expired > 0 {
		logger.Info("leave request expiry sweep completed",
			zap.Int("expired_rows", expired),
			zap.String("cutoff", cutoff.Format(time.RFC3339)),
			zap.Duration("pending_ttl", w.pendingTTL),
		)
	}
	return nil
}
