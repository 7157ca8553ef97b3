package worker

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", "console"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestPools(t *testing.T) *Pools {
	t.Helper()
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestPoolSubmit_RunsTask(t *testing.T) {
	pools := newTestPools(t)

	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		ran = true
		wg.Done()
	})
	require.NoError(t, err)
	wg.Wait()
	assert.True(t, ran)
}

func TestPoolSubmit_RejectsCancelledContext(t *testing.T) {
	pools := newTestPools(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pools.General.Submit(ctx, func(context.Context) {
		t.Error("task must not run with a cancelled context")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubmitDetached_UsesServiceContext(t *testing.T) {
	pools := newTestPools(t)

	done := make(chan context.Context, 1)
	err := pools.SubmitDetached("audit", func(ctx context.Context) {
		done <- ctx
	})
	require.NoError(t, err)

	select {
	case taskCtx := <-done:
		// Detached tasks outlive any request; only service shutdown cancels them.
		assert.NoError(t, taskCtx.Err())
	case <-time.After(2 * time.Second):
		t.Fatal("detached task did not run")
	}
}

func TestPoolsMetrics(t *testing.T) {
	pools := newTestPools(t)

	metrics := pools.Metrics()
	require.Contains(t, metrics, "general")
	require.Contains(t, metrics, "audit")

	general := metrics["general"].(map[string]int)
	assert.Equal(t, DefaultPoolConfig().GeneralPoolSize, general["cap"])
}
