package taskpool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_DispatchNonBlocking(t *testing.T) {
	pool := New(2, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx)
	defer pool.Stop()

	start := time.Now()
	pool.Dispatch(Job{
		Key: "slow",
		Handler: func(ctx context.Context) error {
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	})
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 10*time.Millisecond, "Dispatch must not block on the handler")
}

func TestPool_SameKeySequentialProcessing(t *testing.T) {
	pool := New(4, 100)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx)

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		pool.Dispatch(Job{
			Key: "same-key",
			Handler: func(ctx context.Context) error {
				defer wg.Done()
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			},
		})
	}

	wg.Wait()
	pool.Stop()

	require.Len(t, order, 10)
	for i, v := range order {
		assert.Equal(t, i, v, "same-key jobs must run in dispatch order")
	}
}

func TestPool_DropsWhenQueueFull(t *testing.T) {
	pool := New(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx)
	defer pool.Stop()

	release := make(chan struct{})
	blocker := Job{Key: "k", Handler: func(ctx context.Context) error {
		<-release
		return nil
	}}

	// First job occupies the worker, second fills the queue; everything past
	// that must be rejected rather than block.
	require.True(t, pool.TryDispatch(blocker))
	// Give the worker a moment to pick up the first job.
	time.Sleep(10 * time.Millisecond)
	require.True(t, pool.TryDispatch(blocker))

	dropped := false
	for i := 0; i < 5; i++ {
		if !pool.TryDispatch(Job{Key: "k", Handler: func(ctx context.Context) error { return nil }}) {
			dropped = true
			break
		}
	}
	close(release)

	assert.True(t, dropped, "a full queue must drop, not block")
	assert.Greater(t, pool.Stats().Dropped, int64(0))
}

func TestPool_StopIsIdempotent(t *testing.T) {
	pool := New(2, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx)

	var processed atomic.Int64
	var wg sync.WaitGroup
	wg.Add(1)
	pool.Dispatch(Job{Key: "a", Handler: func(ctx context.Context) error {
		defer wg.Done()
		processed.Add(1)
		return nil
	}})
	wg.Wait()

	assert.NotPanics(t, func() {
		pool.Stop()
		pool.Stop()
	})
	assert.Equal(t, int64(1), processed.Load())
	assert.False(t, pool.TryDispatch(Job{Key: "b", Handler: func(ctx context.Context) error { return nil }}))
}
