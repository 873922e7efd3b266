package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayedTaskService_After(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := NewDelayedTaskService()
	require.NoError(t, service.Start(ctx))

	var ran int32
	require.NoError(t, service.After(50*time.Millisecond, func() {
		atomic.AddInt32(&ran, 1)
	}))

	assert.Equal(t, int32(0), atomic.LoadInt32(&ran))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&ran) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Roda uma única vez
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
	assert.Equal(t, 0, service.Pending())
}

func TestDelayedTaskService_PanicDoesNotLeakPending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := NewDelayedTaskService()
	require.NoError(t, service.Start(ctx))

	require.NoError(t, service.After(10*time.Millisecond, func() {
		panic("falhou")
	}))

	assert.Eventually(t, func() bool {
		return service.Pending() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDelayedTaskService_StartTwice(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := NewDelayedTaskService()
	assert.NoError(t, service.Start(ctx))
	assert.NoError(t, service.Start(ctx))
}
