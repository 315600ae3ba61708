package worker

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllTasks(t *testing.T) {
	pool := NewPool(4, 16)
	pool.Start(context.Background())

	var counter atomic.Int64
	for i := 0; i < 10; i++ {
		err := pool.Submit(func(ctx context.Context) {
			counter.Add(1)
		})
		require.NoError(t, err)
	}

	pool.Close()
	assert.Equal(t, int64(10), counter.Load())
}

func TestPoolSubmitAfterClose(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start(context.Background())
	pool.Close()

	err := pool.Submit(func(ctx context.Context) {})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPoolCloseIsReentrant(t *testing.T) {
	pool := NewPool(2, 4)
	pool.Start(context.Background())
	pool.Close()
	pool.Close()
}

func TestPoolDefaults(t *testing.T) {
	pool := NewPool(0, 0)
	pool.Start(context.Background())

	done := make(chan struct{})
	require.NoError(t, pool.Submit(func(ctx context.Context) { close(done) }))
	<-done
	pool.Close()
}
