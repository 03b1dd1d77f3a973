package idempotency

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Acquire(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	ctx := context.Background()

	t.Run("new key is acquired once", func(t *testing.T) {
		ok, err := store.Acquire(ctx, "k1", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Acquire(ctx, "k1", time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired key can be acquired again", func(t *testing.T) {
		ok, err := store.Acquire(ctx, "k2", 10*time.Millisecond)
		require.NoError(t, err)
		assert.True(t, ok)

		time.Sleep(20 * time.Millisecond)

		ok, err = store.Acquire(ctx, "k2", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("released key can be acquired again", func(t *testing.T) {
		ok, _ := store.Acquire(ctx, "k3", time.Hour)
		require.True(t, ok)

		require.NoError(t, store.Release(ctx, "k3"))

		ok, err := store.Acquire(ctx, "k3", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestMemoryStore_ConcurrentAcquire(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := store.Acquire(context.Background(), "same", time.Hour); ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}

func TestMemoryStore_Sweep(t *testing.T) {
	store := NewMemoryStore(5 * time.Millisecond)
	defer store.Close()

	_, _ = store.Acquire(context.Background(), "short", time.Millisecond)
	_, _ = store.Acquire(context.Background(), "long", time.Hour)

	assert.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 5*time.Millisecond)
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
