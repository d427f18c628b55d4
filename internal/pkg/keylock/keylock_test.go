//go:build unit

package keylock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"lease-market/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker(t *testing.T) {
	t.Run("same key is exclusive", func(t *testing.T) {
		l := keylock.New[int64]()
		ctx := context.Background()

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			inside  int
			maxSeen int
		)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := l.Acquire(ctx, 1)
				if !assert.NoError(t, err) {
					return
				}
				defer release()

				mu.Lock()
				inside++
				maxSeen = max(maxSeen, inside)
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxSeen)
		assert.Zero(t, l.Len())
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		l := keylock.New[string]()
		ctx := context.Background()

		releaseA, err := l.Acquire(ctx, "a")
		require.NoError(t, err)
		defer releaseA()

		releaseB, err := l.Acquire(ctx, "b")
		require.NoError(t, err)
		releaseB()

		assert.Equal(t, 1, l.Len())
	})

	t.Run("waiter gives up when its context ends", func(t *testing.T) {
		l := keylock.New[int]()

		release, err := l.Acquire(context.Background(), 7)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = l.Acquire(ctx, 7)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		release()
		assert.Zero(t, l.Len())
	})

	t.Run("release is idempotent", func(t *testing.T) {
		l := keylock.New[int]()

		release, err := l.Acquire(context.Background(), 1)
		require.NoError(t, err)
		release()
		release()

		again, err := l.Acquire(context.Background(), 1)
		require.NoError(t, err)
		again()
	})
}
