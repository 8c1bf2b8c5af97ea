package filelock

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLockRunsFunction(t *testing.T) {
	t.Parallel()

	lock := New(filepath.Join(t.TempDir(), "memory.json"))
	assert.Equal(t, ".lock", filepath.Ext(lock.Path()))

	called := false
	require.NoError(t, lock.WithLock(context.Background(), func() error {
		called = true
		return nil
	}))
	assert.True(t, called)
}

func TestWithLockReturnsFunctionError(t *testing.T) {
	t.Parallel()

	lock := New(filepath.Join(t.TempDir(), "memory.json"))
	want := errors.New("boom")

	err := lock.WithRLock(context.Background(), func() error { return want })
	require.ErrorIs(t, err, want)
}

func TestWithLockSerializesWriters(t *testing.T) {
	t.Parallel()

	dataPath := filepath.Join(t.TempDir(), "memory.json")

	var mu sync.Mutex
	active, maxActive := 0, 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := New(dataPath).WithLock(context.Background(), func() error {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive)
}

func TestWithLockCanceledContext(t *testing.T) {
	t.Parallel()

	dataPath := filepath.Join(t.TempDir(), "memory.json")
	holder := New(dataPath)

	ctx, cancel := context.WithCancel(context.Background())
	err := holder.WithLock(context.Background(), func() error {
		cancel()
		return New(dataPath).WithLock(ctx, func() error { return nil })
	})
	require.ErrorIs(t, err, context.Canceled)
}
