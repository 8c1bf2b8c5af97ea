// Package filelock serializes access to a data file across processes with an
// advisory lock on a sibling ".lock" file, so the lock survives atomic renames
// of the data file itself.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const retryDelay = 10 * time.Millisecond

var ErrLocked = errors.New("file is locked by another process")

type Lock struct {
	path string
}

func New(dataPath string) *Lock {
	return &Lock{path: dataPath + ".lock"}
}

func (l *Lock) Path() string {
	return l.path
}

// WithLock runs fn while holding the exclusive lock. It waits for the lock
// until ctx is done.
func (l *Lock) WithLock(ctx context.Context, fn func() error) error {
	return l.with(ctx, false, fn)
}

// WithRLock runs fn while holding a shared lock.
func (l *Lock) WithRLock(ctx context.Context, fn func() error) error {
	return l.with(ctx, true, fn)
}

func (l *Lock) with(ctx context.Context, shared bool, fn func() error) error {
	lock := flock.New(l.path)

	var locked bool
	var err error
	if shared {
		locked, err = lock.TryRLockContext(ctx, retryDelay)
	} else {
		locked, err = lock.TryLockContext(ctx, retryDelay)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("acquire lock %s: %w", l.path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, l.path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	return fn()
}
