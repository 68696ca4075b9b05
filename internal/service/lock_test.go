package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/locker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithUserLock_BusyOnDeadline(t *testing.T) {
	l := locker.NewLocalLocker()
	release, err := l.Acquire(context.Background(), userLockKey(1))
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err = withUserLock(ctx, l, 1, func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, domain.ErrBusy)
	assert.False(t, called)
}

func TestWithUserLock_Runs(t *testing.T) {
	l := locker.NewLocalLocker()

	called := false
	err := withUserLock(context.Background(), l, 1, func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
