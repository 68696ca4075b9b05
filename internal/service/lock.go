package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/locker"
)

func userLockKey(userID int64) string {
	return fmt.Sprintf("wallet_lock:%d", userID)
}

// withUserLock выполняет fn под блокировкой пользователя. Занятая блокировка превращается в domain.ErrBusy.
func withUserLock(ctx context.Context, l Locker, userID int64, fn func() error) error {
	release, err := l.Acquire(ctx, userLockKey(userID))
	if err != nil {
		if errors.Is(err, locker.ErrNotAcquired) {
			return domain.ErrBusy
		}
		return fmt.Errorf("acquire lock for user %d: %w", userID, err)
	}
	defer release()

	return fn()
}

// notFoundAs заменяет domain.ErrRecordNotFound бизнес-ошибкой отсутствия данных.
func notFoundAs(err error, notFound *domain.BusinessError) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return notFound
	}
	return err
}
