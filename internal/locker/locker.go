// Package locker предоставляет блокировки по ключу, которыми сериализуются операции над кошельком
// одного пользователя.
package locker

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// ErrNotAcquired блокировку не удалось получить за отведенное число попыток.
var ErrNotAcquired = errors.New("lock not acquired")

// waitErr ошибка прерванного ожидания блокировки. Истекший дедлайн означает, что ключ так и
// остался занят, и отдается как ErrNotAcquired.
func waitErr(ctx context.Context, key string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("acquire lock `%s`: %w: %w", key, ErrNotAcquired, ctx.Err())
	}
	return fmt.Errorf("acquire lock `%s`: %w", key, ctx.Err())
}

// ReleaseFunc освобождает полученную блокировку. Повторный вызов безопасен.
type ReleaseFunc func()

const (
	defaultTTL           = 10 * time.Second
	defaultRetryAttempts = 20
	defaultRetryDelay    = 50 * time.Millisecond
)

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}

func retryDelay(base time.Duration) time.Duration {
	return time.Duration(jitter(float64(base), 0.3, 0.3))
}
