package locker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу токена.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`)

// RedisLocker распределенная блокировка на SET NX с TTL. Работает между несколькими экземплярами сервиса.
type RedisLocker struct {
	client        redis.UniversalClient
	ttl           time.Duration
	retryAttempts int
	retryDelay    time.Duration
	l             *logrus.Logger
}

func NewRedisLocker(client redis.UniversalClient, l *logrus.Logger) *RedisLocker {
	return &RedisLocker{
		client:        client,
		ttl:           defaultTTL,
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
		l:             l,
	}
}

// SetTTL время жизни блокировки, после которого она снимается, даже если владелец не освободил ее.
func (r *RedisLocker) SetTTL(ttl time.Duration) *RedisLocker {
	r.ttl = ttl
	return r
}

func (r *RedisLocker) SetRetry(attempts int, delay time.Duration) *RedisLocker {
	r.retryAttempts = attempts
	r.retryDelay = delay
	return r
}

// Acquire ждет блокировку key. Если за все попытки ключ остается занят, возвращает ErrNotAcquired.
func (r *RedisLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	token := uuid.NewString()

	for attempt := 0; ; attempt++ {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock `%s`: %w", key, err)
		}
		if ok {
			return r.releaseFunc(key, token), nil
		}
		if attempt+1 >= r.retryAttempts {
			return nil, fmt.Errorf("acquire lock `%s` after %d attempts: %w", key, attempt+1, ErrNotAcquired)
		}

		select {
		case <-ctx.Done():
			return nil, waitErr(ctx, key)
		case <-time.After(retryDelay(r.retryDelay)):
		}
	}
}

func (r *RedisLocker) releaseFunc(key, token string) ReleaseFunc {
	var once sync.Once
	return func() {
		once.Do(func() {
			// Контекст вызывающего может быть уже отменен, а блокировку снять нужно.
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			deleted, err := releaseScript.Run(ctx, r.client, []string{key}, token).Int()
			if err != nil {
				r.l.WithError(err).WithField("key", key).Error("failed to release lock")
				return
			}
			if deleted == 0 {
				r.l.WithField("key", key).Warn("lock expired before release")
			}
		})
	}
}
