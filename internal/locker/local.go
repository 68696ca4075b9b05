package locker

import (
	"context"
	"sync"
)

// LocalLocker блокировка по ключу в пределах одного процесса. Используется, когда redis не настроен.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*localLock
}

type localLock struct {
	ch   chan struct{}
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*localLock)}
}

// Acquire ждет освобождения key или отмены контекста.
func (l *LocalLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	lock := l.ref(key)

	select {
	case lock.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, lock)
		return nil, waitErr(ctx, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lock.ch
			l.unref(key, lock)
		})
	}, nil
}

func (l *LocalLocker) ref(key string) *localLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[key]
	if !ok {
		lock = &localLock{ch: make(chan struct{}, 1)}
		l.locks[key] = lock
	}
	lock.refs++
	return lock
}

func (l *LocalLocker) unref(key string, lock *localLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, key)
	}
}
