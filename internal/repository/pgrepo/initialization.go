package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	defaultMaxAttempts   uint = 30
	defaultRetryInterval      = 3 * time.Second
)

type ConnectOption func(*connectOptions)

type connectOptions struct {
	maxAttempts   uint
	retryInterval time.Duration
}

func WithRetry(maxAttempts uint, interval time.Duration) ConnectOption {
	return func(o *connectOptions) {
		o.maxAttempts = maxAttempts
		o.retryInterval = interval
	}
}

// Connect подключается к postgres, повторяя попытки пока база недоступна, и накатывает миграции
// из migrationsDir.
func Connect(
	ctx context.Context,
	migrationsDir, dsn string,
	l *logrus.Logger,
	opts ...ConnectOption,
) (*pgxpool.Pool, error) {
	o := connectOptions{maxAttempts: defaultMaxAttempts, retryInterval: defaultRetryInterval}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		pool     *pgxpool.Pool
		attempts uint
	)
	for {
		conn, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			pool = conn
			break
		}
		attempts++
		if attempts >= o.maxAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %w", attempts, connErr)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, o.maxAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", o.retryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("init postgres connection: %w", ctx.Err())
		case <-time.After(o.retryInterval):
		}
	}

	if err := postgresMigrate(migrationsDir, dsn); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %w", confErr)
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %w", poolErr)
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", pingErr)
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
