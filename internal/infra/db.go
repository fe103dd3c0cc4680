package infra

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDBPool initializes a new pgx connection pool using the provided configuration.
func NewDBPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return pool, nil
}

// LazyPool is a process-lifetime pgx pool constructed on first use. The pool
// (or its construction error) is memoized, so repeated calls never re-dial.
// It exists because the datastore is a best-effort side channel: the process
// must boot and serve even when the database is down or unconfigured.
type LazyPool struct {
	cfg  *Config
	once sync.Once
	pool *pgxpool.Pool
	err  error
}

// NewLazyPool wraps the configuration without connecting.
func NewLazyPool(cfg *Config) *LazyPool {
	return &LazyPool{cfg: cfg}
}

// Get returns the memoized pool, connecting on the first call.
func (l *LazyPool) Get(ctx context.Context) (*pgxpool.Pool, error) {
	l.once.Do(func() {
		l.pool, l.err = NewDBPool(ctx, l.cfg)
	})
	return l.pool, l.err
}

// Exec resolves the pool and forwards the statement, satisfying the executor
// contract used by the repository layer.
func (l *LazyPool) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	pool, err := l.Get(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return pool.Exec(ctx, query, args...)
}

// Close releases the pool if it was ever constructed.
func (l *LazyPool) Close() {
	if l.pool != nil {
		l.pool.Close()
	}
}
