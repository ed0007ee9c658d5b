// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

// Connection retry defaults.
const (
	DefaultConnectRetries = 5
	DefaultConnectBackoff = 500 * time.Millisecond
	maxConnectBackoff     = 10 * time.Second
)

// ConnectOptions controls how Connect waits for the database.
type ConnectOptions struct {
	// Retries is the number of additional ping attempts after the first.
	Retries uint64
	// Backoff is the initial delay between attempts; it doubles each retry.
	Backoff time.Duration
	// MaxConns caps the pool size. Zero keeps the pgx default.
	MaxConns int32
	Logger   *slog.Logger
}

// Connect opens a pgx pool for dsn and pings it, retrying with exponential
// backoff until the database answers or the retries are exhausted. This is
// the only retried operation in the service.
func Connect(ctx context.Context, dsn string, opts ConnectOptions) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		// The parse error can echo the DSN, password included.
		return nil, oops.Code("DB_INVALID_URL").Errorf("database url could not be parsed")
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.Backoff <= 0 {
		opts.Backoff = DefaultConnectBackoff
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, oops.Code("DB_CONNECT_FAILED").With("operation", "create pool").Wrap(err)
	}

	backoff := retry.WithMaxRetries(opts.Retries,
		retry.WithCappedDuration(maxConnectBackoff, retry.NewExponential(opts.Backoff)))

	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := pool.Ping(ctx); err != nil {
			logger.WarnContext(ctx, "database not reachable",
				"attempt", attempt,
				"host", cfg.ConnConfig.Host,
				"error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, oops.Code("DB_CONNECT_FAILED").
			With("operation", "ping").
			With("attempts", attempt).
			Wrap(err)
	}

	logger.InfoContext(ctx, "connected to database",
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"attempts", attempt)
	return pool, nil
}
