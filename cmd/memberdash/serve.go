// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/memberdash/memberdash/internal/auth"
	authpg "github.com/memberdash/memberdash/internal/auth/postgres"
	"github.com/memberdash/memberdash/internal/config"
	"github.com/memberdash/memberdash/internal/httpapi"
	"github.com/memberdash/memberdash/internal/logging"
	"github.com/memberdash/memberdash/internal/member"
	memberpg "github.com/memberdash/memberdash/internal/member/postgres"
	"github.com/memberdash/memberdash/internal/observability"
	"github.com/memberdash/memberdash/internal/store"
	"github.com/memberdash/memberdash/pkg/errutil"
)

const (
	shutdownTimeout  = 5 * time.Second
	readinessTimeout = 2 * time.Second
	serviceName      = "memberdash"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API serving /register, /login and the token-protected
/data and /me endpoints, plus the metrics and health endpoint.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeWithDeps(cmd.Context(), cmd, nil)
		},
	}

	config.RegisterServeFlags(cmd.Flags())

	return cmd
}

// runServeWithDeps starts the API with injectable dependencies.
// If deps is nil, default implementations are used.
func runServeWithDeps(ctx context.Context, cmd *cobra.Command, deps *ServeDeps) error {
	if ctx == nil {
		ctx = context.Background()
	}
	deps = withServeDefaults(deps)

	cfg, err := config.Load(resolveConfigFile(deps.Getenv), cmd.Flags(), deps.Getenv)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := logging.SetDefault(serviceName, version, cfg.Log.Format, level)

	logger.Info("starting memberdash",
		"addr", cfg.Server.Addr,
		"metrics_addr", cfg.Metrics.Addr,
		"auto_migrate", cfg.Database.AutoMigrate,
	)

	pool, err := deps.PoolFactory(ctx, cfg.Database.URL, store.ConnectOptions{
		Retries: cfg.Database.ConnectRetries,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := autoMigrate(deps, cfg.Database.URL, logger); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var obsServer ObservabilityServer
	var metrics *observability.Metrics
	if cfg.Metrics.Addr != "" {
		obsServer = deps.ObservabilityServerFactory(cfg.Metrics.Addr, poolReadiness(pool))
		obsErrChan, err := obsServer.Start()
		if err != nil {
			return oops.Code("OBSERVABILITY_START_FAILED").Wrap(err)
		}
		go monitorServerErrors(ctx, cancel, obsErrChan, "observability")
		metrics = obsServer.Metrics()
	}

	apiDeps, err := buildAPIDeps(cfg, pool, metrics, logger)
	if err != nil {
		stopObservability(obsServer)
		return err
	}

	httpServer, err := deps.HTTPServerFactory(httpapi.Config{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, apiDeps)
	if err != nil {
		stopObservability(obsServer)
		return err
	}

	httpErrChan, err := httpServer.Start()
	if err != nil {
		stopObservability(obsServer)
		return oops.Code("HTTP_START_FAILED").Wrap(err)
	}
	go monitorServerErrors(ctx, cancel, httpErrChan, "http")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	cmd.Println("MemberDash started")
	logger.Info("memberdash ready", "addr", httpServer.Addr())

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", "signal", sig)
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		errutil.LogError(logger, "error stopping http server", err)
	}
	if obsServer != nil {
		if err := obsServer.Stop(shutdownCtx); err != nil {
			errutil.LogError(logger, "error stopping observability server", err)
		}
	}

	logger.Info("shutdown complete")
	return nil
}

func withServeDefaults(deps *ServeDeps) *ServeDeps {
	if deps == nil {
		deps = &ServeDeps{}
	}
	if deps.PoolFactory == nil {
		deps.PoolFactory = func(ctx context.Context, dsn string, opts store.ConnectOptions) (DBPool, error) {
			pool, err := store.Connect(ctx, dsn, opts)
			if err != nil {
				return nil, err
			}
			return pool, nil
		}
	}
	if deps.MigratorFactory == nil {
		deps.MigratorFactory = func(databaseURL string) (AutoMigrator, error) {
			migrator, err := store.NewMigrator(databaseURL)
			if err != nil {
				return nil, err
			}
			return migrator, nil
		}
	}
	if deps.ObservabilityServerFactory == nil {
		deps.ObservabilityServerFactory = func(addr string, readinessChecker observability.ReadinessChecker) ObservabilityServer {
			return observability.NewServer(addr, readinessChecker)
		}
	}
	if deps.HTTPServerFactory == nil {
		deps.HTTPServerFactory = func(cfg httpapi.Config, d httpapi.Deps) (HTTPServer, error) {
			server, err := httpapi.NewServer(cfg, d)
			if err != nil {
				return nil, err
			}
			return server, nil
		}
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}
	return deps
}

// buildAPIDeps wires the auth and member services over pool.
func buildAPIDeps(cfg *config.Config, pool DBPool, metrics *observability.Metrics, logger *slog.Logger) (httpapi.Deps, error) {
	hasher, err := auth.NewArgon2idHasherWithParams(cfg.Auth.Argon2.Params())
	if err != nil {
		return httpapi.Deps{}, err
	}
	issuer, err := auth.NewTokenIssuer([]byte(cfg.Auth.Secret))
	if err != nil {
		return httpapi.Deps{}, err
	}
	verifier, err := auth.NewTokenVerifier([]byte(cfg.Auth.Secret))
	if err != nil {
		return httpapi.Deps{}, err
	}

	authService, err := auth.NewAuthService(authpg.NewCredentialRepository(pool), hasher, issuer,
		auth.WithTokenTTL(cfg.Auth.TokenTTL),
		auth.WithLogger(logger),
		auth.WithConcealUnknownEmail(cfg.Auth.ConcealUnknownEmail),
	)
	if err != nil {
		return httpapi.Deps{}, err
	}

	gate, err := auth.NewGate(verifier,
		auth.WithGateLogger(logger),
		auth.WithGateObserver(metrics.RecordGateRejection),
	)
	if err != nil {
		return httpapi.Deps{}, err
	}

	members, err := member.NewService(memberpg.NewMemberRepository(pool), logger)
	if err != nil {
		return httpapi.Deps{}, err
	}

	return httpapi.Deps{
		Auth:    authService,
		Members: members,
		Gate:    gate,
		Metrics: metrics,
		Logger:  logger,
	}, nil
}

// autoMigrate applies pending migrations before serving.
func autoMigrate(deps *ServeDeps, databaseURL string, logger *slog.Logger) error {
	migrator, err := deps.MigratorFactory(databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			errutil.LogError(logger, "failed to close migrator", closeErr)
		}
	}()

	if err := migrator.Up(); err != nil {
		return err
	}
	logger.Info("database migrations applied")
	return nil
}

// poolReadiness reports ready while the database answers a ping.
func poolReadiness(pool DBPool) observability.ReadinessChecker {
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), readinessTimeout)
		defer cancel()
		return pool.Ping(ctx) == nil
	}
}

func stopObservability(obsServer ObservabilityServer) {
	if obsServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := obsServer.Stop(ctx); err != nil {
		slog.Warn("failed to stop observability server during cleanup", "error", err)
	}
}

// monitorServerErrors cancels ctx when a server reports an error.
// It exits when either an error is received, the channel is closed, or the context is cancelled.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, serverName string) {
	select {
	case err, ok := <-errCh:
		if !ok {
			return
		}
		if err != nil {
			slog.Error("server error, triggering shutdown",
				"server", serverName,
				"error", err,
			)
			cancel()
		}
	case <-ctx.Done():
	}
}
