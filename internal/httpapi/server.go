// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

// Package httpapi exposes registration, login and the protected member
// endpoints over HTTP.
package httpapi

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/samber/oops"

	"github.com/memberdash/memberdash/internal/auth"
	"github.com/memberdash/memberdash/internal/member"
	"github.com/memberdash/memberdash/internal/observability"
)

// Default server timeouts.
const (
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
)

// AuthService registers accounts and issues sessions.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*auth.Identity, error)
	Login(ctx context.Context, email, password string) (*auth.Session, error)
}

// MemberService manages members on behalf of a verified identity.
type MemberService interface {
	List(ctx context.Context, who *auth.Identity, limit, offset int) ([]member.Member, error)
	Get(ctx context.Context, who *auth.Identity, id int32) (*member.Member, error)
	Create(ctx context.Context, who *auth.Identity, m member.Member) (*member.Member, error)
	Update(ctx context.Context, who *auth.Identity, id int32, m member.Member) error
	Delete(ctx context.Context, who *auth.Identity, id int32) error
}

// Authorizer turns request headers into a verified identity.
type Authorizer interface {
	Authorize(ctx context.Context, header http.Header) (*auth.Identity, error)
}

// Config holds the HTTP server settings.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Deps are the collaborators the routes call into. Metrics may be nil.
type Deps struct {
	Auth    AuthService
	Members MemberService
	Gate    Authorizer
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// Server serves the public API.
type Server struct {
	cfg      Config
	app      *fiber.App
	auth     AuthService
	members  MemberService
	gate     Authorizer
	metrics  *observability.Metrics
	logger   *slog.Logger
	listener net.Listener
	running  atomic.Bool
}

// NewServer builds the fiber application and registers every route.
func NewServer(cfg Config, deps Deps) (*Server, error) {
	if deps.Auth == nil || deps.Members == nil || deps.Gate == nil {
		return nil, oops.Code("HTTP_INVALID_CONFIG").Errorf("auth service, member service and gate are required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}

	s := &Server{
		cfg:     cfg,
		auth:    deps.Auth,
		members: deps.Members,
		gate:    deps.Gate,
		metrics: deps.Metrics,
		logger:  deps.Logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "memberdash",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          s.handleError,
	})
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.app.Use(s.requestID())
	s.app.Use(s.accessLog())
	s.app.Use(recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: s.logPanic,
	}))

	s.app.Post("/register", s.handleRegister)
	s.app.Post("/login", s.handleLogin)

	requireAuth := s.RequireAuth()
	s.app.Get("/me", requireAuth, s.handleMe)
	s.app.Get("/data", requireAuth, s.handleListMembers)
	s.app.Get("/data/:id", requireAuth, s.handleGetMember)
	s.app.Post("/data", requireAuth, s.handleCreateMember)
	s.app.Put("/data/:id", requireAuth, s.handleUpdateMember)
	s.app.Delete("/data/:id", requireAuth, s.handleDeleteMember)
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on the configured address and serves in the background.
// The returned channel receives a serve error, if any, and is closed when
// serving stops.
func (s *Server) Start() (<-chan error, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, oops.Code("HTTP_ALREADY_RUNNING").Errorf("http server already running")
	}

	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.running.Store(false)
		return nil, oops.Code("HTTP_LISTEN_FAILED").With("addr", s.cfg.Addr).Wrap(err)
	}
	s.listener = listener

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if serveErr := s.app.Listener(listener); serveErr != nil {
			s.logger.Error("http server error", "error", serveErr)
			errCh <- serveErr
		}
	}()

	s.logger.Info("http server started", "addr", listener.Addr().String())
	return errCh, nil
}

// Stop waits for in-flight requests to finish or ctx to expire.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return oops.With("operation", "shutdown_http_server").Wrap(err)
	}
	s.logger.Info("http server stopped")
	return nil
}

// Addr returns the listening address, or the empty string before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}
