// Package httpapi exposes the to-do service over HTTP/JSON.
//
// Routes:
//
//	POST   /auth/signup          create a standard account, returns a token
//	POST   /auth/login           exchange credentials for a token
//	GET    /todos                list the caller's tasks
//	POST   /todos                create a task
//	PATCH  /todos/{id}           set the completion flag
//	DELETE /todos/{id}           delete a task
//	GET    /users                list accounts (admin)
//	DELETE /users/{id}           delete an account and its tasks (admin)
//	PUT    /users/{id}/promote   grant the admin role (admin)
//	GET    /health               liveness probe
//	GET    /metrics              Prometheus metrics
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/ishwarya-18/todo-app/internal/logging"
	"github.com/ishwarya-18/todo-app/internal/server/auth"
	"github.com/ishwarya-18/todo-app/internal/server/services"
)

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 2 * time.Minute

	// ShutdownTimeout bounds how long in-flight requests may take to finish.
	ShutdownTimeout = 10 * time.Second
)

// Options tunes optional server behaviour.
type Options struct {
	// CORSOrigins lists allowed browser origins; empty allows any.
	CORSOrigins []string
	// Now overrides the clock used by /health.
	Now func() time.Time
}

type Server struct {
	accounts    *services.AccountService
	tasks       *services.TaskService
	issuer      *auth.Issuer
	logger      logging.Logger
	corsOrigins []string
	now         func() time.Time
	metrics     *metrics
	handler     http.Handler
}

func NewServer(accounts *services.AccountService, tasks *services.TaskService, issuer *auth.Issuer, logger logging.Logger, opts Options) *Server {
	s := &Server{
		accounts:    accounts,
		tasks:       tasks,
		issuer:      issuer,
		logger:      logger.With("module", "http_server"),
		corsOrigins: opts.CORSOrigins,
		now:         opts.Now,
		metrics:     newMetrics(),
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.handler = s.buildRouter()
	return s
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve listens on addr and serves until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
