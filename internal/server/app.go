// Package server wires the todo service together: it opens the store, applies
// migrations, reconciles the bootstrap administrator and runs the HTTP API
// alongside the optional gRPC health endpoint until the context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ishwarya-18/todo-app/internal/logging"
	"github.com/ishwarya-18/todo-app/internal/server/auth"
	"github.com/ishwarya-18/todo-app/internal/server/config"
	"github.com/ishwarya-18/todo-app/internal/server/httpapi"
	"github.com/ishwarya-18/todo-app/internal/server/repositories/repomanager"
	"github.com/ishwarya-18/todo-app/internal/server/services"

	gs "github.com/ishwarya-18/todo-app/internal/server/grpc"
)

// logOutput is where the process logger writes; tests redirect it.
var logOutput io.Writer = os.Stdout

type App struct {
	config         *config.Config
	logger         logging.Logger
	store          repomanager.RepositoryManager
	accountService *services.AccountService
	taskService    *services.TaskService
	issuer         *auth.Issuer
}

// NewApp opens the store, migrates it and makes sure the admin account
// exists. The store is closed again if any of those steps fail.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(logOutput, c.LogLevel)

	store, err := repomanager.Open(ctx, c.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := store.RunMigrations(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	hasher := auth.NewBcryptHasher(c.BcryptCost)

	if err := services.ReconcileAdmin(ctx, store.Accounts(), hasher, c.AdminEmail, c.AdminPassword, logger); err != nil {
		_ = store.Close()
		return nil, err
	}

	issuer := auth.NewIssuer([]byte(c.JWTSecret), c.TokenTTL)

	return &App{
		config:         c,
		logger:         logger,
		store:          store,
		accountService: services.NewAccountService(store.Accounts(), hasher, issuer, logger),
		taskService:    services.NewTaskService(store.Tasks()),
		issuer:         issuer,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) (stop func()) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func (app *App) startHTTPServer(ctx context.Context) error {
	s := httpapi.NewServer(app.accountService, app.taskService, app.issuer, app.logger, httpapi.Options{
		CORSOrigins: app.config.CORSOrigins,
	})
	return s.Serve(ctx, app.config.HTTPAddr)
}

func (app *App) startGRPCServer(ctx context.Context) error {
	s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.store, gs.DefaultProbeInterval)
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the listeners fails. The store is closed before returning.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	stop := app.initSignalHandler(cancelFunc)
	defer stop()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				app.logger.Error(ctx, "listener failed", "listener", name, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				cancelFunc()
			}
		}()
	}

	run("http", app.startHTTPServer)
	if app.config.GRPCAddr != "" {
		run("grpc", app.startGRPCServer)
	}

	wg.Wait()

	if err := app.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing store: %w", err))
	}

	app.logger.Info(context.Background(), "App stopped")
	return errors.Join(errs...)
}
