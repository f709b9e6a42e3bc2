package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskward/taskward-api/internal/api"
	"github.com/taskward/taskward-api/internal/api/middleware"
	"github.com/taskward/taskward-api/internal/config"
	"github.com/taskward/taskward-api/internal/platform/postgres"
	"github.com/taskward/taskward-api/internal/service/auth"
	"github.com/taskward/taskward-api/internal/service/task"
	"github.com/taskward/taskward-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore  store.UserStore
	taskStore  store.TaskStore
	tokenStore store.TokenStore

	// Services
	jwtService  auth.JWTService
	hasher      *auth.BcryptHasher
	taskService *task.Service

	// HTTP layer
	taskHandler    *api.TaskHandler
	authHandler    *api.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenLifetimeMinutes)*time.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	cost := cfg.Auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	app.hasher = auth.NewBcryptHasher(cost)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.tokenStore = postgres.NewPostgresTokenStore(db, logger)

	app.taskService = task.NewService(app.taskStore, logger)

	app.taskHandler = api.NewTaskHandler(app.taskService, logger)
	app.authHandler = api.NewAuthHandler(
		app.userStore,
		app.tokenStore,
		app.jwtService,
		app.hasher,
		app.hasher,
		logger,
	)
	app.authMiddleware = middleware.NewAuthMiddleware(app.jwtService, app.tokenStore)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Housekeeping: expired tokens already fail validation, their records
	// just take up space.
	if removed, err := app.tokenStore.DeleteExpired(ctx); err != nil {
		app.logger.Warn("failed to remove expired token records", "error", err)
	} else if removed > 0 {
		app.logger.Info("removed expired token records", "count", removed)
	}

	router := api.NewRouter(app.taskHandler, app.authHandler, app.authMiddleware)

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
