package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lifequest/lifequest-api/internal/config"
	"github.com/lifequest/lifequest-api/internal/domain/extraction"
	"github.com/lifequest/lifequest-api/internal/domain/leveling"
	"github.com/lifequest/lifequest-api/internal/events"
	"github.com/lifequest/lifequest-api/internal/platform/postgres"
	"github.com/lifequest/lifequest-api/internal/service"
	"github.com/lifequest/lifequest-api/internal/service/auth"
	"github.com/lifequest/lifequest-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	journalStore store.JournalStore
	statsStore   store.UserStatsStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	extractor        extraction.Service
	leveler          leveling.Service
	journalService   service.JournalService
	statsService     service.StatsService

	// Event system
	eventEmitter events.EventEmitter
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password verifier
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	bcryptCost := cfg.Auth.BcryptCost
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	app.userStore = postgres.NewPostgresUserStore(db, bcryptCost, logger)
	app.journalStore = postgres.NewPostgresJournalStore(db, logger)
	app.statsStore = postgres.NewPostgresUserStatsStore(db, logger)

	// Initialize the domain engines
	app.extractor = extraction.NewDefaultService()
	app.leveler = leveling.NewDefaultService()

	// Initialize event emitter and register the level-up handler
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLevelUpLogHandler(logger))
	app.eventEmitter = emitter

	// Initialize journal service
	app.journalService, err = service.NewJournalService(
		store.NewTxRunner(db),
		app.journalStore,
		app.statsStore,
		app.extractor,
		app.leveler,
		app.eventEmitter,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal service: %w", err)
	}

	// Initialize stats service
	app.statsService, err = service.NewStatsService(
		app.statsStore,
		app.journalStore,
		app.leveler,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// Close database connection
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
