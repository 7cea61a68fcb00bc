package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/design-wizard/internal/api"
	projectapi "github.com/futig/design-wizard/internal/api/project"
	"github.com/futig/design-wizard/internal/config"
	"github.com/futig/design-wizard/internal/pkg/formatter"
	"github.com/futig/design-wizard/internal/pkg/validator"
	"github.com/futig/design-wizard/internal/repository"
	"github.com/futig/design-wizard/internal/telegram"
	"github.com/futig/design-wizard/internal/usecase/project"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("storage", cfg.StorageDriver),
	)

	projectUC, db, err := setupProjectUsecase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	projectHandler := projectapi.NewHandler(projectUC, cfg.ExportCfg)

	router := api.SetupRouter(projectHandler, cfg.RequestTimeout, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}

// BuildTelegramBot creates the chat front end over the same project store as
// the HTTP server. The returned cleanup releases the store.
func BuildTelegramBot() (telegram.Bot, *zap.Logger, func(), error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.TelegramCfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building Telegram bot",
		zap.String("environment", cfg.Environment),
		zap.String("storage", cfg.StorageDriver),
	)

	projectUC, db, err := setupProjectUsecase(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		if db != nil {
			db.Close()
		}
		_ = logger.Sync()
	}

	bot, err := telegram.NewBot(&cfg.TelegramCfg, projectUC, cfg.ExportCfg.MaxImportSize, logger)
	if err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	logger.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, logger, cleanup, nil
}

// setupProjectUsecase opens storage and builds the project use case on it.
// The pool is nil for the memory driver.
func setupProjectUsecase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*project.ProjectUsecase, *pgxpool.Pool, error) {
	projectRepo, db, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Repositories initialized")

	schemaValidator := validator.NewValidator(cfg.ExportCfg)

	projectUC, err := project.NewUsecase(
		projectRepo,
		schemaValidator,
		formatter.NewFactory(),
		cfg.ExportCfg.CacheSize,
	)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, fmt.Errorf("init project usecase: %w", err)
	}
	logger.Info("Use cases initialized")

	return projectUC, db, nil
}

// setupStorage picks the project store. The pool is nil for the memory
// driver.
func setupStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.ProjectRepository, *pgxpool.Pool, error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory project storage, projects are lost on restart")
		return repository.NewProjectMemory(), nil, nil
	}

	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("setup database: %w", err)
	}

	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	return repository.NewProjectPostgres(db), db, nil
}
