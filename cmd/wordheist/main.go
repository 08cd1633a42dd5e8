package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordheist/internal/config"
	"wordheist/internal/handler"
	"wordheist/internal/httpapi"
	"wordheist/internal/middleware"
	"wordheist/internal/observability"
	"wordheist/internal/puzzle"
	"wordheist/internal/repository/postgres"
	"wordheist/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Word Heist")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	if err := puzzle.ValidateTemplates(); err != nil {
		logger.Fatal("Invalid puzzle templates", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.Setup(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	// Connect to database with retries
	db, err := connectDatabase(ctx, cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	store := postgres.NewStore(db)
	repos := store.Repos()

	// Initialize services
	authService := service.NewAuthService(repos.Users, logger, cfg.JWTSecret, cfg.TokenTTL, cfg.FreeHints)
	puzzleService := service.NewPuzzleService(repos.Puzzles, logger)
	gameService := service.NewGameService(store, repos, puzzleService, logger)
	scoreService := service.NewScoreService(store, puzzleService, logger)
	leaderboardService := service.NewLeaderboardService(repos.Scores)
	statsService := service.NewStatsService(repos.Users, repos.Scores, logger)

	// Make sure today's case exists before the first request
	if p, err := puzzleService.Today(ctx); err != nil {
		logger.Warn("Failed to prepare today's puzzle", zap.Error(err))
	} else {
		logger.Info("Today's puzzle ready", zap.Int64("puzzle_id", p.ID), zap.String("case_title", p.CaseTitle))
	}

	// HTTP API
	gin.SetMode(gin.ReleaseMode)
	routerCfg := httpapi.RouterConfig{
		Handlers: httpapi.NewHandlers(
			authService, puzzleService, gameService, scoreService,
			leaderboardService, statsService, store, logger,
		),
		Tokens:      authService,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	}
	if observability.Enabled(cfg.Tracing) {
		routerCfg.ServiceName = observability.ServiceName
	}
	server := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(routerCfg), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})

	// Telegram bot
	if cfg.BotEnabled() {
		bot, err := tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
			OnError: func(err error, c tele.Context) {
				logger.Error("Bot handler failed", zap.Error(err))
			},
		})
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		bot.Use(middleware.AuthMiddleware(authService, logger))
		h := handler.NewHandler(bot, puzzleService, gameService, scoreService, leaderboardService, statsService, logger)
		h.RegisterHandlers()

		logger.Info("Telegram bot initialized")

		g.Go(func() error {
			logger.Info("Bot started successfully")
			bot.Start()
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info("Stopping bot...")
			bot.Stop()
			return nil
		})
	} else {
		logger.Info("BOT_TOKEN not set, Telegram bot disabled")
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Shutting down after error", zap.Error(err))
	}

	logger.Info("Stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
		}

		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			continue
		}

		// Test connection
		if err = db.PingContext(ctx); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}
