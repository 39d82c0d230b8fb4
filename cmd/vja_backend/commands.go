package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/voice_journal_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/voice_journal_app/internal/adapters/gateway/whisper"
	"github.com/SscSPs/voice_journal_app/internal/adapters/staging"
	s3store "github.com/SscSPs/voice_journal_app/internal/adapters/storage/s3"
	"github.com/SscSPs/voice_journal_app/internal/core/services"
	"github.com/SscSPs/voice_journal_app/internal/handlers"
	"github.com/SscSPs/voice_journal_app/internal/middleware"
	"github.com/SscSPs/voice_journal_app/internal/platform/config"
	"github.com/SscSPs/voice_journal_app/internal/utils/locator"
	"github.com/SscSPs/voice_journal_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 15 * time.Second

func serveCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run migrations and start the HTTP server",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-migrations",
				Usage: "Start without applying pending migrations",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return serve(ctx, cfg, logger, cmd.Bool("skip-migrations"))
		},
	}
}

func migrateCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations and exit",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
		},
	}
}

func sweepCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "Remove staged audio files left behind by interrupted requests",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "older-than",
				Usage: "Only remove files older than this (defaults to STAGING_SWEEP_AGE)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			age := cfg.StagingSweepAge
			if d := cmd.Duration("older-than"); d > 0 {
				age = d
			}
			stager, err := staging.NewStager(afero.NewOsFs(), staging.Config{Dir: cfg.StagingDir, MaxBytes: cfg.StagingMaxBytes, Logger: logger}, nil)
			if err != nil {
				return err
			}
			removed, err := stager.Sweep(age, time.Now())
			if err != nil {
				return err
			}
			logger.Info("Staging sweep finished", slog.Int("removed", removed), slog.Duration("older_than", age))
			return nil
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, skipMigrations bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool, logger)

	if !skipMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
	}

	store, err := s3store.NewStore(ctx, s3store.Config{
		Region:          cfg.AWSRegion,
		Bucket:          cfg.AWSBucketName,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	stager, err := staging.NewStager(afero.NewOsFs(), staging.Config{Dir: cfg.StagingDir, MaxBytes: cfg.StagingMaxBytes, Logger: logger}, store)
	if err != nil {
		return fmt.Errorf("failed to initialize staging: %w", err)
	}
	if removed, err := stager.Sweep(cfg.StagingSweepAge, time.Now()); err != nil {
		logger.Warn("Startup staging sweep failed", slog.String("error", err.Error()))
	} else if removed > 0 {
		logger.Info("Removed stale staged files", slog.Int("removed", removed))
	}

	transcriber, err := whisper.NewClient(whisper.Config{
		Endpoint: cfg.GatewayURL,
		APIKey:   cfg.GatewayAPIKey,
		Timeout:  cfg.GatewayTimeout,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize transcription gateway: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}
	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		return err
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, services.Gateways{
		Resolver:    locator.NewResolver(cfg.AWSBucketName),
		Stager:      stager,
		Transcriber: transcriber,
		Uploader:    store,
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.MaxMultipartMemory = 8 << 20

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
