package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/icurounds/icurounds/internal/config"
	"github.com/icurounds/icurounds/internal/domain/patient"
	"github.com/icurounds/icurounds/internal/domain/scoring"
	"github.com/icurounds/icurounds/internal/platform/aisummary"
	"github.com/icurounds/icurounds/internal/platform/db"
	custommw "github.com/icurounds/icurounds/internal/platform/middleware"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "rounds-server",
		Short:   "ICU rounds dashboard server",
		Version: version,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServer,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE:  runMigrations,
	}
	migrateCmd.Flags().String("dir", "migrations", "migrations directory")

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the example snapshot to the configured store",
		RunE:  runSeed,
	}

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := newLogger(cfg)

	ctx := context.Background()

	var repo patient.SnapshotRepository
	var pool *pgxpool.Pool
	if cfg.HasDatabase() {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()
		repo = patient.NewPGRepository(pool)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, state will not survive restarts")
		repo = patient.NewMemoryRepository()
	}

	e := buildServer(cfg, logger)
	e.GET("/health/db", db.HealthHandler(pool))
	return serve(ctx, cfg, logger, e, repo)
}

func runMigrations(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.HasDatabase() {
		return fmt.Errorf("DATABASE_URL is required for migrations")
	}
	logger := newLogger(cfg)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	dir, _ := cmd.Flags().GetString("dir")
	migrator := db.NewMigrator(pool, dir)
	applied, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info().Int("applied", applied).Msg("migrations complete")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.HasDatabase() {
		return fmt.Errorf("DATABASE_URL is required for seeding")
	}
	logger := newLogger(cfg)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	repo := patient.NewPGRepository(pool)
	snap := patient.SeedSnapshot()
	if err := repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("write seed snapshot: %w", err)
	}
	logger.Info().Int("patients", len(snap.Patients)).Msg("seed snapshot written")
	return nil
}

// buildServer assembles the echo instance with its middleware chain.
func buildServer(cfg *config.Config, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(custommw.Recovery(logger))
	e.Use(custommw.RequestID())
	e.Use(custommw.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.BodyLimit("1M"))
	e.Use(custommw.RequestTimeout(30 * time.Second))

	return e
}

// serve restores the snapshot, wires the domain services, starts the HTTP
// listener and blocks until shutdown.
func serve(ctx context.Context, cfg *config.Config, logger zerolog.Logger, e *echo.Echo, repo patient.SnapshotRepository) error {
	snap, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		snap = patient.SeedSnapshot()
		if err := repo.Save(ctx, snap); err != nil {
			logger.Warn().Err(err).Msg("could not persist seed snapshot")
		}
		logger.Info().Msg("no snapshot found, seeded example patients")
	}

	collection := patient.NewCollection()
	collection.Restore(snap)

	autosaver := patient.NewAutosaver(collection, repo, cfg.AutosaveDelay(), logger)
	saveCtx, stopSaver := context.WithCancel(context.Background())
	defer stopSaver()
	go autosaver.Run(saveCtx)

	svc := patient.NewService(collection, autosaver)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(custommw.RateLimit(custommw.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	patient.NewHandler(svc).RegisterRoutes(apiV1)
	scoring.NewHandler().RegisterRoutes(apiV1)

	aiClient := aisummary.NewClient(cfg.AIAPIURL, cfg.AIAPIKey, cfg.AIModel)
	aisummary.NewHandler(svc, aiClient, logger).RegisterRoutes(apiV1)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Int("patients", collection.Len()).Msg("server started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}

	stopSaver()
	autosaver.Flush(shutdownCtx)
	logger.Info().Msg("final snapshot saved")
	return nil
}
