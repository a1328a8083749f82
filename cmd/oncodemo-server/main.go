package main

import (
	"context"
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

	"github.com/onkoai/oncodemo/internal/config"
	"github.com/onkoai/oncodemo/internal/domain/admin"
	"github.com/onkoai/oncodemo/internal/domain/identity"
	"github.com/onkoai/oncodemo/internal/domain/oncology"
	"github.com/onkoai/oncodemo/internal/domain/patient"
	"github.com/onkoai/oncodemo/internal/platform/auth"
	"github.com/onkoai/oncodemo/internal/platform/db"
	"github.com/onkoai/oncodemo/internal/platform/middleware"
	"github.com/onkoai/oncodemo/internal/platform/store"
	"github.com/onkoai/oncodemo/pkg/localstore"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oncodemo-server",
		Short: "OnkoAI demo API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(demoAccountsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the demo API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func demoAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo-accounts",
		Short: "Print the demo credential list",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-20s %-12s %-10s %s\n", "EMAIL", "PASSWORD", "ROLE", "LINKED PATIENT")
			for _, a := range identity.DemoAccounts {
				fmt.Printf("%-20s %-12s %-10s %s\n", a.Email, a.Password, a.Role, a.PatientID)
			}
			return nil
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	logger.Info().Str("mode", cfg.Mode()).Msg("configuration loaded")

	// Database, only in production mode. Demo mode serves everything
	// from the seeded in-memory store.
	ctx := context.Background()
	var pool *pgxpool.Pool
	if !cfg.IsDemo() {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")
	}

	// Mock data layer
	dataStore := store.NewSeededStore(logger)
	sessionStore := localstore.Open(cfg.SessionFile)

	// Repositories: demo repos over the mock store, Postgres repos
	// when a database is configured.
	patientRepo := patient.NewDemoRepo(dataStore)
	oncologyRepo := oncology.NewDemoRepo(dataStore)
	if pool != nil {
		patientRepo = patient.NewPGRepo(pool)
		oncologyRepo = oncology.NewPGRepo(pool)
	}

	// Services
	patientSvc := patient.NewService(patientRepo)
	oncologySvc := oncology.NewService(oncologyRepo)
	sessionMgr := identity.NewManager(sessionStore, cfg.AuthSecret, cfg.AuthStrict, cfg.SessionTTL, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(auth.SessionMiddleware(cfg.AuthSecret))

	// Health check
	e.GET("/health", db.HealthHandler(pool))

	// API routes
	apiV1 := e.Group("/api/v1")
	identity.NewHandler(sessionMgr).RegisterRoutes(apiV1)
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	oncology.NewHandler(oncologySvc).RegisterRoutes(apiV1)
	admin.NewHandler(cfg, dataStore).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
