package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hemoscan/hemoscan/internal/config"
	"github.com/hemoscan/hemoscan/internal/domain/cohort"
	"github.com/hemoscan/hemoscan/internal/domain/hematology"
	"github.com/hemoscan/hemoscan/internal/domain/record"
	"github.com/hemoscan/hemoscan/internal/domain/recovery"
	"github.com/hemoscan/hemoscan/internal/domain/triage"
	"github.com/hemoscan/hemoscan/internal/platform/middleware"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "hemoscan-server",
		Short: "Clinical risk classification and triage API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(classifyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Classify one clinical record from stdin",
		Long: "Reads a single JSON object of lab measurements from stdin and " +
			"writes the anemia classification to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runClassify(in io.Reader, out io.Writer) error {
	dec := json.NewDecoder(in)
	dec.UseNumber()

	var raw record.Raw
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	rec, err := hematology.NormalizeRecord(raw)
	if err != nil {
		return err
	}
	res := hematology.Classify(rec)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
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
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger = logger.Level(level)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M", "8M"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")

	// Rate limiting middleware
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	// -- Register Domain Handlers --

	// Hematology domain
	historyRepo := hematology.NewHistoryRepoMem(cfg.HistoryLimit)
	hemaSvc := hematology.NewService(historyRepo)
	hemaHandler := hematology.NewHandler(hemaSvc)
	hemaHandler.RegisterRoutes(apiV1)

	// Recovery domain. A nil scorer selects the rule engine; the
	// fallback scorer is kept for environments that want the legacy
	// logistic estimate.
	var scorer recovery.TrajectoryScorer
	if cfg.RecoveryScorer == "fallback" {
		scorer = recovery.FallbackScorer{}
	}
	recoverySvc := recovery.NewService(scorer)
	recoveryHandler := recovery.NewHandler(recoverySvc)
	recoveryHandler.RegisterRoutes(apiV1)

	// Cohort domain
	cohortSvc := cohort.NewService()
	cohortHandler := cohort.NewHandler(cohortSvc)
	cohortHandler.RegisterRoutes(apiV1)

	// Triage domain
	board := triage.NewBoard(cfg.TriageNewTTL())
	defer board.Stop()
	triageSvc := triage.NewService(board)
	triageHandler := triage.NewHandler(triageSvc)
	triageHandler.RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().
			Str("addr", addr).
			Str("scorer", cfg.RecoveryScorer).
			Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
