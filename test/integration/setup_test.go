// Package integration assembles the full HTTP application in-process,
// with the same middleware chain and route wiring as the server
// binary, and drives it through recorded requests.
package integration

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/hemoscan/hemoscan/internal/domain/cohort"
	"github.com/hemoscan/hemoscan/internal/domain/hematology"
	"github.com/hemoscan/hemoscan/internal/domain/recovery"
	"github.com/hemoscan/hemoscan/internal/domain/triage"
	"github.com/hemoscan/hemoscan/internal/platform/middleware"
)

type appConfig struct {
	historyLimit int
	newTTL       time.Duration
	scorer       recovery.TrajectoryScorer
	rateLimit    *middleware.RateLimitConfig
}

type app struct {
	e     *echo.Echo
	board *triage.Board
}

func newTestApp(t *testing.T, cfg appConfig) *app {
	t.Helper()

	if cfg.historyLimit <= 0 {
		cfg.historyLimit = 5
	}
	if cfg.newTTL <= 0 {
		cfg.newTTL = time.Minute
	}

	logger := zerolog.New(io.Discard)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M", "8M"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.DefaultRateLimitConfig()
	if cfg.rateLimit != nil {
		rateLimitCfg = *cfg.rateLimit
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	historyRepo := hematology.NewHistoryRepoMem(cfg.historyLimit)
	hemaSvc := hematology.NewService(historyRepo)
	hematology.NewHandler(hemaSvc).RegisterRoutes(apiV1)

	recoverySvc := recovery.NewService(cfg.scorer)
	recovery.NewHandler(recoverySvc).RegisterRoutes(apiV1)

	cohortSvc := cohort.NewService()
	cohort.NewHandler(cohortSvc).RegisterRoutes(apiV1)

	board := triage.NewBoard(cfg.newTTL)
	t.Cleanup(board.Stop)
	triageSvc := triage.NewService(board)
	triage.NewHandler(triageSvc).RegisterRoutes(apiV1)

	return &app{e: e, board: board}
}

func (a *app) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}
