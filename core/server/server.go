package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-appointment-api/core/config"
	"clinic-appointment-api/core/constants"
	"clinic-appointment-api/core/database"
	"clinic-appointment-api/core/logger"
	"clinic-appointment-api/core/utils"
	"clinic-appointment-api/modules/appointment"
	"clinic-appointment-api/modules/doctor"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Run boots the process: config, logger, database, routes; then serves until
// SIGINT/SIGTERM and shuts down gracefully. Startup failures are returned to
// the caller and crash the process; request failures never do.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Debug)

	db, err := database.InitDB(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	if err := db.Migrate(migrateCtx, constants.MigrationFile); err != nil {
		logger.Warn("Migration skipped", "error", err)
	}
	cancelMigrate()

	e := newEcho()
	doctor.Init(e, db)
	appointment.Init(e, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("Server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown", "error", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("Database close", "error", err)
	}
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: utils.GenerateID,
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiter(
		middleware.NewRateLimiterMemoryStore(rate.Limit(constants.RateLimitPerSecond)),
	))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("http request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return nil
		},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Clinic Appointment API is running")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok", "time": time.Now().UTC()})
	})

	return e
}
