package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/un1ck-andy/courses-signup/internal/auth"
	"github.com/un1ck-andy/courses-signup/internal/config"
	"github.com/un1ck-andy/courses-signup/internal/enrollment"
	"github.com/un1ck-andy/courses-signup/internal/handler"
	"github.com/un1ck-andy/courses-signup/internal/metrics"
	"github.com/un1ck-andy/courses-signup/internal/middleware"
	"github.com/un1ck-andy/courses-signup/internal/repository/postgres"
)

type CustomValidator struct {
	validator *validator.Validate
}

// Validate rejects malformed bodies with a generic schema hint rather
// than echoing field-level details back to the client.
func (customValidator *CustomValidator) Validate(i interface{}) error {
	if err := customValidator.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "request body does not match the expected schema")
	}
	return nil
}

// @title Course Sign-Up API
// @version 1.0
// @description API for managing courses, students and course enrollment

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api/v1
// @schemes https http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	storage, err := postgres.NewConnection(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	authority, err := auth.NewAuthority(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		logger.Error("failed to set up token authority", slog.String("error", err.Error()))
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSAllowedOrigin},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RequestLogger(logger))

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	e.Use(collector.Middleware())
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(registry)))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		if err := storage.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	authMiddleware := middleware.JWTAuth(authority)
	handler.SetupCourseRoutes(e, storage, authMiddleware)
	handler.SetupStudentRoutes(e, storage, authority, authMiddleware)

	enrollmentService := enrollment.NewService(storage, storage, storage)
	handler.SetupEnrollmentRoutes(e, enrollmentService, authMiddleware)

	go func() {
		logger.Info("server started", slog.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	logger.Info("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
