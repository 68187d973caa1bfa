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

	"conference-admin/internal/api"
	"conference-admin/internal/config"
	"conference-admin/internal/database"
	"conference-admin/internal/logging"
	"conference-admin/internal/mailer"
	"conference-admin/internal/middleware"
	"conference-admin/internal/router"
	"conference-admin/internal/service"
	"conference-admin/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "conference-admin/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	newMailer       = func(cfg config.MailConfig, logger *zap.Logger) (mailer.Mailer, error) {
		if cfg.Host == "" {
			return &mailer.Log{Logger: logger}, nil
		}
		return mailer.NewSMTP(mailer.Config{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Username: cfg.Username,
			Password: cfg.Password,
			Sender:   cfg.Sender,
		})
	}
	newWorkerPool = worker.NewPool
	startServer   = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	stopSignal    = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	}
	exitFunc = os.Exit
)

const (
	shutdownTimeout = 10 * time.Second
	bodyLimit       = "1M"
)

func run() error {
	cfg, err := loadConfig(os.Getenv(config.EnvConfigFile))
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger 建立失敗: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	if cfg.ResetDatabase {
		logger.Warn("reset_database enabled, rolling back all migrations")
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %w", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	m, err := newMailer(cfg.Mail, logger)
	if err != nil {
		return fmt.Errorf("mailer 建立失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount, logger)
	defer wp.Stop()

	validate := api.NewValidator()
	e := newEcho(logger)
	router.Setup(e, router.Deps{
		DB:          db,
		JWTSecret:   cfg.JWTSecret,
		Conferences: service.NewConferenceService(db, validate, logger),
		Users:       service.NewUserService(db, validate, logger, m, wp, cfg.MailTimeout),
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	sigCtx, stop := stopSignal()
	defer stop()
	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("addr", cfg.HTTPAddr))
	if err := startServer(e, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

func newEcho(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.ZapLogger(logger))
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit(bodyLimit))
	return e
}
