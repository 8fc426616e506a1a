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

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// main exits non-zero only after run has returned, so every deferred cleanup
// in run (jobs, redis, database, logger flush) has already happened.
func main() {
	if err := run(); err != nil {
		log.Errorf("dispatch service stopped: %v", err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if err = logger.Init(configs.Environment, configs.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(configs)
	if err != nil {
		appLogger.Error("database unavailable", zap.Error(err))
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("access sql.DB: %w", err)
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			appLogger.Warn("failed to close database", zap.Error(closeErr))
		}
	}()

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, appLogger)
	if err != nil {
		appLogger.Error("failed to build application", zap.Error(err))
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			appLogger.Warn("failed to release resources", zap.Error(closeErr))
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		appLogger.Error("failed to start jobs", zap.Error(err))
		return err
	}
	defer jobManager.StopAll()

	e := httpin.NewEcho(app.CreateHTTPServer(sqlDB), appLogger)
	return serve(ctx, e, configs.HTTPPort, appLogger)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err = gormDB.AutoMigrate(postgres.Models()...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return gormDB, nil
}

// httpServer is the part of *echo.Echo that serve drives.
type httpServer interface {
	Start(address string) error
	Shutdown(ctx context.Context) error
}

// serve runs e until ctx is cancelled or the listener fails.
func serve(ctx context.Context, e httpServer, port string, appLogger *zap.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("http server listening", zap.String("port", port))
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		appLogger.Error("http server stopped", zap.Error(err))
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http server shutdown failed", zap.Error(err))
		return err
	}
	appLogger.Info("http server stopped gracefully")
	return nil
}
