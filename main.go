package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/pkg/config"
	"github.com/FACorreiaa/go-supra/internal/pkg/logger"
	"github.com/FACorreiaa/go-supra/internal/routes"
	"github.com/FACorreiaa/go-supra/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), zap.String("service", cfg.Observability.ServiceName)); err != nil {
		return err
	}
	defer func() { _ = logger.Log.Sync() }()
	appLogger := logger.Log

	otelShutdown, err := server.InitObservability(cfg.Observability, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			appLogger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv := server.New(cfg, appLogger)

	deps := routes.NewDependencies(cfg, appLogger)
	router := server.SetupRouter(cfg, deps, appLogger)
	server.SetupAssets(router)
	srv.SetRouter(router)

	// Internal only; leave PPROF_ADDR empty to disable.
	server.StartPprofServer(cfg.Observability.PprofAddr, appLogger.Named("pprof"))

	httpServer := srv.HTTPServer()

	done := make(chan struct{})
	go server.GracefulShutdown(httpServer, cfg.Backend.Timeout, appLogger, done)

	appLogger.Info("Server starting",
		zap.String("port", cfg.ServerPort),
		zap.String("backend", cfg.Backend.BaseURL))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	appLogger.Info("Graceful shutdown complete")
	return nil
}
