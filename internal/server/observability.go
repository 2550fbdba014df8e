package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/app/observability/metrics"
	"github.com/FACorreiaa/go-supra/internal/app/observability/tracer"
	"github.com/FACorreiaa/go-supra/internal/pkg/config"
)

// ObservabilityShutdownFunc is the function type returned by InitObservability
type ObservabilityShutdownFunc func(context.Context) error

// InitObservability initializes OpenTelemetry and application metrics
func InitObservability(cfg config.ObservabilityConfig, logger *zap.Logger) (ObservabilityShutdownFunc, error) {
	providers, err := tracer.InitOtelProviders(tracer.Options{
		ServiceName:  cfg.ServiceName,
		MetricsAddr:  cfg.MetricsAddr,
		OTLPEndpoint: cfg.OTLPEndpoint,
	}, logger.Named("otel"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	// Instruments must be created after the meter provider is installed.
	metrics.InitAppMetrics()
	logger.Info("Observability initialized",
		zap.String("service", cfg.ServiceName),
		zap.String("metrics_addr", cfg.MetricsAddr),
		zap.String("otlp_endpoint", cfg.OTLPEndpoint))

	return providers.Shutdown, nil
}
