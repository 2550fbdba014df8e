package tracer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

// Options configures the telemetry pipeline.
type Options struct {
	ServiceName string
	Version     string
	// MetricsAddr is where the Prometheus scrape endpoint listens. Empty
	// keeps the meter provider but serves nothing.
	MetricsAddr string
	// OTLPEndpoint is the collector's host:port. Empty disables trace export.
	OTLPEndpoint string
}

// Providers owns the installed tracer and meter providers and the scrape server.
type Providers struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *http.Server
	logger  *zap.Logger
}

// InitOtelProviders installs global tracer and meter providers. Trace export
// failures degrade to an in-process provider; only a broken metrics exporter
// is fatal.
func InitOtelProviders(opts Options, logger *zap.Logger) (*Providers, error) {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(opts.ServiceName),
		semconv.ServiceVersion(opts.Version),
	)

	p := &Providers{logger: logger}
	p.tracer = newTracerProvider(res, opts.OTLPEndpoint, logger)
	otel.SetTracerProvider(p.tracer)
	// propagate into backend calls made through otelhttp
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	promExporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	p.meter = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(promExporter),
	)
	otel.SetMeterProvider(p.meter)

	if opts.MetricsAddr != "" {
		p.serveMetrics(opts.MetricsAddr)
	}
	return p, nil
}

func newTracerProvider(res *resource.Resource, endpoint string, logger *zap.Logger) *sdktrace.TracerProvider {
	if endpoint == "" {
		logger.Info("Trace export disabled")
		return sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	}

	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		logger.Warn("OTLP trace exporter unavailable, spans stay in process",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
}

func (p *Providers) serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	p.metrics = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		p.logger.Info("Starting metrics server", zap.String("addr", addr))
		if err := p.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			p.logger.Error("Metrics server stopped", zap.Error(err))
		}
	}()
}

// Shutdown flushes pending spans and stops the scrape server.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.metrics != nil {
		if err := p.metrics.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server: %w", err))
		}
	}
	if err := p.meter.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("meter provider: %w", err))
	}
	if err := p.tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracer provider: %w", err))
	}
	return errors.Join(errs...)
}
