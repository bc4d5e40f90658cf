// Package observability owns the process-wide tracing setup and the domain
// Prometheus collectors (cache, fallback, text generator, breaker).
package observability

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc/credentials"

	"github.com/tbourn/bhakti-feed/internal/config"
)

// Test seams.
var (
	newOTLPClient = otlptracegrpc.NewClient

	newOTLPExporterFn = func(ctx context.Context, client otlptrace.Client) (*otlptrace.Exporter, error) {
		return otlptrace.New(ctx, client)
	}

	newServiceResourceFn = func(ctx context.Context, serviceName, version string) (*resource.Resource, error) {
		return resource.New(
			ctx,
			resource.WithFromEnv(),
			resource.WithHost(),
			resource.WithAttributes(
				semconv.ServiceName(serviceName),
				semconv.ServiceVersion(version),
				semconv.ServiceNamespace("bhakti"),
			),
		)
	}
)

// Option customizes SetupOTel.
type Option func(*setupOptions)

type setupOptions struct {
	log *zerolog.Logger
}

// WithLogger routes exporter and SDK errors to log instead of stderr.
func WithLogger(log zerolog.Logger) Option {
	return func(o *setupOptions) { o.log = &log }
}

// SetupOTel configures OpenTelemetry tracing and returns a shutdown
// function that flushes pending spans. When tracing is disabled the
// returned function is a no-op and the global provider is untouched, so
// otelgin and the gorm plugin record into the default no-op tracer.
func SetupOTel(ctx context.Context, cfg config.OTELConfig, version string, opts ...Option) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	var o setupOptions
	for _, fn := range opts {
		fn(&o)
	}

	copts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		copts = append(copts, otlptracegrpc.WithInsecure())
	} else {
		copts = append(copts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}

	exp, err := newOTLPExporterFn(ctx, newOTLPClient(copts...))
	if err != nil {
		return nil, err
	}

	res, err := newServiceResourceFn(ctx, cfg.ServiceName, version)
	if err != nil {
		// partial resources still carry the service attributes
		if res == nil || !errors.Is(err, resource.ErrPartialResource) {
			_ = exp.Shutdown(ctx)
			return nil, err
		}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clampRatio(cfg.SampleRatio)))),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	if o.log != nil {
		l := o.log.With().Str("component", "otel").Logger()
		otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
			l.Warn().Err(err).Msg("telemetry error")
		}))
	}

	return tp.Shutdown, nil
}

func clampRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
