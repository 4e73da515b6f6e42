package otel

import (
	"context"
	"io"
	"time"

	"resort/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc/credentials/insecure"
)

const flushTimeout = 5 * time.Second

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type tracer struct {
	provider oteltrace.TracerProvider
}

// NewWithProvider builds an Otel on top of an existing provider.
func NewWithProvider(provider oteltrace.TracerProvider) Otel {
	return &tracer{provider: provider}
}

func (t *tracer) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := t.provider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// New exports spans over OTLP gRPC. Without an endpoint, or when the
// exporter cannot be built, spans go to a no-op provider.
func New(cfg *config.Config) Otel {
	endpoint := cfg.External.Otel.Endpoint
	if endpoint == "" {
		log.Warn().Msg("OTEL endpoint is not set, tracing disabled")

		return NewWithProvider(noop.NewTracerProvider())
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("Failed to create OTLP exporter, tracing disabled")

		return NewWithProvider(noop.NewTracerProvider())
	}

	provider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.App.Name),
			semconv.DeploymentEnvironmentKey.String(cfg.Server.Env),
		)),
	)

	otel.SetTracerProvider(provider)
	log.Info().Str("endpoint", endpoint).Msg("Tracing enabled")

	return NewWithProvider(provider)
}

// Shutdown flushes pending spans when the provider is an SDK one.
func Shutdown(ctx context.Context, o Otel) error {
	t, ok := o.(*tracer)
	if !ok {
		return nil
	}

	sdk, ok := t.provider.(*trace.TracerProvider)
	if !ok {
		return nil
	}

	return sdk.Shutdown(ctx) //nolint:wrapcheck
}

type closer struct {
	otel Otel
}

func (c closer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	return Shutdown(ctx, c.otel)
}

// Closer adapts Shutdown to io.Closer for the server's shutdown list.
func Closer(o Otel) io.Closer {
	return closer{otel: o}
}
