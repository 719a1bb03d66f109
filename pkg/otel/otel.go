package otel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

type Telemetry struct {
	serviceName       string
	serviceVersion    string
	collectorGRPCAddr string

	sampleRate float64
	logLevel   slog.Level
	logFormat  string

	res       *resource.Resource
	log       *slog.Logger
	shutdowns []func(ctx context.Context) error
}

// Configure configures OpenTelemetry tracing, metrics, and logging globally.
//
// After configuring, you can use [go.opentelemetry.io/otel.Tracer] and [go.opentelemetry.io/otel.Meter].
// To get an instrumented logger, use [slog.Default].
func Configure(ctx context.Context, serviceName, collectorGRPCAddr string, opts ...Option) (*Telemetry, error) {
	if collectorGRPCAddr == "" {
		return nil, errors.New("collector GRPC address is empty")
	}

	if serviceName == "" {
		return nil, errors.New("service name is empty")
	}

	otel.SetTextMapPropagator(propagation.TraceContext{})

	t := &Telemetry{
		serviceName:       serviceName,
		collectorGRPCAddr: collectorGRPCAddr,
		sampleRate:        1,
		logLevel:          slog.LevelInfo,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.res = resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(t.serviceName),
		semconv.ServiceVersion(t.serviceVersion),
	)

	if err := t.configureTrace(ctx); err != nil {
		return nil, fmt.Errorf("configure trace: %v", err)
	}

	if err := t.configureSlog(ctx); err != nil {
		return nil, fmt.Errorf("configure slog: %v", err)
	}

	if err := t.configureMetric(ctx); err != nil {
		return nil, fmt.Errorf("configure metric: %v", err)
	}

	return t, nil
}

// Shutdown must be called before application exit to ensure all telemetry data is
// flushed and resources are properly released.
func (t *Telemetry) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for _, shutdown := range t.shutdowns {
		if err := shutdown(ctx); err != nil {
			fmt.Printf("Failed to shutdown OTEL: %v\n", err)
		}
	}
}

func (t *Telemetry) configureMetric(ctx context.Context) error {
	exporter, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(t.collectorGRPCAddr),
	)
	if err != nil {
		return err
	}

	provider := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(
			exporter,
			metric.WithInterval(time.Second*5)),
		),
		metric.WithResource(t.res),
	)

	otel.SetMeterProvider(provider)

	t.shutdowns = append(t.shutdowns, provider.Shutdown)

	return runtime.Start(runtime.WithMinimumReadMemStatsInterval(time.Second * 5))
}

func (t *Telemetry) configureSlog(ctx context.Context) error {
	exporter, err := otlploggrpc.New(
		ctx,
		otlploggrpc.WithEndpoint(t.collectorGRPCAddr),
		otlploggrpc.WithInsecure(),
	)
	if err != nil {
		return fmt.Errorf("create GRPC exporter: %w", err)
	}

	provider := log.NewLoggerProvider(
		log.WithProcessor(log.NewBatchProcessor(exporter)),
		log.WithResource(t.res),
	)

	global.SetLoggerProvider(provider)

	t.log = slog.New(newFanoutHandler(
		newStdoutHandler(os.Stdout, t.logFormat, t.logLevel),
		otelslog.NewHandler(
			t.serviceName,
			otelslog.WithSource(true),
			otelslog.WithLoggerProvider(provider),
		),
	))

	slog.SetLogLoggerLevel(t.logLevel)
	slog.SetDefault(t.log)

	t.shutdowns = append(t.shutdowns, provider.Shutdown)

	return nil
}

func (t *Telemetry) configureTrace(ctx context.Context) error {
	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(t.collectorGRPCAddr),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return err
	}

	provider := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(t.sampleRate))),
		trace.WithBatcher(exporter),
		trace.WithResource(t.res),
	)

	otel.SetTracerProvider(provider)

	t.shutdowns = append(t.shutdowns, provider.Shutdown)

	return nil
}
