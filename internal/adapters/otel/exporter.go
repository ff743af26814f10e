package otel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/folio/internal/config"
	"github.com/emiliopalmerini/folio/internal/ports"
)

const (
	serviceName    = "folio"
	serviceVersion = "1.0.0"
)

// ErrDisabled is returned by NewExporter when exporting is switched off.
var ErrDisabled = errors.New("OTEL exporter is disabled or endpoint not configured")

// Exporter exports render metrics to an OTEL Collector.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	rendersTotal metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewExporter creates an OTLP gRPC metrics exporter.
func NewExporter(ctx context.Context, cfg config.OTEL) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, ErrDisabled
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	return newExporter(ctx, sdkmetric.NewPeriodicReader(exp))
}

func newExporter(ctx context.Context, reader sdkmetric.Reader) (*Exporter, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	rendersTotal, err := meter.Int64Counter(
		"folio_renders_total",
		metric.WithDescription("Total number of rendered pages and fragments"),
		metric.WithUnit("{render}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating renders counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"folio_render_duration_seconds",
		metric.WithDescription("Time spent rendering a view"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:     provider,
		rendersTotal: rendersTotal,
		durationHist: durationHist,
	}, nil
}

// RecordRender counts one render of view and its duration.
func (e *Exporter) RecordRender(ctx context.Context, view string, took time.Duration) {
	opt := metric.WithAttributes(attribute.String("view", view))
	e.rendersTotal.Add(ctx, 1, opt)
	e.durationHist.Record(ctx, took.Seconds(), opt)
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}

// NewRenderMetrics returns the OTLP exporter when configured and a no-op
// recorder otherwise.
func NewRenderMetrics(ctx context.Context, cfg config.OTEL) (ports.RenderMetrics, error) {
	exp, err := NewExporter(ctx, cfg)
	if errors.Is(err, ErrDisabled) {
		return NewNoOpExporter(), nil
	}
	if err != nil {
		return nil, err
	}
	return exp, nil
}
