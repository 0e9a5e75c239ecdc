// Package metrics exposes OpenTelemetry counters for store activity.
package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	invoicesCreated metric.Int64Counter
	invoicesUpdated metric.Int64Counter
	invoicesDeleted metric.Int64Counter
	notifications   metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "folio"
	}
	meter := provider.Meter(name)

	invoicesCreated, err := meter.Int64Counter("folio_invoices_created_total")
	if err != nil {
		return nil, err
	}
	invoicesUpdated, err := meter.Int64Counter("folio_invoices_updated_total")
	if err != nil {
		return nil, err
	}
	invoicesDeleted, err := meter.Int64Counter("folio_invoices_deleted_total")
	if err != nil {
		return nil, err
	}
	notifications, err := meter.Int64Counter("folio_store_notifications_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		invoicesCreated: invoicesCreated,
		invoicesUpdated: invoicesUpdated,
		invoicesDeleted: invoicesDeleted,
		notifications:   notifications,
	}, nil
}

// RecordInvoiceCreated increments the created counter with the derived status.
func (m *Metrics) RecordInvoiceCreated(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.invoicesCreated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", strings.TrimSpace(status)),
	))
}

// RecordInvoiceUpdated increments the updated counter.
func (m *Metrics) RecordInvoiceUpdated(ctx context.Context) {
	if m == nil {
		return
	}
	m.invoicesUpdated.Add(ctx, 1)
}

// RecordInvoiceDeleted increments the deleted counter.
func (m *Metrics) RecordInvoiceDeleted(ctx context.Context) {
	if m == nil {
		return
	}
	m.invoicesDeleted.Add(ctx, 1)
}

// RecordNotifications adds the number of observers notified by a mutation.
func (m *Metrics) RecordNotifications(ctx context.Context, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.notifications.Add(ctx, int64(n))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "", "grpc":
		return otlpmetricgrpc.New(context.Background(),
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	case "http", "http/protobuf":
		return otlpmetrichttp.New(context.Background(),
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported otlp protocol %q", protocol)
	}
}
