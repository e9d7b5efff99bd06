// Package metrics exports storefront metrics over OTLP/HTTP with OpenTelemetry.
package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/DsDac0/Website/pkg/config"
	"github.com/DsDac0/Website/pkg/logger"
)

type AppMetrics struct {
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestsErrors  metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram

	OrdersCreated   metric.Int64Counter
	RevenueTotal    metric.Float64Counter
	ContactMessages metric.Int64Counter
	CacheHits       metric.Int64Counter
	CacheMisses     metric.Int64Counter

	serviceName string
}

// ShutdownFunc flushes and stops the exporter.
type ShutdownFunc func(ctx context.Context) error

// Init builds the meter provider. When metrics are disabled the instruments
// come from a noop provider, so callers never need nil checks.
func Init(ctx context.Context, cfg config.MetricsConfig) (*AppMetrics, ShutdownFunc, error) {
	if !cfg.Enabled {
		m, err := newAppMetrics(noop.NewMeterProvider().Meter(cfg.ServiceName), cfg.ServiceName)
		return m, func(context.Context) error { return nil }, err
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build metrics resource: %w", err)
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
		otlpmetrichttp.WithURLPath("/v1/metrics"),
	}
	if cfg.Headers != "" {
		opts = append(opts, otlpmetrichttp.WithHeaders(ParseHeaders(cfg.Headers)))
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(15*time.Second))),
	)
	otel.SetMeterProvider(provider)

	m, err := newAppMetrics(provider.Meter(cfg.ServiceName), cfg.ServiceName)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, err
	}

	logger.Info("Metrics exporter initialized", "endpoint", cfg.Endpoint, "service", cfg.ServiceName)
	return m, provider.Shutdown, nil
}

// NewNoop returns instruments that record nothing; used by tests and CLIs.
func NewNoop() *AppMetrics {
	m, _ := newAppMetrics(noop.NewMeterProvider().Meter("noop"), "noop")
	return m
}

func newAppMetrics(meter metric.Meter, serviceName string) (*AppMetrics, error) {
	m := &AppMetrics{serviceName: serviceName}
	var err error

	if m.HTTPRequestsTotal, err = meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Total number of HTTP requests"), metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("http request counter: %w", err)
	}
	if m.HTTPRequestsErrors, err = meter.Int64Counter("http.server.request.errors",
		metric.WithDescription("HTTP requests answered with 4xx or 5xx"), metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("http error counter: %w", err)
	}
	if m.HTTPRequestDuration, err = meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request duration"), metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(2, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000)); err != nil {
		return nil, fmt.Errorf("http duration histogram: %w", err)
	}
	if m.OrdersCreated, err = meter.Int64Counter("orders_created_total",
		metric.WithDescription("Orders placed"), metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("orders counter: %w", err)
	}
	if m.RevenueTotal, err = meter.Float64Counter("revenue_total",
		metric.WithDescription("Submitted order totals"), metric.WithUnit("MKD")); err != nil {
		return nil, fmt.Errorf("revenue counter: %w", err)
	}
	if m.ContactMessages, err = meter.Int64Counter("contact_messages_total",
		metric.WithDescription("Contact form submissions"), metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("contact counter: %w", err)
	}
	if m.CacheHits, err = meter.Int64Counter("cache_hits_total", metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("cache hit counter: %w", err)
	}
	if m.CacheMisses, err = meter.Int64Counter("cache_misses_total", metric.WithUnit("1")); err != nil {
		return nil, fmt.Errorf("cache miss counter: %w", err)
	}
	return m, nil
}

func (m *AppMetrics) attrs(kv ...attribute.KeyValue) metric.MeasurementOption {
	return metric.WithAttributes(append(kv, attribute.String("service.name", m.serviceName))...)
}

func (m *AppMetrics) RecordHTTPRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	opt := m.attrs(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	m.HTTPRequestsTotal.Add(ctx, 1, opt)
	if status >= 400 {
		m.HTTPRequestsErrors.Add(ctx, 1, opt)
	}
	m.HTTPRequestDuration.Record(ctx, float64(elapsed.Microseconds())/1000, opt)
}

func (m *AppMetrics) RecordOrder(ctx context.Context, paymentMethod string, total float64) {
	opt := m.attrs(attribute.String("payment_method", paymentMethod))
	m.OrdersCreated.Add(ctx, 1, opt)
	m.RevenueTotal.Add(ctx, total, opt)
}

func (m *AppMetrics) RecordContactMessage(ctx context.Context) {
	m.ContactMessages.Add(ctx, 1, m.attrs())
}

func (m *AppMetrics) RecordCache(ctx context.Context, key string, hit bool) {
	opt := m.attrs(attribute.String("cache.key", key))
	if hit {
		m.CacheHits.Add(ctx, 1, opt)
		return
	}
	m.CacheMisses.Add(ctx, 1, opt)
}

// ParseHeaders parses "k1=v1,k2=v2" into a header map.
func ParseHeaders(s string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || strings.TrimSpace(k) == "" {
			continue
		}
		headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return headers
}
