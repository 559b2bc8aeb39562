package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/knife/logger"
	"github.com/kbukum/knife/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the embedding service.
	ServiceName string
	// ServiceVersion is the version reported with every metric.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) *MeterConfig {
	return &MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.GetVersionInfo().Version,
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The provider should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Get("knife.observability").Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the verb instruments.
type Metrics struct {
	verbTotal      metric.Int64Counter
	verbDuration   metric.Float64Histogram
	verbErrors     metric.Int64Counter
	sessionCommits metric.Int64Counter
	committed      metric.Int64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	verbTotal, err := meter.Int64Counter("verb.total",
		metric.WithDescription("Total number of verb invocations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating verb.total counter: %w", err)
	}

	verbDuration, err := meter.Float64Histogram("verb.duration",
		metric.WithDescription("Duration of verb invocations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating verb.duration histogram: %w", err)
	}

	verbErrors, err := meter.Int64Counter("verb.errors",
		metric.WithDescription("Failed verb invocations by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating verb.errors counter: %w", err)
	}

	sessionCommits, err := meter.Int64Counter("session.commits",
		metric.WithDescription("Sessions that committed their pending output"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating session.commits counter: %w", err)
	}

	committed, err := meter.Int64Histogram("session.committed",
		metric.WithDescription("Elements committed per session"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating session.committed histogram: %w", err)
	}

	return &Metrics{
		verbTotal:      verbTotal,
		verbDuration:   verbDuration,
		verbErrors:     verbErrors,
		sessionCommits: sessionCommits,
		committed:      committed,
	}, nil
}

// RecordVerb records one verb invocation.
func (m *Metrics) RecordVerb(ctx context.Context, verb, backend, status string, duration time.Duration) {
	m.verbTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("verb", verb),
		attribute.String("backend", backend),
		attribute.String("status", status),
	))
	m.verbDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("verb", verb),
		attribute.String("backend", backend),
	))
}

// RecordError records a failed verb by error code.
func (m *Metrics) RecordError(ctx context.Context, code, verb string) {
	m.verbErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("verb", verb),
	))
}

// RecordCommit records a committed session. A negative count means the
// output stayed lazy and was not counted.
func (m *Metrics) RecordCommit(ctx context.Context, verb string, count int) {
	attrs := metric.WithAttributes(attribute.String("verb", verb))
	m.sessionCommits.Add(ctx, 1, attrs)
	if count >= 0 {
		m.committed.Record(ctx, int64(count), attrs)
	}
}
