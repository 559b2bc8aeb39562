package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return rec
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.ServiceVersion == "" {
		t.Error("expected a service version")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{0.5, "TraceIDRatioBased{0.5}"},
	}
	for _, tc := range tests {
		if got := samplerFor(tc.rate).Description(); got != tc.want {
			t.Errorf("samplerFor(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestNewMetrics_Noop(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	ctx := context.Background()
	metrics.RecordVerb(ctx, "map", "eager", "ok", 10*time.Millisecond)
	metrics.RecordError(ctx, "EXHAUSTED", "first")
	metrics.RecordCommit(ctx, "map", 3)
	metrics.RecordCommit(ctx, "flatten", -1)
}

func TestMetrics_ManualReader(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := NewMetrics(mp.Meter("knife"))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	metrics.RecordVerb(ctx, "sum", "lazy", "ok", time.Millisecond)
	metrics.RecordVerb(ctx, "sum", "lazy", "ok", time.Millisecond)
	metrics.RecordCommit(ctx, "sum", 1)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}

	found := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			found[m.Name] = true
			if m.Name == "verb.total" {
				sum, ok := m.Data.(metricdata.Sum[int64])
				if !ok || len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 2 {
					t.Errorf("expected verb.total=2, got %+v", m.Data)
				}
			}
		}
	}
	for _, name := range []string{"verb.total", "verb.duration", "session.commits", "session.committed"} {
		if !found[name] {
			t.Errorf("expected metric %s to be collected", name)
		}
	}
}

func TestStartSpan(t *testing.T) {
	rec := withRecorder(t)

	ctx, span := StartSpan(context.Background(), SpanVerb)
	SetSpanAttribute(ctx, AttrVerb, "map")
	SetSpanAttribute(ctx, AttrStaged, 3)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "slice-key", []string{"a", "b"})
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
	span.End()

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != SpanVerb {
		t.Errorf("expected span name %s, got %s", SpanVerb, spans[0].Name())
	}
	if n := len(spans[0].Attributes()); n != 6 {
		t.Errorf("expected 6 attributes, got %d", n)
	}
}

func TestSetSpanError(t *testing.T) {
	rec := withRecorder(t)

	ctx, span := StartSpan(context.Background(), "test-error")
	SetSpanError(ctx, fmt.Errorf("test error"))
	span.End()

	s := rec.Ended()[0]
	if s.Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", s.Status())
	}
	if len(s.Events()) != 1 {
		t.Errorf("expected one recorded error event, got %d", len(s.Events()))
	}
}

func TestSpanHelpersNoSpan(t *testing.T) {
	ctx := context.Background()
	SetSpanAttribute(ctx, "key", "value")
	SetSpanError(ctx, fmt.Errorf("no span error"))
	if SpanFromContext(ctx) == nil {
		t.Fatal("expected non-nil noop span")
	}
}

func TestTracerAndMeter(t *testing.T) {
	if Tracer("test-tracer") == nil {
		t.Fatal("expected non-nil tracer")
	}
	if Meter("test-meter") == nil {
		t.Fatal("expected non-nil meter")
	}
}

func TestOperationContext(t *testing.T) {
	oc := NewOperationContext("q-1", "lazy", "replace", nil)
	ctx := WithOperationContext(context.Background(), oc)

	got := OperationContextFromContext(ctx)
	if got != oc {
		t.Fatal("expected the stored operation context")
	}
	attrs := got.Attributes()
	if len(attrs) != 3 || attrs[0].Value.AsString() != "q-1" {
		t.Errorf("unexpected attributes %v", attrs)
	}
	if got.Duration() < 0 {
		t.Error("expected non-negative duration")
	}

	if OperationContextFromContext(context.Background()) != nil {
		t.Error("expected nil without an operation context")
	}
	var none *OperationContext
	if none.Attributes() != nil {
		t.Error("expected no attributes from a nil context")
	}
}

func TestInitTracer(t *testing.T) {
	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	cfg := DefaultTracerConfig("test-service")
	tp, err := InitTracer(context.Background(), cfg)
	if err != nil {
		t.Skipf("InitTracer failed (schema conflict): %v", err)
	}
	_ = tp.Shutdown(context.Background())
}

func TestInitMeter(t *testing.T) {
	prev := otel.GetMeterProvider()
	defer otel.SetMeterProvider(prev)

	cfg := DefaultMeterConfig("test-service")
	cfg.Interval = 0
	mp, err := InitMeter(context.Background(), cfg)
	if err != nil {
		t.Skipf("InitMeter failed (schema conflict): %v", err)
	}
	_ = mp.Shutdown(context.Background())
}
