package queue

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/config"
	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/logger"
	"github.com/kbukum/knife/observability"
	"github.com/kbukum/knife/testutil"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{Backend: " Lazy ", Policy: "MANUAL"}
	cfg.ApplyDefaults()
	if cfg.Backend != "lazy" || cfg.Policy != "manual" {
		t.Errorf("expected normalised names, got %+v", cfg)
	}
	if cfg.MaxSnapshots != engine.DefaultMaxSnapshots {
		t.Errorf("expected default snapshots, got %d", cfg.MaxSnapshots)
	}

	var empty Config
	empty.ApplyDefaults()
	if empty.Backend != "eager" || empty.Policy != "replace" {
		t.Errorf("expected eager/replace defaults, got %+v", empty)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"unknown backend", Config{Backend: "disk"}, true},
		{"unknown policy", Config{Policy: "sometimes"}, true},
		{"negative snapshots", Config{MaxSnapshots: -1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantErr {
				testutil.T(t).ErrorCode(err, errors.ErrCodeInvalidInput)
				return
			}
			testutil.T(t).NoError(err)
		})
	}
}

func TestFromConfig(t *testing.T) {
	h := testutil.T(t)

	q, err := FromConfig(Config{Backend: "lazy", Policy: "manual", Metrics: true}, 1, 2, 3)
	h.NoError(err)
	h.Equal(q.Backend(), buffer.KindLazy)
	h.Equal(q.Policy(), engine.Manual)
	v, err := q.Sum().Value()
	h.NoError(err)
	h.Equal(v, 6)
	h.Equal(q.Len(), 3)

	_, err = FromConfig(Config{Backend: "disk"})
	h.ErrorCode(err, errors.ErrCodeInvalidInput)

	_, err = FromConfig(Config{}, 7)
	h.ErrorCode(err, errors.ErrCodeNotIterable)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knife.yml")
	if err := os.WriteFile(path, []byte("backend: lazy\npolicy: accumulate\nlogging: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KNIFE_MAX_SNAPSHOTS", "7")

	cfg, err := LoadConfig("knife", config.WithConfigFile(path), config.WithEnvFile(filepath.Join(dir, ".env")))
	testutil.T(t).NoError(err)
	if cfg.Backend != "lazy" || cfg.Policy != "accumulate" || !cfg.Logging {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.MaxSnapshots != 7 {
		t.Errorf("expected env override 7, got %d", cfg.MaxSnapshots)
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("policy: sometimes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig("bad", config.WithConfigFile(bad)); err == nil {
		t.Error("expected validation error")
	}
}

func TestQueue_Instrumentation(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})

	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "queue-test", &buf)

	q := NewWithOptions(Options{Tracing: true, Logging: true, Logger: log}, 1, 2, 3)
	q.Sum()
	q.First(5).Max()
	testutil.T(t).NoError(q.Err())
	q.Detap().Apply("median").Reduce()

	spans := rec.Ended()
	if len(spans) != 5 {
		t.Fatalf("expected 5 spans, got %d", len(spans))
	}
	if spans[0].Name() != "knife.sum" {
		t.Errorf("expected span knife.sum, got %s", spans[0].Name())
	}
	var queueID string
	for _, kv := range spans[0].Attributes() {
		if string(kv.Key) == observability.AttrQueueID {
			queueID = kv.Value.AsString()
		}
	}
	if queueID != q.ID() {
		t.Errorf("expected span tagged with queue id %s, got %q", q.ID(), queueID)
	}

	out := buf.String()
	for _, want := range []string{`"message":"verb applied"`, `"message":"verb failed"`, q.ID(), `"verb":"reduce"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in log output:\n%s", want, out)
		}
	}
}
