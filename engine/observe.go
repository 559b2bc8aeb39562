package engine

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/logger"
	"github.com/kbukum/knife/observability"
)

// WithTracing wraps a Verb with OpenTelemetry span creation.
// Each invocation creates a span named "{prefix}.{verbName}" carrying the
// queue identity found in the context.
func WithTracing(v Verb, prefix string) Verb {
	return &tracingVerb{inner: v, prefix: prefix}
}

type tracingVerb struct {
	inner  Verb
	prefix string
}

func (v *tracingVerb) Name() string { return v.inner.Name() }

func (v *tracingVerb) Apply(ctx context.Context, s *Session) error {
	spanName := v.prefix + "." + v.inner.Name()
	attrs := observability.OperationContextFromContext(ctx).Attributes()
	ctx, span := observability.StartSpan(ctx, spanName, trace.WithAttributes(attrs...))
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrVerb, v.inner.Name())
	observability.SetSpanAttribute(ctx, observability.AttrBackend, s.Kind().String())

	err := v.inner.Apply(ctx, s)
	if err != nil {
		observability.SetSpanAttribute(ctx, observability.AttrStatus, "error")
		observability.SetSpanError(ctx, err)
	} else {
		observability.SetSpanAttribute(ctx, observability.AttrStatus, "ok")
	}
	return err
}

// WithMetrics wraps a Verb with metric recording.
// Records invocation count, duration, errors by code and committed output.
func WithMetrics(v Verb, metrics *observability.Metrics) Verb {
	return &metricsVerb{inner: v, metrics: metrics}
}

type metricsVerb struct {
	inner   Verb
	metrics *observability.Metrics
}

func (v *metricsVerb) Name() string { return v.inner.Name() }

func (v *metricsVerb) Apply(ctx context.Context, s *Session) error {
	start := time.Now()
	err := v.inner.Apply(ctx, s)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		v.metrics.RecordError(ctx, errorCode(err), v.inner.Name())
	} else {
		v.metrics.RecordCommit(ctx, v.inner.Name(), s.pendingCount())
	}
	v.metrics.RecordVerb(ctx, v.inner.Name(), s.Kind().String(), status, duration)

	return err
}

// WithLogging wraps a Verb with invocation logging.
// Successful verbs log at debug level, failures at warn.
func WithLogging(v Verb, log *logger.Logger) Verb {
	return &loggingVerb{inner: v, log: log}
}

type loggingVerb struct {
	inner Verb
	log   *logger.Logger
}

func (v *loggingVerb) Name() string { return v.inner.Name() }

func (v *loggingVerb) Apply(ctx context.Context, s *Session) error {
	start := time.Now()
	err := v.inner.Apply(ctx, s)

	fields := logger.Fields(
		logger.FieldVerb, v.inner.Name(),
		logger.FieldRotation, s.Rotation().String(),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	)

	log := v.log.WithContext(ctx)
	if err != nil {
		log.Warn("verb failed", logger.MergeWithError(fields, err))
	} else {
		log.Debug("verb applied", fields)
	}

	return err
}

// errorCode labels err for metrics. Errors raised by a tapped callable
// carry no code and are labelled UNKNOWN.
func errorCode(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return "UNKNOWN"
}
