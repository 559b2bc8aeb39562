package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// OperationContext identifies the queue a verb runs on, so instrumentation
// deep in the engine can tag spans and metrics without extra parameters.
type OperationContext struct {
	QueueID   string
	Backend   string
	Policy    string
	StartTime time.Time
	Metrics   *Metrics
}

// NewOperationContext creates a new operation context.
// If metrics is nil, metric recording is silently skipped.
func NewOperationContext(queueID, backend, policy string, metrics *Metrics) *OperationContext {
	return &OperationContext{
		QueueID:   queueID,
		Backend:   backend,
		Policy:    policy,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

// operationContextKey is the context key for OperationContext.
type operationContextKey struct{}

// WithOperationContext stores an OperationContext in the context.
func WithOperationContext(ctx context.Context, oc *OperationContext) context.Context {
	return context.WithValue(ctx, operationContextKey{}, oc)
}

// OperationContextFromContext retrieves the OperationContext from context, or nil.
func OperationContextFromContext(ctx context.Context) *OperationContext {
	if oc, ok := ctx.Value(operationContextKey{}).(*OperationContext); ok {
		return oc
	}
	return nil
}

// Attributes returns the queue identity as span attributes. A nil receiver
// yields none.
func (oc *OperationContext) Attributes() []attribute.KeyValue {
	if oc == nil {
		return nil
	}
	return []attribute.KeyValue{
		attribute.String(AttrQueueID, oc.QueueID),
		attribute.String(AttrBackend, oc.Backend),
		attribute.String(AttrPolicy, oc.Policy),
	}
}

// Duration returns the elapsed time since the queue was created.
func (oc *OperationContext) Duration() time.Duration {
	return time.Since(oc.StartTime)
}
