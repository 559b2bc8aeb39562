// Package observability provides OpenTelemetry tracing and metrics for
// knife queues.
//
// Nothing is exported unless the embedding application installs a
// provider; without one the global no-op providers are used and
// instrumented verbs cost a few function calls.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanVerb)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("knife"))
//	metrics.RecordVerb(ctx, "map", "eager", "ok", duration)
package observability
