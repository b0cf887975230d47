// Package observability provides OpenTelemetry tracing and metrics helpers
// for factory instrumentation.
//
// The package never installs a provider or exporter itself: spans and
// instruments go to whatever global TracerProvider / MeterProvider the host
// application configured, and are no-ops otherwise.
//
// Tracing:
//
//	ctx, span := observability.StartSpan(ctx, "factory.create_product_a")
//	defer span.End()
//
// Metrics:
//
//	metrics, err := observability.NewMetrics(observability.Meter("creational"))
//	metrics.RecordCreation(ctx, "variant-1", "product_a", "1")
package observability
