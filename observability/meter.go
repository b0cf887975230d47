package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded around creation and release.
type Metrics struct {
	creationTotal  metric.Int64Counter
	creationErrors metric.Int64Counter
	releaseTotal   metric.Int64Counter
	handlesLive    metric.Int64UpDownCounter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	creationTotal, err := meter.Int64Counter("creation.total",
		metric.WithDescription("Products handed out by factories"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating creation.total counter: %w", err)
	}

	creationErrors, err := meter.Int64Counter("creation.errors",
		metric.WithDescription("Creation calls that failed to construct a product"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating creation.errors counter: %w", err)
	}

	releaseTotal, err := meter.Int64Counter("release.total",
		metric.WithDescription("Handles released by their owner"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating release.total counter: %w", err)
	}

	handlesLive, err := meter.Int64UpDownCounter("handles.live",
		metric.WithDescription("Handles created and not yet released"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating handles.live gauge: %w", err)
	}

	return &Metrics{
		creationTotal:  creationTotal,
		creationErrors: creationErrors,
		releaseTotal:   releaseTotal,
		handlesLive:    handlesLive,
	}, nil
}

// RecordCreation records a successful creation call.
func (m *Metrics) RecordCreation(ctx context.Context, factory, product, variant string) {
	m.creationTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("factory", factory),
		attribute.String("product", product),
		attribute.String("variant", variant),
	))
	m.handlesLive.Add(ctx, 1, metric.WithAttributes(
		attribute.String("factory", factory),
	))
}

// RecordCreationError records a creation call that failed.
func (m *Metrics) RecordCreationError(ctx context.Context, factory, product string) {
	m.creationErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("factory", factory),
		attribute.String("product", product),
	))
}

// RecordRelease records a handle being released.
func (m *Metrics) RecordRelease(ctx context.Context, factory, product string) {
	m.releaseTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("factory", factory),
		attribute.String("product", product),
	))
	m.handlesLive.Add(ctx, -1, metric.WithAttributes(
		attribute.String("factory", factory),
	))
}
