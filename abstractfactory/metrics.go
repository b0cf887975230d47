package abstractfactory

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/creational/observability"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/variant"
)

// WithMetrics returns a Middleware that counts creations, creation errors and
// releases. Handles are re-wrapped so the release is observed.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(inner Factory) Factory {
		return &metricsFactory{inner: inner, metrics: metrics}
	}
}

type metricsFactory struct {
	inner   Factory
	metrics *observability.Metrics
}

func (m *metricsFactory) Name() string        { return m.inner.Name() }
func (m *metricsFactory) Variant() variant.ID { return m.inner.Variant() }

func (m *metricsFactory) CreateProductA() (*owned.Handle[ProductA], error) {
	h, err := m.inner.CreateProductA()
	return observe(m, "A", h, err)
}

func (m *metricsFactory) CreateProductB() (*owned.Handle[ProductB], error) {
	h, err := m.inner.CreateProductB()
	return observe(m, "B", h, err)
}

func observe[T any](m *metricsFactory, product string, h *owned.Handle[T], err error) (*owned.Handle[T], error) {
	ctx := context.Background()
	name := m.inner.Name()
	if err != nil {
		m.metrics.RecordCreationError(ctx, name, product)
		return nil, err
	}
	value, err := h.Value()
	if err != nil {
		m.metrics.RecordCreationError(ctx, name, product)
		return nil, stderrors.Join(err, h.Release())
	}
	m.metrics.RecordCreation(ctx, name, product, m.inner.Variant().String())
	return owned.NewWithRelease(value, func(T) error {
		err := h.Release()
		m.metrics.RecordRelease(ctx, name, product)
		return err
	}), nil
}
