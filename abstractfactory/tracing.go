package abstractfactory

import (
	"context"

	"github.com/kbukum/creational/observability"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/variant"
)

// WithTracing returns a Middleware that creates an OpenTelemetry span around
// each creation call. Creation takes no context, so every span is a root span.
func WithTracing() Middleware {
	return func(inner Factory) Factory {
		return &tracingFactory{inner: inner}
	}
}

type tracingFactory struct {
	inner Factory
}

func (t *tracingFactory) Name() string        { return t.inner.Name() }
func (t *tracingFactory) Variant() variant.ID { return t.inner.Variant() }

func (t *tracingFactory) CreateProductA() (*owned.Handle[ProductA], error) {
	ctx, end := t.start(observability.SpanCreateProductA, "A")
	defer end()
	h, err := t.inner.CreateProductA()
	t.finish(ctx, handleID(h), err)
	return h, err
}

func (t *tracingFactory) CreateProductB() (*owned.Handle[ProductB], error) {
	ctx, end := t.start(observability.SpanCreateProductB, "B")
	defer end()
	h, err := t.inner.CreateProductB()
	t.finish(ctx, handleID(h), err)
	return h, err
}

func (t *tracingFactory) start(name, product string) (context.Context, func()) {
	ctx, span := observability.StartSpan(context.Background(), name)
	observability.SetSpanAttribute(ctx, observability.AttrFactory, t.inner.Name())
	observability.SetSpanAttribute(ctx, observability.AttrVariant, t.inner.Variant().String())
	observability.SetSpanAttribute(ctx, observability.AttrProduct, product)
	return ctx, func() { span.End() }
}

func (t *tracingFactory) finish(ctx context.Context, id string, err error) {
	if err != nil {
		observability.SetSpanError(ctx, err)
		return
	}
	observability.SetSpanAttribute(ctx, observability.AttrHandleID, id)
}
