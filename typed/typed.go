package typed

import (
	"github.com/kbukum/creational/abstractfactory"
	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/variant"
)

// Variant is implemented by the marker types.
type Variant interface {
	ID() variant.ID
}

// V1 marks products and factories of variant 1.
type V1 struct{}

// ID returns variant.One.
func (V1) ID() variant.ID { return variant.One }

// V2 marks products and factories of variant 2.
type V2 struct{}

// ID returns variant.Two.
func (V2) ID() variant.ID { return variant.Two }

// ProductA is the first product of family V.
type ProductA[V Variant] interface {
	Operation() string
	// Family returns the marker; its type is what keeps families apart.
	Family() V
}

// ProductB is the second product of family V.
type ProductB[V Variant] interface {
	Operation() string
	Family() V
	CollaborateWith(a ProductA[V]) string
}

// Factory creates the products of family V.
type Factory[V Variant] interface {
	CreateProductA() (*owned.Handle[ProductA[V]], error)
	CreateProductB() (*owned.Handle[ProductB[V]], error)
}

// NewFactory1 returns the typed factory for variant 1.
func NewFactory1(opts ...abstractfactory.Option) Factory[V1] {
	return &factory[V1]{inner: abstractfactory.NewFactory1(opts...)}
}

// NewFactory2 returns the typed factory for variant 2.
func NewFactory2(opts ...abstractfactory.Option) Factory[V2] {
	return &factory[V2]{inner: abstractfactory.NewFactory2(opts...)}
}

// Wrap lifts a runtime factory, decorated or not, into family V. It fails with
// VARIANT_MISMATCH when f builds another variant.
func Wrap[V Variant](f abstractfactory.Factory) (Factory[V], error) {
	var marker V
	if f.Variant() != marker.ID() {
		return nil, errors.VariantMismatch(marker.ID().String(), f.Variant().String())
	}
	return &factory[V]{inner: f}, nil
}

type factory[V Variant] struct {
	inner abstractfactory.Factory
}

func (f *factory[V]) CreateProductA() (*owned.Handle[ProductA[V]], error) {
	h, err := f.inner.CreateProductA()
	if err != nil {
		return nil, err
	}
	return rewrap(h, func(a abstractfactory.ProductA) ProductA[V] { return productA[V]{inner: a} })
}

func (f *factory[V]) CreateProductB() (*owned.Handle[ProductB[V]], error) {
	h, err := f.inner.CreateProductB()
	if err != nil {
		return nil, err
	}
	return rewrap(h, func(b abstractfactory.ProductB) ProductB[V] { return productB[V]{inner: b} })
}

// rewrap moves ownership of h's value into a handle of the typed product.
// Releasing the new handle releases h.
func rewrap[In, Out any](h *owned.Handle[In], convert func(In) Out) (*owned.Handle[Out], error) {
	v, err := h.Value()
	if err != nil {
		return nil, err
	}
	return owned.NewWithRelease(convert(v), func(Out) error { return h.Release() }), nil
}

type productA[V Variant] struct {
	inner abstractfactory.ProductA
}

func (p productA[V]) Operation() string { return p.inner.Operation() }

func (p productA[V]) Family() V {
	var v V
	return v
}

type productB[V Variant] struct {
	inner abstractfactory.ProductB
}

func (p productB[V]) Operation() string { return p.inner.Operation() }

func (p productB[V]) Family() V {
	var v V
	return v
}

func (p productB[V]) CollaborateWith(a ProductA[V]) string {
	return p.inner.CollaborateWith(runtimeA[V]{a})
}

// runtimeA presents a typed ProductA to the runtime products.
type runtimeA[V Variant] struct {
	a ProductA[V]
}

func (r runtimeA[V]) Operation() string { return r.a.Operation() }

func (r runtimeA[V]) Variant() variant.ID { return r.a.Family().ID() }
