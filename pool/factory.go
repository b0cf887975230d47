package pool

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/creational/abstractfactory"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/variant"
)

// Factory is an abstractfactory.Factory whose products are borrowed from two
// pools filled by the same inner factory, so every product still belongs to
// the inner factory's variant.
type Factory struct {
	inner abstractfactory.Factory
	a     *Pool[*owned.Handle[abstractfactory.ProductA]]
	b     *Pool[*owned.Handle[abstractfactory.ProductB]]
}

// NewFactory pools the products of f. opts apply to both pools.
func NewFactory(f abstractfactory.Factory, opts ...Option) *Factory {
	return &Factory{
		inner: f,
		a:     New(f.Name()+".product_a", f.CreateProductA, opts...),
		b:     New(f.Name()+".product_b", f.CreateProductB, opts...),
	}
}

// Name returns the inner factory's name.
func (f *Factory) Name() string { return f.inner.Name() }

// Variant returns the inner factory's variant.
func (f *Factory) Variant() variant.ID { return f.inner.Variant() }

// CreateProductA borrows a ProductA.
func (f *Factory) CreateProductA() (*owned.Handle[abstractfactory.ProductA], error) {
	return borrow(f.a)
}

// CreateProductB borrows a ProductB.
func (f *Factory) CreateProductB() (*owned.Handle[abstractfactory.ProductB], error) {
	return borrow(f.b)
}

// Stats returns the counters of the ProductA and ProductB pools.
func (f *Factory) Stats() (a, b Stats) {
	return f.a.Stats(), f.b.Stats()
}

// Close closes both pools, releasing the idle products back to the inner factory.
func (f *Factory) Close() error {
	return stderrors.Join(f.a.Close(), f.b.Close())
}

// borrow acquires a pooled inner handle and exposes its product through a
// handle whose release returns the inner handle to the pool.
func borrow[T any](p *Pool[*owned.Handle[T]]) (*owned.Handle[T], error) {
	ph, err := p.Acquire(context.Background())
	if err != nil {
		return nil, err
	}
	inner, err := ph.Value()
	if err != nil {
		return nil, stderrors.Join(err, ph.Release())
	}
	v, err := inner.Value()
	if err != nil {
		return nil, stderrors.Join(err, ph.Release())
	}
	return owned.NewWithRelease(v, func(T) error { return ph.Release() }), nil
}
