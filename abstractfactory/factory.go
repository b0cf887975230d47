package abstractfactory

import (
	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/variant"
)

// Factory creates the products of one variant.
type Factory interface {
	// Name returns the factory's registry name, e.g. "variant-1".
	Name() string
	// Variant reports the family every product of this factory belongs to.
	Variant() variant.ID
	// CreateProductA returns a new ProductA owned by the caller.
	CreateProductA() (*owned.Handle[ProductA], error)
	// CreateProductB returns a new ProductB owned by the caller.
	CreateProductB() (*owned.Handle[ProductB], error)
}

// Option configures the built-in factories.
type Option func(*options)

type options struct {
	tracker *owned.Tracker
}

// WithTracker records every product handle in tr.
func WithTracker(tr *owned.Tracker) Option {
	return func(o *options) { o.tracker = tr }
}

func (o options) handleOpts() []owned.Option {
	if o.tracker == nil {
		return nil
	}
	return []owned.Option{owned.WithTracker(o.tracker)}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type factory1 struct{ opts options }

// NewFactory1 returns the factory for variant 1.
func NewFactory1(opts ...Option) Factory {
	return &factory1{opts: newOptions(opts)}
}

func (f *factory1) Name() string        { return variant.One.Name() }
func (f *factory1) Variant() variant.ID { return variant.One }

func (f *factory1) CreateProductA() (*owned.Handle[ProductA], error) {
	return owned.New[ProductA](productA1{}, f.opts.handleOpts()...), nil
}

func (f *factory1) CreateProductB() (*owned.Handle[ProductB], error) {
	return owned.New[ProductB](productB1{}, f.opts.handleOpts()...), nil
}

type factory2 struct{ opts options }

// NewFactory2 returns the factory for variant 2.
func NewFactory2(opts ...Option) Factory {
	return &factory2{opts: newOptions(opts)}
}

func (f *factory2) Name() string        { return variant.Two.Name() }
func (f *factory2) Variant() variant.ID { return variant.Two }

func (f *factory2) CreateProductA() (*owned.Handle[ProductA], error) {
	return owned.New[ProductA](productA2{}, f.opts.handleOpts()...), nil
}

func (f *factory2) CreateProductB() (*owned.Handle[ProductB], error) {
	return owned.New[ProductB](productB2{}, f.opts.handleOpts()...), nil
}

// New returns the factory bound to id.
func New(id variant.ID, opts ...Option) (Factory, error) {
	switch id {
	case variant.One:
		return NewFactory1(opts...), nil
	case variant.Two:
		return NewFactory2(opts...), nil
	default:
		return nil, errors.UnknownVariant(id.String())
	}
}
