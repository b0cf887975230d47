package factorymethod

import (
	stderrors "errors"

	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/owned"
)

// Factory is the single creation operation a Creator is built around.
type Factory interface {
	// Create returns a new product owned by the caller.
	Create() (*owned.Handle[Product], error)
}

// Creator holds the logic shared by all concrete creators. The product it
// works with comes from the embedded Factory.
type Creator struct {
	Factory
	name string
}

// NewCreator binds a Factory to the shared creator logic.
func NewCreator(name string, f Factory) *Creator {
	return &Creator{Factory: f, name: name}
}

// Name returns the creator's registry name.
func (c *Creator) Name() string { return c.name }

// SomeOperation creates a product, uses it and releases it.
func (c *Creator) SomeOperation() (string, error) {
	h, err := c.Create()
	if err != nil {
		return "", err
	}
	p, err := h.Value()
	if err != nil {
		return "", stderrors.Join(err, h.Release())
	}
	result := "Creator: The same creator's code has just worked with " + p.Operation()
	if err := h.Release(); err != nil {
		return result, err
	}
	return result, nil
}

// Option configures the built-in creators.
type Option func(*options)

type options struct {
	tracker *owned.Tracker
}

// WithTracker records every product handle in tr.
func WithTracker(tr *owned.Tracker) Option {
	return func(o *options) { o.tracker = tr }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewCreator1 returns a creator whose products are ConcreteProduct1.
func NewCreator1(opts ...Option) *Creator {
	o := applyOptions(opts)
	return NewCreator(Creator1, FuncFactory{
		Product: "ConcreteProduct1",
		New:     func() (Product, error) { return concreteProduct1{}, nil },
		Tracker: o.tracker,
	})
}

// NewCreator2 returns a creator whose products are ConcreteProduct2.
func NewCreator2(opts ...Option) *Creator {
	o := applyOptions(opts)
	return NewCreator(Creator2, FuncFactory{
		Product: "ConcreteProduct2",
		New:     func() (Product, error) { return concreteProduct2{}, nil },
		Tracker: o.tracker,
	})
}

// FuncFactory adapts a constructor function into a Factory.
type FuncFactory struct {
	// Product names what New builds; it appears in construction errors.
	Product string
	// New builds one product.
	New func() (Product, error)
	// Tracker, if set, records every handle.
	Tracker *owned.Tracker
}

// Create calls New and hands the result to the caller.
func (f FuncFactory) Create() (*owned.Handle[Product], error) {
	if f.New == nil {
		return nil, errors.ConstructionFailed(f.Product, errors.New(errors.ErrCodeConstructionFailed, "no constructor"))
	}
	p, err := f.New()
	if err != nil {
		return nil, errors.ConstructionFailed(f.Product, err)
	}
	var hopts []owned.Option
	if f.Tracker != nil {
		hopts = append(hopts, owned.WithTracker(f.Tracker))
	}
	return owned.New(p, hopts...), nil
}
