package abstractfactory

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/logger"
	"github.com/kbukum/creational/observability"
)

// Result is what one client run produced.
type Result struct {
	// Operation is ProductB's own description.
	Operation string
	// Collaboration is ProductB working with ProductA.
	Collaboration string
}

// Client works with a Factory and its products only through interfaces.
type Client struct {
	factory Factory
	policy  CollaborationPolicy
	log     *logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithPolicy sets how cross-variant pairings are handled.
func WithPolicy(p CollaborationPolicy) ClientOption {
	return func(c *Client) { c.policy = p }
}

// WithClientLogger sets the logger used for rejected pairings.
func WithClientLogger(l *logger.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// NewClient returns a client bound to f. The default policy is PolicyPermit.
func NewClient(f Factory, opts ...ClientOption) *Client {
	c := &Client{factory: f, policy: PolicyPermit}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get("abstractfactory")
	}
	return c
}

// Policy returns the client's collaboration policy.
func (c *Client) Policy() CollaborationPolicy { return c.policy }

// Run creates both products from the client's factory, lets B work with A and
// releases both before returning.
func (c *Client) Run(ctx context.Context) (res Result, err error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanClientRun)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrFactory, c.factory.Name())
	observability.SetSpanAttribute(ctx, observability.AttrVariant, c.factory.Variant().String())
	defer func() {
		if err != nil {
			observability.SetSpanError(ctx, err)
		}
	}()

	ha, err := c.factory.CreateProductA()
	if err != nil {
		return Result{}, err
	}
	hb, err := c.factory.CreateProductB()
	if err != nil {
		return Result{}, stderrors.Join(err, ha.Release())
	}
	defer func() {
		if relErr := stderrors.Join(hb.Release(), ha.Release()); relErr != nil {
			err = stderrors.Join(err, relErr)
		}
	}()

	a, err := ha.Value()
	if err != nil {
		return Result{}, err
	}
	b, err := hb.Value()
	if err != nil {
		return Result{}, err
	}

	collab, err := c.Collaborate(ctx, a, b)
	if err != nil {
		return Result{}, err
	}
	return Result{Operation: b.Operation(), Collaboration: collab}, nil
}

// Collaborate lets b work with a under the client's policy. It is used with
// products obtained outside Run, possibly from different factories.
func (c *Client) Collaborate(ctx context.Context, a ProductA, b ProductB) (string, error) {
	if a.Variant() != b.Variant() {
		observability.SetSpanAttribute(ctx, observability.AttrCrossVariant, true)
		if c.policy == PolicyReject {
			err := errors.VariantMismatch(b.Variant().String(), a.Variant().String())
			c.log.Warn("cross-variant collaboration rejected", logger.Fields(
				logger.FieldVariant, b.Variant().String(),
				"collaborator_variant", a.Variant().String(),
			))
			return "", err
		}
	}
	return b.CollaborateWith(a), nil
}
