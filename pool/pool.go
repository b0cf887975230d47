package pool

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/logger"
	"github.com/kbukum/creational/observability"
	"github.com/kbukum/creational/owned"
)

const defaultMaxIdle = 4

// Stats is a snapshot of pool counters.
type Stats struct {
	Created int
	Reused  int
	Idle    int
	InUse   int
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	maxIdle int
	log     *logger.Logger
	tracker *owned.Tracker
}

// WithMaxIdle bounds the idle list. Instances released while it is full are
// discarded.
func WithMaxIdle(n int) Option {
	return func(o *options) { o.maxIdle = n }
}

// WithLogger sets the pool logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTracker records every borrow in tr.
func WithTracker(tr *owned.Tracker) Option {
	return func(o *options) { o.tracker = tr }
}

// Pool hands out instances built by construct and takes them back on release.
type Pool[T any] struct {
	name      string
	construct func() (T, error)
	opts      options

	mu      sync.Mutex
	idle    []T
	closed  bool
	created int
	reused  int
	inUse   int
}

// New creates an empty pool. Nothing is constructed until the first Acquire.
func New[T any](name string, construct func() (T, error), opts ...Option) *Pool[T] {
	o := options{maxIdle: defaultMaxIdle}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxIdle < 0 {
		o.maxIdle = 0
	}
	if o.log == nil {
		o.log = logger.Get("pool")
	}
	return &Pool[T]{name: name, construct: construct, opts: o}
}

// Name returns the pool name.
func (p *Pool[T]) Name() string { return p.name }

// Acquire borrows an idle instance or constructs a new one. The borrow ends
// when the returned handle is released.
func (p *Pool[T]) Acquire(ctx context.Context) (*owned.Handle[T], error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanPoolAcquire)
	defer span.End()

	if err := ctx.Err(); err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}

	v, reused, err := p.take()
	if err != nil {
		observability.SetSpanError(ctx, err)
		p.opts.log.Warn("acquire failed", logger.MergeWithError(logger.Fields(logger.FieldPool, p.name), err))
		return nil, err
	}
	observability.SetSpanAttribute(ctx, observability.AttrReused, reused)

	var hopts []owned.Option
	if p.opts.tracker != nil {
		hopts = append(hopts, owned.WithTracker(p.opts.tracker))
	}
	h := owned.NewWithRelease(v, p.put, hopts...)
	observability.SetSpanAttribute(ctx, observability.AttrHandleID, h.ID())
	p.opts.log.Debug("instance acquired", logger.Fields(
		logger.FieldPool, p.name,
		logger.FieldHandleID, h.ID(),
		"reused", reused,
	))
	return h, nil
}

// take finds or creates an instance under the pool lock.
func (p *Pool[T]) take() (T, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var zero T
	if p.closed {
		return zero, false, errors.PoolClosed(p.name)
	}
	if n := len(p.idle); n > 0 {
		v := p.idle[n-1]
		p.idle[n-1] = zero
		p.idle = p.idle[:n-1]
		p.reused++
		p.inUse++
		return v, true, nil
	}
	v, err := p.construct()
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeConstructionFailed) {
			return zero, false, err
		}
		return zero, false, errors.ConstructionFailed(p.name, err)
	}
	p.created++
	p.inUse++
	return v, false, nil
}

// put takes an instance back. It is the release hook of every borrowed handle.
func (p *Pool[T]) put(v T) error {
	p.mu.Lock()
	p.inUse--
	if !p.closed && len(p.idle) < p.opts.maxIdle {
		p.idle = append(p.idle, v)
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()
	return discard(v)
}

// Close discards every idle instance. Instances still borrowed are discarded
// when they are released. Acquire fails with POOL_CLOSED afterwards.
func (p *Pool[T]) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	idle := p.idle
	p.idle = nil
	p.mu.Unlock()

	var errs []error
	for _, v := range idle {
		if err := discard(v); err != nil {
			errs = append(errs, err)
		}
	}
	p.opts.log.Debug("pool closed", logger.Fields(logger.FieldPool, p.name, "discarded", len(idle)))
	return stderrors.Join(errs...)
}

// Stats returns the current counters.
func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Created: p.created,
		Reused:  p.reused,
		Idle:    len(p.idle),
		InUse:   p.inUse,
	}
}

func discard[T any](v T) error {
	if r, ok := any(v).(owned.Releaser); ok {
		return r.Release()
	}
	return nil
}
