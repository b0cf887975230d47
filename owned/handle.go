package owned

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/creational/errors"
)

// Releaser is optionally implemented by values that hold state which must be
// cleaned up when their owner gives them up.
type Releaser interface {
	Release() error
}

// Handle carries exclusive ownership of a value created by a factory.
type Handle[T any] struct {
	id      string
	mu      sync.Mutex
	value   T
	done    bool
	release func(T) error
	tracker *Tracker
}

// Option configures a Handle.
type Option func(*options)

type options struct {
	tracker *Tracker
}

// WithTracker records the handle's lifetime in tr.
func WithTracker(tr *Tracker) Option {
	return func(o *options) { o.tracker = tr }
}

// New wraps value in a handle owned by the caller. On Release, value's own
// Releaser is called if it implements one.
func New[T any](value T, opts ...Option) *Handle[T] {
	return NewWithRelease(value, releaseValue[T], opts...)
}

// NewWithRelease wraps value in a handle whose Release runs release instead of
// the value's own Releaser. Pools use this to take the value back.
func NewWithRelease[T any](value T, release func(T) error, opts ...Option) *Handle[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	h := &Handle[T]{
		id:      uuid.NewString(),
		value:   value,
		release: release,
		tracker: o.tracker,
	}
	if h.tracker != nil {
		h.tracker.onCreate(h.id)
	}
	return h
}

// ID returns the handle's unique identifier.
func (h *Handle[T]) ID() string { return h.id }

// Value returns the owned value, or ALREADY_RELEASED once the handle was released.
func (h *Handle[T]) Value() (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		var zero T
		return zero, errors.AlreadyReleased(h.id)
	}
	return h.value, nil
}

// Released reports whether Release has been called.
func (h *Handle[T]) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

// Release ends ownership. It must be called exactly once; later calls return
// ALREADY_RELEASED and do not run the release hook again.
func (h *Handle[T]) Release() error {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		if h.tracker != nil {
			h.tracker.onDoubleRelease(h.id)
		}
		return errors.AlreadyReleased(h.id)
	}
	h.done = true
	value := h.value
	var zero T
	h.value = zero
	h.mu.Unlock()

	if h.tracker != nil {
		h.tracker.onRelease(h.id)
	}
	if h.release == nil {
		return nil
	}
	return h.release(value)
}

func releaseValue[T any](value T) error {
	if r, ok := any(value).(Releaser); ok {
		return r.Release()
	}
	return nil
}
