package registry

import (
	"sort"
	"sync"

	"github.com/kbukum/creational/errors"
)

// Named is implemented by everything a Registry can hold.
type Named interface {
	Name() string
}

// Constructor builds an instance from an optional config map.
type Constructor[T Named] func(cfg map[string]any) (T, error)

// Registrar accepts named constructors. Registry and Manager both implement it.
type Registrar[T Named] interface {
	Register(name string, c Constructor[T])
}

// Registry manages named constructors and cached instances.
type Registry[T Named] struct {
	mu           sync.RWMutex
	constructors map[string]Constructor[T]
	instances    map[string]T
}

// New creates a new empty Registry.
func New[T Named]() *Registry[T] {
	return &Registry[T]{
		constructors: make(map[string]Constructor[T]),
		instances:    make(map[string]T),
	}
}

// Register adds a named constructor. Registering a name twice replaces the
// earlier constructor.
func (r *Registry[T]) Register(name string, c Constructor[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = c
}

// Create builds a fresh instance using the named constructor.
func (r *Registry[T]) Create(name string, cfg map[string]any) (T, error) {
	r.mu.RLock()
	c, ok := r.constructors[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, errors.NotRegistered("constructor", name)
	}
	return c(cfg)
}

// Get returns a cached instance by name.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[name]
	return inst, ok
}

// Set caches an instance by name.
func (r *Registry[T]) Set(name string, instance T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[name] = instance
}

// List returns sorted names of all registered constructors.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateAll builds one instance of every registered constructor, in List order.
func (r *Registry[T]) CreateAll(cfg map[string]any) ([]T, error) {
	names := r.List()
	out := make([]T, 0, len(names))
	for _, name := range names {
		inst, err := r.Create(name, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}
