package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/logger"
)

// Manager combines a Registry with a Selector and tracks the instances that
// were initialized for use.
type Manager[T Named] struct {
	mu          sync.RWMutex
	registry    *Registry[T]
	selector    Selector[T]
	instances   map[string]T
	defaultName string
	log         *logger.Logger
}

// NewManager creates a Manager backed by the given registry and selector.
func NewManager[T Named](registry *Registry[T], selector Selector[T]) *Manager[T] {
	return &Manager[T]{
		registry:  registry,
		selector:  selector,
		instances: make(map[string]T),
		log:       logger.Get("registry"),
	}
}

// Register adds a constructor to the underlying registry.
func (m *Manager[T]) Register(name string, c Constructor[T]) {
	m.registry.Register(name, c)
	m.log.Debug("constructor registered", map[string]interface{}{logger.FieldFactory: name})
}

// Initialize builds an instance from its constructor and stores it for use.
func (m *Manager[T]) Initialize(name string, cfg map[string]any) error {
	instance, err := m.registry.Create(name, cfg)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.instances[name] = instance
	m.mu.Unlock()
	m.registry.Set(name, instance)
	m.log.Debug("instance initialized", map[string]interface{}{logger.FieldFactory: name})
	return nil
}

// Get returns the default instance if one is set, otherwise the selector's choice.
func (m *Manager[T]) Get(ctx context.Context) (T, error) {
	m.mu.RLock()
	defaultName := m.defaultName
	instances := m.snapshotLocked()
	m.mu.RUnlock()

	if defaultName != "" {
		if inst, ok := instances[defaultName]; ok {
			return inst, nil
		}
		var zero T
		return zero, errors.NotRegistered("default", defaultName)
	}
	return m.selector.Select(ctx, instances)
}

// GetByName returns a specific initialized instance.
func (m *Manager[T]) GetByName(name string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if inst, ok := m.instances[name]; ok {
		return inst, nil
	}
	var zero T
	return zero, errors.NotRegistered("instance", name)
}

// SetDefault pins Get to the named instance.
func (m *Manager[T]) SetDefault(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instances[name]; !ok {
		return errors.NotRegistered("instance", name)
	}
	m.defaultName = name
	m.log.Info("default instance set", map[string]interface{}{logger.FieldFactory: name})
	return nil
}

// Available returns the sorted names of all initialized instances.
func (m *Manager[T]) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.instances))
	for name := range m.instances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// snapshotLocked returns a shallow copy of the instances map.
// Must be called while holding at least a read lock.
func (m *Manager[T]) snapshotLocked() map[string]T {
	cp := make(map[string]T, len(m.instances))
	for k, v := range m.instances {
		cp[k] = v
	}
	return cp
}
