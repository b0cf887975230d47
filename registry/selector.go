package registry

import (
	"context"
	"sort"
	"strings"

	"github.com/kbukum/creational/errors"
)

// Selector picks an instance from the initialized ones.
type Selector[T Named] interface {
	Select(ctx context.Context, instances map[string]T) (T, error)
}

// PrioritySelector returns the first initialized instance in priority order.
type PrioritySelector[T Named] struct {
	// Priority is the ordered list of names to try.
	Priority []string
}

// Select returns the first available instance in priority order.
func (s *PrioritySelector[T]) Select(_ context.Context, instances map[string]T) (T, error) {
	for _, name := range s.Priority {
		if inst, ok := instances[name]; ok {
			return inst, nil
		}
	}
	var zero T
	return zero, errors.NotRegistered("priority", strings.Join(s.Priority, ","))
}

// FirstSelector returns the alphabetically first initialized instance.
type FirstSelector[T Named] struct{}

// Select returns the instance with the lowest name.
func (s *FirstSelector[T]) Select(_ context.Context, instances map[string]T) (T, error) {
	names := make([]string, 0, len(instances))
	for name := range instances {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		var zero T
		return zero, errors.NotRegistered("instance", "any")
	}
	return instances[names[0]], nil
}
