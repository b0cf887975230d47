package factorymethod

import (
	"github.com/kbukum/creational/registry"
)

// Registry names of the built-in creators.
const (
	Creator1 = "creator-1"
	Creator2 = "creator-2"
)

// Register adds the built-in creators to reg. opts apply to every creator reg
// builds.
func Register(reg registry.Registrar[*Creator], opts ...Option) {
	reg.Register(Creator1, func(map[string]any) (*Creator, error) {
		return NewCreator1(opts...), nil
	})
	reg.Register(Creator2, func(map[string]any) (*Creator, error) {
		return NewCreator2(opts...), nil
	})
}
