package abstractfactory

import (
	"github.com/kbukum/creational/registry"
	"github.com/kbukum/creational/variant"
)

// Register adds a factory for every known variant to reg, under the variant's
// name. opts apply to every factory reg builds.
func Register(reg registry.Registrar[Factory], opts ...Option) {
	for _, id := range variant.Known() {
		reg.Register(id.Name(), func(map[string]any) (Factory, error) {
			return New(id, opts...)
		})
	}
}
