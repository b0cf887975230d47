// Package variant names the product families a factory can be bound to.
package variant

import (
	"strings"

	"github.com/kbukum/creational/errors"
)

// ID identifies a variant: a set of concrete products designed to work together.
type ID string

const (
	One ID = "1"
	Two ID = "2"
)

// Known lists every built-in variant in ascending order.
func Known() []ID {
	return []ID{One, Two}
}

// String returns the raw identifier.
func (id ID) String() string { return string(id) }

// Parse normalizes s ("1", " 2 ", "variant-1", "v2") into a known ID.
func Parse(s string) (ID, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	raw = strings.TrimPrefix(raw, "variant-")
	raw = strings.TrimPrefix(raw, "v")
	for _, id := range Known() {
		if string(id) == raw {
			return id, nil
		}
	}
	return "", errors.UnknownVariant(s)
}

// Name returns the registry name used for the variant, e.g. "variant-1".
func (id ID) Name() string { return "variant-" + string(id) }
