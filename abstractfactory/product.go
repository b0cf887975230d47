package abstractfactory

import (
	"github.com/kbukum/creational/variant"
)

// Product is implemented by every product of every family.
type Product interface {
	// Operation returns a description naming the concrete product.
	Operation() string
	// Variant reports which family the product belongs to.
	Variant() variant.ID
}

// ProductA is the first product of a family.
type ProductA interface {
	Product
}

// ProductB is the second product of a family. It can work with a ProductA.
type ProductB interface {
	Product
	// CollaborateWith uses a. It accepts any ProductA, including one from
	// another variant.
	CollaborateWith(a ProductA) string
}

type productA1 struct{}

func (productA1) Operation() string   { return "The result of the product A1." }
func (productA1) Variant() variant.ID { return variant.One }

type productA2 struct{}

func (productA2) Operation() string   { return "The result of the product A2." }
func (productA2) Variant() variant.ID { return variant.Two }

type productB1 struct{}

func (productB1) Operation() string   { return "The result of the product B1." }
func (productB1) Variant() variant.ID { return variant.One }

func (b productB1) CollaborateWith(a ProductA) string {
	return collaborate("B1", b.Variant(), a)
}

type productB2 struct{}

func (productB2) Operation() string   { return "The result of the product B2." }
func (productB2) Variant() variant.ID { return variant.Two }

func (b productB2) CollaborateWith(a ProductA) string {
	return collaborate("B2", b.Variant(), a)
}

// collaborate renders the collaboration text; a pairing across variants is
// labelled rather than refused.
func collaborate(self string, own variant.ID, a ProductA) string {
	out := "The result of the " + self + " collaborating with ( " + a.Operation() + " )"
	if a.Variant() != own {
		out += " [cross-variant: " + self + " with A" + a.Variant().String() + "]"
	}
	return out
}
