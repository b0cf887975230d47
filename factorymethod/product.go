package factorymethod

// Product is the interface every product built by a creator implements.
type Product interface {
	// Operation returns a description naming the concrete product.
	Operation() string
}

type concreteProduct1 struct{}

func (concreteProduct1) Operation() string { return "{Result of the ConcreteProduct1}" }

type concreteProduct2 struct{}

func (concreteProduct2) Operation() string { return "{Result of the ConcreteProduct2}" }
