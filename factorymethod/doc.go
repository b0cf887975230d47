// Package factorymethod defines a Creator whose business logic depends on a
// Product it obtains from a single creation operation.
//
// Concrete creators differ only in which Product their Factory builds; the
// Creator's own code (SomeOperation) is shared:
//
//	c := factorymethod.NewCreator1()
//	out, err := factorymethod.ClientCode(c)
//
// Custom creators plug in through FuncFactory:
//
//	c := factorymethod.NewCreator("custom", factorymethod.FuncFactory{
//		Product: "custom",
//		New:     func() (factorymethod.Product, error) { return myProduct{}, nil },
//	})
package factorymethod
