// Package typed is the abstract factory with the variant carried in the type.
//
// Products and factories are parametrized by a marker type (V1, V2). A
// ProductB[V1] only accepts a ProductA[V1], so pairing products of different
// families does not compile:
//
//	f1 := typed.NewFactory1()
//	f2 := typed.NewFactory2()
//	a, _ := f1.CreateProductA()
//	b, _ := f2.CreateProductB()
//	// b.CollaborateWith(a) is a compile error: ProductA[V1] is not ProductA[V2].
//
// Products delegate to the runtime-checked abstractfactory products, so the
// text they return is the same.
package typed
