// Package registry keeps named constructors for factories and creators and
// picks one of the initialized instances at runtime.
//
// A Registry maps names to constructors and caches built instances. A Manager
// sits on top of it and answers "which instance should I use" either from an
// explicit default or from a Selector:
//
//	reg := registry.New[abstractfactory.Factory]()
//	abstractfactory.Register(reg)
//
//	mgr := registry.NewManager(reg, &registry.PrioritySelector[abstractfactory.Factory]{
//		Priority: []string{"variant-2", "variant-1"},
//	})
//	_ = mgr.Initialize("variant-1", nil)
//	_ = mgr.Initialize("variant-2", nil)
//	f, err := mgr.Get(ctx)
package registry
