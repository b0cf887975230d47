// Package owned provides the explicit ownership-transfer type returned by
// every creation operation in creational.
//
// A creation call hands the caller a *Handle[T]. The caller owns the value
// until it calls Release exactly once; a second Release, or reading the value
// after release, fails with ALREADY_RELEASED. Products that hold resources
// implement Releaser and are released through their handle.
//
// A Tracker can be attached to handles to account for every handle created
// and released, which is how leaks and double releases are detected in tests:
//
//	tr := owned.NewTracker()
//	h := owned.New(product, owned.WithTracker(tr))
//	defer h.Release()
//	...
//	if tr.Live() != 0 { /* leak */ }
package owned
