// Package pool reuses created instances instead of building a new one on
// every call.
//
// Acquire hands out an idle instance if there is one and constructs a new one
// otherwise. The returned handle's Release gives the instance back to the pool
// instead of discarding it:
//
//	p := pool.New("conn", newConn, pool.WithMaxIdle(8))
//	h, err := p.Acquire(ctx)
//	conn, _ := h.Value()
//	...
//	_ = h.Release() // back to the idle list
//
// Factory applies the same idea to both products of an abstract factory.
package pool
