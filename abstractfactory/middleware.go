package abstractfactory

// Middleware wraps a Factory. The returned factory delegates creation to the
// inner one, so products still come from a single variant.
type Middleware func(Factory) Factory

// Chain composes multiple middlewares into one. Middlewares are applied in
// order: the first middleware is outermost.
//
// Chain(a, b, c)(f) is equivalent to a(b(c(f))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner Factory) Factory {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}
