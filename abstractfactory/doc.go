// Package abstractfactory creates families of related products without the
// caller naming a concrete type.
//
// A Factory is bound to one variant and builds a ProductA and a ProductB of
// that variant. Products of one family are designed to work together: a
// ProductB collaborates with a ProductA. Any ProductA is accepted; pairing
// products of different variants is labelled in the result under the default
// PolicyPermit, and rejected with VARIANT_MISMATCH under PolicyReject.
//
//	f, err := abstractfactory.New(variant.One)
//	client := abstractfactory.NewClient(f)
//	res, err := client.Run(ctx)
//
// Cross-cutting behavior is added with Middleware:
//
//	f = abstractfactory.Chain(
//		abstractfactory.WithLogging(log),
//		abstractfactory.WithTracing(),
//		abstractfactory.WithMetrics(metrics),
//	)(f)
package abstractfactory
