// Package bootstrap wires configuration to a ready-to-use factory and client.
//
// New validates the config, builds the logger and metrics, registers every
// built-in factory and creator, selects the abstract factory named by the
// config, decorates it with logging, tracing and metrics, and optionally puts
// a pool in front of it:
//
//	cfg, err := config.Load("creational")
//	app, err := bootstrap.New(cfg)
//	defer app.Close()
//
//	res, err := app.RunAbstractFactory(ctx)
//	lines, err := app.RunFactoryMethod(ctx)
//
// Nothing is printed; callers receive the results.
package bootstrap
