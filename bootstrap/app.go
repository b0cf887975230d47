package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/kbukum/creational/abstractfactory"
	"github.com/kbukum/creational/config"
	"github.com/kbukum/creational/factorymethod"
	"github.com/kbukum/creational/logger"
	"github.com/kbukum/creational/observability"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/pool"
	"github.com/kbukum/creational/registry"
)

// App holds the factory chosen by configuration and everything needed to use it.
//
// Example:
//
//	app, err := bootstrap.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer app.Close()
//	res, err := app.RunAbstractFactory(ctx)
type App struct {
	Name      string
	Cfg       *config.Config
	Logger    *logger.Logger
	Metrics   *observability.Metrics
	Factories *registry.Manager[abstractfactory.Factory]
	Creators  *registry.Manager[*factorymethod.Creator]
	Summary   *Summary

	factory abstractfactory.Factory
	pooled  *pool.Factory
	client  *abstractfactory.Client
	onStop  []Hook

	closeOnce sync.Once
}

// New builds an App from cfg. It applies defaults and validates the config
// first; the factory is selected by Factory.Variant, else by Factory.Priority.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	start := time.Now()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	sel, err := selectionFromConfig(&cfg.Factory)
	if err != nil {
		return nil, fmt.Errorf("factory selection: %w", err)
	}

	o := resolveOptions(opts)
	app := &App{Name: cfg.Name, Cfg: cfg}

	// Logger: use custom if provided, otherwise build from config.
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		app.Logger = logger.New(&cfg.Logging, cfg.Name)
	}
	installLoggers(app.Logger)

	meter := o.meter
	if meter == nil {
		meter = observability.Meter(cfg.Name)
	}
	app.Metrics, err = observability.NewMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	if err := app.initFactories(sel, o); err != nil {
		return nil, err
	}
	if err := app.initCreators(o.tracker); err != nil {
		return nil, err
	}

	selected, err := app.Factories.Get(context.Background())
	if err != nil {
		return nil, fmt.Errorf("select factory: %w", err)
	}

	chain := append([]abstractfactory.Middleware{
		abstractfactory.WithLogging(logger.Get("abstractfactory")),
		abstractfactory.WithTracing(),
		abstractfactory.WithMetrics(app.Metrics),
	}, o.middleware...)
	app.factory = abstractfactory.Chain(chain...)(selected)

	if cfg.Pool.Enabled {
		app.pooled = pool.NewFactory(app.factory,
			pool.WithMaxIdle(cfg.Pool.MaxIdle),
			pool.WithLogger(logger.Get("pool")),
		)
		app.factory = app.pooled
	}

	app.client = abstractfactory.NewClient(app.factory,
		abstractfactory.WithPolicy(sel.policy),
		abstractfactory.WithClientLogger(logger.Get("client")),
	)

	app.Summary = &Summary{
		Name:          cfg.Name,
		Factories:     app.Factories.Available(),
		Creators:      app.Creators.Available(),
		Selected:      selected.Name(),
		Variant:       selected.Variant().String(),
		Policy:        sel.policy.String(),
		Pooled:        cfg.Pool.Enabled,
		MaxIdle:       cfg.Pool.MaxIdle,
		SetupDuration: time.Since(start),
	}
	app.Summary.Log(app.Logger)
	return app, nil
}

// componentLoggers are the named loggers installed by New.
var componentLoggers = []string{"registry", "abstractfactory", "pool", "client"}

// installLoggers makes l the process-wide logger and registers a component
// logger derived from it for every package that looks one up by name.
func installLoggers(l *logger.Logger) {
	logger.SetGlobalLogger(l)
	for _, name := range componentLoggers {
		logger.Register(name, l.WithComponent(name))
	}
}

// initFactories registers and initializes every abstract factory and applies
// the configured selection.
func (a *App) initFactories(sel selection, o *appOptions) error {
	var fopts []abstractfactory.Option
	if o.tracker != nil {
		fopts = append(fopts, abstractfactory.WithTracker(o.tracker))
	}
	reg := registry.New[abstractfactory.Factory]()
	a.Factories = registry.NewManager(reg, &registry.PrioritySelector[abstractfactory.Factory]{
		Priority: sel.priority,
	})
	abstractfactory.Register(a.Factories, fopts...)
	for _, name := range reg.List() {
		if err := a.Factories.Initialize(name, nil); err != nil {
			return fmt.Errorf("initialize factory %q: %w", name, err)
		}
	}
	if sel.pinned != "" {
		if err := a.Factories.SetDefault(sel.pinned); err != nil {
			return fmt.Errorf("select factory: %w", err)
		}
	}
	return nil
}

// initCreators registers and initializes every factory-method creator.
func (a *App) initCreators(tr *owned.Tracker) error {
	var copts []factorymethod.Option
	if tr != nil {
		copts = append(copts, factorymethod.WithTracker(tr))
	}
	reg := registry.New[*factorymethod.Creator]()
	a.Creators = registry.NewManager(reg, &registry.FirstSelector[*factorymethod.Creator]{})
	factorymethod.Register(a.Creators, copts...)
	for _, name := range reg.List() {
		if err := a.Creators.Initialize(name, nil); err != nil {
			return fmt.Errorf("initialize creator %q: %w", name, err)
		}
	}
	return nil
}

// Factory returns the selected, decorated factory.
func (a *App) Factory() abstractfactory.Factory { return a.factory }

// Client returns the client bound to the selected factory.
func (a *App) Client() *abstractfactory.Client { return a.client }

// RunAbstractFactory runs the client once against the selected factory.
func (a *App) RunAbstractFactory(ctx context.Context) (abstractfactory.Result, error) {
	res, err := a.client.Run(ctx)
	if err != nil {
		a.Logger.Error("abstract factory run failed", logger.MergeWithError(logger.Fields(
			logger.FieldFactory, a.factory.Name(),
		), err))
		return abstractfactory.Result{}, err
	}
	return res, nil
}

// RunFactoryMethod runs the client code against every registered creator in
// name order and returns one output per creator.
func (a *App) RunFactoryMethod(ctx context.Context) ([]string, error) {
	names := a.Creators.Available()
	out := make([]string, 0, len(names))
	for _, name := range names {
		c, err := a.Creators.GetByName(name)
		if err != nil {
			return nil, err
		}
		text, err := runCreator(ctx, c)
		if err != nil {
			a.Logger.Error("factory method run failed", logger.MergeWithError(logger.Fields(
				logger.FieldFactory, name,
			), err))
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}

func runCreator(ctx context.Context, c *factorymethod.Creator) (string, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanCreate)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrFactory, c.Name())

	text, err := factorymethod.ClientCode(c)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return text, err
}

// Report is the combined output of RunAll.
type Report struct {
	FactoryMethod   []string
	AbstractFactory abstractfactory.Result
}

// RunAll runs both the factory-method creators and the abstract-factory client.
func (a *App) RunAll(ctx context.Context) (Report, error) {
	fm, err := a.RunFactoryMethod(ctx)
	if err != nil {
		return Report{}, err
	}
	af, err := a.RunAbstractFactory(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{FactoryMethod: fm, AbstractFactory: af}, nil
}

// Close runs the OnStop hooks and drains the pool, if any. Calling Close more
// than once is a no-op.
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() { err = a.close() })
	return err
}

func (a *App) close() error {
	var errs []error
	if err := runHooks(context.Background(), a.onStop); err != nil {
		a.Logger.Error("OnStop hook error", logger.ErrorFields("close", err))
		errs = append(errs, err)
	}
	if a.pooled != nil {
		if err := a.pooled.Close(); err != nil {
			a.Logger.Error("pool close error", logger.ErrorFields("close", err))
			errs = append(errs, err)
		}
	}
	a.Logger.Info("application closed")
	return stderrors.Join(errs...)
}
