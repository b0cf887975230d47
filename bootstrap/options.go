package bootstrap

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/creational/abstractfactory"
	"github.com/kbukum/creational/logger"
	"github.com/kbukum/creational/owned"
)

// Option configures the App during creation.
type Option func(*appOptions)

// appOptions collects all option values before applying to App.
type appOptions struct {
	logger     *logger.Logger
	meter      metric.Meter
	tracker    *owned.Tracker
	middleware []abstractfactory.Middleware
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is built from the config's Logging section.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithMeter sets the meter creation metrics are recorded on.
// If not set, the global meter provider is used.
func WithMeter(m metric.Meter) Option {
	return func(o *appOptions) {
		o.meter = m
	}
}

// WithTracker records every product handle the app's factories create.
func WithTracker(tr *owned.Tracker) Option {
	return func(o *appOptions) {
		o.tracker = tr
	}
}

// WithMiddleware adds decorators inside the built-in logging, tracing and
// metrics chain.
func WithMiddleware(mw ...abstractfactory.Middleware) Option {
	return func(o *appOptions) {
		o.middleware = append(o.middleware, mw...)
	}
}
