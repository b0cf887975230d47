package abstractfactory

import (
	"time"

	"github.com/kbukum/creational/logger"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/variant"
)

// WithLogging returns a Middleware that logs each creation call.
// Logs: factory, variant, product, handle id, duration and error.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Factory) Factory {
		return &loggingFactory{inner: inner, log: log}
	}
}

type loggingFactory struct {
	inner Factory
	log   *logger.Logger
}

func (l *loggingFactory) Name() string        { return l.inner.Name() }
func (l *loggingFactory) Variant() variant.ID { return l.inner.Variant() }

func (l *loggingFactory) CreateProductA() (*owned.Handle[ProductA], error) {
	start := time.Now()
	h, err := l.inner.CreateProductA()
	l.logCreate("A", handleID(h), start, err)
	return h, err
}

func (l *loggingFactory) CreateProductB() (*owned.Handle[ProductB], error) {
	start := time.Now()
	h, err := l.inner.CreateProductB()
	l.logCreate("B", handleID(h), start, err)
	return h, err
}

func (l *loggingFactory) logCreate(product, id string, start time.Time, err error) {
	fields := map[string]interface{}{
		logger.FieldFactory:  l.inner.Name(),
		logger.FieldVariant:  l.inner.Variant().String(),
		logger.FieldProduct:  product,
		logger.FieldDuration: time.Since(start).Milliseconds(),
	}
	if err != nil {
		l.log.Error("product creation failed", logger.MergeWithError(fields, err))
		return
	}
	fields[logger.FieldHandleID] = id
	l.log.Debug("product created", fields)
}

func handleID[T any](h *owned.Handle[T]) string {
	if h == nil {
		return ""
	}
	return h.ID()
}
