package abstractfactory_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/creational/abstractfactory"
	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/logger"
	"github.com/kbukum/creational/observability"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/variant"
)

func installRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return exporter
}

func sumInt64(rm metricdata.ResourceMetrics, name string) int64 {
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	return total
}

// recordingMiddleware appends its tag to calls on every creation.
func recordingMiddleware(tag string, calls *[]string) abstractfactory.Middleware {
	return func(inner abstractfactory.Factory) abstractfactory.Factory {
		return &recordingFactory{Factory: inner, tag: tag, calls: calls}
	}
}

type recordingFactory struct {
	abstractfactory.Factory
	tag   string
	calls *[]string
}

func (r *recordingFactory) CreateProductA() (*owned.Handle[abstractfactory.ProductA], error) {
	*r.calls = append(*r.calls, r.tag)
	return r.Factory.CreateProductA()
}

func TestChainOrder(t *testing.T) {
	var calls []string
	f := abstractfactory.Chain(
		recordingMiddleware("outer", &calls),
		recordingMiddleware("inner", &calls),
	)(abstractfactory.NewFactory1())

	h, err := f.CreateProductA()
	if err != nil {
		t.Fatalf("CreateProductA failed: %v", err)
	}
	mustRelease(t, h)
	if strings.Join(calls, ",") != "outer,inner" {
		t.Errorf("expected outer,inner, got %v", calls)
	}
}

func TestDecoratorsPreserveFamily(t *testing.T) {
	metrics, err := observability.NewMetrics(sdkmetric.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	tr := owned.NewTracker()
	f := abstractfactory.Chain(
		abstractfactory.WithLogging(logger.Nop()),
		abstractfactory.WithTracing(),
		abstractfactory.WithMetrics(metrics),
	)(abstractfactory.NewFactory2(abstractfactory.WithTracker(tr)))

	if f.Name() != variant.Two.Name() || f.Variant() != variant.Two {
		t.Fatalf("decorated factory reports %s/%s", f.Name(), f.Variant())
	}

	res, err := abstractfactory.NewClient(f).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Collaboration != "The result of the B2 collaborating with ( The result of the product A2. )" {
		t.Errorf("unexpected collaboration %q", res.Collaboration)
	}
	if tr.Live() != 0 {
		t.Errorf("decorated handles leaked: %v", tr.Outstanding())
	}
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)
	f := abstractfactory.WithLogging(log)(abstractfactory.NewFactory1())

	ha, hb := createPair(t, f)
	defer mustRelease(t, ha)
	defer mustRelease(t, hb)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json log: %v", err)
	}
	if entry[logger.FieldFactory] != "variant-1" || entry[logger.FieldProduct] != "A" {
		t.Errorf("unexpected fields %v", entry)
	}
	if entry[logger.FieldHandleID] != ha.ID() {
		t.Errorf("expected handle id %s, got %v", ha.ID(), entry[logger.FieldHandleID])
	}
}

func TestWithLoggingError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)
	f := abstractfactory.WithLogging(log)(&brokenFactory{Factory: abstractfactory.NewFactory1()})

	if _, err := f.CreateProductB(); !errors.HasCode(err, errors.ErrCodeConstructionFailed) {
		t.Fatalf("expected CONSTRUCTION_FAILED, got %v", err)
	}
	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), "product creation failed") {
		t.Errorf("expected an error log line, got %s", buf.String())
	}
}

func TestWithTracing(t *testing.T) {
	exporter := installRecorder(t)
	f := abstractfactory.WithTracing()(abstractfactory.NewFactory1())

	ha, hb := createPair(t, f)
	mustRelease(t, ha)
	mustRelease(t, hb)

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name != observability.SpanCreateProductA || spans[1].Name != observability.SpanCreateProductB {
		t.Errorf("unexpected span names %q, %q", spans[0].Name, spans[1].Name)
	}
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs[observability.AttrFactory] != "variant-1" || attrs[observability.AttrHandleID] != ha.ID() {
		t.Errorf("unexpected attributes %v", attrs)
	}
}

func TestWithTracingError(t *testing.T) {
	exporter := installRecorder(t)
	f := abstractfactory.WithTracing()(&brokenFactory{Factory: abstractfactory.NewFactory1()})

	if _, err := f.CreateProductB(); err == nil {
		t.Fatal("expected error")
	}
	spans := exporter.GetSpans()
	if len(spans) != 1 || spans[0].Status.Code != codes.Error {
		t.Fatalf("expected one errored span, got %+v", spans)
	}
}

func TestClientRunSpan(t *testing.T) {
	exporter := installRecorder(t)
	if _, err := abstractfactory.NewClient(abstractfactory.NewFactory2()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	spans := exporter.GetSpans()
	if len(spans) != 1 || spans[0].Name != observability.SpanClientRun {
		t.Fatalf("expected a single client.run span, got %d", len(spans))
	}
}

func TestWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := observability.NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	f := abstractfactory.WithMetrics(metrics)(abstractfactory.NewFactory1())
	ha, hb := createPair(t, f)
	mustRelease(t, ha)

	broken := abstractfactory.WithMetrics(metrics)(&brokenFactory{Factory: abstractfactory.NewFactory1()})
	if _, err := broken.CreateProductB(); err == nil {
		t.Fatal("expected error")
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}
	want := map[string]int64{
		"creation.total":  2,
		"creation.errors": 1,
		"release.total":   1,
		"handles.live":    1,
	}
	for name, n := range want {
		if got := sumInt64(rm, name); got != n {
			t.Errorf("%s: expected %d, got %d", name, n, got)
		}
	}
	mustRelease(t, hb)
}

// releasedAFactory hands out ProductA handles that were already released.
type releasedAFactory struct {
	abstractfactory.Factory
}

func (r *releasedAFactory) CreateProductA() (*owned.Handle[abstractfactory.ProductA], error) {
	h, err := r.Factory.CreateProductA()
	if err != nil {
		return nil, err
	}
	if err := h.Release(); err != nil {
		return nil, err
	}
	return h, nil
}

func TestWithMetricsReleasesOnValueError(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	defer mp.Shutdown(context.Background())
	metrics, err := observability.NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	tr := owned.NewTracker()
	inner := &releasedAFactory{Factory: abstractfactory.NewFactory1(abstractfactory.WithTracker(tr))}
	f := abstractfactory.WithMetrics(metrics)(inner)

	if _, err := f.CreateProductA(); !errors.HasCode(err, errors.ErrCodeAlreadyReleased) {
		t.Fatalf("expected ALREADY_RELEASED, got %v", err)
	}
	if got := tr.Stats().DoubleReleases; got != 1 {
		t.Errorf("expected the failed handle to be released once more, got %d double releases", got)
	}
}
