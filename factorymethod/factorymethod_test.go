package factorymethod_test

import (
	stderrors "errors"
	"testing"

	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/factorymethod"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/registry"
)

func TestClientCode(t *testing.T) {
	tests := []struct {
		name    string
		creator *factorymethod.Creator
		want    string
	}{
		{
			name:    "creator 1",
			creator: factorymethod.NewCreator1(),
			want: "Client: I'm not aware of the creator's class, but it still works.\n" +
				"Creator: The same creator's code has just worked with {Result of the ConcreteProduct1}",
		},
		{
			name:    "creator 2",
			creator: factorymethod.NewCreator2(),
			want: "Client: I'm not aware of the creator's class, but it still works.\n" +
				"Creator: The same creator's code has just worked with {Result of the ConcreteProduct2}",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := factorymethod.ClientCode(tc.creator)
			if err != nil {
				t.Fatalf("ClientCode failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCreateReturnsIndependentProducts(t *testing.T) {
	tr := owned.NewTracker()
	c := factorymethod.NewCreator1(factorymethod.WithTracker(tr))

	h1, err := c.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	h2, err := c.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if h1.ID() == h2.ID() {
		t.Error("each Create must return a distinct handle")
	}
	if tr.Live() != 2 {
		t.Errorf("expected 2 live handles, got %d", tr.Live())
	}

	for _, h := range []*owned.Handle[factorymethod.Product]{h1, h2} {
		if err := h.Release(); err != nil {
			t.Fatalf("Release failed: %v", err)
		}
	}
	if tr.Live() != 0 {
		t.Errorf("expected no live handles, got %d", tr.Live())
	}
}

func TestSomeOperationReleasesProduct(t *testing.T) {
	tr := owned.NewTracker()
	for _, c := range []*factorymethod.Creator{
		factorymethod.NewCreator1(factorymethod.WithTracker(tr)),
		factorymethod.NewCreator2(factorymethod.WithTracker(tr)),
	} {
		if _, err := c.SomeOperation(); err != nil {
			t.Fatalf("%s: %v", c.Name(), err)
		}
	}
	stats := tr.Stats()
	if stats.Created != 2 || stats.Released != 2 || stats.DoubleReleases != 0 {
		t.Errorf("unexpected tracker stats %+v", stats)
	}
}

// releasedFactory hands out a handle that was already released.
type releasedFactory struct{ tr *owned.Tracker }

func (f releasedFactory) Create() (*owned.Handle[factorymethod.Product], error) {
	h := owned.New[factorymethod.Product](customProduct{released: new(bool)}, owned.WithTracker(f.tr))
	if err := h.Release(); err != nil {
		return nil, err
	}
	return h, nil
}

func TestSomeOperationReleasesOnValueError(t *testing.T) {
	tr := owned.NewTracker()
	c := factorymethod.NewCreator("released", releasedFactory{tr: tr})

	_, err := c.SomeOperation()
	if !errors.HasCode(err, errors.ErrCodeAlreadyReleased) {
		t.Fatalf("expected ALREADY_RELEASED, got %v", err)
	}
	if got := tr.Stats().DoubleReleases; got != 1 {
		t.Errorf("expected the failed handle to be released once more, got %d double releases", got)
	}
}

type customProduct struct{ released *bool }

func (customProduct) Operation() string { return "{Result of the CustomProduct}" }

func (p customProduct) Release() error {
	*p.released = true
	return nil
}

func TestCustomCreator(t *testing.T) {
	released := false
	c := factorymethod.NewCreator("custom", factorymethod.FuncFactory{
		Product: "CustomProduct",
		New:     func() (factorymethod.Product, error) { return customProduct{released: &released}, nil },
	})

	got, err := c.SomeOperation()
	if err != nil {
		t.Fatalf("SomeOperation failed: %v", err)
	}
	if got != "Creator: The same creator's code has just worked with {Result of the CustomProduct}" {
		t.Errorf("unexpected output %q", got)
	}
	if !released {
		t.Error("stateful product should be released after use")
	}
}

func TestConstructionFailure(t *testing.T) {
	cause := stderrors.New("out of parts")
	c := factorymethod.NewCreator("broken", factorymethod.FuncFactory{
		Product: "Broken",
		New:     func() (factorymethod.Product, error) { return nil, cause },
	})

	_, err := factorymethod.ClientCode(c)
	if !errors.HasCode(err, errors.ErrCodeConstructionFailed) {
		t.Fatalf("expected CONSTRUCTION_FAILED, got %v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("construction error should wrap the cause")
	}

	_, err = factorymethod.FuncFactory{Product: "nil"}.Create()
	if !errors.HasCode(err, errors.ErrCodeConstructionFailed) {
		t.Errorf("expected CONSTRUCTION_FAILED for nil constructor, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	reg := registry.New[*factorymethod.Creator]()
	factorymethod.Register(reg)

	names := reg.List()
	if len(names) != 2 || names[0] != factorymethod.Creator1 || names[1] != factorymethod.Creator2 {
		t.Fatalf("unexpected registered creators %v", names)
	}

	creators, err := reg.CreateAll(nil)
	if err != nil {
		t.Fatalf("CreateAll failed: %v", err)
	}
	for _, c := range creators {
		out, err := factorymethod.ClientCode(c)
		if err != nil {
			t.Fatalf("%s: %v", c.Name(), err)
		}
		if out == "" {
			t.Errorf("%s: empty output", c.Name())
		}
	}
}

func TestRegisterThroughManager(t *testing.T) {
	mgr := registry.NewManager(registry.New[*factorymethod.Creator](), &registry.FirstSelector[*factorymethod.Creator]{})
	factorymethod.Register(mgr)

	if err := mgr.Initialize(factorymethod.Creator2, nil); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	c, err := mgr.GetByName(factorymethod.Creator2)
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if c.Name() != factorymethod.Creator2 {
		t.Errorf("expected %s, got %s", factorymethod.Creator2, c.Name())
	}
}
