package typed_test

import (
	"testing"

	"github.com/kbukum/creational/abstractfactory"
	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/logger"
	"github.com/kbukum/creational/owned"
	"github.com/kbukum/creational/typed"
)

func TestRun(t *testing.T) {
	tr := owned.NewTracker()

	r1, err := typed.Run(typed.NewFactory1(abstractfactory.WithTracker(tr)))
	if err != nil {
		t.Fatalf("variant 1: %v", err)
	}
	if r1.Operation != "The result of the product B1." ||
		r1.Collaboration != "The result of the B1 collaborating with ( The result of the product A1. )" {
		t.Errorf("variant 1: unexpected result %+v", r1)
	}

	r2, err := typed.Run(typed.NewFactory2(abstractfactory.WithTracker(tr)))
	if err != nil {
		t.Fatalf("variant 2: %v", err)
	}
	if r2.Collaboration != "The result of the B2 collaborating with ( The result of the product A2. )" {
		t.Errorf("variant 2: unexpected result %+v", r2)
	}

	if tr.Live() != 0 {
		t.Errorf("typed handles must release the runtime handles, live=%d", tr.Live())
	}
}

func TestSameFamilyCollaboration(t *testing.T) {
	f := typed.NewFactory2()
	ha, err := f.CreateProductA()
	if err != nil {
		t.Fatal(err)
	}
	hb, err := f.CreateProductB()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := ha.Value()
	b, _ := hb.Value()

	// Only a ProductA[V2] is accepted here.
	var collaborator typed.ProductA[typed.V2] = a
	if got := b.CollaborateWith(collaborator); got != "The result of the B2 collaborating with ( The result of the product A2. )" {
		t.Errorf("unexpected collaboration %q", got)
	}
	if a.Family().ID() != "2" {
		t.Errorf("expected family 2, got %s", a.Family().ID())
	}
	_ = ha.Release()
	_ = hb.Release()
}

func TestWrap(t *testing.T) {
	decorated := abstractfactory.WithLogging(logger.Nop())(abstractfactory.NewFactory1())

	f, err := typed.Wrap[typed.V1](decorated)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	if _, err := typed.Run(f); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := typed.Wrap[typed.V2](decorated); !errors.HasCode(err, errors.ErrCodeVariantMismatch) {
		t.Errorf("expected VARIANT_MISMATCH, got %v", err)
	}
}

func TestReleaseOwnership(t *testing.T) {
	tr := owned.NewTracker()
	f := typed.NewFactory1(abstractfactory.WithTracker(tr))

	h, err := f.CreateProductA()
	if err != nil {
		t.Fatal(err)
	}
	if tr.Live() != 1 {
		t.Fatalf("expected 1 live runtime handle, got %d", tr.Live())
	}
	if err := h.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if err := h.Release(); !errors.HasCode(err, errors.ErrCodeAlreadyReleased) {
		t.Errorf("expected ALREADY_RELEASED, got %v", err)
	}
	if tr.Live() != 0 || tr.Stats().DoubleReleases != 0 {
		t.Errorf("unexpected tracker stats %+v", tr.Stats())
	}
}
