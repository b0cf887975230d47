package owned

import (
	"fmt"
	"sync"
	"testing"

	"github.com/kbukum/creational/errors"
)

type statefulValue struct {
	releases int
	err      error
}

func (s *statefulValue) Release() error {
	s.releases++
	return s.err
}

func TestHandleValueAndRelease(t *testing.T) {
	h := New("widget")
	if h.ID() == "" {
		t.Fatal("expected a handle id")
	}
	v, err := h.Value()
	if err != nil || v != "widget" {
		t.Fatalf("expected widget, got %q, err %v", v, err)
	}
	if err := h.Release(); err != nil {
		t.Fatalf("first release failed: %v", err)
	}
	if !h.Released() {
		t.Error("expected Released() after Release")
	}
	if _, err := h.Value(); !errors.HasCode(err, errors.ErrCodeAlreadyReleased) {
		t.Errorf("expected ALREADY_RELEASED on Value after release, got %v", err)
	}
}

func TestHandleDoubleRelease(t *testing.T) {
	sv := &statefulValue{}
	h := New(sv)
	if err := h.Release(); err != nil {
		t.Fatalf("first release failed: %v", err)
	}
	err := h.Release()
	if !errors.HasCode(err, errors.ErrCodeAlreadyReleased) {
		t.Fatalf("expected ALREADY_RELEASED, got %v", err)
	}
	if sv.releases != 1 {
		t.Errorf("expected releaser to run once, ran %d times", sv.releases)
	}
}

func TestHandleReleaserError(t *testing.T) {
	sv := &statefulValue{err: fmt.Errorf("flush failed")}
	h := New(sv)
	if err := h.Release(); err == nil || err.Error() != "flush failed" {
		t.Fatalf("expected releaser error, got %v", err)
	}
	if !h.Released() {
		t.Error("ownership ends even when the releaser fails")
	}
}

func TestNewWithReleaseOverridesReleaser(t *testing.T) {
	sv := &statefulValue{}
	var returned *statefulValue
	h := NewWithRelease(sv, func(v *statefulValue) error {
		returned = v
		return nil
	})
	if err := h.Release(); err != nil {
		t.Fatal(err)
	}
	if returned != sv {
		t.Error("expected custom release to receive the value")
	}
	if sv.releases != 0 {
		t.Error("custom release replaces the value's own Releaser")
	}
}

func TestTrackerAccounting(t *testing.T) {
	tr := NewTracker()
	a := New(1, WithTracker(tr))
	b := New(2, WithTracker(tr))

	if tr.Live() != 2 {
		t.Fatalf("expected 2 live handles, got %d", tr.Live())
	}
	if got := tr.Outstanding(); len(got) != 2 {
		t.Fatalf("expected 2 outstanding ids, got %v", got)
	}

	_ = a.Release()
	_ = a.Release()
	_ = b.Release()

	s := tr.Stats()
	if s.Created != 2 || s.Released != 2 || s.Live != 0 || s.DoubleReleases != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestConcurrentReleaseOnlyOnce(t *testing.T) {
	tr := NewTracker()
	sv := &statefulValue{}
	h := New(sv, WithTracker(tr))

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if h.Release() == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if ok != 1 {
		t.Errorf("expected exactly one successful release, got %d", ok)
	}
	if s := tr.Stats(); s.Released != 1 || s.DoubleReleases != 15 {
		t.Errorf("unexpected stats %+v", s)
	}
}
