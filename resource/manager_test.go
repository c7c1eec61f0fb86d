package resource

import (
	"errors"
	"testing"
)

// fakeCloser records Close calls and optionally fails.
type fakeCloser struct {
	closed int
	err    error
}

func (f *fakeCloser) Close() error {
	f.closed++
	return f.err
}

type otherCloser struct {
	fakeCloser
}

func TestManager_Register(t *testing.T) {
	mgr := NewManager()

	a := &fakeCloser{}
	b := &fakeCloser{}
	mgr.Register(a)
	mgr.Register(b)
	mgr.Register(nil)

	if got := mgr.Count(); got != 2 {
		t.Errorf("expected 2 tracked resources, got %d", got)
	}
	if !mgr.HasResources() {
		t.Error("expected HasResources to be true")
	}
}

func TestManager_Unregister(t *testing.T) {
	mgr := NewManager()

	a := &fakeCloser{}
	b := &fakeCloser{}
	mgr.Register(a)
	mgr.Register(b)

	mgr.Unregister(a)
	if got := mgr.Count(); got != 1 {
		t.Errorf("expected 1 tracked resource after unregister, got %d", got)
	}
	if a.closed != 0 {
		t.Error("unregister must not close the resource")
	}

	// Unregistering something never tracked is a no-op.
	mgr.Unregister(&fakeCloser{})
	if got := mgr.Count(); got != 1 {
		t.Errorf("expected count unchanged, got %d", got)
	}
}

func TestManager_Close_ClosesEverything(t *testing.T) {
	mgr := NewManager()

	a := &fakeCloser{}
	b := &fakeCloser{err: errors.New("close failed")}
	c := &fakeCloser{}
	mgr.Register(a)
	mgr.Register(b)
	mgr.Register(c)

	err := mgr.Close()
	if err == nil {
		t.Fatal("expected error from failing entry")
	}

	for i, fc := range []*fakeCloser{a, b, c} {
		if fc.closed != 1 {
			t.Errorf("entry %d: expected 1 close, got %d", i, fc.closed)
		}
	}
	if mgr.Count() != 0 {
		t.Errorf("expected registry cleared, got %d entries", mgr.Count())
	}
}

func TestManager_Close_Idempotent(t *testing.T) {
	mgr := NewManager()

	a := &fakeCloser{}
	mgr.Register(a)

	if err := mgr.Close(); err != nil {
		t.Fatalf("unexpected error on first close: %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Fatalf("unexpected error on second close: %v", err)
	}
	if a.closed != 1 {
		t.Errorf("expected exactly 1 close, got %d", a.closed)
	}
}

func TestManager_RegisterAfterClose(t *testing.T) {
	mgr := NewManager()
	if err := mgr.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	late := &fakeCloser{}
	mgr.Register(late)

	if late.closed != 1 {
		t.Error("expected late registration to be closed immediately")
	}
	if mgr.Count() != 0 {
		t.Error("expected late registration not to be retained")
	}
	if !mgr.Closed() {
		t.Error("expected manager to report closed")
	}
}

func TestCountOf(t *testing.T) {
	mgr := NewManager()
	mgr.Register(&fakeCloser{})
	mgr.Register(&fakeCloser{})
	mgr.Register(&otherCloser{})

	if got := CountOf[*fakeCloser](mgr); got != 2 {
		t.Errorf("expected 2 fakeClosers, got %d", got)
	}
	if got := CountOf[*otherCloser](mgr); got != 1 {
		t.Errorf("expected 1 otherCloser, got %d", got)
	}
}

func TestUnregisterAll(t *testing.T) {
	mgr := NewManager()
	a := &fakeCloser{}
	b := &fakeCloser{}
	other := &otherCloser{}
	mgr.Register(a)
	mgr.Register(b)
	mgr.Register(other)

	removed := UnregisterAll[*fakeCloser](mgr)
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if mgr.Count() != 1 {
		t.Errorf("expected 1 remaining, got %d", mgr.Count())
	}
	if a.closed != 0 || b.closed != 0 {
		t.Error("UnregisterAll must not close removed entries")
	}
}

func TestCloserFunc(t *testing.T) {
	called := false
	mgr := NewManager()
	mgr.Register(CloserFunc(func() error {
		called = true
		return nil
	}))

	if err := mgr.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected CloserFunc to run on close")
	}
}
