package resource

import (
	"errors"
	"io"
	"sync"
)

// Manager tracks closable resources and releases them together.
// The zero value is not usable; create one with NewManager.
type Manager struct {
	mu      sync.Mutex
	closed  bool
	entries []io.Closer
}

// NewManager creates an empty resource manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a resource to the tracker. Nil resources are ignored.
// If the manager has already been closed, the resource is closed
// immediately and not retained.
func (m *Manager) Register(c io.Closer) {
	if c == nil {
		return
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = c.Close()
		return
	}
	m.entries = append(m.entries, c)
	m.mu.Unlock()
}

// Unregister removes a resource from tracking without closing it.
// The caller keeps ownership. Removing an untracked resource is a no-op.
func (m *Manager) Unregister(c io.Closer) {
	if c == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, entry := range m.entries {
		if entry == c {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// Close releases every tracked resource and clears the registry.
// A failing entry does not prevent the remaining entries from being
// closed; all errors are joined in the returned error. Close is
// idempotent — subsequent calls are no-ops returning nil.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	entries := m.entries
	m.entries = nil
	m.mu.Unlock()

	var errs []error
	for _, entry := range entries {
		if err := entry.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Count returns the number of tracked resources.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// HasResources reports whether any resources are currently tracked.
func (m *Manager) HasResources() bool {
	return m.Count() > 0
}

// Closed reports whether the manager has been torn down.
func (m *Manager) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// CountOf returns the number of tracked resources whose dynamic type is T.
func CountOf[T io.Closer](m *Manager) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, entry := range m.entries {
		if _, ok := entry.(T); ok {
			count++
		}
	}
	return count
}

// UnregisterAll removes every tracked resource of type T without closing
// it, returning the number removed. Entries of other types are untouched.
func UnregisterAll[T io.Closer](m *Manager) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.entries[:0]
	removed := 0
	for _, entry := range m.entries {
		if _, ok := entry.(T); ok {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	m.entries = kept
	return removed
}
