package shadow

import (
	"fmt"

	"github.com/joshuapare/shadowkit/lendmap"
)

// LendingMap is a buffered overlay over a LendingStore. Insert, Remove,
// and ContainsKey follow the same case analysis as Map; Lend additionally
// checks values out of the logical view, promoting underlying entries into
// the overlay on first access.
//
// The added overlay is itself a lending collection (a lendmap.Map), so
// loans of overlay entries carry the usual loan bookkeeping: Commit
// refuses to run while overlay loans are outstanding.
//
// A LendingMap carries no finalize policy. Dropping it without Commit or
// Rollback silently discards the overlay; Close does exactly that and is
// safe to defer. This is deliberately asymmetric with Map.
//
// A LendingMap is NOT thread-safe and assumes exclusive access to its
// store for its entire lifetime.
type LendingMap[K comparable, V any] struct {
	store     LendingStore[K, V]
	added     *lendmap.Map[K, V]
	removed   map[K]struct{}
	cloner    Cloner[V]
	finalized bool
}

// NewLendingMap wraps store with an empty overlay.
func NewLendingMap[K comparable, V any](store LendingStore[K, V], opts ...Option[V]) *LendingMap[K, V] {
	o := applyOptions(opts)
	return &LendingMap[K, V]{
		store:   store,
		added:   lendmap.New[K, V](),
		removed: make(map[K]struct{}),
		cloner:  o.cloner,
	}
}

// Finalized reports whether Commit or Rollback already ran.
func (m *LendingMap[K, V]) Finalized() bool {
	return m.finalized
}

// ContainsKey reports whether k is present in the logical view.
func (m *LendingMap[K, V]) ContainsKey(k K) bool {
	if _, gone := m.removed[k]; gone {
		return false
	}
	return m.added.ContainsKey(k) || m.store.ContainsKey(k)
}

// Insert buffers v under k and returns the value k previously mapped to in
// the logical view, if any. The store is never touched. Insert panics when
// the overlay entry for k is checked out.
func (m *LendingMap[K, V]) Insert(k K, v V) (V, bool) {
	var zero V

	if m.added.ContainsKey(k) {
		return m.added.Insert(k, v)
	}
	if _, gone := m.removed[k]; gone {
		delete(m.removed, k)
		m.added.Insert(k, v)
		return zero, false
	}
	if prev, ok := m.store.Get(k); ok {
		ret := m.cloner(prev)
		m.added.Insert(k, v)
		return ret, true
	}
	m.added.Insert(k, v)
	return zero, false
}

// Remove buffers the removal of k and returns the value k mapped to in
// the logical view, if any. Remove panics when the overlay entry for k is
// checked out.
func (m *LendingMap[K, V]) Remove(k K) (V, bool) {
	var zero V

	if m.added.ContainsKey(k) {
		v, _ := m.added.Remove(k)
		m.removed[k] = struct{}{}
		return v, true
	}
	if _, gone := m.removed[k]; gone {
		return zero, false
	}
	m.removed[k] = struct{}{}
	if prev, ok := m.store.Get(k); ok {
		return m.cloner(prev), true
	}
	return zero, false
}

// Lend checks the value under k out of the logical view. Overlay entries
// are lent directly. An entry only present in the underlying store is
// first promoted: its value is read through a momentary store loan, cloned
// into the overlay, and the store loan released before the overlay entry
// is lent out, so the store's own exclusivity rules are never violated.
//
// Lend returns false when k is pending removal, absent everywhere, or a
// conflicting loan exists.
func (m *LendingMap[K, V]) Lend(k K) (Loan[V], bool) {
	if m.added.ContainsKey(k) {
		loan, ok := m.added.Lend(k)
		if !ok {
			return nil, false
		}
		return loan, true
	}
	if _, gone := m.removed[k]; gone {
		return nil, false
	}
	if m.store.ContainsKey(k) {
		borrowed, ok := m.store.Lend(k)
		if !ok {
			return nil, false
		}
		c := m.cloner(*borrowed.Value())
		borrowed.Release()
		m.added.Insert(k, c)
		loan, ok := m.added.Lend(k)
		if !ok {
			return nil, false
		}
		return loan, true
	}
	return nil, false
}

// Commit applies the overlay to the store, removals first, then drains the
// added entries into it, and marks the wrapper finalized. Commit panics
// when overlay loans are still outstanding, and returns ErrFinalized when
// the wrapper already finalized.
func (m *LendingMap[K, V]) Commit() error {
	if m.finalized {
		return ErrFinalized
	}
	if n := m.added.Outstanding(); n > 0 {
		panic(fmt.Errorf("%w: commit with %d outstanding loans", lendmap.ErrValueOnLoan, n))
	}
	for k := range m.removed {
		m.store.Remove(k)
	}
	m.added.Drain(func(k K, v V) {
		m.store.Insert(k, v)
	})
	clear(m.removed)
	m.finalized = true
	return nil
}

// Rollback discards the overlay and marks the wrapper finalized. The store
// is never touched. Returns ErrFinalized when the wrapper already
// finalized.
func (m *LendingMap[K, V]) Rollback() error {
	if m.finalized {
		return ErrFinalized
	}
	m.discard()
	return nil
}

// Close silently discards the overlay when the wrapper has not finalized
// and is a no-op otherwise. It is safe to defer right after construction.
func (m *LendingMap[K, V]) Close() error {
	if !m.finalized {
		m.discard()
	}
	return nil
}

func (m *LendingMap[K, V]) discard() {
	m.added = lendmap.New[K, V]()
	clear(m.removed)
	m.finalized = true
}
