package shadow

import "fmt"

// Map is a buffered overlay over a Store. Insertions, removals, and
// mutations accumulate privately in the overlay; the store is untouched
// until Commit applies them (removed pass first, then added pass) or left
// untouched forever by Rollback.
//
// The logical view a Map presents is (store − removed) ∪ added, with added
// entries taking precedence. A key is never tracked as both added and
// removed at the same time.
//
// A Map is NOT thread-safe and assumes exclusive access to its store for
// its entire lifetime.
type Map[K comparable, V any] struct {
	store     Store[K, V]
	added     map[K]*V
	removed   map[K]struct{}
	policy    Policy
	cloner    Cloner[V]
	finalized bool
}

// NewMap wraps store with an empty overlay. The policy governs what Close
// does when neither Commit nor Rollback ran; it is fixed for the lifetime
// of the wrapper.
func NewMap[K comparable, V any](store Store[K, V], policy Policy, opts ...Option[V]) *Map[K, V] {
	o := applyOptions(opts)
	return &Map[K, V]{
		store:   store,
		added:   make(map[K]*V),
		removed: make(map[K]struct{}),
		policy:  policy,
		cloner:  o.cloner,
	}
}

// Policy returns the finalize policy fixed at construction.
func (m *Map[K, V]) Policy() Policy {
	return m.policy
}

// Finalized reports whether Commit or Rollback already ran.
func (m *Map[K, V]) Finalized() bool {
	return m.finalized
}

// ContainsKey reports whether k is present in the logical view: not
// removed, and either added or present in the store.
func (m *Map[K, V]) ContainsKey(k K) bool {
	if _, gone := m.removed[k]; gone {
		return false
	}
	if _, ok := m.added[k]; ok {
		return true
	}
	return m.store.ContainsKey(k)
}

// Insert buffers v under k and returns the value k previously mapped to in
// the logical view, if any. The store is never touched: a previous store
// value is cloned for the return, and a pending removal of k is simply
// cleared.
func (m *Map[K, V]) Insert(k K, v V) (V, bool) {
	var zero V

	if p, ok := m.added[k]; ok {
		prev := *p
		*p = v
		return prev, true
	}
	if _, gone := m.removed[k]; gone {
		delete(m.removed, k)
		m.added[k] = &v
		return zero, false
	}
	if prev, ok := m.store.Get(k); ok {
		ret := m.cloner(prev)
		m.added[k] = &v
		return ret, true
	}
	m.added[k] = &v
	return zero, false
}

// Remove buffers the removal of k and returns the value k mapped to in the
// logical view, if any. A pending added entry is popped into the removed
// set; a store value is cloned for the return and the store left untouched.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	var zero V

	if p, ok := m.added[k]; ok {
		delete(m.added, k)
		m.removed[k] = struct{}{}
		return *p, true
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

// Get returns the value k maps to in the logical view. Unlike GetMut it
// never promotes anything into the overlay. For reference-typed values the
// result of an added entry shares memory with the overlay; use GetMut to
// mutate.
func (m *Map[K, V]) Get(k K) (V, bool) {
	var zero V

	if p, ok := m.added[k]; ok {
		return *p, true
	}
	if _, gone := m.removed[k]; gone {
		return zero, false
	}
	return m.store.Get(k)
}

// GetMut returns a pointer into the overlay for k. When k only exists in
// the store its value is cloned into the overlay first (the copy-on-write
// trigger); repeated calls reuse the overlay entry. Returns false when k
// is absent from the logical view.
//
// The pointer is valid until k is removed or the wrapper finalizes.
func (m *Map[K, V]) GetMut(k K) (*V, bool) {
	if p, ok := m.added[k]; ok {
		return p, true
	}
	if _, gone := m.removed[k]; gone {
		return nil, false
	}
	if prev, ok := m.store.Get(k); ok {
		c := m.cloner(prev)
		m.added[k] = &c
		return &c, true
	}
	return nil, false
}

// MustGet is the indexed lookup over the logical view. It panics with an
// error wrapping ErrAbsentKey when k is pending removal or absent from
// both the overlay and the store.
func (m *Map[K, V]) MustGet(k K) V {
	if p, ok := m.added[k]; ok {
		return *p
	}
	if _, gone := m.removed[k]; gone {
		panic(fmt.Errorf("%w: %v", ErrAbsentKey, k))
	}
	if v, ok := m.store.Get(k); ok {
		return v
	}
	panic(fmt.Errorf("%w: %v", ErrAbsentKey, k))
}

// Commit applies the overlay to the store, removals first, then drains the
// added entries into it, and marks the wrapper finalized. Each buffered
// change reaches the store exactly once. Returns ErrFinalized when the
// wrapper already finalized.
func (m *Map[K, V]) Commit() error {
	if m.finalized {
		return ErrFinalized
	}
	m.commit()
	return nil
}

// Rollback discards the overlay and marks the wrapper finalized. The store
// is never touched. Returns ErrFinalized when the wrapper already
// finalized.
func (m *Map[K, V]) Rollback() error {
	if m.finalized {
		return ErrFinalized
	}
	m.rollback()
	return nil
}

// Close finalizes an unfinalized wrapper according to its policy and is a
// no-op otherwise. It is meant to be deferred right after construction so
// that every exit path finalizes exactly once.
//
// Under FailIfUnfinalized, Close panics with an error wrapping
// ErrUnfinalized.
func (m *Map[K, V]) Close() error {
	if m.finalized {
		return nil
	}
	switch m.policy {
	case FailIfUnfinalized:
		panic(fmt.Errorf("%w (policy %s)", ErrUnfinalized, m.policy))
	case ImplicitRollback:
		m.rollback()
	case ImplicitCommit:
		m.commit()
	default:
		panic(fmt.Errorf("shadow: unknown finalize policy %s", m.policy))
	}
	return nil
}

func (m *Map[K, V]) commit() {
	for k := range m.removed {
		m.store.Remove(k)
	}
	for k, p := range m.added {
		m.store.Insert(k, *p)
	}
	clear(m.removed)
	clear(m.added)
	m.finalized = true
}

func (m *Map[K, V]) rollback() {
	clear(m.removed)
	clear(m.added)
	m.finalized = true
}
