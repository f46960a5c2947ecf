package lendmap

import (
	"fmt"
	"iter"
)

type entry[V any] struct {
	val V
	out bool
}

// Map is a loan-tracking map. See the package documentation for the loan
// rules.
type Map[K comparable, V any] struct {
	entries     map[K]*entry[V]
	outstanding int
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make(map[K]*entry[V]),
	}
}

// Len returns the number of entries, on loan or not.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Outstanding returns the number of loans that have not been released.
func (m *Map[K, V]) Outstanding() int {
	return m.outstanding
}

// ContainsKey reports whether k is present.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// Get returns a copy of the value stored under k. Reading does not
// conflict with an outstanding loan, but the copy may race logically with
// mutations made through the loan; prefer Lend when that matters.
func (m *Map[K, V]) Get(k K) (V, bool) {
	var zero V
	e, ok := m.entries[k]
	if !ok {
		return zero, false
	}
	return e.val, true
}

// Insert stores v under k and returns the previous value, if any. Insert
// panics when the existing entry is checked out.
func (m *Map[K, V]) Insert(k K, v V) (V, bool) {
	var zero V
	e, ok := m.entries[k]
	if !ok {
		m.entries[k] = &entry[V]{val: v}
		return zero, false
	}
	if e.out {
		panic(fmt.Errorf("%w: insert of %v", ErrValueOnLoan, k))
	}
	prev := e.val
	e.val = v
	return prev, true
}

// Remove deletes k and returns the removed value, if any. Remove panics
// when the entry is checked out.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	var zero V
	e, ok := m.entries[k]
	if !ok {
		return zero, false
	}
	if e.out {
		panic(fmt.Errorf("%w: remove of %v", ErrValueOnLoan, k))
	}
	delete(m.entries, k)
	return e.val, true
}

// Lend checks the value under k out. It returns false when k is absent or
// already checked out.
func (m *Map[K, V]) Lend(k K) (*Loan[K, V], bool) {
	e, ok := m.entries[k]
	if !ok || e.out {
		return nil, false
	}
	e.out = true
	m.outstanding++
	return &Loan[K, V]{m: m, key: k, e: e}, true
}

// All returns an iterator over the entries in unspecified order. The map
// must not be mutated during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, e := range m.entries {
			if !yield(k, e.val) {
				return
			}
		}
	}
}

// Drain empties the map, calling fn for every entry. It panics when any
// loan is still outstanding, since draining would invalidate live loan
// pointers.
func (m *Map[K, V]) Drain(fn func(k K, v V)) {
	if m.outstanding > 0 {
		panic(fmt.Errorf("%w: drain with %d outstanding loans", ErrValueOnLoan, m.outstanding))
	}
	for k, e := range m.entries {
		delete(m.entries, k)
		fn(k, e.val)
	}
}

// Loan represents a checked-out value. The value stays in the map; the
// loan grants exclusive pointer access until Release.
type Loan[K comparable, V any] struct {
	m    *Map[K, V]
	key  K
	e    *entry[V]
	done bool
}

// Key returns the key the loan was taken for.
func (l *Loan[K, V]) Key() K {
	return l.key
}

// Value returns a pointer to the checked-out value. The pointer is valid
// until Release.
func (l *Loan[K, V]) Value() *V {
	return &l.e.val
}

// Release returns the value to the map. Release is idempotent.
func (l *Loan[K, V]) Release() {
	if l.done {
		return
	}
	l.done = true
	l.e.out = false
	l.m.outstanding--
}
