package shadow

import "github.com/joshuapare/shadowkit/lendmap"

// Store is the mapping capability a Map wrapper buffers mutations against.
//
// Implementations back the four operations with whatever structure they
// like; the wrapper only requires key membership, copy-out reads, and
// insert/remove returning the previous value when one existed.
type Store[K comparable, V any] interface {
	// ContainsKey reports whether k is present.
	ContainsKey(k K) bool

	// Get returns a copy of the value stored under k.
	Get(k K) (V, bool)

	// Insert stores v under k and returns the previous value, if any.
	Insert(k K, v V) (V, bool)

	// Remove deletes k and returns the removed value, if any.
	Remove(k K) (V, bool)
}

// Loan grants temporary dereferenceable access to a value checked out of a
// lending collection. The collection owns the loan bookkeeping, including
// refusing conflicting concurrent loans.
type Loan[V any] interface {
	// Value returns a pointer to the checked-out value. The pointer is
	// valid until Release.
	Value() *V

	// Release returns the value to the collection. Release is idempotent.
	Release()
}

// LendingStore is the lending-collection capability a LendingMap wrapper
// buffers mutations against: the full mapping capability plus the ability
// to check a contained value out via a Loan.
type LendingStore[K comparable, V any] interface {
	Store[K, V]

	// Lend checks the value under k out. It returns false when k is
	// absent or the collection refuses the loan.
	Lend(k K) (Loan[V], bool)
}

// lendmapStore adapts *lendmap.Map to LendingStore. The concrete Lend
// returns *lendmap.Loan, which the interface cannot express directly.
type lendmapStore[K comparable, V any] struct {
	m *lendmap.Map[K, V]
}

// AsLendingStore adapts a lendmap.Map to the LendingStore capability.
func AsLendingStore[K comparable, V any](m *lendmap.Map[K, V]) LendingStore[K, V] {
	return lendmapStore[K, V]{m: m}
}

func (s lendmapStore[K, V]) ContainsKey(k K) bool      { return s.m.ContainsKey(k) }
func (s lendmapStore[K, V]) Get(k K) (V, bool)         { return s.m.Get(k) }
func (s lendmapStore[K, V]) Insert(k K, v V) (V, bool) { return s.m.Insert(k, v) }
func (s lendmapStore[K, V]) Remove(k K) (V, bool)      { return s.m.Remove(k) }

func (s lendmapStore[K, V]) Lend(k K) (Loan[V], bool) {
	loan, ok := s.m.Lend(k)
	if !ok {
		return nil, false
	}
	return loan, true
}
