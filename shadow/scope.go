package shadow

// WithMap runs fn against a fresh Map over store and guarantees exactly
// one finalize on every exit path: Commit when fn returns nil, Rollback
// when fn returns an error or panics (the panic is re-raised after the
// rollback).
func WithMap[K comparable, V any](store Store[K, V], fn func(m *Map[K, V]) error, opts ...Option[V]) error {
	m := NewMap(store, ImplicitRollback, opts...)
	defer m.Close()

	if err := fn(m); err != nil {
		return err
	}
	return m.Commit()
}

// WithLendingMap is WithMap for lending collections: Commit when fn
// returns nil, Rollback on error or panic.
func WithLendingMap[K comparable, V any](store LendingStore[K, V], fn func(m *LendingMap[K, V]) error, opts ...Option[V]) error {
	m := NewLendingMap(store, opts...)
	defer m.Close()

	if err := fn(m); err != nil {
		return err
	}
	return m.Commit()
}
