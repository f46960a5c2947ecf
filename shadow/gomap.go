package shadow

// GoMap adapts a builtin map to the Store capability.
//
// The adapter mutates the map it was created from, so callers keep full
// visibility of committed state through the original map value.
type GoMap[K comparable, V any] map[K]V

// ContainsKey reports whether k is present.
func (m GoMap[K, V]) ContainsKey(k K) bool {
	_, ok := m[k]
	return ok
}

// Get returns the value stored under k.
func (m GoMap[K, V]) Get(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

// Insert stores v under k and returns the previous value, if any.
func (m GoMap[K, V]) Insert(k K, v V) (V, bool) {
	prev, ok := m[k]
	m[k] = v
	return prev, ok
}

// Remove deletes k and returns the removed value, if any.
func (m GoMap[K, V]) Remove(k K) (V, bool) {
	prev, ok := m[k]
	delete(m, k)
	return prev, ok
}
