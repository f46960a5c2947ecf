package shadow

import clone "github.com/huandu/go-clone/generic"

// Cloner produces an independent copy of a value. Overlay entries are
// copies, not views, of original data, so the clone must be deep enough
// that mutating the copy cannot be observed through the original.
type Cloner[V any] func(V) V

// DeepClone is the default Cloner. It deep-clones arbitrary values,
// including nested pointers, slices, and maps.
func DeepClone[V any](v V) V {
	return clone.Clone(v)
}

// ShallowClone copies by assignment. Sufficient for value types without
// reference fields (numbers, strings, flat structs).
func ShallowClone[V any](v V) V {
	return v
}
