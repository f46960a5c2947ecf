package shadow

// Value is a copy-on-write overlay over a single value. It holds at most
// one shadow copy of the original; reads see the shadow when it exists and
// the original otherwise.
//
// A Value is NOT thread-safe. It assumes exclusive access to the wrapped
// value; nothing else may read or write *ref while the wrapper is alive.
type Value[T any] struct {
	orig   *T
	shadow *T
	cloner Cloner[T]
	done   bool
}

// NewValue wraps ref. No copy is made at construction; the first Mut call
// is the only copy trigger.
func NewValue[T any](ref *T, opts ...Option[T]) *Value[T] {
	o := applyOptions(opts)
	return &Value[T]{
		orig:   ref,
		cloner: o.cloner,
	}
}

// Get returns the current logical value: the shadow copy when one exists,
// the original otherwise. Get never clones.
func (v *Value[T]) Get() T {
	if v.shadow != nil {
		return *v.shadow
	}
	return *v.orig
}

// Mut returns a pointer to the shadow copy, cloning the original into the
// shadow slot first if no copy exists yet. Repeated calls reuse the same
// shadow; the original is never touched.
func (v *Value[T]) Mut() *T {
	if v.shadow == nil {
		c := v.cloner(*v.orig)
		v.shadow = &c
	}
	return v.shadow
}

// Shadowed reports whether a shadow copy exists, i.e. whether Mut has been
// called since construction or the last finalize.
func (v *Value[T]) Shadowed() bool {
	return v.shadow != nil
}

// Replace consumes the wrapper. When a shadow copy exists it is swapped
// into the original's storage and the prior original is returned with
// true. When no shadow exists, or the wrapper was already consumed,
// Replace returns the zero value and false and the original is untouched.
func (v *Value[T]) Replace() (T, bool) {
	var zero T
	if v.done {
		return zero, false
	}
	v.done = true
	if v.shadow == nil {
		return zero, false
	}
	prior := *v.orig
	*v.orig = *v.shadow
	v.shadow = nil
	return prior, true
}

// Discard consumes the wrapper and returns the shadow copy, if one exists.
// The original is never touched.
func (v *Value[T]) Discard() (T, bool) {
	var zero T
	if v.done {
		return zero, false
	}
	v.done = true
	if v.shadow == nil {
		return zero, false
	}
	s := *v.shadow
	v.shadow = nil
	return s, true
}
