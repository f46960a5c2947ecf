package shadow

// Option configures a wrapper at construction time.
type Option[V any] func(*options[V])

type options[V any] struct {
	cloner Cloner[V]
}

func defaultOptions[V any]() options[V] {
	return options[V]{
		cloner: DeepClone[V],
	}
}

func applyOptions[V any](opts []Option[V]) options[V] {
	o := defaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCloner overrides the default deep-clone Cloner used when values are
// promoted into the overlay. A nil fn is ignored.
func WithCloner[V any](fn Cloner[V]) Option[V] {
	return func(o *options[V]) {
		if fn != nil {
			o.cloner = fn
		}
	}
}
