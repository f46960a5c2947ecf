package shadow

import "errors"

var (
	// ErrUnfinalized indicates a wrapper was closed without commit or
	// rollback under the FailIfUnfinalized policy. It is carried by the
	// panic raised from Close.
	ErrUnfinalized = errors.New("shadow: wrapper dropped without commit or rollback")

	// ErrAbsentKey indicates an indexed lookup for a key absent from the
	// logical view. It is carried by the panic raised from MustGet.
	ErrAbsentKey = errors.New("shadow: key absent from logical view")

	// ErrFinalized indicates Commit or Rollback was called on a wrapper
	// that already finalized.
	ErrFinalized = errors.New("shadow: wrapper already finalized")
)
