// Package shadow provides copy-on-write overlay wrappers that buffer
// tentative mutations against an underlying value or key-value collection
// until an explicit commit or rollback decision is made.
//
// # Overview
//
// A wrapper takes exclusive ownership of an underlying structure for its
// lifetime and routes all reads and writes through a private overlay:
//
//   - Value buffers at most one shadow copy of a single value.
//   - Map buffers inserted and removed entries against a mapping capability.
//   - LendingMap does the same against a lending collection that can check
//     values out via loan handles.
//
// Nothing touches the underlying structure until Commit applies the overlay
// (removed entries first, then added entries) or Replace swaps the shadow
// copy in. Rollback and Discard throw the overlay away and leave the
// underlying structure exactly as it was.
//
// # Lifecycle
//
// A wrapper is single-use. Construct it, issue operations, then finalize
// exactly once:
//
//	m := shadow.NewMap[int, string](store, shadow.ImplicitRollback)
//	defer m.Close()
//
//	m.Insert(5, "Five")
//	m.Remove(1)
//	if err := m.Commit(); err != nil {
//	    return err
//	}
//
// Close is the scope-exit hook: it does nothing once the wrapper is
// finalized, and otherwise applies the wrapper's finalize Policy. Under the
// strict default, FailIfUnfinalized, forgetting to commit or roll back is a
// programmer error and Close panics with ErrUnfinalized. Value and
// LendingMap carry no policy; dropping them unfinalized silently discards
// the overlay.
//
// # Copy-on-write
//
// Overlay entries are independent copies of original data, produced by the
// wrapper's Cloner. Cloning is lazy: construction and reads never copy; the
// first mutable access to a value (Value.Mut, Map.GetMut, LendingMap.Lend on
// an underlying entry) is the only copy trigger, and repeated mutable access
// reuses the existing copy. The default Cloner deep-clones via
// github.com/huandu/go-clone; pass WithCloner(shadow.ShallowClone) when
// assignment is deep enough for the value type.
//
// # Collaborator capabilities
//
// Map works against any Store implementation; LendingMap against any
// LendingStore. GoMap adapts a builtin map to Store, and package lendmap
// provides a loan-tracking reference implementation of LendingStore.
//
// # Thread safety
//
// Wrappers are NOT thread-safe. A wrapper assumes exclusive access to its
// underlying structure; only one goroutine should use a wrapper, and nothing
// else may read or mutate the underlying structure while the wrapper is
// alive. Exclusivity is a usage discipline, not a runtime check.
package shadow
