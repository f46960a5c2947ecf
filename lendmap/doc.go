// Package lendmap provides a loan-tracking map: a mapping collection whose
// values can be checked out ("lent") through temporary loan handles.
//
// # Overview
//
// A Map stores values like an ordinary map and additionally tracks which
// entries are currently checked out. Lend hands out a Loan granting
// pointer access to the stored value; the entry stays in the map but is
// marked on loan until the Loan is released:
//
//	m := lendmap.New[string, int]()
//	m.Insert("hits", 1)
//
//	loan, ok := m.Lend("hits")
//	if ok {
//	    *loan.Value()++
//	    loan.Release()
//	}
//
// # Loan rules
//
// The collection owns all loan bookkeeping:
//
//   - Lend refuses a second loan of a key that is already checked out
//     (returns false).
//   - Insert and Remove of a checked-out key panic with an error wrapping
//     ErrValueOnLoan. Mutating an entry out from under a live loan is a
//     programmer error, not a recoverable condition.
//   - Release is idempotent and returns the entry to the map.
//
// # Thread safety
//
// A Map is NOT thread-safe. Only one goroutine should use a Map and its
// outstanding loans at a time.
package lendmap
