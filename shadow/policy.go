package shadow

import "fmt"

// Policy selects what Close does when a Map is dropped without an explicit
// Commit or Rollback. The set is deliberately closed: Close dispatches
// exhaustively over these three values and panics on anything else.
//
// The policy is fixed at construction and cannot change mid-life.
type Policy int

const (
	// FailIfUnfinalized makes Close panic with ErrUnfinalized. Forgetting
	// to finalize is treated as a programmer error. This is the zero
	// value and the strict default.
	FailIfUnfinalized Policy = iota

	// ImplicitRollback makes Close silently discard the overlay, leaving
	// the underlying store untouched.
	ImplicitRollback

	// ImplicitCommit makes Close silently apply the overlay to the
	// underlying store.
	ImplicitCommit
)

// String returns the policy name for diagnostics.
func (p Policy) String() string {
	switch p {
	case FailIfUnfinalized:
		return "FailIfUnfinalized"
	case ImplicitRollback:
		return "ImplicitRollback"
	case ImplicitCommit:
		return "ImplicitCommit"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}
