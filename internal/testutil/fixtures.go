// Package testutil provides shared fixtures for the wrapper test suites.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// SeedEntries returns the canonical three-entry fixture used across the
// wrapper tests. Each call returns a fresh map.
func SeedEntries() map[int]string {
	return map[int]string{
		0: "Zero",
		1: "One",
		2: "Two",
	}
}

// RequireSameEntries asserts that got holds exactly the entries of want.
func RequireSameEntries(t testing.TB, want, got map[int]string) {
	t.Helper()

	require.Len(t, got, len(want))
	for k, v := range want {
		require.Contains(t, got, k)
		require.Equal(t, v, got[k])
	}
}

// RequirePanicIs asserts that fn panics with an error wrapping target.
func RequirePanicIs(t testing.TB, target error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
