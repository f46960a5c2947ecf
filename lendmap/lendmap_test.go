package lendmap

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/shadowkit/internal/testutil"
)

func TestMap_InsertGetRemove(t *testing.T) {
	m := New[string, int]()

	prev, ok := m.Insert("a", 1)
	require.False(t, ok)
	require.Zero(t, prev)
	require.True(t, m.ContainsKey("a"))
	require.Equal(t, 1, m.Len())

	prev, ok = m.Insert("a", 2)
	require.True(t, ok)
	require.Equal(t, 1, prev)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)

	gone, ok := m.Remove("a")
	require.True(t, ok)
	require.Equal(t, 2, gone)
	require.Zero(t, m.Len())

	_, ok = m.Remove("a")
	require.False(t, ok)
}

func TestMap_LendAndRelease(t *testing.T) {
	m := New[string, int]()
	m.Insert("hits", 1)

	loan, ok := m.Lend("hits")
	require.True(t, ok)
	require.Equal(t, "hits", loan.Key())
	require.Equal(t, 1, m.Outstanding())

	*loan.Value()++
	loan.Release()
	require.Zero(t, m.Outstanding())

	v, _ := m.Get("hits")
	require.Equal(t, 2, v, "mutation through the loan lands in the map")
}

func TestMap_LendRefusals(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)

	_, ok := m.Lend("missing")
	require.False(t, ok)

	loan, ok := m.Lend("a")
	require.True(t, ok)

	_, ok = m.Lend("a")
	require.False(t, ok, "conflicting loan must be refused")

	loan.Release()
	again, ok := m.Lend("a")
	require.True(t, ok)
	again.Release()
}

func TestLoan_ReleaseIsIdempotent(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)

	loan, _ := m.Lend("a")
	loan.Release()
	loan.Release()
	require.Zero(t, m.Outstanding())
}

func TestMap_MutatingCheckedOutEntryPanics(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)

	loan, _ := m.Lend("a")
	defer loan.Release()

	testutil.RequirePanicIs(t, ErrValueOnLoan, func() {
		m.Insert("a", 2)
	})
	testutil.RequirePanicIs(t, ErrValueOnLoan, func() {
		m.Remove("a")
	})
}

func TestMap_DrainEmptiesInto(t *testing.T) {
	m := New[int, string]()
	m.Insert(1, "One")
	m.Insert(2, "Two")

	got := make(map[int]string)
	m.Drain(func(k int, v string) {
		got[k] = v
	})

	require.Zero(t, m.Len())
	require.Equal(t, map[int]string{1: "One", 2: "Two"}, got)
}

func TestMap_DrainWithOutstandingLoanPanics(t *testing.T) {
	m := New[int, string]()
	m.Insert(1, "One")

	loan, _ := m.Lend(1)
	defer loan.Release()

	testutil.RequirePanicIs(t, ErrValueOnLoan, func() {
		m.Drain(func(int, string) {})
	})
}

func TestMap_AllIteratesEntries(t *testing.T) {
	m := New[int, string]()
	m.Insert(1, "One")
	m.Insert(2, "Two")

	require.Equal(t, map[int]string{1: "One", 2: "Two"}, maps.Collect(m.All()))
}
