package shadow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countingCloner wraps a Cloner and counts how often it runs.
func countingCloner[T any](n *int) Cloner[T] {
	return func(v T) T {
		*n++
		return DeepClone(v)
	}
}

func TestValue_ReadsOriginalWithoutCloning(t *testing.T) {
	clones := 0
	orig := "hello"
	v := NewValue(&orig, WithCloner(countingCloner[string](&clones)))

	require.Equal(t, "hello", v.Get())
	require.Equal(t, "hello", v.Get())
	require.False(t, v.Shadowed())
	require.Zero(t, clones)
}

func TestValue_MutClonesOnceAndReusesShadow(t *testing.T) {
	clones := 0
	orig := "hello"
	v := NewValue(&orig, WithCloner(countingCloner[string](&clones)))

	*v.Mut() += " world"
	*v.Mut() += "!"

	require.Equal(t, 1, clones, "second Mut must reuse the shadow")
	require.True(t, v.Shadowed())
	require.Equal(t, "hello world!", v.Get())
	require.Equal(t, "hello", orig, "original untouched before Replace")
}

func TestValue_ReplaceSwapsShadowIn(t *testing.T) {
	orig := "hello"
	v := NewValue(&orig)

	*v.Mut() = "replaced"

	prior, ok := v.Replace()
	require.True(t, ok)
	require.Equal(t, "hello", prior)
	require.Equal(t, "replaced", orig)
}

func TestValue_ReplaceWithoutMutationIsNoop(t *testing.T) {
	orig := "hello"
	v := NewValue(&orig)

	require.Equal(t, "hello", v.Get())

	prior, ok := v.Replace()
	require.False(t, ok)
	require.Zero(t, prior)
	require.Equal(t, "hello", orig)
}

func TestValue_DiscardNeverTouchesOriginal(t *testing.T) {
	orig := "hello"
	v := NewValue(&orig)

	*v.Mut() = "scratch"

	s, ok := v.Discard()
	require.True(t, ok)
	require.Equal(t, "scratch", s)
	require.Equal(t, "hello", orig)
}

func TestValue_DiscardWithoutMutation(t *testing.T) {
	orig := 42
	v := NewValue(&orig)

	s, ok := v.Discard()
	require.False(t, ok)
	require.Zero(t, s)
	require.Equal(t, 42, orig)
}

func TestValue_ConsumedWrapperRefusesSecondFinalize(t *testing.T) {
	orig := "hello"
	v := NewValue(&orig)
	*v.Mut() = "changed"

	_, ok := v.Replace()
	require.True(t, ok)

	_, ok = v.Replace()
	require.False(t, ok)
	_, ok = v.Discard()
	require.False(t, ok)
	require.Equal(t, "changed", orig)
}

func TestValue_ShallowCloneForFlatValues(t *testing.T) {
	orig := 10
	v := NewValue(&orig, WithCloner(ShallowClone[int]))

	*v.Mut() = 20
	require.Equal(t, 10, orig)

	prior, ok := v.Replace()
	require.True(t, ok)
	require.Equal(t, 10, prior)
	require.Equal(t, 20, orig)
}

// Deep cloning must detach reference-typed shadows from the original.
func TestValue_DeepCloneDetachesReferences(t *testing.T) {
	orig := []int{1, 2, 3}
	v := NewValue(&orig)

	s := v.Mut()
	(*s)[0] = 99

	require.Equal(t, []int{1, 2, 3}, orig)
	require.Equal(t, []int{99, 2, 3}, v.Get())
}
