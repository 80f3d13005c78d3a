package ids_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanzikit/radicalgebra/ids"
)

// TestEnumerate_NonPositiveCount verifies that n < 1 yields ErrNonPositiveCount.
func TestEnumerate_NonPositiveCount(t *testing.T) {
	_, err := ids.Enumerate(0)
	assert.ErrorIs(t, err, ids.ErrNonPositiveCount, "n=0 must error")

	_, err = ids.Enumerate(-3)
	assert.ErrorIs(t, err, ids.ErrNonPositiveCount, "negative n must error")
}

// TestEnumerate_SingleComponent verifies T(1) is exactly one leaf.
func TestEnumerate_SingleComponent(t *testing.T) {
	shapes, err := ids.Enumerate(1)
	require.NoError(t, err)
	require.Len(t, shapes, 1, "T(1) must be 1")
	assert.IsType(t, ids.Leaf{}, shapes[0], "the only 1-component shape is a leaf")
	assert.Equal(t, 1, shapes[0].ComponentCount())
	assert.Equal(t, 0, shapes[0].Depth())
}

// TestEnumerate_TwoComponents verifies T(2) covers every binary operator
// exactly once, in catalog order.
func TestEnumerate_TwoComponents(t *testing.T) {
	shapes, err := ids.Enumerate(2)
	require.NoError(t, err)
	require.Len(t, shapes, len(ids.BinaryOps), "T(2) must equal the binary catalog size")

	for i, s := range shapes {
		node, ok := s.(*ids.Node)
		require.True(t, ok, "2-component shapes are internal nodes")
		assert.Equal(t, ids.BinaryOps[i], node.Op, "catalog order must be preserved")
		assert.Equal(t, 2, node.ComponentCount())
		assert.Equal(t, 1, node.Depth())
	}
}

// TestEnumerate_KnownCounts checks the recurrence values for small n:
// T(3) = 10·(T1·T2 + T2·T1) + 2 = 202,
// T(4) = 10·(T1·T3 + T2·T2 + T3·T1) + 2·3·(T1·T1·T2) = 5100.
func TestEnumerate_KnownCounts(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{n: 1, want: 1},
		{n: 2, want: 10},
		{n: 3, want: 202},
		{n: 4, want: 5100},
	}
	for _, tc := range cases {
		shapes, err := ids.Enumerate(tc.n)
		require.NoError(t, err)
		assert.Len(t, shapes, tc.want, "T(%d)", tc.n)
	}
}

// TestEnumerate_AllCountsMatch verifies every enumerated shape has exactly
// n leaf slots and positive depth for n ≥ 2.
func TestEnumerate_AllCountsMatch(t *testing.T) {
	for n := 1; n <= 5; n++ {
		shapes, err := ids.Enumerate(n)
		require.NoError(t, err)
		require.NotEmpty(t, shapes, "T(%d) must be non-empty", n)
		for _, s := range shapes {
			if s.ComponentCount() != n {
				t.Fatalf("Enumerate(%d) produced a shape with %d components", n, s.ComponentCount())
			}
		}
	}
}

// TestEnumerate_StableOrder serializes two independent enumerations and
// requires identical order, the deterministic-output contract the tensor
// engine depends on.
func TestEnumerate_StableOrder(t *testing.T) {
	serialize := func() []string {
		shapes, err := ids.Enumerate(3)
		require.NoError(t, err)
		out := make([]string, len(shapes))
		for i, s := range shapes {
			str, buildErr := ids.BuildString(s, []rune("金木水"))
			require.NoError(t, buildErr)
			out[i] = str
		}

		return out
	}

	first := serialize()
	ids.ResetCache()
	second := serialize()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("enumeration order changed across cache resets (-first +second):\n%s", diff)
	}
}

// TestEnumerate_ReturnsCopy ensures callers cannot corrupt the memoized
// slice through the returned value.
func TestEnumerate_ReturnsCopy(t *testing.T) {
	first, err := ids.Enumerate(2)
	require.NoError(t, err)
	first[0] = nil

	second, err := ids.Enumerate(2)
	require.NoError(t, err)
	assert.NotNil(t, second[0], "cached shapes must be isolated from caller writes")
}

// TestEnumerate_NodeMutationIsolation ensures writes through a returned
// node's exported fields stay local to the caller's copy.
func TestEnumerate_NodeMutationIsolation(t *testing.T) {
	shapes, err := ids.Enumerate(3)
	require.NoError(t, err)

	// Graft an extra slot into the first shape's leftmost child.
	mutated, ok := shapes[0].(*ids.Node)
	require.True(t, ok)
	mutated.Children[0] = &ids.Node{Op: ids.BinaryOps[0], Children: []ids.Structure{ids.Leaf{}, ids.Leaf{}}}
	require.Equal(t, 4, shapes[0].ComponentCount(), "local copy reflects the write")

	again, err := ids.Enumerate(3)
	require.NoError(t, err)
	assert.Equal(t, 3, again[0].ComponentCount(), "memo cache must not see caller writes")
}

// TestIsOperator covers the IDC block boundaries.
func TestIsOperator(t *testing.T) {
	for _, op := range ids.BinaryOps {
		assert.True(t, ids.IsOperator(op.Symbol), "binary %s", op.Name)
	}
	for _, op := range ids.TernaryOps {
		assert.True(t, ids.IsOperator(op.Symbol), "ternary %s", op.Name)
	}
	assert.False(t, ids.IsOperator('金'))
	assert.False(t, ids.IsOperator('A'))
	assert.True(t, ids.IsOperator(0x2FFF), "upper block edge is reserved for future IDCs")
}
