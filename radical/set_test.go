package radical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanzikit/radicalgebra/radical"
)

// TestNewSet_Valid verifies ordered construction from valid radicals.
func TestNewSet_Valid(t *testing.T) {
	s, err := radical.NewSet("五行", []string{"金", "木", "水", "火", "土"})
	require.NoError(t, err)
	assert.Equal(t, "五行", s.Name())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, '金', s.At(0))
	assert.Equal(t, '土', s.At(4))
	assert.Equal(t, []rune("金木水火土"), s.Runes(), "input order must be preserved")
}

// TestNewSet_Empty verifies the empty list fails with ErrEmptySet.
func TestNewSet_Empty(t *testing.T) {
	_, err := radical.NewSet("empty", nil)
	assert.ErrorIs(t, err, radical.ErrEmptySet)

	_, err = radical.NewSetFromString("empty", "")
	assert.ErrorIs(t, err, radical.ErrEmptySet)
}

// TestNewSet_Duplicate verifies [A, A] fails with ErrDuplicateRadical.
func TestNewSet_Duplicate(t *testing.T) {
	_, err := radical.NewSet("dup", []string{"木", "木"})
	assert.ErrorIs(t, err, radical.ErrDuplicateRadical)
}

// TestNewSet_InvalidElement verifies validation failures propagate with
// their original sentinel.
func TestNewSet_InvalidElement(t *testing.T) {
	_, err := radical.NewSet("latin", []string{"金", "A"})
	assert.ErrorIs(t, err, radical.ErrNotIdeograph)

	_, err = radical.NewSet("simplified", []string{"金", "钱"})
	assert.ErrorIs(t, err, radical.ErrSimplifiedOnly)
}

// TestNewSetFromString verifies rune splitting, including a character
// outside the Basic Multilingual Plane.
func TestNewSetFromString(t *testing.T) {
	s, err := radical.NewSetFromString("custom", "日月")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, '月', s.At(1))

	// U+20000 is the first Extension B ideograph; one code point, four
	// UTF-8 bytes. It must count as a single radical.
	ext, err := radical.NewSetFromString("extB", "金\U00020000")
	require.NoError(t, err)
	assert.Equal(t, 2, ext.Len())
}

// TestSet_RunesIsCopy ensures callers cannot mutate a set through Runes().
func TestSet_RunesIsCopy(t *testing.T) {
	s, err := radical.NewSetFromString("五行", "金木水火土")
	require.NoError(t, err)

	runes := s.Runes()
	runes[0] = 'X'
	assert.Equal(t, '金', s.At(0), "Runes() must hand out a copy")
}

// TestWuXing verifies the preset content and independence of instances.
func TestWuXing(t *testing.T) {
	w := radical.WuXing()
	assert.Equal(t, "五行", w.Name())
	assert.Equal(t, []rune("金木水火土"), w.Runes())
	assert.NotSame(t, w, radical.WuXing(), "preset returns fresh instances")
}
