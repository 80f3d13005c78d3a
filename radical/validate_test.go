package radical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanzikit/radicalgebra/radical"
)

// TestValidate_Accepts covers shared traditional/simplified characters
// across several CJK blocks.
func TestValidate_Accepts(t *testing.T) {
	for _, s := range []string{"金", "木", "水", "火", "土", "日", "月", "㐂", "\U00020000"} {
		assert.NoError(t, radical.Validate(s), "radical %q", s)
	}
}

// TestValidate_RejectsNonIdeographs covers empty input, Latin, kana,
// IDS operators and multi-code-point input.
func TestValidate_RejectsNonIdeographs(t *testing.T) {
	for _, s := range []string{"", "A", "あ", "⿰", "金木"} {
		assert.ErrorIs(t, radical.Validate(s), radical.ErrNotIdeograph, "input %q", s)
	}
}

// TestValidate_RejectsSimplifiedOnly verifies the script-profile sentinel
// is distinct from the malformed-input sentinel.
func TestValidate_RejectsSimplifiedOnly(t *testing.T) {
	for _, s := range []string{"钱", "马", "门", "龙"} {
		err := radical.Validate(s)
		assert.ErrorIs(t, err, radical.ErrSimplifiedOnly, "input %q", s)
		assert.NotErrorIs(t, err, radical.ErrNotIdeograph, "input %q", s)
	}
}

// TestIsIdeograph spot-checks block boundaries.
func TestIsIdeograph(t *testing.T) {
	assert.True(t, radical.IsIdeograph(0x4E00), "first unified ideograph")
	assert.True(t, radical.IsIdeograph(0x9FFF), "end of base block")
	assert.True(t, radical.IsIdeograph(0x3400), "extension A start")
	assert.False(t, radical.IsIdeograph(0x2FF0), "IDC block is not ideographic")
	assert.False(t, radical.IsIdeograph('A'))
}
