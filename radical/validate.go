package radical

import (
	"fmt"
	"unicode/utf8"
)

// cjkRanges lists the Unicode blocks accepted as atomic ideographic
// units: the base CJK Unified Ideographs block plus extensions A–J.
// Both ends inclusive.
var cjkRanges = [][2]rune{
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0x3400, 0x4DBF},   // Extension A
	{0x20000, 0x2A6DF}, // Extension B
	{0x2A700, 0x2B73F}, // Extension C
	{0x2B740, 0x2B81F}, // Extension D
	{0x2B820, 0x2CEAF}, // Extension E
	{0x2CEB0, 0x2EBEF}, // Extension F
	{0x2EBF0, 0x2EE5D}, // Extension I
	{0x30000, 0x3134F}, // Extension G
	{0x31350, 0x323AF}, // Extension H
	{0x323B0, 0x3347B}, // Extension J
}

// simplifiedOnly is a curated table of characters that occur only in the
// simplified Chinese script (their traditional counterparts differ).
// It intentionally covers common radicals and frequent characters, not
// the full GB repertoire; characters shared by both scripts never appear
// here. Ambiguous classical forms (e.g. 从, 云) are deliberately left
// out — shared usage predates the simplification reform.
var simplifiedOnly = map[rune]struct{}{
	'贝': {}, '车': {}, '东': {}, '门': {}, '马': {}, '鸟': {}, '鱼': {},
	'龙': {}, '页': {}, '风': {}, '飞': {}, '见': {}, '钅': {}, '讠': {},
	'纟': {}, '饣': {}, '汉': {}, '华': {}, '亿': {}, '产': {}, '农': {},
	'县': {}, '乐': {}, '书': {}, '们': {}, '问': {}, '间': {}, '闪': {},
	'钱': {}, '铁': {}, '银': {}, '错': {}, '阳': {}, '阴': {}, '韦': {},
	'长': {}, '齐': {}, '语': {}, '读': {}, '话': {},
}

// IsIdeograph reports whether r falls in a CJK Unified Ideograph block.
func IsIdeograph(r rune) bool {
	for _, rng := range cjkRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}

	return false
}

// Validate checks that s is a usable atomic radical under the
// traditional-script profile: exactly one code point, inside the CJK
// unified ranges, and not a simplified-only form. The two failure modes
// carry distinct sentinels so callers can tell malformed input apart
// from profile exclusion.
//
// Multi-code-point grapheme clusters are rejected as a whole rather than
// split; equality throughout the module is defined over whole code points.
func Validate(s string) error {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return fmt.Errorf("%q: %w", s, ErrNotIdeograph)
	}
	if !IsIdeograph(r) {
		return fmt.Errorf("%q: %w", s, ErrNotIdeograph)
	}
	if _, bad := simplifiedOnly[r]; bad {
		return fmt.Errorf("%q: %w", s, ErrSimplifiedOnly)
	}

	return nil
}
