package radical

import "errors"

// Sentinel errors for radical validation and set construction.
// Callers match with errors.Is.
var (
	// ErrNotIdeograph indicates the input is not a single code point in
	// the CJK Unified Ideograph ranges.
	ErrNotIdeograph = errors.New("radical: not a CJK unified ideograph")
	// ErrSimplifiedOnly indicates a character excluded by the traditional
	// script profile: it exists only as a simplified Chinese form.
	ErrSimplifiedOnly = errors.New("radical: simplified-only character")
	// ErrEmptySet indicates a set was constructed with no radicals.
	ErrEmptySet = errors.New("radical: set requires at least one radical")
	// ErrDuplicateRadical indicates the same radical appeared twice in a
	// set's input list.
	ErrDuplicateRadical = errors.New("radical: duplicate radical in set")
)
