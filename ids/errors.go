package ids

import "errors"

// Sentinel errors for the ids package. Callers match with errors.Is.
var (
	// ErrNonPositiveCount indicates Enumerate was called with n < 1.
	ErrNonPositiveCount = errors.New("ids: component count must be at least 1")
	// ErrArityMismatch indicates BuildString received a radical list whose
	// length differs from the structure's component count.
	ErrArityMismatch = errors.New("ids: radical count does not match structure component count")
)
