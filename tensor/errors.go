package tensor

import "errors"

// Sentinel errors for the tensor package. Callers match with errors.Is.
var (
	// ErrNilSet indicates a nil *radical.Set was passed to OuterProduct.
	ErrNilSet = errors.New("tensor: radical set is nil")
	// ErrRankOutOfRange indicates a rank outside [MinRank, MaxRank].
	ErrRankOutOfRange = errors.New("tensor: rank must be between 2 and 8")
	// ErrIndexRank indicates Result.At received the wrong number of
	// coordinates for the result's rank.
	ErrIndexRank = errors.New("tensor: coordinate count does not match rank")
	// ErrIndexOutOfBounds indicates a coordinate outside [0, size).
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")
)
