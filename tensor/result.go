package tensor

import (
	"fmt"

	"github.com/hanzikit/radicalgebra/chardb"
	"github.com/hanzikit/radicalgebra/radical"
)

// Result is the outcome of an outer product: an R-dimensional tensor of
// shape size^rank whose cells are character sets. Storage is sparse —
// only non-empty cells are kept, absent cells read as the empty set.
// Immutable once produced; At hands out copies.
type Result struct {
	set  *radical.Set
	rank int
	size int
	data map[uint64]chardb.CharSet
}

// Rank returns the tensor rank (number of combined components).
func (r *Result) Rank() int { return r.rank }

// Size returns the length of each axis (the radical-set size).
func (r *Result) Size() int { return r.size }

// Shape returns the dimensions: size repeated rank times.
func (r *Result) Shape() []int {
	shape := make([]int, r.rank)
	for i := range shape {
		shape[i] = r.size
	}

	return shape
}

// RadicalSet returns the set the tensor was computed over.
func (r *Result) RadicalSet() *radical.Set { return r.set }

// Cells returns the number of non-empty cells actually stored.
func (r *Result) Cells() int { return len(r.data) }

// At returns the character set at the given coordinates.
//
// Errors:
//   - ErrIndexRank        — len(index) != Rank().
//   - ErrIndexOutOfBounds — any coordinate outside [0, Size()).
//
// Empty cells return an empty set, not an error. The returned set is a
// copy; mutating it does not affect the result.
func (r *Result) At(index ...int) (chardb.CharSet, error) {
	if len(index) != r.rank {
		return nil, fmt.Errorf("got %d coordinates for rank %d: %w", len(index), r.rank, ErrIndexRank)
	}
	for dim, i := range index {
		if i < 0 || i >= r.size {
			return nil, fmt.Errorf("index %d out of [0,%d) in dimension %d: %w", i, r.size, dim, ErrIndexOutOfBounds)
		}
	}

	out := chardb.NewCharSet()
	if cell, ok := r.data[packIndex(index, r.size)]; ok {
		out.AddAll(cell)
	}

	return out, nil
}

// packIndex folds coordinates into one map key as a mixed-radix number
// in base size, so distinct tuples map to distinct keys for any set
// size. Every query materializes the full size^rank index space, so a
// query that can complete at all produces keys that fit a uint64.
func packIndex(index []int, size int) uint64 {
	var key uint64
	for _, i := range index {
		key = key*uint64(size) + uint64(i)
	}

	return key
}
