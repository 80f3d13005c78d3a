package tensor

import (
	"fmt"

	"github.com/hanzikit/radicalgebra/chardb"
	"github.com/hanzikit/radicalgebra/ids"
	"github.com/hanzikit/radicalgebra/radical"
)

// Rank limits. Cell count is size^rank and, in the open domain, per-cell
// cost is driven by the shape count T(rank); both grow super-exponentially,
// so the caps below are the only cost control. There is no runtime timeout.
const (
	// MinRank is the smallest supported rank (a single component is not
	// a composition).
	MinRank = 2
	// MaxRank is the largest supported rank.
	MaxRank = 8
	// maxEnumerationRank is the last rank for which open-domain queries
	// enumerate tree shapes. T(5)=144212 shapes is workable per query;
	// T(6) is in the millions, so ranks above fall back to the
	// arrangement-blind component lookup alone.
	maxEnumerationRank = 5
)

// OuterProduct — batched composition query over a radical set
//
// Description:
//
//	Computes the rank-R outer product of set with itself: for every
//	index tuple (i₁,…,i_R), the cell holds all characters composable
//	from (set[i₁],…,set[i_R]). Uses the process-shared database; see
//	OuterProductWith to supply your own.
//
// Strategy (chosen once per call):
//   - Closed domain — every radical is in the Wu Xing alphabet: each
//     cell is answered from the composition index by count signature.
//     The most complete strategy, since the index sees through
//     arbitrary nesting rather than just flat shapes.
//   - Open domain, rank ≤ 5: enumerate the T(rank) shapes once, shared
//     across all cells; per cell, serialize every shape and union the
//     exact-index hits, then union the component-index hits to catch
//     entries whose recorded shape the enumerator does not construct.
//   - Open domain, rank > 5: component-index lookup only (shape
//     enumeration would dwarf every other cost).
//
// Errors:
//   - ErrNilSet         — set is nil.
//   - ErrRankOutOfRange — rank outside [2, 8].
//
// Complexity: O(size^rank) cells; per cell O(1) signature/component
// lookups, plus O(T(rank)) exact lookups in the enumerating branch.
func OuterProduct(set *radical.Set, rank int) (*Result, error) {
	return OuterProductWith(chardb.Shared(), set, rank)
}

// OuterProductWith is OuterProduct against an explicit database.
// Intended for callers that load their own record sets (and for tests).
func OuterProductWith(db *chardb.Database, set *radical.Set, rank int) (*Result, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if rank < MinRank || rank > MaxRank {
		return nil, fmt.Errorf("rank %d: %w", rank, ErrRankOutOfRange)
	}

	closed := true
	for _, r := range set.Runes() {
		if !chardb.IsWuXing(r) {
			closed = false

			break
		}
	}

	// Shapes depend only on the rank, never on the cell; enumerate once.
	var shapes []ids.Structure
	if !closed && rank <= maxEnumerationRank {
		var err error
		if shapes, err = ids.Enumerate(rank); err != nil {
			// Unreachable: rank ≥ MinRank ≥ 1 was just validated.
			return nil, err
		}
	}

	size := set.Len()
	data := make(map[uint64]chardb.CharSet)

	index := make([]int, rank)
	radicals := make([]rune, rank)
	for {
		for axis, i := range index {
			radicals[axis] = set.At(i)
		}

		cell := lookupCell(db, radicals, closed, shapes)
		if cell.Len() > 0 {
			data[packIndex(index, size)] = cell
		}

		// Odometer increment over the index space, last axis fastest.
		axis := rank - 1
		for ; axis >= 0; axis-- {
			index[axis]++
			if index[axis] < size {
				break
			}
			index[axis] = 0
		}
		if axis < 0 {
			break
		}
	}

	return &Result{set: set, rank: rank, size: size, data: data}, nil
}

// lookupCell resolves one cell's character set for the given ordered
// radicals under the strategy fixed by the caller.
func lookupCell(db *chardb.Database, radicals []rune, closed bool, shapes []ids.Structure) chardb.CharSet {
	if closed {
		counts := make(map[rune]int, len(radicals))
		for _, r := range radicals {
			counts[r]++
		}

		return db.LookupByComposition(counts)
	}

	cell := chardb.NewCharSet()
	for _, shape := range shapes {
		s, err := ids.BuildString(shape, radicals)
		if err != nil {
			// Unreachable: every enumerated shape has exactly rank slots.
			continue
		}
		cell.AddAll(db.LookupExact(s))
	}
	cell.AddAll(db.LookupByComponents(radicals))

	return cell
}
