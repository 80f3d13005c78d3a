package ids

import (
	"fmt"
	"sync"
)

// Enumerate — exhaustive composition-shape enumeration
//
// Description:
//
//	Enumerate returns every abstract IDS tree shape with exactly n leaf
//	slots. Shapes are independent of which components fill them; the
//	tensor engine reuses one enumeration across all cells of a query.
//
// Algorithm Outline (DP over splits):
//  1. T(1) = { Leaf }.
//  2. For n ≥ 2: for every binary operator op (catalog order), for every
//     split k = 1..n-1, emit Node(op, l, r) for each (l, r) in
//     T(k) × T(n-k). Operators are positional, so (k, n-k) and (n-k, k)
//     both appear and are never merged.
//  3. For n ≥ 3 additionally: for every ternary operator, for every
//     ordered (i, j, k) with i+j+k = n and i, j, k ≥ 1, emit
//     Node(op, a, b, c) for each triple in T(i) × T(j) × T(k).
//
// Counts: T(1)=1, T(2)=10, T(3)=10·(1·10+10·1)+2 = 202, and
// super-exponentially upward from there — T(6) is already in the millions,
// which is why the tensor engine stops enumerating above rank 5.
//
// Results are memoized per n under a package-level lock; recursion
// strictly decreases n, so the cache cannot cycle. Callers receive a
// deep copy and may mutate it freely; the memoized shapes are never
// handed out directly.
//
// Errors:
//   - ErrNonPositiveCount — n < 1.
//
// Complexity: O(T(n)) time and memory on first call, O(T(n)·n) copy after.
func Enumerate(n int) ([]Structure, error) {
	if n < 1 {
		return nil, fmt.Errorf("enumerate %d: %w", n, ErrNonPositiveCount)
	}

	enumMu.Lock()
	defer enumMu.Unlock()

	cached := enumerateLocked(n)
	out := make([]Structure, len(cached))
	for i, s := range cached {
		out[i] = cloneStructure(s)
	}

	return out, nil
}

// cloneStructure deep-copies a shape. Node has exported mutable fields,
// so returning cached pointers would let one caller's write corrupt the
// memo cache for every later caller. Leaves are values and copy by
// assignment.
func cloneStructure(s Structure) Structure {
	node, ok := s.(*Node)
	if !ok {
		return s
	}

	children := make([]Structure, len(node.Children))
	for i, c := range node.Children {
		children[i] = cloneStructure(c)
	}

	return &Node{Op: node.Op, Children: children}
}

var (
	enumMu    sync.Mutex
	enumCache = map[int][]Structure{}
)

// enumerateLocked computes (or retrieves) the shape list for n.
// Caller holds enumMu; n ≥ 1.
func enumerateLocked(n int) []Structure {
	if cached, ok := enumCache[n]; ok {
		return cached
	}

	if n == 1 {
		leafOnly := []Structure{Leaf{}}
		enumCache[1] = leafOnly

		return leafOnly
	}

	var shapes []Structure

	for _, op := range BinaryOps {
		for k := 1; k < n; k++ {
			lefts := enumerateLocked(k)
			rights := enumerateLocked(n - k)
			for _, l := range lefts {
				for _, r := range rights {
					shapes = append(shapes, &Node{Op: op, Children: []Structure{l, r}})
				}
			}
		}
	}

	if n >= 3 {
		for _, op := range TernaryOps {
			for i := 1; i <= n-2; i++ {
				for j := 1; j <= n-i-1; j++ {
					k := n - i - j
					lefts := enumerateLocked(i)
					mids := enumerateLocked(j)
					rights := enumerateLocked(k)
					for _, l := range lefts {
						for _, m := range mids {
							for _, r := range rights {
								shapes = append(shapes, &Node{Op: op, Children: []Structure{l, m, r}})
							}
						}
					}
				}
			}
		}
	}

	enumCache[n] = shapes

	return shapes
}

// ResetCache drops all memoized shape lists. Intended for tests that
// measure cold-start enumeration; production code never needs it.
func ResetCache() {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumCache = map[int][]Structure{}
}
