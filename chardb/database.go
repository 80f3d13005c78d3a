package chardb

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/hanzikit/radicalgebra/ids"
)

// pair is one component-index value: a decomposition string together
// with the character it belongs to.
type pair struct {
	ids  string
	char rune
}

// Database holds the three read-only composition indices. All fields are
// written exactly once, inside New; afterwards the struct is safe for
// unsynchronized concurrent readers.
type Database struct {
	decomp map[rune]string

	exact       map[string]CharSet
	components  map[string][]pair
	composition map[string]CharSet

	// compositionEntries mirrors the composition index as a sorted slice
	// for diagnostics iteration.
	compositionEntries []CompositionEntry
}

// New builds a Database over the supplied character→decomposition
// mapping. The mapping is expected to be pre-cleaned (the dataset loader
// strips tags, entities and malformed lines); whatever arrives here is
// indexed as-is, with duplicate characters already collapsed by the map
// type.
//
// Complexity: O(R·L) for R records of decomposition length L, plus
// O(R·MaxExpandDepth) worst case for the composition expansion. Build
// once, share the result.
func New(records map[rune]string, opts ...Option) *Database {
	o := gatherOptions(opts)
	start := time.Now()

	db := &Database{
		decomp:      make(map[rune]string, len(records)),
		exact:       make(map[string]CharSet, len(records)),
		components:  make(map[string][]pair, len(records)),
		composition: make(map[string]CharSet),
	}
	for char, decomposition := range records {
		db.decomp[char] = decomposition
	}

	for char, decomposition := range db.decomp {
		// Exact index: two characters may legitimately share one
		// decomposition string; both stay in the set.
		set, ok := db.exact[decomposition]
		if !ok {
			set = NewCharSet()
			db.exact[decomposition] = set
		}
		set.Add(char)

		// Component index: leaves of the string, arrangement discarded.
		leaves := extractComponents(decomposition)
		key := componentKey(leaves)
		db.components[key] = append(db.components[key], pair{ids: decomposition, char: char})
	}

	// Composition index: full recursive expansion over the stop alphabet.
	skipped := 0
	for char := range db.decomp {
		counts, ok := db.expand(char, 0)
		if !ok {
			skipped++

			continue
		}
		sig := signature(counts)
		set, exists := db.composition[sig]
		if !exists {
			set = NewCharSet()
			db.composition[sig] = set
		}
		set.Add(char)
		db.compositionEntries = append(db.compositionEntries, CompositionEntry{Char: char, Counts: counts})
	}
	sort.Slice(db.compositionEntries, func(i, j int) bool {
		return db.compositionEntries[i].Char < db.compositionEntries[j].Char
	})

	o.logger.Info("chardb: indices built",
		zap.Int("records", len(db.decomp)),
		zap.Int("exact_keys", len(db.exact)),
		zap.Int("component_keys", len(db.components)),
		zap.Int("composition_chars", len(db.compositionEntries)),
		zap.Int("not_expandable", skipped),
		zap.Duration("elapsed", time.Since(start)),
	)

	return db
}

// Len returns the number of indexed characters.
func (db *Database) Len() int { return len(db.decomp) }

// Decomposition returns the recorded IDS string for char, if any.
func (db *Database) Decomposition(char rune) (string, bool) {
	s, ok := db.decomp[char]

	return s, ok
}

// LookupExact returns every character whose decomposition equals the
// given IDS string. Unknown strings yield an empty set, never an error.
// The returned set is the caller's to mutate.
func (db *Database) LookupExact(idsString string) CharSet {
	out := NewCharSet()
	if set, ok := db.exact[idsString]; ok {
		out.AddAll(set)
	}

	return out
}

// LookupByComponents returns every character whose decomposition uses
// exactly the given leaf components, in any arrangement. Input order is
// irrelevant; duplicates are significant (木木 ≠ 木).
func (db *Database) LookupByComponents(components []rune) CharSet {
	out := NewCharSet()
	for _, p := range db.components[componentKey(components)] {
		out.Add(p.char)
	}

	return out
}

// LookupByComposition returns every character whose full recursive
// expansion over the Wu Xing alphabet matches the given counts exactly.
// Counts for characters outside the alphabet can never match (the index
// only holds pure-alphabet expansions) and simply yield an empty set.
func (db *Database) LookupByComposition(counts map[rune]int) CharSet {
	out := NewCharSet()
	if set, ok := db.composition[signature(counts)]; ok {
		out.AddAll(set)
	}

	return out
}

// WuXingEntries returns the composition index as (character, counts)
// rows, ascending by character. Diagnostics surface; the counts maps are
// shared, treat them as read-only.
func (db *Database) WuXingEntries() []CompositionEntry {
	out := make([]CompositionEntry, len(db.compositionEntries))
	copy(out, db.compositionEntries)

	return out
}

// expand recursively resolves char into Wu Xing counts. ok=false means
// "not expandable": char is outside the alphabet with no record, some
// leaf of its decomposition is, or the depth bound was exceeded.
func (db *Database) expand(char rune, depth int) (map[rune]int, bool) {
	if depth > MaxExpandDepth {
		return nil, false
	}
	if IsWuXing(char) {
		return map[rune]int{char: 1}, true
	}

	decomposition, ok := db.decomp[char]
	if !ok {
		return nil, false
	}

	counts := make(map[rune]int)
	for _, r := range decomposition {
		if ids.IsOperator(r) {
			continue
		}
		sub, expandable := db.expand(r, depth+1)
		if !expandable {
			return nil, false
		}
		for component, n := range sub {
			counts[component] += n
		}
	}
	if len(counts) == 0 {
		// An all-operator decomposition is malformed; exclude it.
		return nil, false
	}

	return counts, true
}

// extractComponents returns the leaf components of an IDS string,
// duplicates preserved, operators dropped.
func extractComponents(idsString string) []rune {
	var leaves []rune
	for _, r := range idsString {
		if !ids.IsOperator(r) {
			leaves = append(leaves, r)
		}
	}

	return leaves
}
