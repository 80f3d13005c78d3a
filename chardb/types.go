package chardb

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// MaxExpandDepth bounds the recursive expansion used to build the
// composition index. Characters whose expansion does not bottom out in
// the Wu Xing alphabet within this many levels are treated as "not
// expandable" and skipped — never as an error, so one self-referential
// or cyclic record cannot abort an indexing pass.
//
// Known limitation: a legitimately deeper character would be silently
// misclassified. No such character exists in the cjkvi-ids data for the
// Wu Xing alphabet, and the bound is deliberately not configurable.
const MaxExpandDepth = 10

// wuXing is the closed "stop" alphabet of the composition index:
// the Five Elements 金木水火土.
var wuXing = map[rune]struct{}{
	'金': {}, '木': {}, '水': {}, '火': {}, '土': {},
}

// IsWuXing reports whether r belongs to the Wu Xing stop alphabet.
// The tensor engine uses this to pick the closed-domain lookup strategy.
func IsWuXing(r rune) bool {
	_, ok := wuXing[r]

	return ok
}

// CharSet is a hash set of characters. Equality and hashing are over
// whole code points; multi-code-point graphemes never enter the module
// (the dataset loader and radical validator reject them).
type CharSet map[rune]struct{}

// NewCharSet builds a set from the given characters.
func NewCharSet(chars ...rune) CharSet {
	s := make(CharSet, len(chars))
	for _, c := range chars {
		s[c] = struct{}{}
	}

	return s
}

// Add inserts c.
func (s CharSet) Add(c rune) { s[c] = struct{}{} }

// Has reports membership of c.
func (s CharSet) Has(c rune) bool {
	_, ok := s[c]

	return ok
}

// Len returns the number of characters in the set.
func (s CharSet) Len() int { return len(s) }

// AddAll inserts every character of other into s.
func (s CharSet) AddAll(other CharSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Sorted returns the characters in ascending code-point order.
func (s CharSet) Sorted() []rune {
	out := make([]rune, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// String renders the set in sorted order, for logs and examples.
func (s CharSet) String() string { return string(s.Sorted()) }

// CompositionEntry is one diagnostics row of the composition index:
// a character together with its fully expanded Wu Xing counts.
type CompositionEntry struct {
	Char   rune
	Counts map[rune]int
}

// signature builds the canonical composition key: components in
// ascending code-point order, each followed by its count, e.g.
// {火:1, 水:2} → "水2火1". Zero and negative counts are dropped so that
// semantically equal count maps share a key.
func signature(counts map[rune]int) string {
	keys := make([]rune, 0, len(counts))
	for r, n := range counts {
		if n > 0 {
			keys = append(keys, r)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var sb strings.Builder
	for _, r := range keys {
		sb.WriteRune(r)
		sb.WriteString(strconv.Itoa(counts[r]))
	}

	return sb.String()
}

// componentKey builds the canonical multiset key for the component
// index: all leaves, duplicates kept, sorted by code point.
func componentKey(components []rune) string {
	sorted := make([]rune, len(components))
	copy(sorted, components)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return string(sorted)
}

// Option configures database construction.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger attaches a zap logger to New; construction statistics are
// logged at Info level. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
