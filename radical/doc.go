// Package radical validates atomic ideographic components and groups them
// into named, ordered, immutable sets used as tensor axes.
//
// Validation enforces the traditional-script profile: a radical must be a
// single code point inside the CJK Unified Ideograph blocks (base plus
// extensions A–J), and must not be a simplified-only form. The two
// rejection reasons are distinct sentinels (ErrNotIdeograph,
// ErrSimplifiedOnly) so callers can report them differently.
//
// Set construction rejects empty input (ErrEmptySet) and repeated
// elements (ErrDuplicateRadical) and preserves input order — the order is
// load-bearing, since tensor cell (i, j) combines At(i) with At(j).
//
// The WuXing preset provides 金木水火土, the closed alphabet for which
// chardb maintains its exhaustive composition index.
package radical
