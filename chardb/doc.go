// Package chardb indexes character-decomposition records for fast
// composition lookups.
//
// 🚀 What is the character database?
//
//	Raw records map a character to its IDS decomposition string
//	(林 → ⿰木木). Construction inverts and enriches that mapping into
//	three complementary read-only indices:
//
//	 1. exact       — IDS string → characters with that exact string.
//	    Catches arrangement-sensitive matches: ⿰木木 and ⿱木木 differ.
//	 2. components  — sorted leaf-component multiset → (IDS, character)
//	    pairs. "Uses exactly these glyphs somewhere", arrangement blind.
//	 3. composition — restricted to the Wu Xing alphabet 金木水火土:
//	    each character is recursively expanded through the record set
//	    until only alphabet members remain, and indexed under its
//	    canonical (component, count) signature. This index sees through
//	    arbitrary nesting: 鑫 (⿱金鍂) lands under 金×3 even though its
//	    immediate decomposition mentions 鍂, not three 金.
//
// ✨ Guarantees:
//   - indices are built once in New and never mutated afterwards —
//     a constructed Database is safe for unsynchronized concurrent reads
//   - lookups never fail: unknown keys yield empty sets
//   - recursive expansion is bounded by MaxExpandDepth; records that
//     exceed the bound (including self-referential atomic entries) are
//     silently left out of the composition index
//
// ⚙️ Usage:
//
//	db := chardb.Shared() // process-wide instance over the embedded data
//	db.LookupExact("⿰金金")              // {鍂}
//	db.LookupByComponents([]rune("木木")) // {林}
//	db.LookupByComposition(map[rune]int{'金': 3}) // {鑫}
//
// Construction over a full cjkvi-ids dump (tens of thousands of records)
// dominates every other cost in this module; reuse one Database — via
// Shared or your own caching — instead of rebuilding per query.
package chardb
