// Package radicalgebra treats Chinese characters as algebra: radicals
// are the atoms, Ideographic Description Sequences (IDS) are the
// composition rules, and outer products over radical sets reveal every
// compound character the data knows how to build.
//
// 🚀 What is radicalgebra?
//
//	A deterministic, fully in-memory toolkit that brings together:
//		• IDS structures: the 12 composition operators, enumeration of all
//		  tree shapes for n components, and IDS string serialization
//		• Radical sets: validated, ordered, deduplicated collections with
//		  the Wu Xing (五行) preset 金木水火土
//		• Composition database: three indices over cjkvi-ids decomposition
//		  records (exact IDS, component multiset, recursive composition)
//		• Tensor engine: rank 2..8 outer products whose cells are the
//		  character sets buildable from each radical combination
//
// ✨ Why choose radicalgebra?
//
//   - Deterministic – same inputs, same enumeration order, same cells
//   - Immutable results – every lookup and tensor cell is handed out as
//     a copy, safe for concurrent readers
//   - Batteries included – a curated cjkvi-ids extract ships embedded,
//     so 鑫, 森, 淼, 焱 and 燚 are one call away
//   - Honest errors – sentinel errors for every failure mode, matched
//     with errors.Is
//
// Everything is organized under five subpackages plus a CLI:
//
//	ids/       — operators, structure enumeration, IDS serialization
//	radical/   — radical validation, sets, the Wu Xing preset
//	dataset/   — cjkvi-ids parsing and the embedded extract
//	chardb/    — the indexed composition database and shared instance
//	tensor/    — outer products and sparse tensor results
//	cmd/radix/ — terminal rendering of matrices and diagonals
//
// Quick example, the Wu Xing rank-2 diagonal:
//
//	金+金 = 鍂   木+木 = 林   水+水 = 沝   火+火 = 炎   土+土 = 圭
//
// and one rank up, the famous triples: 鑫 森 淼 焱 垚.
//
//	go get github.com/hanzikit/radicalgebra
package radicalgebra
