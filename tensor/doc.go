// Package tensor answers batched "which characters combine these N
// components" queries as outer products over radical sets.
//
// 🚀 What is the tensor here?
//
//	For a radical set of size n and rank R, the outer product is an
//	n^R tensor whose cell (i₁,…,i_R) holds every character the database
//	knows that composes radical i₁ with radical i₂ … with radical i_R.
//	The rank-2 product over 五行 (金木水火土) is the classic 5×5 matrix
//	whose diagonal reads 鍂 林 沝 炎 圭.
//
// ✨ Key features:
//   - one strategy decision per call: closed-domain composition
//     signatures for pure Wu Xing sets, shape enumeration + exact
//     lookups for small open-domain ranks, component lookup above
//   - sparse results: empty cells cost nothing
//   - ranks 2–8; the cap (not a timeout) bounds the size^rank blow-up
//   - strict sentinels; Result.At returns typed errors for bad indices
//
// ⚙️ Usage:
//
//	res, err := tensor.OuterProduct(radical.WuXing(), 2)
//	cell, err := res.At(0, 0) // 鍂: 金 beside 金
//
// The shared character database is built on first use and reused across
// calls; construction dominates all query costs, so never rebuild it per
// query (see chardb.Shared).
package tensor
