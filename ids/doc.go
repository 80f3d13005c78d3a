// Package ids enumerates abstract Ideographic Description Sequence (IDS)
// tree shapes and serializes them into concrete IDS strings.
//
// 🚀 What is an IDS structure?
//
//	Unicode describes how a compound ideograph is assembled from parts
//	with twelve Ideographic Description Characters: ten binary
//	(⿰ ⿱ ⿴ ⿵ ⿶ ⿷ ⿸ ⿹ ⿺ ⿻) and two ternary (⿲ ⿳). An abstract
//	structure is the tree of operators alone — which slots exist and how
//	they nest — independent of the components that fill them. "⿰金木"
//	and "⿰日月" share the same structure; only the leaves differ.
//
// ✨ Key features:
//   - Enumerate(n): every shape with exactly n leaf slots, memoized,
//     deterministic order (T(1)=1, T(2)=10, T(3)=202, …)
//   - BuildString: preorder serialization, radicals consumed left to right
//   - sealed Leaf | Node tagged union; immutable, shareable subtrees
//   - strict sentinels (ErrNonPositiveCount, ErrArityMismatch)
//
// ⚙️ Usage:
//
//	shapes, err := ids.Enumerate(2)       // the ten binary shapes
//	s, err := ids.BuildString(shapes[0], []rune("金木")) // "⿰金木"
//
// Growth is super-exponential in n; enumeration is practical only for
// small n (≈5–6). Callers combining more components should fall back to
// arrangement-insensitive lookups instead of exhausting shapes.
package ids
