package ids

import (
	"fmt"
	"strings"
)

// BuildString serializes a structure with concrete radicals substituted
// for its leaf slots, producing an IDS string such as "⿰金木".
//
// Traversal is preorder: each internal node emits its operator symbol
// followed by its children left to right; each leaf consumes the next
// radical from the list. A leaf shape with one radical therefore returns
// that radical unchanged.
//
// Errors:
//   - ErrArityMismatch — len(radicals) != s.ComponentCount().
//
// Complexity: O(nodes) time, O(depth) stack.
func BuildString(s Structure, radicals []rune) (string, error) {
	want := s.ComponentCount()
	if len(radicals) != want {
		return "", fmt.Errorf("structure needs %d radicals, got %d: %w",
			want, len(radicals), ErrArityMismatch)
	}

	var sb strings.Builder
	next := 0
	writeIDS(&sb, s, radicals, &next)

	return sb.String(), nil
}

// writeIDS appends the preorder serialization of s to sb, advancing *next
// through radicals at each leaf. The count precondition is checked by
// BuildString, so consumption cannot run past the slice.
func writeIDS(sb *strings.Builder, s Structure, radicals []rune, next *int) {
	switch node := s.(type) {
	case Leaf:
		sb.WriteRune(radicals[*next])
		*next++
	case *Node:
		sb.WriteRune(node.Op.Symbol)
		for _, child := range node.Children {
			writeIDS(sb, child, radicals, next)
		}
	}
}
