package ids

// Operator is one Ideographic Description Character (IDC): a positional
// combination rule taking exactly Arity components. Operators are value
// types and compare by identity of all three fields; child order is
// significant everywhere (⿰AB and ⿰BA are different compositions).
type Operator struct {
	// Symbol is the Unicode IDC code point (U+2FF0..U+2FFB).
	Symbol rune
	// Arity is the number of children the operator takes (2 or 3).
	Arity int
	// Name is the positional-relation name, e.g. "LeftRight".
	Name string
}

// BinaryOps lists the ten two-component IDS operators in catalog order.
// Enumeration iterates this slice in order, so the order is part of the
// deterministic output contract. Treat as read-only.
var BinaryOps = []Operator{
	{Symbol: '⿰', Arity: 2, Name: "LeftRight"},
	{Symbol: '⿱', Arity: 2, Name: "TopBottom"},
	{Symbol: '⿴', Arity: 2, Name: "SurroundFull"},
	{Symbol: '⿵', Arity: 2, Name: "SurroundAbove"},
	{Symbol: '⿶', Arity: 2, Name: "SurroundBelow"},
	{Symbol: '⿷', Arity: 2, Name: "SurroundLeft"},
	{Symbol: '⿸', Arity: 2, Name: "SurroundUpperLeft"},
	{Symbol: '⿹', Arity: 2, Name: "SurroundUpperRight"},
	{Symbol: '⿺', Arity: 2, Name: "SurroundLowerLeft"},
	{Symbol: '⿻', Arity: 2, Name: "Overlaid"},
}

// TernaryOps lists the two three-component IDS operators in catalog order.
// Treat as read-only.
var TernaryOps = []Operator{
	{Symbol: '⿲', Arity: 3, Name: "LeftMidRight"},
	{Symbol: '⿳', Arity: 3, Name: "TopMidBottom"},
}

// IsOperator reports whether r lies in the Ideographic Description
// Character block (U+2FF0..U+2FFF). The full block is recognized so that
// dataset strings using post-Unicode-15 IDCs still parse into the right
// leaf components, even though the enumeration catalog above stays at the
// twelve classic operators.
func IsOperator(r rune) bool {
	return r >= 0x2FF0 && r <= 0x2FFF
}

// Structure is one abstract composition-tree shape: a Leaf (a single
// component slot) or a Node (an operator applied to ordered children).
// The enumeration cache shares subtrees across many parents internally
// but hands callers deep copies, so Enumerate results are caller-owned.
//
// The interface is sealed: Leaf and Node are the only variants, and all
// consumers dispatch on the concrete type.
type Structure interface {
	// ComponentCount is the number of leaf slots in the tree.
	ComponentCount() int
	// Depth is 0 for a leaf and 1+max(children) for an internal node.
	Depth() int

	sealed()
}

// Leaf is the single-component structure: one slot, no operator.
type Leaf struct{}

// ComponentCount returns 1: a leaf holds exactly one component.
func (Leaf) ComponentCount() int { return 1 }

// Depth returns 0: a leaf is a tree of height zero.
func (Leaf) Depth() int { return 0 }

func (Leaf) sealed() {}

// Node is an internal structure: an operator applied to exactly
// Op.Arity ordered children.
type Node struct {
	Op       Operator
	Children []Structure
}

// ComponentCount sums the component counts of all children.
func (n *Node) ComponentCount() int {
	total := 0
	for _, c := range n.Children {
		total += c.ComponentCount()
	}

	return total
}

// Depth returns 1 plus the deepest child.
func (n *Node) Depth() int {
	deepest := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > deepest {
			deepest = d
		}
	}

	return 1 + deepest
}

func (*Node) sealed() {}
