package Trees

// Node is a binary tree node holding a value and owning its two children.
// A nil *Node is the absent child. Nodes don't link back to their parent,
// so a node reachable from two slots is a corrupt tree.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

// NewNode returns a leaf holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{v: v}
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

func (n *Node[T]) SetValue(v T) {
	n.v = v
}

// Left child of n, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// SetLeft makes c the left child of n. n owns c afterward; the previous left
// subtree is dropped by n.
func (n *Node[T]) SetLeft(c *Node[T]) {
	n.l = c
}

// Right child of n, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// SetRight is the right-hand equivalence of SetLeft.
func (n *Node[T]) SetRight(c *Node[T]) {
	n.r = c
}
