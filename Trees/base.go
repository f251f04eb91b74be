package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// frame on the traversal stack. emit marks a node whose subtrees are already
// scheduled, so popping it visits n.v.
type frame[T any] struct {
	n    *Node[T]
	emit bool
}

// Walk the tree rooted at root in the order given by t, calling f on each
// value until f returns false. It uses an explicit stack instead of recursion,
// so the depth of the tree isn't limited by the goroutine stack, but the visiting
// order is exactly that of the recursive definition. Unknown t visits nothing.
// The tree mustn't be modified during the walk.
// Time: O(n); Space: O(D)
func Walk[T any](root *Node[T], t TraversalType, f func(T) bool) {
	if root == nil || t > PostOrder {
		return
	}
	st := arraystack.New()
	st.Push(frame[T]{n: root})
	push := func(n *Node[T]) {
		if n != nil {
			st.Push(frame[T]{n: n})
		}
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(frame[T])
		if cur.emit {
			if !f(cur.n.v) {
				return
			}
			continue
		}
		//pushed in reverse, the stack is LIFO.
		switch t {
		case PreOrder:
			push(cur.n.r)
			push(cur.n.l)
			st.Push(frame[T]{cur.n, true})
		case InOrder:
			push(cur.n.r)
			st.Push(frame[T]{cur.n, true})
			push(cur.n.l)
		case PostOrder:
			st.Push(frame[T]{cur.n, true})
			push(cur.n.r)
			push(cur.n.l)
		}
	}
}

// Height is the number of nodes on the longest path from root to a leaf, 0 for
// an empty tree. Recursive.
func Height[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	return Max(Height(root.l), Height(root.r)) + 1
}

// destroy detaches every link below n in post-order.
func destroy[T any](n *Node[T]) {
	if n == nil {
		return
	}
	destroy(n.l)
	destroy(n.r)
	n.l, n.r = nil, nil
}
