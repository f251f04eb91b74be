package Trees

import (
	"strings"

	"github.com/pkg/errors"
)

// TraversalType selects the order in which a tree's values are visited.
type TraversalType uint8

const (
	// InOrder visits the left subtree, the node, then the right subtree.
	InOrder TraversalType = iota
	// PreOrder visits the node, the left subtree, then the right subtree.
	PreOrder
	// PostOrder visits the left subtree, the right subtree, then the node.
	PostOrder
)

// ErrUnknownTraversal is returned by ParseTraversal for names it doesn't know.
var ErrUnknownTraversal = errors.New("unknown traversal type")

func (t TraversalType) String() string {
	switch t {
	case InOrder:
		return "in_order"
	case PreOrder:
		return "pre_order"
	case PostOrder:
		return "post_order"
	}
	return "unknown"
}

// ParseTraversal accepts "in", "in_order", "in-order", "inorder" and the
// same spellings for pre and post, ignoring case.
func ParseTraversal(s string) (TraversalType, error) {
	k := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	switch strings.TrimSuffix(k, "order") {
	case "in":
		return InOrder, nil
	case "pre":
		return PreOrder, nil
	case "post":
		return PostOrder, nil
	}
	return InOrder, errors.Wrapf(ErrUnknownTraversal, "parse %q", s)
}
