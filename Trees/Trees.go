package Trees

import "golang.org/x/exp/constraints"

// Tree represents an ordered container of values of type V keyed by K,
// implemented using nodes. Receivers that have a bool as a second return value
// indicate whether the first return value is defined. For example, calling
// Minimum on an empty tree returns (x V, false). In this case x is the zero
// value and shouldn't be used.
// Absent and duplicate keys are reported through bool results, never as errors.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[K any, V any] interface {
	//Insert v into the Tree. Returns false when v's key is already present,
	//in which case the Tree is unchanged.
	Insert(v V) bool
	//Remove the value keyed by k. Returns true iff Size decreased.
	Remove(k K) bool
	//Contains reports whether a value keyed by k exists.
	Contains(k K) bool
	//Size of the tree, O(1).
	Size() int
	//Minimum element of the tree.
	Minimum() (V, bool)
	//Maximum element of the tree.
	Maximum() (V, bool)
	//Predecessor returns the greatest element whose key is less than k.
	Predecessor(k K) (V, bool)
	//Successor returns the smallest element whose key is greater than k.
	Successor(k K) (V, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or the bookkept size is wrong.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

// Max of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}
