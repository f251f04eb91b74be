package Trees

import (
	"math"

	"github.com/g-m-twostay/go-playerbst/internal/logger"
	"github.com/sirupsen/logrus"
)

// PlayerBST is a binary search tree of ChessPlayer ordered by Name with no
// repeated names. It never rebalances, so its shape only depends on the history
// of Insert and Remove, and the height D is n in the worst case.
// It's not safe for concurrent use; callers must synchronize access themselves.
// The zero value isn't ready for use, create it with NewPlayerBST.
type PlayerBST struct {
	root *Node[ChessPlayer] //nil when the tree is empty.
	size int
	log  logrus.FieldLogger
}

var _ Tree[string, ChessPlayer] = (*PlayerBST)(nil)

// NewPlayerBST returns an empty tree logging to logger.L.
func NewPlayerBST() *PlayerBST {
	return &PlayerBST{log: logger.L.WithField("prefix", "playerbst")}
}

// SetLogger replaces the logger mutations are reported to.
func (u *PlayerBST) SetLogger(l logrus.FieldLogger) {
	u.log = l
}

// Root of the tree, nil if the tree is empty. The nodes are owned by u and
// mustn't be modified through the returned pointer.
func (u *PlayerBST) Root() *Node[ChessPlayer] {
	return u.root
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *PlayerBST) Size() int {
	return u.size
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *PlayerBST) Contains(name string) bool {
	_, has := u.Get(name)
	return has
}

// Get the player with the given name.
// Time: O(D); Space: O(1)
func (u *PlayerBST) Get(name string) (ChessPlayer, bool) {
	for cur := u.root; cur != nil; {
		if name < cur.v.Name {
			cur = cur.l
		} else if name == cur.v.Name {
			return cur.v, true
		} else {
			cur = cur.r
		}
	}
	return ChessPlayer{}, false
}

// Insert [Tree.Insert]. When p.Name is present the first inserted player is kept.
// p.Wins isn't validated, see ChessPlayer.Validate.
// Time: O(D); Space: O(1)
func (u *PlayerBST) Insert(p ChessPlayer) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if p.Name < cur.v.Name {
			curPtr = &cur.l
		} else if p.Name == cur.v.Name {
			u.log.WithField("player", p).Debug("duplicate name, not inserted")
			return false
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = NewNode(p)
	u.size++
	u.log.WithFields(logrus.Fields{"player": p, "size": u.size}).Debug("inserted")
	return true
}

// remove the node named name from the subtree rooting at *curPtr recursively.
// A node with 2 children takes the value of its in-order successor, and the
// successor is then removed from the right subtree, where it has at most
// 1 child. size is decremented only where a node is actually detached.
func (u *PlayerBST) remove(curPtr **Node[ChessPlayer], name string) {
	cur := *curPtr
	if cur == nil {
		return
	}
	if name < cur.v.Name {
		u.remove(&cur.l, name)
	} else if name > cur.v.Name {
		u.remove(&cur.r, name)
	} else if cur.l == nil {
		*curPtr, cur.r = cur.r, nil
		u.size--
	} else if cur.r == nil {
		*curPtr, cur.l = cur.l, nil
		u.size--
	} else {
		s := leftmost(cur.r)
		cur.v = s.v
		u.remove(&cur.r, s.v.Name)
	}
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *PlayerBST) Remove(name string) bool {
	prev := u.size
	u.remove(&u.root, name)
	if u.size < prev {
		u.log.WithFields(logrus.Fields{"name": name, "size": u.size}).Debug("removed")
		return true
	}
	return false
}

// Clear removes every node, detaching children before their parents.
// Time: O(n)
func (u *PlayerBST) Clear() {
	destroy(u.root)
	u.root, u.size = nil, 0
	u.log.Debug("cleared")
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *PlayerBST) Minimum() (ChessPlayer, bool) {
	if u.root == nil {
		return ChessPlayer{}, false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *PlayerBST) Maximum() (ChessPlayer, bool) {
	cur := u.root
	if cur == nil {
		return ChessPlayer{}, false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// leftmost node of the non-empty subtree n, the smallest name in it.
func leftmost(n *Node[ChessPlayer]) *Node[ChessPlayer] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// Predecessor returns the player with the greatest name less than name.
// name doesn't need to be present.
// Time: O(D); Space: O(1)
func (u *PlayerBST) Predecessor(name string) (ChessPlayer, bool) {
	var p *Node[ChessPlayer]
	for cur := u.root; cur != nil; {
		if name <= cur.v.Name {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return ChessPlayer{}, false
	}
	return p.v, true
}

// Successor returns the player with the smallest name greater than name.
// name doesn't need to be present.
// Time: O(D); Space: O(1)
func (u *PlayerBST) Successor(name string) (ChessPlayer, bool) {
	var p *Node[ChessPlayer]
	for cur := u.root; cur != nil; {
		if name < cur.v.Name {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return ChessPlayer{}, false
	}
	return p.v, true
}

// Height of the tree, see Height.
func (u *PlayerBST) Height() int {
	return Height(u.root)
}

func sumWins(n *Node[ChessPlayer]) int {
	if n == nil {
		return 0
	}
	return sumWins(n.l) + sumWins(n.r) + n.v.Wins
}

// AverageWins of all players rounded to 2 decimal places, half away from zero.
// 0 for an empty tree. Recursive.
// Time: O(n)
func (u *PlayerBST) AverageWins() float64 {
	if u.size == 0 {
		return 0
	}
	avg := float64(sumWins(u.root)) / float64(u.size)
	return math.Round(avg*100) / 100
}

func countAbove(n *Node[ChessPlayer], minWins int) int {
	if n == nil {
		return 0
	}
	c := countAbove(n.l, minWins) + countAbove(n.r, minWins)
	if n.v.Wins >= minWins {
		c++
	}
	return c
}

// CountAboveWins returns the number of players with at least minWins wins.
// Recursive.
// Time: O(n)
func (u *PlayerBST) CountAboveWins(minWins int) int {
	return countAbove(u.root, minWins)
}

func collect(n *Node[ChessPlayer], t TraversalType, dst []ChessPlayer) []ChessPlayer {
	if n == nil {
		return dst
	}
	if t == PreOrder {
		dst = append(dst, n.v)
	}
	dst = collect(n.l, t, dst)
	if t == InOrder {
		dst = append(dst, n.v)
	}
	dst = collect(n.r, t, dst)
	if t == PostOrder {
		dst = append(dst, n.v)
	}
	return dst
}

// ToSlice returns every player in the order given by t. InOrder gives players
// in ascending order of names. Unknown t gives an empty slice. Recursive.
// Time: O(n); Space: O(n)
func (u *PlayerBST) ToSlice(t TraversalType) []ChessPlayer {
	if t > PostOrder {
		return []ChessPlayer{}
	}
	return collect(u.root, t, make([]ChessPlayer, 0, u.size))
}

// Walk is the iterative equivalence of ToSlice, f is called on each player
// until it returns false. See Walk.
func (u *PlayerBST) Walk(t TraversalType, f func(ChessPlayer) bool) {
	Walk(u.root, t, f)
}

// corrupt checks that every name in the subtree is in (lo, hi), where nil
// bounds are unbounded, and returns the number of nodes checked.
func corrupt(n *Node[ChessPlayer], lo, hi *string) (bool, int) {
	if n == nil {
		return false, 0
	}
	if (lo != nil && n.v.Name <= *lo) || (hi != nil && n.v.Name >= *hi) {
		return true, 0
	}
	bad, lc := corrupt(n.l, lo, &n.v.Name)
	if bad {
		return true, 0
	}
	bad, rc := corrupt(n.r, &n.v.Name, hi)
	return bad, lc + rc + 1
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *PlayerBST) Corrupt() bool {
	bad, n := corrupt(u.root, nil, nil)
	return bad || n != u.size
}
