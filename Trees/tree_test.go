package Trees

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/google/btree"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func names(ps []ChessPlayer) []string {
	r := make([]string, len(ps))
	for i, p := range ps {
		r[i] = p.Name
	}
	return r
}

func build(t *testing.T, ps ...ChessPlayer) *PlayerBST {
	t.Helper()
	tree := NewPlayerBST()
	for _, p := range ps {
		require.True(t, tree.Insert(p), "insert %v", p)
	}
	return tree
}

func TestPlayerBST_Empty(t *testing.T) {
	tree := NewPlayerBST()
	require.Equal(t, 0, tree.Size())
	require.Nil(t, tree.Root())
	require.Equal(t, 0.0, tree.AverageWins())
	require.Equal(t, 0, tree.CountAboveWins(0))
	require.Equal(t, 0, tree.Height())
	for _, tt := range []TraversalType{InOrder, PreOrder, PostOrder} {
		require.Empty(t, tree.ToSlice(tt), tt.String())
	}
	_, has := tree.Minimum()
	require.False(t, has)
	_, has = tree.Maximum()
	require.False(t, has)
	require.False(t, tree.Contains("Bob"))
	require.False(t, tree.Remove("Bob"))
	require.False(t, tree.Corrupt())
}

func TestPlayerBST_Scenario(t *testing.T) {
	bob, alice, carol := ChessPlayer{"Bob", 3}, ChessPlayer{"Alice", 5}, ChessPlayer{"Carol", 1}
	tree := build(t, bob, alice, carol)

	require.Equal(t, []ChessPlayer{alice, bob, carol}, tree.ToSlice(InOrder))
	require.Equal(t, []ChessPlayer{bob, alice, carol}, tree.ToSlice(PreOrder))
	require.Equal(t, []ChessPlayer{alice, carol, bob}, tree.ToSlice(PostOrder))
	require.Equal(t, 3.00, tree.AverageWins())
	require.Equal(t, 2, tree.CountAboveWins(3))
	require.Equal(t, 3, tree.Size())
	require.Equal(t, bob, tree.Root().Value())

	require.True(t, tree.Remove("Bob"))
	require.Equal(t, 2, tree.Size())
	require.False(t, tree.Contains("Bob"))
	require.Equal(t, []ChessPlayer{alice, carol}, tree.ToSlice(InOrder))
	require.False(t, tree.Corrupt())
}

func TestPlayerBST_Duplicate(t *testing.T) {
	tree := build(t, ChessPlayer{"Bob", 3}, ChessPlayer{"Alice", 5})
	require.False(t, tree.Insert(ChessPlayer{"Bob", 10}))
	require.Equal(t, 2, tree.Size())
	p, has := tree.Get("Bob")
	require.True(t, has)
	require.Equal(t, 3, p.Wins, "first inserted player is kept")
	require.Equal(t, 1, tree.CountAboveWins(4))
}

func TestPlayerBST_RemoveTwoChildren(t *testing.T) {
	tree := NewPlayerBST()
	for _, n := range []string{"M", "D", "T", "A", "F", "R", "Z"} {
		require.True(t, tree.Insert(ChessPlayer{n, 1}))
	}
	require.NotNil(t, tree.Root().Left())
	require.NotNil(t, tree.Root().Right())

	require.True(t, tree.Remove("M"))
	require.Equal(t, 6, tree.Size())
	require.False(t, tree.Corrupt())
	require.Equal(t, []string{"A", "D", "F", "R", "T", "Z"}, names(tree.ToSlice(InOrder)))
	require.Equal(t, "R", tree.Root().Value().Name, "successor is promoted into the removed slot")
	require.Nil(t, tree.Root().Right().Left())
	require.False(t, tree.Contains("M"))
}

func TestPlayerBST_RemoveOneChild(t *testing.T) {
	tree := build(t, ChessPlayer{"B", 1}, ChessPlayer{"A", 1}, ChessPlayer{"D", 2}, ChessPlayer{"C", 3})
	require.True(t, tree.Remove("D"))
	require.Equal(t, "C", tree.Root().Right().Value().Name)
	require.True(t, tree.Remove("B"))
	require.Equal(t, []string{"A", "C"}, names(tree.ToSlice(InOrder)))
	require.True(t, tree.Remove("A"))
	require.True(t, tree.Remove("C"))
	require.Nil(t, tree.Root())
	require.Equal(t, 0, tree.Size())
	require.False(t, tree.Remove("C"))
}

func TestPlayerBST_AverageWinsRounding(t *testing.T) {
	tree := build(t, ChessPlayer{"a", 1}, ChessPlayer{"b", 1}, ChessPlayer{"c", 2})
	require.Equal(t, 1.33, tree.AverageWins())
	require.True(t, tree.Remove("a"))
	require.Equal(t, 1.5, tree.AverageWins())
	require.True(t, tree.Insert(ChessPlayer{"d", 2}))
	require.Equal(t, 1.67, tree.AverageWins())

	tree.Clear()
	//1/8 = 0.125 exactly, rounds away from zero.
	tree.Insert(ChessPlayer{"x", 1})
	for i := 0; i < 7; i++ {
		tree.Insert(ChessPlayer{strconv.Itoa(i), 0})
	}
	require.Equal(t, 0.13, tree.AverageWins())
}

func TestPlayerBST_MinMaxHeight(t *testing.T) {
	tree := NewPlayerBST()
	for _, n := range []string{"a", "b", "c", "d"} {
		tree.Insert(ChessPlayer{n, 0})
	}
	require.Equal(t, 4, tree.Height(), "sorted insertion degrades to a list")
	mn, _ := tree.Minimum()
	mx, _ := tree.Maximum()
	require.Equal(t, "a", mn.Name)
	require.Equal(t, "d", mx.Name)
}

func TestPlayerBST_PredecessorSuccessor(t *testing.T) {
	tree := NewPlayerBST()
	_, has := tree.Successor("M")
	require.False(t, has)
	for _, n := range []string{"M", "D", "T", "A", "F", "R", "Z"} {
		tree.Insert(ChessPlayer{n, 1})
	}
	for name, want := range map[string]string{"A": "D", "F": "M", "M": "R", "B": "D", "S": "T", "": "A"} {
		p, has := tree.Successor(name)
		require.True(t, has, name)
		require.Equal(t, want, p.Name, name)
	}
	_, has = tree.Successor("Z")
	require.False(t, has)
	for name, want := range map[string]string{"Z": "T", "R": "M", "M": "F", "E": "D", "zz": "Z"} {
		p, has := tree.Predecessor(name)
		require.True(t, has, name)
		require.Equal(t, want, p.Name, name)
	}
	_, has = tree.Predecessor("A")
	require.False(t, has)

	//the successor of a node with 2 children replaces it on removal.
	s, _ := tree.Successor("D")
	require.True(t, tree.Remove("D"))
	require.Equal(t, s, tree.Root().Left().Value())
}

func TestPlayerBST_Clear(t *testing.T) {
	tree := build(t, ChessPlayer{"M", 1}, ChessPlayer{"D", 1}, ChessPlayer{"T", 1})
	root := tree.Root()
	tree.Clear()
	require.Nil(t, tree.Root())
	require.Equal(t, 0, tree.Size())
	require.Nil(t, root.Left())
	require.Nil(t, root.Right())
	require.True(t, tree.Insert(ChessPlayer{"D", 2}))
	require.Equal(t, 1, tree.Size())
}

func TestPlayerBST_Corrupt(t *testing.T) {
	tree := build(t, ChessPlayer{"M", 1}, ChessPlayer{"D", 1}, ChessPlayer{"T", 1})
	require.False(t, tree.Corrupt())
	tree.Root().Left().SetRight(NewNode(ChessPlayer{"N", 1}))
	require.True(t, tree.Corrupt())
	tree.Root().Left().SetRight(nil)
	require.False(t, tree.Corrupt())
	tree.size++
	require.True(t, tree.Corrupt())
}

func TestPlayerBST_Logging(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	tree := NewPlayerBST()
	tree.SetLogger(l)

	tree.Insert(ChessPlayer{"Bob", 1})
	tree.Insert(ChessPlayer{"Bob", 2})
	tree.Remove("Bob")
	tree.Remove("Bob")
	require.Len(t, hook.AllEntries(), 3)
	require.Equal(t, "duplicate name, not inserted", hook.AllEntries()[1].Message)
	require.Equal(t, 0, hook.LastEntry().Data["size"])
}

func TestPlayerBST_AddDel(t *testing.T) {
	tree := NewPlayerBST()
	content := make(map[string]int)
	oracle := btree.NewG[string](8, func(a, b string) bool { return a < b })
	a := make([]string, tAddN)
	for i := range a {
		a[i] = strconv.Itoa(rg.Intn(tAddValRange))
	}
	for _, k := range a {
		_, in := content[k]
		w := rg.Intn(50)
		require.Equal(t, !in, tree.Insert(ChessPlayer{k, w}), "insert %s", k)
		if !in {
			content[k] = w
			oracle.ReplaceOrInsert(k)
		}
	}
	require.Equal(t, len(content), tree.Size())
	for i, n := 0, rg.Intn(len(a)); i < n; i++ {
		_, in := content[a[i]]
		require.Equal(t, in, tree.Remove(a[i]), "remove %s", a[i])
		require.False(t, tree.Remove(a[i]), "removed twice %s", a[i])
		delete(content, a[i])
		oracle.Delete(a[i])
	}
	require.False(t, tree.Corrupt())
	require.Equal(t, len(content), tree.Size())
	require.Equal(t, oracle.Len(), tree.Size())

	want := make([]string, 0, oracle.Len())
	oracle.Ascend(func(k string) bool {
		want = append(want, k)
		return true
	})
	in := tree.ToSlice(InOrder)
	require.Equal(t, want, names(in))
	sum, above := 0, 0
	for _, p := range in {
		require.Equal(t, content[p.Name], p.Wins)
		sum += p.Wins
		if p.Wins >= 25 {
			above++
		}
	}
	require.Equal(t, above, tree.CountAboveWins(25))
	if len(in) > 0 {
		require.InDelta(t, float64(sum)/float64(len(in)), tree.AverageWins(), 0.0051)
	}

	pre, post := tree.ToSlice(PreOrder), tree.ToSlice(PostOrder)
	require.ElementsMatch(t, in, pre)
	require.ElementsMatch(t, in, post)
	require.True(t, sort.SliceIsSorted(in, func(i, j int) bool { return in[i].Name < in[j].Name }))
	for k := range content {
		require.True(t, tree.Contains(k), "missing %s", k)
	}
}
