package pure_test

import (
	"math/rand"
	"testing"

	"github.com/on-the-ground/splaymemo/pure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootKey[V any](t *testing.T, tree *pure.SplayTree[V]) int {
	t.Helper()
	k, ok := tree.RootKey()
	require.True(t, ok, "tree should not be empty")
	return k
}

func keysInOrder[V any](tree *pure.SplayTree[V]) []int {
	var keys []int
	tree.Ascend(func(k int, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func TestSplayTree_Empty(t *testing.T) {
	var tree pure.SplayTree[int]

	_, ok := tree.Find(42)
	assert.False(t, ok)

	_, ok = tree.RootKey()
	assert.False(t, ok)
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Empty(t, keysInOrder(&tree))
}

func TestSplayTree_FindSplaysToRoot(t *testing.T) {
	tree := pure.NewSplayTree[int]()
	tree.Insert(5, 50)
	tree.Insert(3, 30)
	tree.Insert(8, 80)

	v, ok := tree.Find(3)
	assert.True(t, ok)
	assert.Equal(t, 30, v)
	assert.Equal(t, 3, rootKey(t, tree))

	// miss: the last node on the path toward 10 is lifted instead
	_, ok = tree.Find(10)
	assert.False(t, ok)
	assert.Equal(t, 8, rootKey(t, tree))

	assert.Equal(t, []int{3, 5, 8}, keysInOrder(tree))
	assert.Equal(t, 3, tree.Len())
}

func TestSplayTree_InsertOverwrites(t *testing.T) {
	tree := pure.NewSplayTree[string]()
	tree.Insert(1, "a")
	tree.Insert(2, "b")
	tree.Insert(1, "c")

	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, 1, rootKey(t, tree))

	v, ok := tree.Find(1)
	assert.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestSplayTree_RepeatedFindIsStable(t *testing.T) {
	tree := pure.NewSplayTree[int]()
	for _, k := range []int{50, 20, 70, 10, 30, 60, 80} {
		tree.Insert(k, k*10)
	}

	for i := 0; i < 2; i++ {
		v, ok := tree.Find(30)
		assert.True(t, ok)
		assert.Equal(t, 300, v)
		assert.Equal(t, 30, rootKey(t, tree))
	}
}

func TestSplayTree_NegativeKeys(t *testing.T) {
	tree := pure.NewSplayTree[int]()
	for _, k := range []int{0, -5, 5, -10, 10} {
		tree.Insert(k, -k)
	}
	assert.Equal(t, []int{-10, -5, 0, 5, 10}, keysInOrder(tree))

	v, ok := tree.Find(-10)
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, -10, rootKey(t, tree))
}

func TestSplayTree_AccessFlattensSpine(t *testing.T) {
	const n = 64
	tree := pure.NewSplayTree[int]()
	for k := 1; k <= n; k++ {
		tree.Insert(k, k)
	}
	// ascending inserts leave a left spine
	assert.Equal(t, n, tree.Height())

	_, ok := tree.Find(1)
	require.True(t, ok)
	assert.Equal(t, 1, rootKey(t, tree))
	assert.Less(t, tree.Height(), n)
}

func TestSplayTree_AscendStopsEarly(t *testing.T) {
	tree := pure.NewSplayTree[int]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k, k)
	}

	var seen []int
	tree.Ascend(func(k int, _ int) bool {
		seen = append(seen, k)
		return k < 3
	})
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestSplayTree_RandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	tree := pure.NewSplayTree[int]()
	model := map[int]int{}

	for i := 0; i < 5000; i++ {
		k := rnd.Intn(500) - 250
		if rnd.Intn(3) == 0 {
			v := rnd.Int()
			tree.Insert(k, v)
			model[k] = v
			require.Equal(t, k, rootKey(t, tree))
		} else {
			v, ok := tree.Find(k)
			want, present := model[k]
			require.Equal(t, present, ok)
			if present {
				require.Equal(t, want, v)
				require.Equal(t, k, rootKey(t, tree))
			}
		}

		keys := keysInOrder(tree)
		for j := 1; j < len(keys); j++ {
			require.Less(t, keys[j-1], keys[j], "in-order keys must be strictly increasing")
		}
		require.Equal(t, len(model), tree.Len())
		require.LessOrEqual(t, tree.Height(), tree.Len())
	}
}

func TestSplayTree_String(t *testing.T) {
	var empty pure.SplayTree[int]
	assert.Contains(t, empty.String(), "(empty)")

	tree := pure.NewSplayTree[int]()
	tree.Insert(5, 50)
	tree.Insert(3, 30)
	tree.Insert(8, 80)

	out := tree.String()
	for _, want := range []string{"8: 80", "5: 50", "3: 30"} {
		assert.Contains(t, out, want)
	}
}
