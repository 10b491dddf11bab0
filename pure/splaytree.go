package pure

type node[V any] struct {
	key   int
	value V
	left  *node[V]
	right *node[V]
}

// SplayTree is a self-adjusting binary search tree keyed by int.
// Every Insert and Find moves the accessed key (or, on a miss, the last key
// visited) to the root, so recently used keys stay cheap to reach.
//
// The zero value is an empty tree. A SplayTree is not safe for concurrent use:
// Find restructures the tree just like Insert does.
type SplayTree[V any] struct {
	root *node[V]
	size int
}

var _ Table[int] = (*SplayTree[int])(nil)

func NewSplayTree[V any]() *SplayTree[V] {
	return &SplayTree[V]{}
}

// Insert stores value under key, overwriting any previous value.
// key is the root of the tree afterwards.
func (t *SplayTree[V]) Insert(key int, value V) {
	if t.root == nil {
		t.root = &node[V]{key: key, value: value}
		t.size++
		return
	}

	root := splay(t.root, key)
	if root.key == key {
		root.value = value
		t.root = root
		return
	}

	n := &node[V]{key: key, value: value}
	if key < root.key {
		n.left = root.left
		root.left = nil
		n.right = root
	} else {
		n.right = root.right
		root.right = nil
		n.left = root
	}
	t.root = n
	t.size++
}

// Find returns the value stored under key.
// The tree is splayed whether or not key is present.
func (t *SplayTree[V]) Find(key int) (V, bool) {
	t.root = splay(t.root, key)
	if t.root == nil || t.root.key != key {
		var zero V
		return zero, false
	}
	return t.root.value, true
}

// Len returns the number of distinct keys.
func (t *SplayTree[V]) Len() int {
	return t.size
}

// RootKey returns the key currently at the root.
func (t *SplayTree[V]) RootKey() (int, bool) {
	if t.root == nil {
		return 0, false
	}
	return t.root.key, true
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *SplayTree[V]) Height() int {
	type frame struct {
		n     *node[V]
		depth int
	}
	if t.root == nil {
		return 0
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > height {
			height = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return height
}

// Ascend calls fn for every entry in increasing key order until fn returns false.
// It does not restructure the tree.
func (t *SplayTree[V]) Ascend(fn func(key int, value V) bool) {
	var stack []*node[V]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur.key, cur.value) {
			return
		}
		cur = cur.right
	}
}

// splay brings key, or the last node visited while searching for it, to the
// top of the subtree rooted at n and returns the new subtree root.
func splay[V any](n *node[V], key int) *node[V] {
	if n == nil || n.key == key {
		return n
	}

	if key < n.key {
		if n.left == nil {
			return n
		}
		if key < n.left.key {
			// zig-zig
			n.left.left = splay(n.left.left, key)
			n = rotateRight(n)
		} else if key > n.left.key {
			// zig-zag
			n.left.right = splay(n.left.right, key)
			if n.left.right != nil {
				n.left = rotateLeft(n.left)
			}
		}
		if n.left == nil {
			return n
		}
		return rotateRight(n)
	}

	if n.right == nil {
		return n
	}
	if key > n.right.key {
		// zag-zag
		n.right.right = splay(n.right.right, key)
		n = rotateLeft(n)
	} else if key < n.right.key {
		// zag-zig
		n.right.left = splay(n.right.left, key)
		if n.right.left != nil {
			n.right = rotateRight(n.right)
		}
	}
	if n.right == nil {
		return n
	}
	return rotateLeft(n)
}

// rotateRight lifts n.left above n. n.left must not be nil.
func rotateRight[V any](n *node[V]) *node[V] {
	l := n.left
	n.left = l.right
	l.right = n
	return l
}

// rotateLeft lifts n.right above n. n.right must not be nil.
func rotateLeft[V any](n *node[V]) *node[V] {
	r := n.right
	n.right = r.left
	r.left = n
	return r
}
