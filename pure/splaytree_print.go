package pure

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String renders the tree shape, left child before right child.
func (t *SplayTree[V]) String() string {
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}
	tree := treeprint.NewWithRoot(label(t.root))
	addChildren(tree, t.root)
	return tree.String()
}

func addChildren[V any](tree treeprint.Tree, n *node[V]) {
	for _, c := range []struct {
		meta  string
		child *node[V]
	}{{"L", n.left}, {"R", n.right}} {
		if c.child == nil {
			continue
		}
		if c.child.left == nil && c.child.right == nil {
			tree.AddMetaNode(c.meta, label(c.child))
			continue
		}
		addChildren(tree.AddMetaBranch(c.meta, label(c.child)), c.child)
	}
}

func label[V any](n *node[V]) string {
	return fmt.Sprintf("%d: %v", n.key, n.value)
}
