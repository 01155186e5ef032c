package bst

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Height is the edge count of the longest root to leaf path: -1 when empty,
// 0 for a single item.
func (t *tree[T]) Height() int {
	return t.depth() - 1
}

// IsBalanced reports whether the node depth of the tree is within
// 2*log2(n+1)-1 for n items.
func (t *tree[T]) IsBalanced() bool {
	return float64(t.depth()) <= 2*math.Log2(float64(t.size+1))-1
}

// Rebalance rebuilds the tree into minimum height. The item count is kept as
// is.
func (t *tree[T]) Rebalance() {
	items := make([]T, 0, t.size)
	it := t.Inorder()
	for it.HasNext() {
		item, _ := it.Next()
		items = append(items, item)
	}
	debug := t.log().Logger.IsLevelEnabled(logrus.DebugLevel)
	before := 0
	if debug {
		before = t.Height()
	}
	t.root = buildBalanced(items)
	if debug {
		t.log().WithFields(logrus.Fields{
			"op": "rebalance", "size": t.size, "before": before, "after": t.Height(),
		}).Debug("rebalanced tree")
	}
}

// the middle item of each sorted slice becomes the subtree root, on even
// lengths the upper middle
func buildBalanced[T any](items []T) *node[T] {
	if len(items) == 0 {
		return nil
	}
	middle := len(items) / 2
	n := newNode(items[middle])
	n.left = buildBalanced(items[:middle])
	n.right = buildBalanced(items[middle+1:])
	return n
}
