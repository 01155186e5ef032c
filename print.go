package bst

import (
	"fmt"
	"strings"
)

// String draws the tree rotated a quarter turn counter-clockwise: the right
// subtree above its node, the left subtree below, one "| " per level.
func (t *tree[T]) String() string {
	var b strings.Builder
	printTree(&b, t.root, 0)
	return b.String()
}

func printTree[T any](b *strings.Builder, n *node[T], level int) {
	if n == nil {
		return
	}
	printTree(b, n.right, level+1)
	b.WriteString(strings.Repeat("| ", level))
	fmt.Fprintf(b, "%v\n", n.value)
	printTree(b, n.left, level+1)
}
