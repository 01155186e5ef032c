package bst

// find the left-most node under n
func (n *node[T]) minimum() *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// find the right-most node under n
func (n *node[T]) maximum() *node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// depth counts nodes on the longest path down from n, an absent subtree is 0.
func (n *node[T]) depth() int {
	if n == nil {
		return 0
	}
	l, r := n.left.depth(), n.right.depth()
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// same result as depth, one level of the tree at a time
func (n *node[T]) depthLevels() int {
	if n == nil {
		return 0
	}
	levels := 0
	level := []*node[T]{n}
	for len(level) > 0 {
		levels++
		next := make([]*node[T], 0, 2*len(level))
		for _, c := range level {
			if c.left != nil {
				next = append(next, c.left)
			}
			if c.right != nil {
				next = append(next, c.right)
			}
		}
		level = next
	}
	return levels
}

// count nodes reachable from n
func (n *node[T]) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.count() + n.right.count()
}

func (t *tree[T]) depth() int {
	if t.cfg.iterative {
		return t.root.depthLevels()
	}
	return t.root.depth()
}

func replaceRef[T any](slot **node[T], n *node[T]) {
	*slot = n
}
