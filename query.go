package bst

// RangeFind returns the items e with low <= e <= high in sorted order.
func (t *tree[T]) RangeFind(low, high T) []T {
	items := make([]T, 0)
	t.rangeFind(t.root, low, high, &items)
	return items
}

func (t *tree[T]) rangeFind(curr *node[T], low, high T, items *[]T) {
	if curr == nil {
		return
	}
	switch {
	case t.less(curr.value, low):
		t.rangeFind(curr.right, low, high, items)
	case t.less(high, curr.value):
		t.rangeFind(curr.left, low, high, items)
	default:
		t.rangeFind(curr.left, low, high, items)
		*items = append(*items, curr.value)
		t.rangeFind(curr.right, low, high, items)
	}
}

// Successor returns the smallest stored item greater than item. item itself
// need not be in the tree.
func (t *tree[T]) Successor(item T) (T, bool) {
	var best T
	found := false
	for curr := t.root; curr != nil; {
		if t.less(item, curr.value) {
			best, found = curr.value, true
			curr = curr.left
		} else {
			curr = curr.right
		}
	}
	return best, found
}

// Predecessor returns the largest stored item less than item.
func (t *tree[T]) Predecessor(item T) (T, bool) {
	var best T
	found := false
	for curr := t.root; curr != nil; {
		if t.less(curr.value, item) {
			best, found = curr.value, true
			curr = curr.right
		} else {
			curr = curr.left
		}
	}
	return best, found
}
