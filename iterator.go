package bst

import "fmt"

// Iterator walks the tree in preorder.
func (t *tree[T]) Iterator() Iterator[T] {
	return t.Preorder()
}

// Preorder visits a node, then its left subtree, then its right subtree.
func (t *tree[T]) Preorder() Iterator[T] {
	it := &preorderIterator[T]{}
	if t.root != nil {
		it.stack = append(it.stack, t.root)
	}
	return it
}

func (t *tree[T]) Inorder() Iterator[T] {
	it := &inorderIterator[T]{}
	it.pushLeft(t.root)
	return it
}

func (t *tree[T]) Postorder() Iterator[T] {
	it := &postorderIterator[T]{}
	it.pushFirst(t.root)
	return it
}

func (t *tree[T]) Levelorder() Iterator[T] {
	it := &levelorderIterator[T]{}
	if t.root != nil {
		it.queue = append(it.queue, t.root)
	}
	return it
}

func (t *tree[T]) Traverse(order Order) Iterator[T] {
	switch order {
	case PreOrder:
		return t.Preorder()
	case InOrder:
		return t.Inorder()
	case PostOrder:
		return t.Postorder()
	case LevelOrder:
		return t.Levelorder()
	}
	panic(fmt.Sprintf("bst: unknown traversal order %d", int(order)))
}

func (t *tree[T]) ForEach(order Order, callback Callback[T]) {
	it := t.Traverse(order)
	for it.HasNext() {
		item, _ := it.Next()
		if !callback(item) {
			return
		}
	}
}

// Items returns all items in sorted order.
func (t *tree[T]) Items() []T {
	items := make([]T, 0, t.size)
	t.ForEach(InOrder, func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

func (it *preorderIterator[T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *preorderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreItems
	}
	cur := it.pop()
	// right first so the left subtree is popped first
	if cur.right != nil {
		it.stack = append(it.stack, cur.right)
	}
	if cur.left != nil {
		it.stack = append(it.stack, cur.left)
	}
	return cur.value, nil
}

func (it *preorderIterator[T]) pop() *node[T] {
	cur := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	return cur
}

func (it *inorderIterator[T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *inorderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreItems
	}
	cur := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(cur.right)
	return cur.value, nil
}

func (it *inorderIterator[T]) pushLeft(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *postorderIterator[T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *postorderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreItems
	}
	cur := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	// coming up from a left child, the right subtree is still to be visited
	if len(it.stack) > 0 {
		parent := it.stack[len(it.stack)-1]
		if parent.left == cur && parent.right != nil {
			it.pushFirst(parent.right)
		}
	}
	return cur.value, nil
}

// push the path from n down to the first node of n's postorder
func (it *postorderIterator[T]) pushFirst(n *node[T]) {
	for n != nil {
		it.stack = append(it.stack, n)
		if n.left != nil {
			n = n.left
		} else {
			n = n.right
		}
	}
}

func (it *levelorderIterator[T]) HasNext() bool {
	return it != nil && len(it.queue) > 0
}

func (it *levelorderIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreItems
	}
	cur := it.queue[0]
	it.queue[0] = nil
	it.queue = it.queue[1:]
	if cur.left != nil {
		it.queue = append(it.queue, cur.left)
	}
	if cur.right != nil {
		it.queue = append(it.queue, cur.right)
	}
	return cur.value, nil
}
