package bst

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

func (t *tree[T]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[T]) IsEmpty() bool {
	return t.Size() == 0
}

func (t *tree[T]) Clear() {
	t.log().WithFields(logrus.Fields{"op": "clear", "size": t.size}).Debug("clear")
	t.root = nil
	t.size = 0
}

// Find returns the stored item equal to item.
func (t *tree[T]) Find(item T) (T, bool) {
	var n *node[T]
	if t.cfg.iterative {
		n = t.iterativeFind(item)
	} else {
		n = t.recursiveFind(t.root, item)
	}
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

func (t *tree[T]) recursiveFind(curr *node[T], item T) *node[T] {
	if curr == nil {
		return nil
	}
	switch {
	case t.less(item, curr.value):
		return t.recursiveFind(curr.left, item)
	case t.less(curr.value, item):
		return t.recursiveFind(curr.right, item)
	}
	return curr
}

func (t *tree[T]) iterativeFind(item T) *node[T] {
	curr := t.root
	for curr != nil {
		switch {
		case t.less(item, curr.value):
			curr = curr.left
		case t.less(curr.value, item):
			curr = curr.right
		default:
			return curr
		}
	}
	return nil
}

func (t *tree[T]) Contains(item T) bool {
	_, ok := t.Find(item)
	return ok
}

func (t *tree[T]) Min() (T, bool) {
	if n := t.root.minimum(); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

func (t *tree[T]) Max() (T, bool) {
	if n := t.root.maximum(); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// Add inserts item without rebalancing. Items equal to a stored item go to
// its right.
func (t *tree[T]) Add(item T) {
	if t.cfg.iterative {
		t.iterativeAdd(item)
	} else {
		t.recursiveAdd(&t.root, item)
	}
	t.size++
}

func (t *tree[T]) AddAll(items ...T) {
	for _, item := range items {
		t.Add(item)
	}
}

func (t *tree[T]) recursiveAdd(curNode **node[T], item T) {
	curr := *curNode
	if curr == nil {
		replaceRef(curNode, newNode(item))
		return
	}
	if t.less(item, curr.value) {
		t.recursiveAdd(&curr.left, item)
		return
	}
	t.recursiveAdd(&curr.right, item)
}

func (t *tree[T]) iterativeAdd(item T) {
	slot := &t.root
	for *slot != nil {
		if t.less(item, (*slot).value) {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}
	replaceRef(slot, newNode(item))
}

// Remove deletes one item equal to item and returns the stored value. The
// tree is unchanged when the item is absent.
func (t *tree[T]) Remove(item T) (T, error) {
	// slot is the link that owns curr, starting at the root link so the root
	// needs no special case
	slot := &t.root
	side := "root"
	for *slot != nil {
		curr := *slot
		if t.less(item, curr.value) {
			slot, side = &curr.left, "left"
		} else if t.less(curr.value, item) {
			slot, side = &curr.right, "right"
		} else {
			break
		}
	}

	curr := *slot
	if curr == nil {
		var zero T
		return zero, fmt.Errorf("remove %v: %w", item, ErrNotFound)
	}
	removed := curr.value

	switch {
	case curr.left != nil && curr.right != nil:
		// take the largest value of the left subtree, its node has no right child
		maxSlot := &curr.left
		for (*maxSlot).right != nil {
			maxSlot = &(*maxSlot).right
		}
		curr.value = (*maxSlot).value
		replaceRef(maxSlot, (*maxSlot).left)
	case curr.left == nil:
		replaceRef(slot, curr.right)
	default:
		replaceRef(slot, curr.left)
	}

	t.size--
	if t.size == 0 {
		t.root = nil
	}
	t.log().WithFields(logrus.Fields{
		"op": "remove", "item": removed, "side": side, "size": t.size,
	}).Debug("removed item")
	return removed, nil
}

// Replace overwrites the stored item equal to item with newValue and returns
// the old one. The node is not moved, so newValue must sort like item for the
// tree to stay ordered.
func (t *tree[T]) Replace(item, newValue T) (T, bool) {
	probe := t.root
	for probe != nil {
		switch {
		case t.less(item, probe.value):
			probe = probe.left
		case t.less(probe.value, item):
			probe = probe.right
		default:
			old := probe.value
			probe.value = newValue
			return old, true
		}
	}
	var zero T
	return zero, false
}
