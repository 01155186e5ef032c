package bst

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Check verifies that no left subtree item sorts after its node, no right
// subtree item sorts before it, and that Size matches the number of nodes.
// Equal items may sit on either side once removals or Rebalance have moved
// them, so the order checked is the non-decreasing one.
func (t *tree[T]) Check() error {
	if err := t.checkOrder(t.root, nil, nil); err != nil {
		t.log().WithField("op", "check").Warn(err)
		return err
	}
	if n := t.root.count(); n != t.size {
		err := fmt.Errorf("%w: size %d but %d nodes", ErrCorrupt, t.size, n)
		t.log().WithFields(logrus.Fields{"op": "check", "size": t.size, "nodes": n}).Warn(err)
		return err
	}
	return nil
}

// both bounds inclusive, nil means unbounded
func (t *tree[T]) checkOrder(n *node[T], lower, upper *T) error {
	if n == nil {
		return nil
	}
	if lower != nil && t.less(n.value, *lower) {
		return fmt.Errorf("%w: %v sorts before lower bound %v", ErrCorrupt, n.value, *lower)
	}
	if upper != nil && t.less(*upper, n.value) {
		return fmt.Errorf("%w: %v sorts after upper bound %v", ErrCorrupt, n.value, *upper)
	}
	if err := t.checkOrder(n.left, lower, &n.value); err != nil {
		return err
	}
	return t.checkOrder(n.right, &n.value, upper)
}
