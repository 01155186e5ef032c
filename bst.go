package bst

import (
	"errors"

	"github.com/sirupsen/logrus"
)

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

var (
	ErrNotFound    = errors.New("item not in tree")
	ErrNoMoreItems = errors.New("there are no more items in the tree")
	ErrCorrupt     = errors.New("tree is inconsistent")
)

type (
	// LessFunc reports whether a sorts before b. It must be a strict weak
	// ordering; a and b are equal when neither is less than the other.
	LessFunc[T any] func(a, b T) bool

	// Callback is called for each visited item, returning false stops the walk.
	Callback[T any] func(item T) bool

	Order int

	tree[T any] struct {
		size int
		root *node[T]
		less LessFunc[T]
		cfg  config
	}

	// a node owns its two children, there is no parent link
	node[T any] struct {
		value T
		left  *node[T]
		right *node[T]
	}

	preorderIterator[T any] struct {
		stack []*node[T]
	}

	inorderIterator[T any] struct {
		stack []*node[T]
	}

	postorderIterator[T any] struct {
		stack []*node[T]
	}

	levelorderIterator[T any] struct {
		queue []*node[T]
	}
)

func newNode[T any](item T) *node[T] {
	return &node[T]{value: item}
}

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "PreOrder"
	case InOrder:
		return "InOrder"
	case PostOrder:
		return "PostOrder"
	case LevelOrder:
		return "LevelOrder"
	}
	return "Unknown"
}

func (t *tree[T]) log() *logrus.Entry {
	return t.cfg.logger
}
