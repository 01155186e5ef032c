package bst

import "golang.org/x/exp/constraints"

type Tree[T any] interface {
	IsEmpty() bool
	Size() int
	Clear()

	Find(item T) (T, bool)
	Contains(item T) bool
	Min() (T, bool)
	Max() (T, bool)

	Add(item T)
	AddAll(items ...T)
	Remove(item T) (T, error)
	Replace(item, newValue T) (T, bool)

	Height() int
	IsBalanced() bool
	Rebalance()

	RangeFind(low, high T) []T
	Successor(item T) (T, bool)
	Predecessor(item T) (T, bool)

	Iterator() Iterator[T]
	Preorder() Iterator[T]
	Inorder() Iterator[T]
	Postorder() Iterator[T]
	Levelorder() Iterator[T]
	Traverse(order Order) Iterator[T]
	ForEach(order Order, callback Callback[T])
	Items() []T

	Check() error
	String() string
}

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// New returns an empty tree ordered by less.
func New[T any](less LessFunc[T], opts ...Option) Tree[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &tree[T]{less: less, cfg: cfg}
}

// NewOrdered returns an empty tree ordered by the < operator.
func NewOrdered[T constraints.Ordered](opts ...Option) Tree[T] {
	return New(Less[T](), opts...)
}

// NewFrom returns a tree holding items, added in the given order.
func NewFrom[T any](less LessFunc[T], items []T, opts ...Option) Tree[T] {
	t := New(less, opts...)
	t.AddAll(items...)
	return t
}

// Less returns a LessFunc that uses the < operator.
func Less[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}
