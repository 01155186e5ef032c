package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeTraversalOrders(t *testing.T) {
	dataSet := []struct {
		order    Order
		expected []int
	}{
		{PreOrder, []int{5, 3, 1, 4, 8, 7, 9}},
		{InOrder, []int{1, 3, 4, 5, 7, 8, 9}},
		{PostOrder, []int{1, 4, 3, 7, 9, 8, 5}},
		{LevelOrder, []int{5, 3, 8, 1, 4, 7, 9}},
	}

	tree := sample()
	for _, d := range dataSet {
		assert.Equal(t, d.expected, collect(tree.Traverse(d.order)), d.order.String())
	}
	assert.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, collect(tree.Iterator()))
}

func TestTreeTraversalSkewed(t *testing.T) {
	right := NewFrom(Less[int](), []int{1, 2, 3, 4})
	left := NewFrom(Less[int](), []int{4, 3, 2, 1})

	assert.Equal(t, []int{1, 2, 3, 4}, collect(right.Preorder()))
	assert.Equal(t, []int{4, 3, 2, 1}, collect(right.Postorder()))
	assert.Equal(t, []int{1, 2, 3, 4}, collect(right.Levelorder()))

	assert.Equal(t, []int{4, 3, 2, 1}, collect(left.Preorder()))
	assert.Equal(t, []int{1, 2, 3, 4}, collect(left.Postorder()))
	assert.Equal(t, []int{1, 2, 3, 4}, collect(left.Inorder()))
}

func TestTreeIterator(t *testing.T) {
	tree := NewFrom(Less[string](), []string{"2", "1"})

	it := tree.Iterator()
	assert.NotNil(t, it)
	assert.True(t, it.HasNext())
	v2, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, "2", v2)

	assert.True(t, it.HasNext())
	v1, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, "1", v1)

	assert.False(t, it.HasNext())
	bad, err := it.Next()
	assert.Equal(t, "", bad)
	assert.Equal(t, ErrNoMoreItems, err)
}

func TestTreeIteratorRestarts(t *testing.T) {
	tree := sample()
	for _, order := range []Order{PreOrder, InOrder, PostOrder, LevelOrder} {
		first := collect(tree.Traverse(order))
		assert.Equal(t, first, collect(tree.Traverse(order)), order.String())
		assert.Len(t, first, tree.Size(), order.String())

		it := tree.Traverse(order)
		for it.HasNext() {
			_, _ = it.Next()
		}
		_, err := it.Next()
		assert.Equal(t, ErrNoMoreItems, err, order.String())
	}
}

func TestTreeForEach(t *testing.T) {
	tree := sample()

	visited := make([]int, 0)
	tree.ForEach(InOrder, func(item int) bool {
		visited = append(visited, item)
		return item < 5
	})
	assert.Equal(t, []int{1, 3, 4, 5}, visited)

	assert.Panics(t, func() {
		tree.ForEach(Order(9), func(int) bool { return true })
	})
}

func TestTreeString(t *testing.T) {
	tree := sample()

	expected := "| | 9\n" +
		"| 8\n" +
		"| | 7\n" +
		"5\n" +
		"| | 4\n" +
		"| 3\n" +
		"| | 1\n"
	assert.Equal(t, expected, tree.String())
}
