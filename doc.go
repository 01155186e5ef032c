// Package bst is an ordered multiset backed by an unbalanced binary search
// tree.
//
// Nodes own their two children and carry no parent pointer. Insertion never
// restructures the tree, so inserting sorted input produces a list shaped
// tree; call Rebalance to rebuild it into minimum height.
//
// Items equal to a stored item are added to its right, so duplicates are
// kept and Remove takes out one of them at a time.
//
// Note: a tree is not safe for concurrent use, either access it from a
// single goroutine or guard it with a mutex.
package bst
