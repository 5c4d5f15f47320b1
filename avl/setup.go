// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"
)

// CompareFunc - ordering of two items, returns <0, 0, >0 when a is
// less than, equal to, greater than b
type CompareFunc[T any] func(a T, b T) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root     *Node[T]
	compare  CompareFunc[T]
	tieBreak TieBreak
	nodes    allocator[T]
	stats    statistics
	log      *logger.L
}

// New - create an initially empty tree of naturally ordered items
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc - create an initially empty tree ordered by compare
func NewFunc[T any](compare CompareFunc[T]) *Tree[T] {
	return &Tree[T]{
		root:     nil,
		compare:  compare,
		tieBreak: Strict,
	}
}

// NewWithTieBreak - create an empty tree of naturally ordered items
// which rebalances inserts using the given tie-break
func NewWithTieBreak[T cmp.Ordered](tieBreak TieBreak) *Tree[T] {
	tree := New[T]()
	tree.tieBreak = tieBreak
	return tree
}

// SetLog - attach a logger channel, rotations are traced on it
func (tree *Tree[T]) SetLog(log *logger.L) {
	tree.log = log
}

// TieBreak - the tie-break used when rebalancing after insert
func (tree *Tree[T]) TieBreak() TieBreak {
	return tree.tieBreak
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[T]) Size() int {
	return count(tree.root)
}

// Height - height of the tree, 0 when empty
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// BalanceFactor - balance factor of the root, 0 for an empty tree
func (tree *Tree[T]) BalanceFactor() int {
	if nil == tree.root {
		return 0
	}
	return balanceFactor(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Clear - drop all nodes
func (tree *Tree[T]) Clear() {
	tree.root = nil
}

// count the nodes of a sub-tree
func count[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + count(p.left) + count(p.right)
}
