// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new item into the tree, duplicates are kept
func (tree *Tree[T]) Insert(item T) {
	tree.root = tree.insert(item, tree.root)

	// the recursion only balances the children, so do the root here
	tree.root = tree.rebalance(tree.root, tree.tieBreak)
}

// Add - insert an item that must not already be in the tree
func (tree *Tree[T]) Add(item T) error {
	if nil != tree.search(item) {
		return fault.ErrItemExists
	}
	tree.Insert(item)
	return nil
}

// internal routine for insert, returns the possibly new sub-tree root
func (tree *Tree[T]) insert(item T, p *Node[T]) *Node[T] {
	if nil == p {
		return tree.newNode(item)
	}

	if tree.compare(item, p.item) < 0 {
		p.left = tree.insert(item, p.left)
		p.left = tree.rebalance(p.left, tree.tieBreak)
	} else {
		// equal items also go right
		p.right = tree.insert(item, p.right)
		p.right = tree.rebalance(p.right, tree.tieBreak)
	}
	return p
}
