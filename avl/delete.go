// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes one occurrence of an item from the tree
func (tree *Tree[T]) Delete(item T) error {
	removed := false
	tree.root, removed = tree.delete(item, tree.root)
	if !removed {
		return fault.ErrItemNotFound
	}
	tree.root = tree.rebalance(tree.root, Textbook)
	return nil
}

// internal delete routine, returns the possibly new sub-tree root
//
// a level child can only arise on this path and the strict tie-break
// would leave it out of balance, so always use the textbook one
func (tree *Tree[T]) delete(item T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // item not in tree
		return nil, false
	}

	removed := false
	c := tree.compare(item, p.item)
	switch {
	case c < 0:
		p.left, removed = tree.delete(item, p.left)
		p.left = tree.rebalance(p.left, Textbook)

	case c > 0:
		p.right, removed = tree.delete(item, p.right)
		p.right = tree.rebalance(p.right, Textbook)

	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			tree.freeNode(p)
			return child, true
		}

		// two children: take over the predecessor and remove that
		p.item = predecessor(p.left)
		p.left, removed = tree.delete(p.item, p.left)
		if !removed {
			panic("avl: predecessor vanished")
		}
		p.left = tree.rebalance(p.left, Textbook)
	}
	return p, removed
}

// highest item in a sub-tree, p must not be nil
func predecessor[T any](p *Node[T]) T {
	for nil != p.right {
		p = p.right
	}
	return p.item
}

// lowest item in a sub-tree, p must not be nil
func successor[T any](p *Node[T]) T {
	for nil != p.left {
		p = p.left
	}
	return p.item
}
