// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Search - find a node holding a specific item, nil if absent
func (tree *Tree[T]) Search(item T) *Node[T] {
	return tree.search(item)
}

// Contains - true if the item is in the tree
func (tree *Tree[T]) Contains(item T) bool {
	return nil != tree.search(item)
}

func (tree *Tree[T]) search(item T) *Node[T] {
	p := tree.root
	for nil != p {
		c := tree.compare(item, p.item)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Min - the lowest item
func (tree *Tree[T]) Min() (T, error) {
	if nil == tree.root {
		var zero T
		return zero, fault.ErrEmptyTree
	}
	return successor(tree.root), nil
}

// Max - the highest item, i.e. the predecessor candidate of the
// whole tree
func (tree *Tree[T]) Max() (T, error) {
	if nil == tree.root {
		var zero T
		return zero, fault.ErrEmptyTree
	}
	return predecessor(tree.root), nil
}
