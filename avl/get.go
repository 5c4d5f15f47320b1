// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - the item at a position in sorted order
//
// sub-tree sizes are not stored, so this is O(n)
func (tree *Tree[T]) Get(index int) (T, error) {
	if index < 0 {
		var zero T
		return zero, fault.ErrIndexOutOfRange
	}
	p := get(index, tree.root)
	if nil == p {
		var zero T
		return zero, fault.ErrIndexOutOfRange
	}
	return p.item, nil
}

func get[T any](index int, p *Node[T]) *Node[T] {
	for nil != p {
		nl := count(p.left)
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return p
		}
	}
	return nil
}
