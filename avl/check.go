// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the ordering and balance of every node
func (tree *Tree[T]) Check() error {
	if _, err := checkBalance(tree.root); nil != err {
		return err
	}
	return tree.checkOrder()
}

// in-order sequence must never decrease
func (tree *Tree[T]) checkOrder() error {
	first := true
	var previous T
	ok := all(tree.root, func(item T) bool {
		if !first && tree.compare(item, previous) < 0 {
			return false
		}
		first = false
		previous = item
		return true
	})
	if !ok {
		return fault.ErrOutOfOrder
	}
	return nil
}

// returns the height of p so each node is only visited once
func checkBalance[T any](p *Node[T]) (int, error) {
	if nil == p {
		return 0, nil
	}
	lh, err := checkBalance(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkBalance(p.right)
	if nil != err {
		return 0, err
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, fault.ErrUnbalanced
	}
	return 1 + max(lh, rh), nil
}
