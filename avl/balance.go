// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// TieBreak - how a heavy child with balance factor 0 is rotated
type TieBreak int

const (
	// Strict - single rotation only when the child factor is
	// strictly the same sign, a level child gets a double rotation
	Strict TieBreak = iota

	// Textbook - a level child gets a single rotation
	Textbook
)

// String - name of the tie-break
func (tb TieBreak) String() string {
	switch tb {
	case Strict:
		return "strict"
	case Textbook:
		return "textbook"
	default:
		return "*unknown*"
	}
}

// ParseTieBreak - convert a name from a configuration file
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "", "strict":
		return Strict, nil
	case "textbook":
		return Textbook, nil
	default:
		return Strict, fault.ErrInvalidTieBreak
	}
}

// balance the sub-tree at t if necessary and return its new root
// all nodes below t must already be balanced, t must not be nil
func balance[T any](t *Node[T], tb TieBreak) (*Node[T], rotation) {
	bf := balanceFactor(t)

	if bf > 1 {
		// left side too heavy
		lf := balanceFactor(t.left)
		if lf > 0 || (Textbook == tb && 0 == lf) {
			return rotateRight(t), rotateRightKind
		}
		return rotateLeftRight(t), rotateLeftRightKind
	}

	if bf < -1 {
		// right side too heavy
		rf := balanceFactor(t.right)
		if rf < 0 || (Textbook == tb && 0 == rf) {
			return rotateLeft(t), rotateLeftKind
		}
		return rotateRightLeft(t), rotateRightLeftKind
	}

	return t, noRotation
}

// balance a sub-tree, recording any rotation
func (tree *Tree[T]) rebalance(t *Node[T], tb TieBreak) *Node[T] {
	if nil == t {
		return nil
	}
	p, r := balance(t, tb)
	if noRotation != r {
		tree.stats.rotations[r].Increment()
		if nil != tree.log {
			tree.log.Tracef("%s rotation at: %v  new root: %v", r, t.item, p.item)
		}
	}
	return p
}
