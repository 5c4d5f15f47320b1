// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the restructuring applied by balance
type rotation int

const (
	noRotation rotation = iota
	rotateRightKind
	rotateLeftKind
	rotateLeftRightKind
	rotateRightLeftKind
	rotationCount
)

func (r rotation) String() string {
	switch r {
	case noRotation:
		return "none"
	case rotateRightKind:
		return "right"
	case rotateLeftKind:
		return "left"
	case rotateLeftRightKind:
		return "left-right"
	case rotateRightLeftKind:
		return "right-left"
	default:
		return "*unknown*"
	}
}

// single LL rotation, t.left must exist
//
//	     t            s
//	    / \          / \
//	   s   c  ->    a   t
//	  / \              / \
//	 a   b            b   c
func rotateRight[T any](t *Node[T]) *Node[T] {
	s := t.left
	b := s.right
	s.right = t
	t.left = b
	return s
}

// single RR rotation, t.right must exist
func rotateLeft[T any](t *Node[T]) *Node[T] {
	s := t.right
	b := s.left
	s.left = t
	t.right = b
	return s
}

// double LR rotation, t.left and t.left.right must exist
func rotateLeftRight[T any](t *Node[T]) *Node[T] {
	t.left = rotateLeft(t.left)
	return rotateRight(t)
}

// double RL rotation, t.right and t.right.left must exist
func rotateRightLeft[T any](t *Node[T]) *Node[T] {
	t.right = rotateRight(t.right)
	return rotateLeft(t)
}
