// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree, owns its two sub-trees
type Node[T any] struct {
	left  *Node[T] // left sub-tree: items ordered before this one
	right *Node[T] // right sub-tree: items ordered at or after this one
	item  T
}

// Item - read the item from a node
func (p *Node[T]) Item() T {
	return p.item
}

// Left - the left sub-tree, nil if absent
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - the right sub-tree, nil if absent
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Height - height of the sub-tree rooted at this node
func (p *Node[T]) Height() int {
	return height(p)
}

// BalanceFactor - left height minus right height
func (p *Node[T]) BalanceFactor() int {
	return balanceFactor(p)
}

// ChildrenByDepth - returns all nodes at a specific depth below this one
func (p *Node[T]) ChildrenByDepth(depth uint) []*Node[T] {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node[T]{p}
	}
	nodes := []*Node[T]{}
	nodes = append(nodes, p.left.ChildrenByDepth(depth-1)...)
	nodes = append(nodes, p.right.ChildrenByDepth(depth-1)...)
	return nodes
}

// height of a sub-tree: 0 for absent, 1 for a leaf
func height[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// difference in height between the left and right sub-trees
// p must not be nil
func balanceFactor[T any](p *Node[T]) int {
	return height(p.left) - height(p.right)
}
