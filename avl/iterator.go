// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Visitor - receives items during an in-order walk
type Visitor[T any] interface {
	Visit(item T)
}

// VisitorFunc - adapt a plain function to a Visitor
type VisitorFunc[T any] func(item T)

// Visit - call f(item)
func (f VisitorFunc[T]) Visit(item T) {
	f(item)
}

// Traverse - call visit for every item in ascending order
func (tree *Tree[T]) Traverse(visit func(item T)) {
	traverse(tree.root, visit)
}

// Walk - pass every item in ascending order to a visitor
func (tree *Tree[T]) Walk(v Visitor[T]) {
	traverse(tree.root, v.Visit)
}

// All - sequence of the items in ascending order
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		all(tree.root, yield)
	}
}

// Items - all items in ascending order
func (tree *Tree[T]) Items() []T {
	items := make([]T, 0, count(tree.root))
	traverse(tree.root, func(item T) {
		items = append(items, item)
	})
	return items
}

// left, self, right
func traverse[T any](p *Node[T], visit func(T)) {
	if nil == p {
		return
	}
	traverse(p.left, visit)
	visit(p.item)
	traverse(p.right, visit)
}

// as traverse, but stops when yield returns false
func all[T any](p *Node[T], yield func(T) bool) bool {
	if nil == p {
		return true
	}
	return all(p.left, yield) && yield(p.item) && all(p.right, yield)
}
