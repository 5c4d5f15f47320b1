// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// per tree node allocator, deleted nodes are kept on a free list
// chained through their right pointers
type allocator[T any] struct {
	sync.Mutex
	pool      *Node[T] // linked list of reclaimed nodes
	freeNodes int      // number of nodes in the pool
}

// allocate a new leaf, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(item T) *Node[T] {
	a := &tree.nodes
	a.Lock()
	defer a.Unlock()

	tree.stats.allocated.Increment()

	if nil == a.pool {
		if 0 != a.freeNodes {
			panic("avl: node pool corrupt")
		}
		return &Node[T]{
			item: item,
		}
	}
	p := a.pool
	a.pool = p.right
	p.item = item
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	a.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[T]) freeNode(p *Node[T]) {
	a := &tree.nodes
	a.Lock()
	defer a.Unlock()

	var zero T
	p.item = zero
	p.left = nil
	p.right = a.pool // use as free list pointer
	a.pool = p
	a.freeNodes += 1

	tree.stats.freed.Increment()
}
