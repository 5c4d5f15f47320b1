// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// live counters
type statistics struct {
	rotations [rotationCount]counter.Counter
	allocated counter.Counter
	freed     counter.Counter
}

// Stats - snapshot of the operation counters of a tree
type Stats struct {
	RotateRight     uint64 `json:"rotateRight"`
	RotateLeft      uint64 `json:"rotateLeft"`
	RotateLeftRight uint64 `json:"rotateLeftRight"`
	RotateRightLeft uint64 `json:"rotateRightLeft"`
	Allocated       uint64 `json:"allocated"` // nodes handed out, including reused ones
	Freed           uint64 `json:"freed"`
	Pooled          int    `json:"pooled"` // nodes waiting on the free list
}

// Rotations - total of all kinds of rotation
func (s Stats) Rotations() uint64 {
	return s.RotateRight + s.RotateLeft + s.RotateLeftRight + s.RotateRightLeft
}

// Stats - read the counters
func (tree *Tree[T]) Stats() Stats {
	tree.nodes.Lock()
	pooled := tree.nodes.freeNodes
	tree.nodes.Unlock()

	return Stats{
		RotateRight:     tree.stats.rotations[rotateRightKind].Uint64(),
		RotateLeft:      tree.stats.rotations[rotateLeftKind].Uint64(),
		RotateLeftRight: tree.stats.rotations[rotateLeftRightKind].Uint64(),
		RotateRightLeft: tree.stats.rotations[rotateRightLeftKind].Uint64(),
		Allocated:       tree.stats.allocated.Uint64(),
		Freed:           tree.stats.freed.Uint64(),
		Pooled:          pooled,
	}
}

// ResetStats - zero all counters, pooled nodes are retained
func (tree *Tree[T]) ResetStats() {
	for i := range tree.stats.rotations {
		tree.stats.rotations[i].Reset()
	}
	tree.stats.allocated.Reset()
	tree.stats.freed.Reset()
}
