// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree without parent pointers
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Read-only traversals may share a read lock.
//
// Heights are not stored in the nodes, each balance check recomputes
// the heights of the subtrees involved.  After the recursive insert
// returns, every ancestor on the insertion path is rebalanced bottom
// up and finally the root itself.
//
// Duplicate items are stored, an equal item is routed to the right
// sub-tree on insert.  Use Add instead of Insert to reject duplicates.
//
// The balance step selects a single rotation only when the heavy
// child leans strictly the same way (factor > 0 on the left, < 0 on
// the right); a child with factor 0 gets a double rotation.  This is
// the Strict tie-break and it is the default.  The Textbook tie-break
// (>= 0, <= 0) is available as a separate variant through
// NewWithTieBreak.
package avl
