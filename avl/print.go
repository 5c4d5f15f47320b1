// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"bufio"
	"fmt"
	"io"
)

// Print - write the items in ascending order as a single line of
// space separated values
func (tree *Tree[T]) Print(w io.Writer) error {
	b := bufio.NewWriter(w)
	n := 0
	traverse(tree.root, func(item T) {
		if n > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(b, item)
		n += 1
	})
	b.WriteByte('\n')
	return b.Flush()
}

// to control the draw routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Draw - display an ASCII graphic representation of the tree, right
// sub-trees above, and return its depth
func (tree *Tree[T]) Draw(w io.Writer) (int, error) {
	b := bufio.NewWriter(w)
	depth := drawTree(b, tree.root, "", rootBranch)
	return depth, b.Flush()
}

// internal draw - returns the maximum depth of the tree
func drawTree[T any](w io.Writer, p *Node[T], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = drawTree(w, p.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v %+d\n", p.item, balanceFactor(p))
	if nil != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = drawTree(w, p.left, prefix+t, leftBranch)
	}
	return 1 + max(ld, rd)
}
