// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// what to do with the tree
type request struct {
	itemType string
	tieBreak avl.TieBreak
	items    []string
	delete   []string
	draw     bool
	verbose  bool
}

// build a tree of the requested item type and report on it
func process(log *logger.L, w io.Writer, r request) error {
	switch r.itemType {
	case intItems:
		return run(log, w, r, parseInt)
	case stringItems:
		return run(log, w, r, parseString)
	default:
		return fault.ErrInvalidItemType
	}
}

func parseInt(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.ErrInvalidItem
	}
	return i, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

func run[T cmp.Ordered](log *logger.L, w io.Writer, r request, parse func(string) (T, error)) error {
	tree := avl.NewWithTieBreak[T](r.tieBreak)
	tree.SetLog(log)

	for _, s := range r.items {
		item, err := parse(s)
		if nil != err {
			log.Errorf("insert: %q  error: %s", s, err)
			return err
		}
		tree.Insert(item)
		log.Debugf("insert: %v  size: %d", item, tree.Size())
	}

	for _, s := range r.delete {
		item, err := parse(s)
		if nil != err {
			log.Errorf("delete: %q  error: %s", s, err)
			return err
		}
		if err := tree.Delete(item); nil != err {
			log.Warnf("delete: %v  error: %s", item, err)
			return err
		}
		log.Debugf("delete: %v  size: %d", item, tree.Size())
	}

	if err := tree.Check(); nil != err {
		fault.Criticalf("tree check failed: %s", err)
		return err
	}

	if _, err := fmt.Fprint(w, "Tree contents: "); nil != err {
		return err
	}
	if err := tree.Print(w); nil != err {
		return err
	}
	_, err := fmt.Fprintf(w, "size: %d  height: %d  balance factor: %+d\n", tree.Size(), tree.Height(), tree.BalanceFactor())
	if nil != err {
		return err
	}

	if r.verbose {
		s := tree.Stats()
		_, err := fmt.Fprintf(w, "rotations: right: %d  left: %d  left-right: %d  right-left: %d\n",
			s.RotateRight, s.RotateLeft, s.RotateLeftRight, s.RotateRightLeft)
		if nil != err {
			return err
		}
	}

	if r.draw {
		depth, err := tree.Draw(w)
		if nil != err {
			return err
		}
		log.Infof("drawn tree depth: %d", depth)
	}

	log.Infof("items: %d  tie-break: %s  rotations: %d", tree.Size(), r.tieBreak, tree.Stats().Rotations())
	return nil
}
