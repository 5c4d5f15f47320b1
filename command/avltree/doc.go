// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltree - build an AVL tree from a list of items and display it
//
// Items come from the optional Lua configuration file and from the
// command line arguments; they are inserted in order, then any
// --delete items are removed.  The sorted contents, size, height and
// root balance factor are printed and --draw adds a diagram.
//
// Example configuration:
//
//	return {
//	    item_type = "int",        -- or "string"
//	    tie_break = "strict",     -- or "textbook"
//	    items = { "3", "2", "1" },
//	    delete = { },
//	    draw = false,
//	    logging = {
//	        directory = "log",
//	        file = "avltree.log",
//	        size = 1048576,
//	        count = 10,
//	        levels = { main = "info", tree = "info" },
//	    },
//	}
package main
