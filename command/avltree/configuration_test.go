// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func writeConfiguration(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "avltree.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0600))
	return fileName
}

func TestDefaultConfiguration(t *testing.T) {
	c, err := getConfiguration("")
	require.NoError(t, err)

	assert.Equal(t, intItems, c.ItemType)
	assert.Equal(t, "strict", c.TieBreak)
	assert.Equal(t, defaultLogFile, c.Logging.File)
	assert.True(t, filepath.IsAbs(c.Logging.Directory))
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag])
}

func TestReadConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
  item_type = "String",
  tie_break = "textbook",
  items = { "m", "c", "x" },
  delete = { "c" },
  draw = true,
  logging = {
    directory = "logs",
    file = "tree.log",
    size = 2048,
    count = 3,
    levels = { tree = "trace" },
  },
}
`)

	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, stringItems, c.ItemType)
	assert.Equal(t, "textbook", c.TieBreak)
	assert.Equal(t, []string{"m", "c", "x"}, c.Items)
	assert.Equal(t, []string{"c"}, c.Delete)
	assert.True(t, c.Draw)
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "logs"), c.Logging.Directory)
	assert.Equal(t, "tree.log", c.Logging.File)
	assert.Equal(t, "trace", c.Logging.Levels["tree"])
	assert.Equal(t, "info", defaultLogLevels["tree"], "defaults must not be modified")

	info, err := os.Stat(c.Logging.Directory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBadConfiguration(t *testing.T) {
	_, err := getConfiguration(writeConfiguration(t, `return { item_type = "float" }`))
	assert.Equal(t, fault.ErrInvalidItemType, err)

	_, err = getConfiguration(writeConfiguration(t, `return { tie_break = "lenient" }`))
	assert.Equal(t, fault.ErrInvalidTieBreak, err)

	_, err = getConfiguration(writeConfiguration(t, `return { logging = { file = "a/b.log" } }`))
	assert.Error(t, err)

	_, err = getConfiguration(filepath.Join(t.TempDir(), "none.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)
}
