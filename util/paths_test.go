// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/etc/avltree/log", util.EnsureAbsolute("/etc/avltree", "log"))
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/etc/avltree", "/var/log"))
	assert.Equal(t, "/etc/log", util.EnsureAbsolute("/etc/avltree", "../log"))
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("avltree.log"))
	assert.False(t, util.IsPlainName("log/avltree.log"))
	assert.False(t, util.IsPlainName(""))
}

func TestEnsureDirectory(t *testing.T) {
	d := filepath.Join(t.TempDir(), "a", "b")
	assert.NoError(t, util.EnsureDirectory(d))
	info, err := os.Stat(d)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
