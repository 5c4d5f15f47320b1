// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type treeConfig struct {
	ItemType string   `gluamapper:"item_type"`
	TieBreak string   `gluamapper:"tie_break"`
	Items    []string `gluamapper:"items"`
	Draw     bool     `gluamapper:"draw"`
}

func writeFile(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "avltree.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err, "write config")
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, `
local items = {}
for i = 3, 1, -1 do
  items[#items + 1] = tostring(i)
end
return {
  item_type = "int",
  tie_break = "textbook",
  items = items,
  draw = true,
}
`)

	config := treeConfig{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err, "parse")

	assert.Equal(t, "int", config.ItemType)
	assert.Equal(t, "textbook", config.TieBreak)
	assert.Equal(t, []string{"3", "2", "1"}, config.Items)
	assert.True(t, config.Draw)
}

func TestParseConfigurationFileArg(t *testing.T) {
	fileName := writeFile(t, `return { item_type = arg[0] }`)

	config := treeConfig{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err, "parse")
	assert.Equal(t, fileName, config.ItemType, "arg[0] should be the file name")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	config := treeConfig{}

	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &config)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)

	err = configuration.ParseConfigurationFile(writeFile(t, `return 42`), &config)
	assert.Equal(t, fault.ErrUnexpectedConfiguration, err)

	err = configuration.ParseConfigurationFile(writeFile(t, `return {`), &config)
	assert.Error(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(writeFile(t, `return {}`), config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}
