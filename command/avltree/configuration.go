// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultItemType = "int"
	defaultTieBreak = "strict"

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// supported item types
const (
	intItems    = "int"
	stringItems = "string"
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	"main":            "info",
	"tree":            "info",
	logger.DefaultTag: "critical",
}

// Configuration - the contents of the Lua configuration file
type Configuration struct {
	ItemType string               `gluamapper:"item_type" json:"item_type"`
	TieBreak string               `gluamapper:"tie_break" json:"tie_break"`
	Items    []string             `gluamapper:"items" json:"items"`
	Delete   []string             `gluamapper:"delete" json:"delete"`
	Draw     bool                 `gluamapper:"draw" json:"draw"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration(directory string) *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		ItemType: defaultItemType,
		TieBreak: defaultTieBreak,
		Logging: logger.Configuration{
			Directory: util.EnsureAbsolute(directory, defaultLogDirectory),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
// with no file name the defaults are used and logs go to the
// temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	directory := os.TempDir()
	options := defaultConfiguration(directory)

	if "" != configurationFileName {
		var err error
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// the configuration file's directory
		directory, _ = filepath.Split(configurationFileName)
		options = defaultConfiguration(directory)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	options.ItemType = strings.ToLower(options.ItemType)
	switch options.ItemType {
	case intItems, stringItems:
	default:
		return nil, fault.ErrInvalidItemType
	}

	if _, err := avl.ParseTieBreak(options.TieBreak); nil != err {
		return nil, err
	}

	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = util.EnsureAbsolute(directory, options.Logging.Directory)
	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	return options, nil
}
