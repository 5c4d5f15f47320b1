// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "draw", HasArg: getoptions.NO_ARGUMENT, Short: 'D'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "item-type", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "tie-break", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'b'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--draw] [--config-file=FILE] [--item-type=int|string] [--tie-break=strict|textbook] [--delete=ITEM]... [items...]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if n := len(options["item-type"]); n > 0 {
		masterConfiguration.ItemType = strings.ToLower(options["item-type"][n-1])
	}
	if n := len(options["tie-break"]); n > 0 {
		masterConfiguration.TieBreak = options["tie-break"][n-1]
	}
	if len(options["draw"]) > 0 {
		masterConfiguration.Draw = true
	}

	tieBreak, err := avl.ParseTieBreak(masterConfiguration.TieBreak)
	if nil != err {
		exitwithstatus.Message("%s: tie-break: %q  error: %s", program, masterConfiguration.TieBreak, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	r := request{
		itemType: masterConfiguration.ItemType,
		tieBreak: tieBreak,
		items:    append(masterConfiguration.Items, arguments...),
		delete:   append(masterConfiguration.Delete, options["delete"]...),
		draw:     masterConfiguration.Draw,
		verbose:  len(options["verbose"]) > 0,
	}

	if err := process(logger.New("tree"), os.Stdout, r); nil != err {
		log.Criticalf("failed with error: %s", err)
		exitwithstatus.Message("%s: failed with error: %s", program, err)
	}
}
