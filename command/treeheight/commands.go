// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
)

const sampleConfigurationFile = "treeheight.conf"

// sample Lua configuration, all values are the defaults
const sampleConfiguration = `-- treeheight.conf  -*- mode: lua -*-

local M = {}

-- relative paths below are relative to this directory
-- "." is the directory holding this file
M.data_directory = "."

-- optional pid file, used with watch = true
-- M.pidfile = "treeheight.pid"

-- keep running and re-measure input files that change
M.watch = false
-- quiet period after the last change before a file is measured
M.settle = "2s"

M.batch = {
    input_directory = ".",
    output_directory = ".",
    input_pattern = "test_file_%d.txt",
    output_pattern = "output_file_%d.txt",
    first = 1,
    files = 10,
    workers = 1,

    -- add the in-order key sequence of each tree to the output
    traversal = false,
    -- add an ASCII picture of each tree, only sensible for small inputs
    print_trees = false,
    -- check the tree invariants after loading each file
    verify = false,
}

M.logging = {
    directory = "log",
    file = "treeheight.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "critical",
        -- main = "info",
        -- batch = "info",
        -- watcher = "info",
    },
}

return M
`

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-config", "config":
		name := sampleConfigurationFile
		if len(arguments) > 0 {
			name = arguments[0]
		}
		if _, err := os.Stat(name); nil == err {
			exitwithstatus.Message("%s: configuration file: %q already exists", program, name)
		}
		if err := ioutil.WriteFile(name, []byte(sampleConfiguration), 0600); nil != err {
			exitwithstatus.Message("%s: write configuration file: %q  error: %s", program, name, err)
		}
		fmt.Printf("generated configuration file: %q\n", name)

	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--watch] [--config-file=FILE] [--define=NAME=VALUE] [[command|help] arguments...]\n"+
			"  commands:\n"+
			"    generate-config [FILE]  - write a sample configuration file (default: %s)\n"+
			"    version                 - display the version\n"+
			"    help                    - this message",
			program, sampleConfigurationFile)

	default:
		return false
	}

	return true
}
