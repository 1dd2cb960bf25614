// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treeheight/batch"
	"github.com/bitmark-inc/treeheight/watcher"
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
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}
	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unknown command: %q", program, arguments[0])
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	variables := make(map[string]string)
	for _, d := range options["define"] {
		v := strings.SplitN(d, "=", 2)
		if 2 != len(v) || "" == v[0] {
			exitwithstatus.Message("%s: define: %q is not NAME=VALUE", program, d)
		}
		variables[v[0]] = v[1]
	}

	// read options and parse the configuration file
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %#v", theConfiguration)

	watch := theConfiguration.Watch || len(options["watch"]) > 0

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	var notify batch.Notifier
	if !quiet {
		notify = func(format string, arguments ...interface{}) {
			fmt.Printf(format, arguments...)
		}
	}

	b, err := batch.New(logger.New("batch"), theConfiguration.Batch, notify)
	if nil != err {
		log.Criticalf("batch initialise error: %s", err)
		exitwithstatus.Message("%s: batch initialise error: %s", program, err)
	}

	summary := b.Run()
	if verbose {
		fmt.Printf("processed: %d  skipped: %d  truncated: %d  keys: %d\n",
			summary.Processed, summary.Skipped, summary.Truncated, summary.Keys)
	}

	if !watch {
		return
	}

	match := func(name string) bool {
		_, ok := b.IndexOf(name)
		return ok
	}
	w, err := watcher.New(logger.New(watcher.LoggerPrefix), theConfiguration.Batch.InputDirectory, match, theConfiguration.settle)
	if nil != err {
		log.Criticalf("watcher initialise error: %s", err)
		exitwithstatus.Message("%s: watcher initialise error: %s", program, err)
	}
	if err := w.Start(); nil != err {
		log.Criticalf("watcher start error: %s", err)
		exitwithstatus.Message("%s: watcher start error: %s", program, err)
	}
	defer w.Stop()

	// wait for CTRL-C before shutting down
	if !quiet {
		fmt.Printf("watching: %q  waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n", theConfiguration.Batch.InputDirectory)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case path, ok := <-w.Changes():
			if !ok {
				return
			}
			o, ok := b.ProcessFile(path)
			if !ok {
				continue
			}
			if nil != o.Err {
				log.Warnf("%s: %s", o.Input, o.Err)
				continue
			}
			if verbose {
				fmt.Printf("%s: AVL height: %d  Red Black height: %d\n", o.Input, o.Result.AVLHeight, o.Result.RedBlackHeight)
			}

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			return
		}
	}
}
