// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package batch

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treeheight/fault"
)

// defaults
const (
	DefaultInputPattern  = "test_file_%d.txt"
	DefaultOutputPattern = "output_file_%d.txt"
	DefaultFirst         = 1
	DefaultFiles         = 10
	DefaultWorkers       = 1
)

// Configuration - batch settings, read from the "batch" table of the
// configuration file
type Configuration struct {
	InputDirectory  string `gluamapper:"input_directory" json:"input_directory"`
	OutputDirectory string `gluamapper:"output_directory" json:"output_directory"`
	InputPattern    string `gluamapper:"input_pattern" json:"input_pattern"`
	OutputPattern   string `gluamapper:"output_pattern" json:"output_pattern"`
	First           int    `gluamapper:"first" json:"first"`
	Files           int    `gluamapper:"files" json:"files"`
	Workers         int    `gluamapper:"workers" json:"workers"`
	Traversal       bool   `gluamapper:"traversal" json:"traversal"`
	PrintTrees      bool   `gluamapper:"print_trees" json:"print_trees"`
	Verify          bool   `gluamapper:"verify" json:"verify"`
}

// DefaultConfiguration - ten files named test_file_1.txt … test_file_10.txt
func DefaultConfiguration() Configuration {
	return Configuration{
		InputDirectory:  ".",
		OutputDirectory: ".",
		InputPattern:    DefaultInputPattern,
		OutputPattern:   DefaultOutputPattern,
		First:           DefaultFirst,
		Files:           DefaultFiles,
		Workers:         DefaultWorkers,
	}
}

// Notifier - receives the messages meant for the console
type Notifier func(format string, arguments ...interface{})

// Batch - a configured series of files
type Batch struct {
	log    *logger.L
	conf   Configuration
	notify Notifier
}

// New - validate the configuration and create a batch
//
// notify may be nil to suppress console messages
func New(log *logger.L, conf Configuration, notify Notifier) (*Batch, error) {
	if nil == log {
		return nil, fmt.Errorf("logger: %w", fault.ErrInvalidStructPointer)
	}
	if !validPattern(conf.InputPattern) {
		return nil, fmt.Errorf("input pattern: %q: %w", conf.InputPattern, fault.ErrInvalidPattern)
	}
	if !validPattern(conf.OutputPattern) {
		return nil, fmt.Errorf("output pattern: %q: %w", conf.OutputPattern, fault.ErrInvalidPattern)
	}
	if conf.Files <= 0 {
		return nil, fault.ErrInvalidFileCount
	}
	if conf.Workers <= 0 {
		return nil, fault.ErrInvalidWorkerCount
	}
	for _, d := range []string{conf.InputDirectory, conf.OutputDirectory} {
		info, err := os.Stat(d)
		if nil != err {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%q: %w", d, fault.ErrNotADirectory)
		}
	}
	if nil == notify {
		notify = func(string, ...interface{}) {}
	}

	return &Batch{
		log:    log,
		conf:   conf,
		notify: notify,
	}, nil
}

// a pattern must hold a single %d and no other verbs
func validPattern(pattern string) bool {
	return 1 == strings.Count(pattern, "%d") && 1 == strings.Count(pattern, "%")
}

// Configuration - the validated settings
func (b *Batch) Configuration() Configuration {
	return b.conf
}

// IndexOf - the index that produces an input file name
func (b *Batch) IndexOf(fileName string) (int, bool) {
	index := 0
	n, err := fmt.Sscanf(fileName, b.conf.InputPattern, &index)
	if nil != err || 1 != n || index < 0 {
		return 0, false
	}
	// reject extra text and alternative spellings such as leading zeros
	if fmt.Sprintf(b.conf.InputPattern, index) != fileName {
		return 0, false
	}
	return index, true
}
