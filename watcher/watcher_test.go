// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watcher_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treeheight/fault"
	"github.com/bitmark-inc/treeheight/watcher"
)

func setup(t *testing.T) string {
	dir, err := ioutil.TempDir("", "watcher")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	logDirectory := filepath.Join(dir, "log")
	_ = os.Mkdir(logDirectory, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	return dir
}

func teardown(dir string) {
	logger.Finalise()
	os.RemoveAll(dir)
}

func isInput(name string) bool {
	return strings.HasPrefix(name, "test_file_")
}

func TestChanges(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	w, err := watcher.New(logger.New(watcher.LoggerPrefix), dir, isInput, 50*time.Millisecond)
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	if err := w.Start(); nil != err {
		t.Fatalf("start error: %s", err)
	}
	assert.Equal(t, fault.ErrAlreadyStarted, w.Start(), "second start")

	ignored := filepath.Join(dir, "notes.txt")
	_ = ioutil.WriteFile(ignored, []byte("1 2 3"), 0600)

	name := filepath.Join(dir, "test_file_1.txt")
	for i := 0; i < 5; i += 1 {
		_ = ioutil.WriteFile(name, []byte(strings.Repeat("7\n", i+1)), 0600)
	}

	select {
	case path := <-w.Changes():
		assert.Equal(t, "test_file_1.txt", filepath.Base(path), "changed file")
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	// the burst of writes is reported once
	select {
	case path := <-w.Changes():
		t.Fatalf("unexpected second change: %q", path)
	case <-time.After(300 * time.Millisecond):
	}

	assert.Nil(t, w.Stop(), "stop")

	_, open := <-w.Changes()
	assert.False(t, open, "changes channel not closed")

	assert.Equal(t, fault.ErrNotStarted, w.Stop(), "second stop")
	assert.Equal(t, fault.ErrStopped, w.Start(), "restart after stop")
}

func TestStopNotStarted(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	w, err := watcher.New(logger.New(watcher.LoggerPrefix), dir, isInput, 0)
	if nil != err {
		t.Fatalf("new watcher error: %s", err)
	}
	assert.Equal(t, fault.ErrNotStarted, w.Stop(), "stop before start")
}
