// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - report input files that are created or rewritten
// in a directory
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/treeheight/fault"
)

const (
	// LoggerPrefix - logger channel name
	LoggerPrefix = "watcher"

	// DefaultSettle - a file is reported once no event has arrived for
	// it during this period, a large file being written produces many
	// events
	DefaultSettle = 2 * time.Second

	minimumCleanup  = 10 * time.Millisecond
	changeQueueSize = 16
)

// Watcher - a watch on a single directory
type Watcher struct {
	sync.Mutex

	log       *logger.L
	watcher   *fsnotify.Watcher
	directory string
	match     func(string) bool
	pending   *cache.Cache
	settled   chan string
	limiter   *rate.Limiter
	changes   chan string
	cancel    context.CancelFunc
	done      chan struct{}
	started   bool
}

// New - watch a directory for files whose base name is accepted by match
//
// settle of zero selects DefaultSettle
func New(log *logger.L, directory string, match func(string) bool, settle time.Duration) (*Watcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidStructPointer
	}
	if settle <= 0 {
		settle = DefaultSettle
	}

	directory, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	cleanup := settle / 4
	if cleanup < minimumCleanup {
		cleanup = minimumCleanup
	}

	wd := &Watcher{
		log:       log,
		watcher:   w,
		directory: directory,
		match:     match,
		pending:   cache.New(settle, cleanup),
		settled:   make(chan string, changeQueueSize),
		limiter:   rate.NewLimiter(rate.Every(100*time.Millisecond), 4),
		changes:   make(chan string, changeQueueSize),
		done:      make(chan struct{}),
	}

	// expiry means no event arrived during the settle period
	wd.pending.OnEvicted(func(name string, path interface{}) {
		wd.queue(path.(string))
	})

	return wd, nil
}

// Changes - full paths of changed files
//
// closed after Stop
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Start - begin watching
func (w *Watcher) Start() error {
	w.Lock()
	defer w.Unlock()

	if w.started {
		return fault.ErrAlreadyStarted
	}
	if nil == w.pending {
		return fault.ErrStopped
	}

	err := w.watcher.Add(w.directory)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.started = true

	go w.loop(ctx)

	w.log.Infof("watching: %q", w.directory)
	return nil
}

// Stop - end watching and close the changes channel
//
// a stopped watcher cannot be started again
func (w *Watcher) Stop() error {
	w.Lock()
	defer w.Unlock()

	if !w.started {
		return fault.ErrNotStarted
	}
	w.started = false

	w.cancel()
	err := w.watcher.Close()
	<-w.done

	// the janitor goroutine ends once the cache is unreachable, so
	// release it and its eviction callback
	w.pending.OnEvicted(nil)
	w.pending.Flush()
	w.pending = nil

	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)
			if !eventFileChange(event) {
				continue
			}
			name := filepath.Base(event.Name)
			if !w.match(name) {
				w.log.Debugf("file %q not match, discard event", name)
				continue
			}

			// restart the settle period
			w.pending.Set(name, event.Name, cache.DefaultExpiration)

		case path := <-w.settled:
			if err := w.limiter.Wait(ctx); nil != err {
				return
			}
			w.sendEvent(ctx, path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *Watcher) isChannelFull(ch chan<- string) bool {
	return len(ch) == cap(ch)
}

// called from the cache janitor
func (w *Watcher) queue(path string) {
	if w.isChannelFull(w.settled) {
		w.log.Warnf("settled queue full, discard: %q", path)
		return
	}
	w.settled <- path
}

func (w *Watcher) sendEvent(ctx context.Context, path string) {
	w.log.Infof("changed: %q", path)
	select {
	case w.changes <- path:
	case <-ctx.Done():
	}
}

func eventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Write == fsnotify.Write
}
