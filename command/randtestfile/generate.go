// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treeheight/fault"
	"github.com/bitmark-inc/treeheight/generate"
)

func runGenerate(c *cli.Context) error {

	files := c.Int("files")
	if files < 1 {
		return fault.ErrInvalidFileCount
	}
	count := c.Int("count")
	if count < 0 {
		return fault.ErrInvalidCount
	}
	minimum := c.Int("minimum")
	maximum := c.Int("maximum")
	if minimum > maximum {
		return fault.ErrInvalidRange
	}
	pattern := c.String("pattern")
	if 1 != strings.Count(pattern, "%") || 1 != strings.Count(pattern, "%d") {
		return fault.ErrInvalidPattern
	}

	seed := c.Int64("seed")
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	directory := c.String("directory")
	w := c.App.Writer
	e := c.App.ErrWriter

	failed := 0
	for i := 1; i <= files; i += 1 {
		name := filepath.Join(directory, fmt.Sprintf(pattern, i))
		err := generate.WriteFile(name, rng, count, minimum, maximum)
		if nil != err {
			fmt.Fprintf(e, "Failed to create file: %s\n", name)
			failed += 1
			continue
		}
		fmt.Fprintf(w, "File created: %s\n", name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files: %w", failed, files, fault.ErrOutputFileFailed)
	}
	return nil
}
