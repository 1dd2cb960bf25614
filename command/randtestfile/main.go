// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treeheight/generate"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "randtestfile"
	app.Usage = "write files of random integer keys for treeheight"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "files, f",
			Value: generate.DefaultFiles,
			Usage: " number of `FILES` to write",
		},
		cli.IntFlag{
			Name:  "count, n",
			Value: generate.DefaultCount,
			Usage: " `COUNT` of integers in each file",
		},
		cli.IntFlag{
			Name:  "minimum",
			Value: generate.DefaultMinimum,
			Usage: " smallest `VALUE` generated",
		},
		cli.IntFlag{
			Name:  "maximum",
			Value: generate.DefaultMaximum,
			Usage: " largest `VALUE` generated",
		},
		cli.Int64Flag{
			Name:  "seed, s",
			Value: 0,
			Usage: " random `SEED`, 0 selects a time based seed",
		},
		cli.StringFlag{
			Name:  "directory, d",
			Value: ".",
			Usage: " output `DIRECTORY`",
		},
		cli.StringFlag{
			Name:  "pattern, p",
			Value: generate.DefaultPattern,
			Usage: " file name `PATTERN`, %d is replaced by 1…files",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "version",
			Usage: "display randtestfile version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Action = runGenerate

	return app
}
