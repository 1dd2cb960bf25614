// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/treeheight/fault"
	"github.com/bitmark-inc/treeheight/measure"
)

// Summary - totals for a run
type Summary struct {
	Processed int // output files written
	Skipped   int // files not processed
	Truncated int // inputs that stopped at an invalid token
	Keys      int // integers read over all processed files
}

// Outcome - the result of processing one index
type Outcome struct {
	Index     int
	Input     string // input file name
	Result    measure.Result
	Truncated bool
	Err       error // non-nil when the file was skipped
}

// Run - process every configured index using the worker pool
func (b *Batch) Run() Summary {
	jobs := make(chan int)
	outcomes := make(chan Outcome)

	wg := sync.WaitGroup{}
	for w := 0; w < b.conf.Workers; w += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				outcomes <- b.Process(index)
			}
		}()
	}

	go func() {
		for i := 0; i < b.conf.Files; i += 1 {
			jobs <- b.conf.First + i
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	summary := Summary{}
	for o := range outcomes {
		summary.Add(o)
	}

	b.log.Infof("processed: %d  skipped: %d  truncated: %d  keys: %d",
		summary.Processed, summary.Skipped, summary.Truncated, summary.Keys)
	return summary
}

// Add - include one outcome in the totals
func (s *Summary) Add(o Outcome) {
	if nil != o.Err {
		s.Skipped += 1
		return
	}
	s.Processed += 1
	s.Keys += o.Result.Keys
	if o.Truncated {
		s.Truncated += 1
	}
}

// Process - measure one input file and write its output file
func (b *Batch) Process(index int) Outcome {
	inputName := fmt.Sprintf(b.conf.InputPattern, index)
	outputName := fmt.Sprintf(b.conf.OutputPattern, index)

	o := Outcome{
		Index: index,
		Input: inputName,
	}

	inputPath := filepath.Join(b.conf.InputDirectory, inputName)
	input, err := os.Open(inputPath)
	if nil != err {
		b.notify("Failed to open input file: %s\n", inputName)
		if os.IsNotExist(err) {
			err = fmt.Errorf("%q: %w", inputPath, fault.ErrInputFileNotFound)
		}
		b.log.Warnf("open input: %s", err)
		o.Err = err
		return o
	}
	defer input.Close()

	outputPath := filepath.Join(b.conf.OutputDirectory, outputName)
	output, err := os.Create(outputPath)
	if nil != err {
		b.notify("Failed to create output file: %s\n", outputName)
		b.log.Warnf("create output: %q  error: %s", outputPath, err)
		o.Err = fmt.Errorf("%q: %s: %w", outputPath, err, fault.ErrOutputFileFailed)
		return o
	}

	pair := measure.NewPair()
	_, err = pair.Load(bufio.NewReaderSize(input, 65536))
	if nil != err {
		if !fault.IsErrInvalid(err) {
			b.log.Errorf("read input: %q  error: %s", inputPath, err)
			output.Close()
			os.Remove(outputPath)
			o.Err = err
			return o
		}
		b.log.Warnf("input: %q truncated at: %s", inputPath, err)
		o.Truncated = true
	}
	o.Result = pair.Result()

	if b.conf.Verify {
		for _, tree := range []measure.Tree{pair.AVL, pair.RedBlack} {
			if err := measure.Verify(tree); nil != err {
				b.log.Criticalf("input: %q  verify: %s", inputPath, err)
			}
		}
	}

	err = b.write(output, inputName, o.Result, pair)
	if cerr := output.Close(); nil == err {
		err = cerr
	}
	if nil != err {
		b.log.Errorf("write output: %q  error: %s", outputPath, err)
		o.Err = err
		return o
	}

	b.log.Infof("%s: keys: %d  AVL height: %d  Red-Black height: %d",
		inputName, o.Result.Keys, o.Result.AVLHeight, o.Result.RedBlackHeight)
	return o
}

func (b *Batch) write(w io.Writer, inputName string, result measure.Result, pair *measure.Pair) error {
	bw := bufio.NewWriter(w)

	if err := measure.WriteReport(bw, inputName, result); nil != err {
		return err
	}
	if b.conf.Traversal {
		if err := measure.WriteTraversal(bw, pair.AVL); nil != err {
			return err
		}
		if err := measure.WriteTraversal(bw, pair.RedBlack); nil != err {
			return err
		}
	}
	if b.conf.PrintTrees {
		bw.WriteString("AVL tree:\n")
		measure.Print(bw, pair.AVL)
		bw.WriteString("Red Black tree:\n")
		measure.Print(bw, pair.RedBlack)
	}
	return bw.Flush()
}

// ProcessFile - process an input file given by name, as reported by
// a directory watcher
func (b *Batch) ProcessFile(fileName string) (Outcome, bool) {
	index, ok := b.IndexOf(filepath.Base(fileName))
	if !ok {
		return Outcome{}, false
	}
	return b.Process(index), true
}
