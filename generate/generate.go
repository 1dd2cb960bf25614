// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package generate - write files of random integer keys
package generate

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/bitmark-inc/treeheight/fault"
)

// defaults for generated test data
const (
	DefaultFiles   = 10
	DefaultCount   = 1000000
	DefaultMinimum = 1
	DefaultMaximum = 1000000000
	DefaultPattern = "test_file_%d.txt"
)

// Write - count integers uniformly distributed in [minimum, maximum],
// one per line
func Write(w io.Writer, rng *rand.Rand, count int, minimum int, maximum int) error {
	if count < 0 {
		return fault.ErrInvalidCount
	}
	if minimum > maximum {
		return fault.ErrInvalidRange
	}

	// zero span is the full 64 bit range
	span := uint64(int64(maximum)) - uint64(int64(minimum)) + 1

	bw := bufio.NewWriter(w)
	b := make([]byte, 0, 24)
	for i := 0; i < count; i += 1 {
		n := int64(uint64(int64(minimum)) + draw(rng, span))
		b = strconv.AppendInt(b[:0], n, 10)
		b = append(b, '\n')
		if _, err := bw.Write(b); nil != err {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile - create or truncate a file and Write to it
func WriteFile(name string, rng *rand.Rand, count int, minimum int, maximum int) error {
	f, err := os.Create(name)
	if nil != err {
		return err
	}

	err = Write(f, rng, count, minimum, maximum)
	if cerr := f.Close(); nil == err {
		err = cerr
	}
	if nil != err {
		os.Remove(name)
	}
	return err
}

// uniform in [0, span), span of zero means any uint64
func draw(rng *rand.Rand, span uint64) uint64 {
	if span > 0 && span <= math.MaxInt64 {
		return uint64(rng.Int63n(int64(span)))
	}
	for {
		v := rng.Uint64()
		if 0 == span || v < span {
			return v
		}
	}
}
