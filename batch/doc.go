// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package batch - measure a numbered series of input files
//
// Each index N selects an input file (default "test_file_N.txt") and an
// output file (default "output_file_N.txt").  Every input file is
// loaded into its own AVL and Red-Black trees and the heights are
// written to the output file.  A file that cannot be opened or created
// is reported and skipped, the remaining files are still processed.
package batch
