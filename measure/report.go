// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package measure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteReport - the per file summary block
func WriteReport(w io.Writer, inputName string, result Result) error {
	_, err := fmt.Fprintf(w,
		"File: %s\nHeight of AVL tree: %d\nHeight of Red Black tree: %d\n\n",
		inputName,
		result.AVLHeight,
		result.RedBlackHeight,
	)
	return err
}

// WriteTraversal - a single line with every key in order, each key
// followed by a space
func WriteTraversal(w io.Writer, tree Tree) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Traversal inorder : ")
	b := make([]byte, 0, 24)
	tree.Walk(func(key int) {
		b = strconv.AppendInt(b[:0], int64(key), 10)
		b = append(b, ' ')
		bw.Write(b)
	})
	bw.WriteString("\n")
	return bw.Flush()
}
