// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package measure

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/treeheight/avl"
	"github.com/bitmark-inc/treeheight/fault"
	"github.com/bitmark-inc/treeheight/rbtree"
)

// Verify - run the invariant checks of a concrete tree
//
// trees of other types have nothing to check and always pass
func Verify(tree Tree) error {
	switch t := tree.(type) {
	case *avl.Tree:
		if !t.CheckHeights() {
			return fmt.Errorf("AVL stored heights: %w", fault.ErrTreeInconsistent)
		}
		if !t.CheckBalance() {
			return fmt.Errorf("AVL balance: %w", fault.ErrTreeInconsistent)
		}
		if !t.CheckOrder() {
			return fmt.Errorf("AVL key order: %w", fault.ErrTreeInconsistent)
		}
	case *rbtree.Tree:
		if !t.CheckUp() {
			return fmt.Errorf("Red-Black parent links: %w", fault.ErrTreeInconsistent)
		}
		if !t.CheckColours() {
			return fmt.Errorf("Red-Black colours: %w", fault.ErrTreeInconsistent)
		}
		if _, ok := t.BlackHeight(); !ok {
			return fmt.Errorf("Red-Black black height: %w", fault.ErrTreeInconsistent)
		}
		if !t.CheckOrder() {
			return fmt.Errorf("Red-Black key order: %w", fault.ErrTreeInconsistent)
		}
	}
	return nil
}

type printer interface {
	Print(w io.Writer) int
}

// Print - ASCII picture of a tree if it can draw itself
func Print(w io.Writer, tree Tree) {
	if p, ok := tree.(printer); ok {
		p.Print(w)
	}
}
