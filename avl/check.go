// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckHeights - check every stored height against its children
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: returns the recomputed height
func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		fmt.Printf("fail at node: %d   stored height: %d  expected: %d\n", p.key, p.height, h)
		return 0, false
	}
	return h, true
}

// CheckBalance - every node has a balance factor of -1, 0 or +1
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

func checkBalance(p *Node) bool {
	if nil == p {
		return true
	}
	if b := p.Balance(); b < -1 || b > 1 {
		fmt.Printf("fail at node: %d   balance: %+d\n", p.key, b)
		return false
	}
	return checkBalance(p.left) && checkBalance(p.right)
}

// CheckOrder - in-order keys are strictly ascending
func (tree *Tree) CheckOrder() bool {
	ok := true
	first := true
	previous := 0
	tree.Walk(func(key int) {
		if !first && key <= previous {
			ok = false
		}
		first = false
		previous = key
	})
	return ok
}
