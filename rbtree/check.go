// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %d   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}

// CheckColours - root is black and no red node has a red child
func (tree *Tree) CheckColours() bool {
	if tree.root.IsRed() {
		return false
	}
	return checkColours(tree.root)
}

func checkColours(p *Node) bool {
	if nil == p {
		return true
	}
	if p.IsRed() && (p.left.IsRed() || p.right.IsRed()) {
		fmt.Printf("fail at node: %d   red node with red child\n", p.key)
		return false
	}
	return checkColours(p.left) && checkColours(p.right)
}

// BlackHeight - the number of black nodes on every path from the root
// down to a nil leaf, not counting the root itself
//
// returns false if some paths differ
func (tree *Tree) BlackHeight() (int, bool) {
	if nil == tree.root {
		return 0, true
	}
	lh, lok := blackHeight(tree.root.left)
	rh, rok := blackHeight(tree.root.right)
	if !lok || !rok || lh != rh {
		return 0, false
	}
	return lh, true
}

// internal: black nodes from p (inclusive) down to any nil leaf
func blackHeight(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := blackHeight(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := blackHeight(p.right)
	if !ok {
		return 0, false
	}
	if lh != rh {
		fmt.Printf("fail at node: %d   black heights: %d/%d\n", p.key, lh, rh)
		return 0, false
	}
	if Black == p.colour {
		lh += 1
	}
	return lh, true
}

// CheckOrder - in-order keys never decrease
func (tree *Tree) CheckOrder() bool {
	ok := true
	first := true
	previous := 0
	tree.Walk(func(key int) {
		if !first && key < previous {
			ok = false
		}
		first = false
		previous = key
	})
	return ok
}
