// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Height - number of nodes on the longest path from the root to a
// leaf, zero for an empty tree
//
// this walks the whole tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// Walk - call f for every key in non-decreasing order
func (tree *Tree) Walk(f func(key int)) {
	walk(tree.root, f)
}

func walk(p *Node, f func(key int)) {
	if nil == p {
		return
	}
	walk(p.left, f)
	f(p.key)
	walk(p.right, f)
}

// Keys - all keys in non-decreasing order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	tree.Walk(func(key int) {
		keys = append(keys, key)
	})
	return keys
}
