// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Walk - call f for every key in ascending order
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

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	tree.Walk(func(key int) {
		keys = append(keys, key)
	})
	return keys
}
