// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Insert - insert a new key into the tree
//
// keys equal to an existing key are stored to its right, so this
// always adds a node and returns true
func (tree *Tree) Insert(key int) bool {
	n := &Node{
		key:    key,
		colour: Red,
	}

	var up *Node
	p := tree.root
	for nil != p {
		up = p
		if key < p.key {
			p = p.left
		} else {
			p = p.right
		}
	}

	n.up = up
	switch {
	case nil == up:
		tree.root = n
	case key < up.key:
		up.left = n
	default:
		up.right = n
	}
	tree.count += 1

	tree.fixInsert(n)
	return true
}

// restore the colour invariants after n was linked in as a red leaf
func (tree *Tree) fixInsert(n *Node) {
	for n != tree.root && n.up.IsRed() {
		parent := n.up
		grandparent := parent.up // exists: a red node is never the root

		if parent == grandparent.left {
			uncle := grandparent.right
			if uncle.IsRed() {
				parent.colour = Black
				uncle.colour = Black
				grandparent.colour = Red
				n = grandparent
				continue
			}
			if n == parent.right {
				n = parent
				tree.rotateLeft(n)
			}
			n.up.colour = Black
			n.up.up.colour = Red
			tree.rotateRight(n.up.up)

		} else {
			uncle := grandparent.left
			if uncle.IsRed() {
				parent.colour = Black
				uncle.colour = Black
				grandparent.colour = Red
				n = grandparent
				continue
			}
			if n == parent.left {
				n = parent
				tree.rotateRight(n)
			}
			n.up.colour = Black
			n.up.up.colour = Red
			tree.rotateLeft(n.up.up)
		}
	}
	tree.root.colour = Black
}
