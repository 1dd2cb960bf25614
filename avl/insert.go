// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if the key was already present, the tree is then unchanged
func (tree *Tree) Insert(key int) bool {
	added := false
	tree.root, added = tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
// returns the possibly new root of the sub-tree
func (tree *Tree) insert(key int, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return &Node{
			key:    key,
			height: 1,
		}, true
	}

	added := false
	switch {
	case key < p.key:
		p.left, added = tree.insert(key, p.left)
	case key > p.key:
		p.right, added = tree.insert(key, p.right)
	default: // duplicate
		return p, false
	}

	if !added {
		return p, false
	}

	p.fixHeight()

	balance := p.Balance()
	switch {
	case balance > 1 && key < p.left.key: // left left
		return tree.rotateRight(p), true

	case balance < -1 && key > p.right.key: // right right
		return tree.rotateLeft(p), true

	case balance > 1 && key > p.left.key: // left right
		p.left = tree.rotateLeft(p.left)
		return tree.rotateRight(p), true

	case balance < -1 && key < p.right.key: // right left
		p.right = tree.rotateRight(p.right)
		return tree.rotateLeft(p), true
	}
	return p, true
}
