// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a single key in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    int   // key for ordering
	height int   // height of sub-tree rooted here, leaf == 1
}

// Rotations - cumulative rotation counts for a tree
// a double rotation counts as one of each
type Rotations struct {
	Left  int
	Right int
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root      *Node
	count     int
	rotations Rotations
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - the stored height of the root, zero for an empty tree
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Rotations - number of rotations performed since the tree was created
func (tree *Tree) Rotations() Rotations {
	return tree.rotations
}

// Key - read the key from a node
func (p *Node) Key() int {
	return p.key
}

// Height - stored height of the sub-tree rooted at this node
// a nil node has height zero
func (p *Node) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Balance - left height minus right height
func (p *Node) Balance() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// Left - the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// recompute the stored height from the children
func (p *Node) fixHeight() {
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}
