// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Colour - colour of a node
type Colour int

// node colours
const (
	Red Colour = iota
	Black
)

// String - name of the colour
func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "*unknown*"
	}
}

// Node - a single key in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	up     *Node // points to parent node, nil at root
	key    int
	colour Colour
}

// Rotations - cumulative rotation counts for a tree
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

// Count - number of nodes currently in the tree, duplicates included
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Rotations - number of rotations performed since the tree was created
func (tree *Tree) Rotations() Rotations {
	return tree.rotations
}

// Key - read the key from a node
func (p *Node) Key() int {
	return p.key
}

// Colour - the colour of a node, a nil node is black
func (p *Node) Colour() Colour {
	if nil == p {
		return Black
	}
	return p.colour
}

// IsRed - true only for an existing red node
func (p *Node) IsRed() bool {
	return nil != p && Red == p.colour
}

// Left - the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}
