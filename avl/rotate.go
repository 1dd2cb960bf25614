// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotate right about p, returns the new sub-tree root
//
//          p             l
//         / \           / \
//        l   c   =>    a   p
//       / \               / \
//      a   b             b   c
//
func (tree *Tree) rotateRight(p *Node) *Node {
	l := p.left

	p.left = l.right
	l.right = p

	p.fixHeight()
	l.fixHeight()

	tree.rotations.Right += 1
	return l
}

// rotate left about p, returns the new sub-tree root
//
//        p                 r
//       / \               / \
//      a   r     =>      p   c
//         / \           / \
//        b   c         a   b
//
func (tree *Tree) rotateLeft(p *Node) *Node {
	r := p.right

	p.right = r.left
	r.left = p

	p.fixHeight()
	r.fixHeight()

	tree.rotations.Left += 1
	return r
}
