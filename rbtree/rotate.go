// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// rotate left about p, p.right must exist
//
//        p                 r
//       / \               / \
//      a   r     =>      p   c
//         / \           / \
//        b   c         a   b
//
func (tree *Tree) rotateLeft(p *Node) {
	r := p.right

	p.right = r.left
	if nil != r.left {
		r.left.up = p
	}

	r.up = p.up
	tree.replaceChild(p, r)

	r.left = p
	p.up = r

	tree.rotations.Left += 1
}

// rotate right about p, p.left must exist
//
//          p             l
//         / \           / \
//        l   c   =>    a   p
//       / \               / \
//      a   b             b   c
//
func (tree *Tree) rotateRight(p *Node) {
	l := p.left

	p.left = l.right
	if nil != l.right {
		l.right.up = p
	}

	l.up = p.up
	tree.replaceChild(p, l)

	l.right = p
	p.up = l

	tree.rotations.Right += 1
}

// make whatever pointed down at old (the root or a parent link) point at n
func (tree *Tree) replaceChild(old *Node, n *Node) {
	switch up := old.up; {
	case nil == up:
		tree.root = n
	case old == up.left:
		up.left = n
	default:
		up.right = n
	}
}
