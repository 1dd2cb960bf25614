// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a Red-Black balanced tree of integer keys with
// parent pointers to allow the insertion fixup to walk upwards
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Duplicate keys are not rejected: a key equal to an existing node is
// placed in that node's right sub-tree, so the tree can hold the same
// key several times.  Rotations can later move an equal key into a
// left sub-tree, so in-order keys are non-decreasing rather than
// strictly ascending.
//
// The height is not stored, Height walks the whole tree.
package rbtree
