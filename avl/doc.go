// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node stores the height of its own sub-tree, so the height of
// the whole tree is available without a walk.  After an insert the
// heights along the insertion path are recomputed innermost first and
// the first node found to be out of balance is corrected by a single
// or double rotation.
//
// Keys are unique: inserting a key that is already present does not
// change the tree.
package avl
