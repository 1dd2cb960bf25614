// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package measure - feed one integer stream into an AVL tree and a
// Red-Black tree and report the resulting heights
package measure
