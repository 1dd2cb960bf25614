// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package measure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/treeheight/avl"
	"github.com/bitmark-inc/treeheight/fault"
	"github.com/bitmark-inc/treeheight/rbtree"
)

//go:generate mockgen -destination=mocks/tree.go -package=mocks github.com/bitmark-inc/treeheight/measure Tree

// Tree - the capability shared by both balanced trees
type Tree interface {
	Insert(key int) bool
	Height() int
	Count() int
	Walk(f func(key int))
}

// ensure both trees satisfy the interface
var (
	_ Tree = (*avl.Tree)(nil)
	_ Tree = (*rbtree.Tree)(nil)
)

// Pair - the two trees that receive the same keys
type Pair struct {
	AVL      Tree
	RedBlack Tree
	keys     int
}

// Result - heights and sizes after loading
type Result struct {
	Keys           int // integers read from the input
	AVLHeight      int
	AVLCount       int // distinct keys
	RedBlackHeight int
	RedBlackCount  int // all keys, duplicates included
}

// NewPair - an empty AVL tree and an empty Red-Black tree
func NewPair() *Pair {
	return &Pair{
		AVL:      avl.New(),
		RedBlack: rbtree.New(),
	}
}

// Load - read whitespace separated 32 bit decimal integers and insert
// each into both trees in input order
//
// stops at the first token that is not an integer or is outside the 32
// bit range, the keys before it remain in the trees
func (p *Pair) Load(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	n := 0
	for scanner.Scan() {
		token := scanner.Text()
		k, err := strconv.ParseInt(token, 10, 32)
		if nil != err {
			p.keys += n
			return n, fmt.Errorf("token %d: %q: %w", n+1, token, fault.ErrInvalidInteger)
		}
		key := int(k)
		p.AVL.Insert(key)
		p.RedBlack.Insert(key)
		n += 1
	}
	p.keys += n
	if err := scanner.Err(); nil != err {
		return n, err
	}
	return n, nil
}

// Result - snapshot of both trees
func (p *Pair) Result() Result {
	return Result{
		Keys:           p.keys,
		AVLHeight:      p.AVL.Height(),
		AVLCount:       p.AVL.Count(),
		RedBlackHeight: p.RedBlack.Height(),
		RedBlackCount:  p.RedBlack.Count(),
	}
}
