// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"crypto/rand"
	"encoding/binary"
	"io/ioutil"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treeheight/rbtree"
)

func TestEmpty(t *testing.T) {
	tree := rbtree.New()

	if !tree.IsEmpty() {
		t.Fatal("new tree is not empty")
	}
	if 0 != tree.Height() {
		t.Fatalf("empty height: %d", tree.Height())
	}
	if bh, ok := tree.BlackHeight(); !ok || 0 != bh {
		t.Fatalf("empty black height: %d  ok: %v", bh, ok)
	}
	assert.True(t, tree.CheckColours(), "empty colours")
	assert.Equal(t, []int{}, tree.Keys(), "empty keys")
}

func TestThreeAscending(t *testing.T) {
	tree := rbtree.New()
	for _, key := range []int{10, 20, 30} {
		tree.Insert(key)
	}

	r := tree.Root()
	if 20 != r.Key() || rbtree.Black != r.Colour() {
		t.Fatalf("root: key: %d  colour: %s", r.Key(), r.Colour())
	}
	if 10 != r.Left().Key() || rbtree.Red != r.Left().Colour() {
		t.Fatalf("left: key: %d  colour: %s", r.Left().Key(), r.Left().Colour())
	}
	if 30 != r.Right().Key() || rbtree.Red != r.Right().Colour() {
		t.Fatalf("right: key: %d  colour: %s", r.Right().Key(), r.Right().Colour())
	}
	if nil != r.Parent() || r != r.Left().Parent() || r != r.Right().Parent() {
		t.Fatal("parent links not repaired by rotation")
	}
	assert.Equal(t, 2, tree.Height(), "height")
	assert.Equal(t, rbtree.Rotations{Left: 1, Right: 0}, tree.Rotations(), "rotations")
}

func TestZigZag(t *testing.T) {
	tree := rbtree.New()
	for _, key := range []int{30, 10, 20} {
		tree.Insert(key)
	}
	assert.Equal(t, 20, tree.Root().Key(), "root")
	assert.Equal(t, rbtree.Rotations{Left: 1, Right: 1}, tree.Rotations(), "rotations")
	assert.True(t, tree.CheckUp(), "up pointers")
	assert.True(t, tree.CheckColours(), "colours")
}

// a red uncle is recoloured and no rotation happens
func TestRedUncle(t *testing.T) {
	tree := rbtree.New()
	for _, key := range []int{20, 10, 30, 5} {
		tree.Insert(key)
	}

	r := tree.Root()
	assert.Equal(t, rbtree.Rotations{}, tree.Rotations(), "rotations")
	assert.Equal(t, rbtree.Black, r.Colour(), "root")
	assert.Equal(t, rbtree.Black, r.Left().Colour(), "parent")
	assert.Equal(t, rbtree.Black, r.Right().Colour(), "uncle")
	assert.Equal(t, rbtree.Red, r.Left().Left().Colour(), "new node")
}

func TestInOrder(t *testing.T) {
	tree := rbtree.New()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(key)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Keys(), "in-order keys")
}

// duplicates are stored, not rejected
func TestDuplicates(t *testing.T) {
	tree := rbtree.New()
	for i := 0; i < 3; i += 1 {
		if !tree.Insert(5) {
			t.Fatal("duplicate rejected")
		}
	}

	assert.Equal(t, 3, tree.Count(), "count")
	assert.Equal(t, []int{5, 5, 5}, tree.Keys(), "keys")
	assert.Equal(t, 2, tree.Height(), "height")

	// the rotation carried the first key into the left sub-tree
	r := tree.Root()
	assert.Equal(t, 5, r.Left().Key(), "left key")
	assert.Equal(t, 5, r.Right().Key(), "right key")
	assert.True(t, tree.CheckOrder(), "order")
	assert.True(t, tree.CheckColours(), "colours")
}

// rotations relink nodes, they never move them
func TestNodeStability(t *testing.T) {
	tree := rbtree.New()
	tree.Insert(10)
	first := tree.Root()

	tree.Insert(20)
	tree.Insert(30)

	if first != tree.Root().Left() {
		t.Fatalf("node moved: %p → %p", first, tree.Root().Left())
	}
	assert.Equal(t, 10, first.Key(), "key")
}

func TestAscending(t *testing.T) {
	tree := rbtree.New()
	for key := 1; key <= 1000; key += 1 {
		tree.Insert(key)
		checkTree(t, tree, key)
	}
	checkBound(t, tree)
}

func makeKey() int {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	return int(binary.BigEndian.Uint32(b) % 10000)
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 2200)
	randomTree(t, 3400)
	randomTree(t, 5467)
}

func randomTree(t *testing.T, total int) {
	tree := rbtree.New()
	expected := make([]int, 0, total)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		expected = append(expected, key)
		tree.Insert(key)
		checkTree(t, tree, key)
	}

	if total != tree.Count() {
		t.Fatalf("count: %d  expected: %d", tree.Count(), total)
	}
	checkBound(t, tree)

	depth := tree.Print(ioutil.Discard)
	if depth != tree.Height() {
		t.Errorf("printed depth: %d  height: %d", depth, tree.Height())
	}

	sort.Ints(expected)
	assert.Equal(t, expected, tree.Keys(), "keys")
}

func checkTree(t *testing.T, tree *rbtree.Tree, key int) {
	if !tree.CheckUp() {
		t.Fatalf("inconsistent up pointers after insert: %d", key)
	}
	if !tree.CheckColours() {
		t.Fatalf("colour violation after insert: %d", key)
	}
	if _, ok := tree.BlackHeight(); !ok {
		t.Fatalf("black height differs after insert: %d", key)
	}
	if !tree.CheckOrder() {
		t.Fatalf("order violation after insert: %d", key)
	}
}

func checkBound(t *testing.T, tree *rbtree.Tree) {
	n := tree.Count()
	limit := 2 * math.Log2(float64(n+1))
	if float64(tree.Height()) > limit {
		t.Errorf("height: %d exceeds: %.2f for %d keys", tree.Height(), limit, n)
	}
}
