// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"io/ioutil"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treeheight/avl"
)

func TestEmpty(t *testing.T) {
	tree := avl.New()

	if !tree.IsEmpty() {
		t.Fatal("new tree is not empty")
	}
	if 0 != tree.Height() {
		t.Fatalf("empty height: %d", tree.Height())
	}
	if 0 != tree.Print(ioutil.Discard) {
		t.Fatal("empty tree printed some depth")
	}
	assert.Equal(t, []int{}, tree.Keys(), "empty keys")
}

func TestSingleLeftRotation(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{10, 20, 30} {
		if !tree.Insert(key) {
			t.Fatalf("insert: %d was rejected", key)
		}
	}

	assert.Equal(t, avl.Rotations{Left: 1, Right: 0}, tree.Rotations(), "rotations")

	r := tree.Root()
	if 20 != r.Key() || 2 != r.Height() {
		t.Fatalf("root: key: %d  height: %d", r.Key(), r.Height())
	}
	if 10 != r.Left().Key() || 1 != r.Left().Height() {
		t.Fatalf("left: key: %d  height: %d", r.Left().Key(), r.Left().Height())
	}
	if 30 != r.Right().Key() || 1 != r.Right().Height() {
		t.Fatalf("right: key: %d  height: %d", r.Right().Key(), r.Right().Height())
	}
	assert.Equal(t, 2, tree.Height(), "tree height")
}

func TestRotationCases(t *testing.T) {
	cases := []struct {
		name      string
		keys      []int
		rotations avl.Rotations
	}{
		{"left-left", []int{30, 20, 10}, avl.Rotations{Left: 0, Right: 1}},
		{"right-right", []int{10, 20, 30}, avl.Rotations{Left: 1, Right: 0}},
		{"left-right", []int{30, 10, 20}, avl.Rotations{Left: 1, Right: 1}},
		{"right-left", []int{10, 30, 20}, avl.Rotations{Left: 1, Right: 1}},
	}

	for _, c := range cases {
		tree := avl.New()
		for _, key := range c.keys {
			tree.Insert(key)
		}
		assert.Equal(t, c.rotations, tree.Rotations(), c.name)
		assert.Equal(t, 20, tree.Root().Key(), c.name)
		assert.Equal(t, 10, tree.Root().Left().Key(), c.name)
		assert.Equal(t, 30, tree.Root().Right().Key(), c.name)
		assert.Equal(t, 2, tree.Height(), c.name)
	}
}

func TestInOrder(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(key)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Keys(), "in-order keys")

	walked := []int{}
	tree.Walk(func(key int) {
		walked = append(walked, key)
	})
	assert.Equal(t, tree.Keys(), walked, "walk")
}

// inserting a key a second time must leave the same shape
func TestDuplicates(t *testing.T) {
	addList := []int{
		1720, 506, 8382, 6774, 1247, 1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133, 2136, 9651, 4079, 1042, 3579,
	}

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key)
	}

	before := &bytes.Buffer{}
	tree.Print(before)
	rotations := tree.Rotations()

	for _, key := range addList {
		if tree.Insert(key) {
			t.Fatalf("duplicate: %d was added", key)
		}
	}
	for i := 0; i < 20; i += 1 {
		tree.Insert(1042)
	}

	after := &bytes.Buffer{}
	tree.Print(after)

	if before.String() != after.String() {
		t.Errorf("shape changed:\nbefore:\n%s\nafter:\n%s", before, after)
	}
	assert.Equal(t, len(addList), tree.Count(), "count")
	assert.Equal(t, rotations, tree.Rotations(), "rotations after duplicates")
}

// keys 1 … 2ⁿ-1 in ascending order build a perfect tree
func TestAscending(t *testing.T) {
	tree := avl.New()
	for key := 1; key <= 1023; key += 1 {
		tree.Insert(key)
	}
	assert.Equal(t, 10, tree.Height(), "height")
	assert.Equal(t, 512, tree.Root().Key(), "root")
	if !tree.CheckBalance() || !tree.CheckHeights() || !tree.CheckOrder() {
		t.Fatal("inconsistent tree")
	}
}

func makeKey() int {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	return int(binary.BigEndian.Uint32(b) % 100000)
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 2000)
	randomTree(t, 3400)
	randomTree(t, 5467)
}

func randomTree(t *testing.T, total int) {
	tree := avl.New()
	unique := make(map[int]struct{})

	for i := 0; i < total; i += 1 {
		key := makeKey()
		_, seen := unique[key]
		unique[key] = struct{}{}

		if added := tree.Insert(key); added == seen {
			t.Fatalf("insert: %d  added: %v  already present: %v", key, added, seen)
		}

		if !tree.CheckHeights() || !tree.CheckBalance() || !tree.CheckOrder() {
			depth := tree.Print(ioutil.Discard)
			t.Logf("depth: %d", depth)
			t.Fatalf("inconsistent tree after insert: %d", key)
		}
	}

	n := tree.Count()
	if n != len(unique) {
		t.Fatalf("count: %d  expected: %d", n, len(unique))
	}

	limit := 1.44 * math.Log2(float64(n+2))
	if float64(tree.Height()) > limit {
		t.Errorf("height: %d exceeds: %.2f for %d keys", tree.Height(), limit, n)
	}

	depth := tree.Print(ioutil.Discard)
	if depth != tree.Height() {
		t.Errorf("walked depth: %d  stored height: %d", depth, tree.Height())
	}

	expected := make([]int, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Ints(expected)
	assert.Equal(t, expected, tree.Keys(), "keys")
}
