// SPDX-License-Identifier: ISC

package avl_test

import (
	"testing"

	"github.com/greypine/avl"
)

func TestDestroyWithRelease(t *testing.T) {

	released := make(map[interface{}]interface{})
	tree := avl.New(compareInts, func(key interface{}, value interface{}) {
		if _, ok := released[key]; ok {
			t.Fatalf("release called twice for key: %v", key)
		}
		released[key] = value
	})

	keys := []int{50, 30, 70, 20, 40, 60, 80}
	for _, key := range keys {
		tree.Insert(key, 10*key)
	}

	tree.Destroy()

	if len(released) != len(keys) {
		t.Fatalf("released: %d records  expected: %d", len(released), len(keys))
	}
	for _, key := range keys {
		if released[key] != 10*key {
			t.Fatalf("release for key %d saw value: %v", key, released[key])
		}
	}

	if !tree.IsEmpty() {
		t.Fatal("tree not empty after destroy")
	}
	if 0 != tree.Count() {
		t.Fatalf("count after destroy: %d", tree.Count())
	}
	if -1 != tree.Height() {
		t.Fatalf("height after destroy: %d", tree.Height())
	}

	// tree handle is reusable
	if !tree.Insert(1, "again") {
		t.Fatal("insert after destroy failed")
	}
	if 1 != tree.Count() {
		t.Fatalf("count after reuse: %d", tree.Count())
	}
}

func TestDestroyWithoutRelease(t *testing.T) {
	tree := newIntTree()
	for key := 0; key < 100; key += 1 {
		tree.Insert(key, nil)
	}
	tree.Destroy()
	if !tree.IsEmpty() {
		t.Fatal("tree not empty after destroy")
	}

	// destroying an empty tree is a no-op
	tree.Destroy()
	if err := tree.Validate(); nil != err {
		t.Fatalf("validate after destroy: %s", err)
	}
}
