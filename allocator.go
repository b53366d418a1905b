// SPDX-License-Identifier: ISC

package avl

import (
	"sync"
)

// Node - a node in the tree
//
// The tree only owns the linkage between nodes; key and value are
// caller data and are never touched except by Set and by the release
// callback during Destroy.
type Node struct {
	left       *Node       // left sub-tree
	right      *Node       // right sub-tree
	up         *Node       // points to parent node
	key        interface{} // key part for ordering
	value      interface{} // value part for data storage
	height     int         // cached sub-tree height: leaf = 0
	leftNodes  int         // number of nodes in left sub-tree
	rightNodes int         // number of nodes in right sub-tree
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(key interface{}, value interface{}) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:    key,
			value:  value,
			height: 0,
		}
	}
	p := pool
	pool = p.up
	p.key = key
	p.value = value
	p.height = 0
	p.leftNodes = 0
	p.rightNodes = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.height = 0
	node.leftNodes = 0
	node.rightNodes = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}
