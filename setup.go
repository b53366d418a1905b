// SPDX-License-Identifier: ISC

package avl

// CompareFunc - ordering over two keys
//
// must return a value less than, equal to or greater than zero when
// a orders before, the same as or after b; the function must define
// a strict total order and always give the same answer for the same
// pair of keys - this is a caller contract, it is not checked at run
// time and a broken comparator produces an invalid tree
type CompareFunc func(a interface{}, b interface{}) int

// ReleaseFunc - called once for each key/value pair during Destroy
//
// must not mutate the tree it is being called from
type ReleaseFunc func(key interface{}, value interface{})

// Tree - type to hold the root node of a tree
type Tree struct {
	root    *Node
	count   int
	compare CompareFunc
	release ReleaseFunc
}

// New - create an initially empty tree
//
// the compare function is required; release is optional and may be
// nil if Destroy should not run any per-record cleanup
func New(compare CompareFunc, release ReleaseFunc) *Tree {
	if nil == compare {
		panic("avl.New: nil compare function")
	}
	return &Tree{
		root:    nil,
		count:   0,
		compare: compare,
		release: release,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - cached height of the tree: -1 when empty, 0 for a single
// node
func (tree *Tree) Height() int {
	return heightOf(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() interface{} {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
