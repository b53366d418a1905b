// SPDX-License-Identifier: ISC

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
//
// the walk is lazy and purely structural so it needs no comparator
// calls; mutating the tree while iterating, other than deleting
// already visited nodes, is a caller error
func (p *Node) Next() *Node {
	if p.right != nil {
		return p.right.first()
	}
	for p.up != nil && p == p.up.right {
		p = p.up
	}
	return p.up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	if p.left != nil {
		return p.left.last()
	}
	for p.up != nil && p == p.up.left {
		p = p.up
	}
	return p.up
}
