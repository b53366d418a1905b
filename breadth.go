// SPDX-License-Identifier: ISC

package avl

// LevelIterator - breadth-first traversal state
//
// the queue holds the frontier of not yet visited nodes, so the
// auxiliary storage is bounded by the widest level of the tree
type LevelIterator struct {
	queue []*Node
}

// LevelOrder - start a breadth-first traversal of the tree
//
// each call begins a fresh traversal from the root; nodes are
// produced depth by depth, left to right within a depth; the usual
// iteration caveat applies: do not mutate the tree while a
// traversal is in progress
func (tree *Tree) LevelOrder() *LevelIterator {
	it := &LevelIterator{}
	if nil != tree.root {
		it.queue = append(it.queue, tree.root)
	}
	return it
}

// Next - the next node in breadth-first order, nil when the
// traversal is finished
func (it *LevelIterator) Next() *Node {
	if 0 == len(it.queue) {
		return nil
	}
	p := it.queue[0]
	it.queue = it.queue[1:]
	if nil != p.left {
		it.queue = append(it.queue, p.left)
	}
	if nil != p.right {
		it.queue = append(it.queue, p.right)
	}
	return p
}
