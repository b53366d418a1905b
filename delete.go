// SPDX-License-Identifier: ISC

package avl

// Delete - remove the node with a matching key from the tree
//
// returns the stored value and true when a node was removed, or nil
// and false when the key is not present; unlike insertion the
// rebalancing walk can rotate on every level back up to the root
func (tree *Tree) Delete(key interface{}) (interface{}, bool) {
	root, value, removed := tree.delete(tree.root, key)
	tree.root = root
	if nil != tree.root {
		tree.root.up = nil
	}
	if removed {
		tree.count -= 1
	}
	return value, removed
}

// internal delete routine
func (tree *Tree) delete(p *Node, key interface{}) (*Node, interface{}, bool) {
	if nil == p { // key not in tree
		return nil, nil, false
	}

	switch c := tree.compare(key, p.key); {
	case c < 0:
		l, value, removed := tree.delete(p.left, key)
		p.left = l
		if nil != l {
			l.up = p
		}
		if removed {
			p.leftNodes -= 1
			// left branch may have shrunk
			p = rebalance(p)
		}
		return p, value, removed

	case c > 0:
		r, value, removed := tree.delete(p.right, key)
		p.right = r
		if nil != r {
			r.up = p
		}
		if removed {
			p.rightNodes -= 1
			// right branch may have shrunk
			p = rebalance(p)
		}
		return p, value, removed

	default: // found: unlink p
		q := p
		value := q.value

		var n *Node
		if nil == q.left {
			n = q.right
		} else if nil == q.right {
			n = q.left
		} else {
			// two children: relink the in-order predecessor (the
			// rightmost node of the left sub-tree) into the vacated
			// position, no data is copied so nodes never move
			l, r := unlinkMax(q.left)
			r.left = l
			if nil != l {
				l.up = r
			}
			r.right = q.right
			q.right.up = r
			r.leftNodes = q.leftNodes - 1
			r.rightNodes = q.rightNodes
			n = rebalance(r)
		}
		// n.up is fixed by the caller

		freeNode(q) // return deleted node to pool
		return n, value, true
	}
}

// unlink the rightmost node of a sub-tree, restoring the AVL bound
// on the way back up; returns the remaining sub-tree and the
// detached node
func unlinkMax(p *Node) (*Node, *Node) {
	if nil == p.right {
		return p.left, p
	}
	r, max := unlinkMax(p.right)
	p.right = r
	if nil != r {
		r.up = p
	}
	p.rightNodes -= 1
	return rebalance(p), max
}
