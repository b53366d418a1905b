// SPDX-License-Identifier: ISC

package avl

// height of a possibly absent sub-tree: nil = -1 so a leaf is 0
func heightOf(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// balance factor: left height minus right height
func balanceOf(p *Node) int {
	return heightOf(p.left) - heightOf(p.right)
}

// refresh the cached height from the children
func (p *Node) recalculate() {
	l := heightOf(p.left)
	r := heightOf(p.right)
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// single right rotation: left child becomes the sub-tree root
//
// the returned node carries the old root's parent pointer; the
// caller must still store it into the parent's child slot
func rotateRight(p *Node) *Node {
	p1 := p.left

	p.left = p1.right
	p1.right = p

	nn := 1 + p1.rightNodes + p.rightNodes
	p.leftNodes = p1.rightNodes
	p1.rightNodes = nn

	p1.up = p.up
	p.up = p1
	if nil != p.left {
		p.left.up = p
	}

	p.recalculate()
	p1.recalculate()

	return p1
}

// single left rotation: right child becomes the sub-tree root
func rotateLeft(p *Node) *Node {
	p1 := p.right

	p.right = p1.left
	p1.left = p

	nn := 1 + p.leftNodes + p1.leftNodes
	p.rightNodes = p1.leftNodes
	p1.leftNodes = nn

	p1.up = p.up
	p.up = p1
	if nil != p.right {
		p.right.up = p
	}

	p.recalculate()
	p1.recalculate()

	return p1
}

// rebalance - restore the AVL bound at a single node after one of
// its sub-trees changed height
//
// selects between the four classic cases:
//   left heavy, left child left heavy:   single LL rotation
//   left heavy, left child right heavy:  double LR rotation
//   right heavy, right child right heavy: single RR rotation
//   right heavy, right child left heavy:  double RL rotation
//
// returns the node that is now the root of this sub-tree
func rebalance(p *Node) *Node {
	p.recalculate()
	switch balance := balanceOf(p); {
	case balance > 1:
		if balanceOf(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		// single LL rotation
		return rotateRight(p)
	case balance < -1:
		if balanceOf(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		// single RR rotation
		return rotateLeft(p)
	}
	return p
}
