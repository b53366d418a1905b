// SPDX-License-Identifier: ISC

package avl

// Search - find a specific item
//
// returns the matching node and its in-order index, or nil and -1
// when the key is not stored
func (tree *Tree) Search(key interface{}) (*Node, int) {
	return tree.search(key, tree.root, 0)
}

func (tree *Tree) search(key interface{}, p *Node, index int) (*Node, int) {
	if nil == p {
		return nil, -1
	}

	switch c := tree.compare(key, p.key); {
	case c < 0:
		return tree.search(key, p.left, index)
	case c > 0:
		return tree.search(key, p.right, index+p.leftNodes+1)
	default:
		return p, index + p.leftNodes
	}
}
