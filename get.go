// SPDX-License-Identifier: ISC

package avl

// Get - index to specific item
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get(index int, p *Node) *Node {
	if nil == p {
		return nil
	}

	nl := p.leftNodes

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}
