// SPDX-License-Identifier: ISC

package avl

// duplicate key handling for the single shared descent
type duplicatePolicy int

const (
	rejectExisting duplicatePolicy = iota
	replaceExisting
	keepExisting
)

// SetResult - what Set did with the supplied record
type SetResult int

const (
	// Inserted - the key was not present, a new node was linked
	Inserted SetResult = iota

	// Replaced - the key was present, its value was overwritten in
	// place and the tree shape is unchanged
	Replaced
)

// Insert - insert a new node into the tree
//
// a key equal to one already stored is rejected and the tree is left
// untouched; returns true if the node was added
func (tree *Tree) Insert(key interface{}, value interface{}) bool {
	root, _, added := tree.insert(tree.root, key, value, rejectExisting)
	tree.root = root
	tree.root.up = nil
	if added {
		tree.count += 1
	}
	return added
}

// Set - insert a new node or overwrite the value of an existing one
//
// on a duplicate key only the stored value is replaced; the node
// keeps its position so no rebalancing occurs
func (tree *Tree) Set(key interface{}, value interface{}) SetResult {
	root, _, added := tree.insert(tree.root, key, value, replaceExisting)
	tree.root = root
	tree.root.up = nil
	if added {
		tree.count += 1
		return Inserted
	}
	return Replaced
}

// FindOrInsert - return the node holding key, linking a new node
// only if the key is absent
//
// a single descent: when the key already exists the stored node is
// returned with false and the supplied key/value pair is not
// consumed, so its ownership stays with the caller
func (tree *Tree) FindOrInsert(key interface{}, value interface{}) (*Node, bool) {
	root, node, added := tree.insert(tree.root, key, value, keepExisting)
	tree.root = root
	tree.root.up = nil
	if added {
		tree.count += 1
	}
	return node, added
}

// internal routine for insert
//
// descends to the insertion point, links the new leaf and restores
// heights and the AVL bound on the way back up; at most one single
// or double rotation is performed for the whole insertion
func (tree *Tree) insert(p *Node, key interface{}, value interface{}, policy duplicatePolicy) (*Node, *Node, bool) {
	if nil == p { // insert new node
		n := newNode(key, value)
		return n, n, true
	}

	switch c := tree.compare(key, p.key); {
	case c < 0:
		l, n, added := tree.insert(p.left, key, value, policy)
		p.left = l
		l.up = p
		if added {
			p.leftNodes += 1
			// left branch may have grown
			p = rebalance(p)
		}
		return p, n, added

	case c > 0:
		r, n, added := tree.insert(p.right, key, value, policy)
		p.right = r
		r.up = p
		if added {
			p.rightNodes += 1
			// right branch may have grown
			p = rebalance(p)
		}
		return p, n, added

	default: // duplicate key
		if replaceExisting == policy {
			p.value = value
		}
		return p, p, false
	}
}
