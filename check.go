// SPDX-License-Identifier: ISC

package avl

import (
	"github.com/greypine/avl/fault"
)

// Validate - verification only sweep of the whole tree
//
// walks every node once and checks: the ordering of keys against the
// sub-tree bounds, the cached height against the children, the AVL
// balance bound, the rank counts, the parent links and finally the
// node count; returns nil or the first violation found
//
// O(n) - intended for tests and debugging, not for live mutation
// paths which maintain these invariants incrementally
func (tree *Tree) Validate() error {
	n, err := tree.validate(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal recursive validator
//
// lo and hi are exclusive bounding nodes, nil when unbounded
func (tree *Tree) validate(p *Node, lo *Node, hi *Node) (int, error) {
	if nil == p {
		return 0, nil
	}

	if nil != lo && tree.compare(p.key, lo.key) <= 0 {
		return 0, fault.ErrKeysOutOfOrder
	}
	if nil != hi && tree.compare(p.key, hi.key) >= 0 {
		return 0, fault.ErrKeysOutOfOrder
	}

	if nil != p.left && p.left.up != p {
		return 0, fault.ErrBrokenParentLink
	}
	if nil != p.right && p.right.up != p {
		return 0, fault.ErrBrokenParentLink
	}

	nl, err := tree.validate(p.left, lo, p)
	if nil != err {
		return 0, err
	}
	nr, err := tree.validate(p.right, p, hi)
	if nil != err {
		return 0, err
	}

	l := heightOf(p.left)
	r := heightOf(p.right)
	expected := 1 + l
	if r > l {
		expected = 1 + r
	}
	if p.height != expected {
		return 0, fault.ErrHeightMismatch
	}
	if b := l - r; b < -1 || b > 1 {
		return 0, fault.ErrOutOfBalance
	}

	if nl != p.leftNodes || nr != p.rightNodes {
		return 0, fault.ErrRankMismatch
	}

	return 1 + nl + nr, nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckCounts - check the rank counts for consistency
func (tree *Tree) CheckCounts() bool {
	n, ok := checkcounts(tree.root)
	return ok && n == tree.count
}

// internal: rank checker, returns sub-tree size
func checkcounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkcounts(p.left)
	if !ok {
		return 0, false
	}
	nr, ok := checkcounts(p.right)
	if !ok {
		return 0, false
	}
	if nl != p.leftNodes || nr != p.rightNodes {
		return 0, false
	}
	return 1 + nl + nr, true
}
