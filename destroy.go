// SPDX-License-Identifier: ISC

package avl

// Destroy - unlink every node and reset the tree to empty
//
// if a release callback was supplied to New it is invoked exactly
// once for each stored key/value pair; the callback must not mutate
// the tree it is being called from
//
// the walk is top-down over the child links only, parent pointers
// are never followed during teardown; the tree is empty and safe to
// reuse afterwards
func (tree *Tree) Destroy() {
	stack := make([]*Node, 0, 16)
	if nil != tree.root {
		stack = append(stack, tree.root)
	}

	for n := len(stack); n > 0; n = len(stack) {
		p := stack[n-1]
		stack = stack[:n-1]
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		if nil != tree.release {
			tree.release(p.key, p.value)
		}
		freeNode(p) // return node to pool
	}

	tree.root = nil
	tree.count = 0
}
