// SPDX-License-Identifier: ISC

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Ordering is supplied as a comparator function when the tree is
// created, so any key type can be stored.  Each node caches the
// height of its sub-tree; every mutation restores the AVL bound of
// the left and right heights differing by at most one before it
// returns, so the tree height stays O(log n) and the root height is
// readable in constant time.
//
// Insert rejects duplicate keys, Set overwrites the value of an
// existing key in place and FindOrInsert returns the existing node
// without consuming the supplied record.  Delete relinks the
// in-order predecessor instead of copying data around, so nodes
// keep a constant address and previous nodes can be deleted during
// iteration.
package avl
