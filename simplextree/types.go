// Package simplextree implements the rooted, arena-backed simplex tree
// described in spec §4.1: a tree whose root has no vertex, whose depth-k
// nodes each represent a (k-1)-simplex identified by the strictly
// increasing sequence of vertex labels along the root-to-node path.
//
// Per the Design Notes re-architecture (spec §9), nodes live in a flat
// arena (*Tree.nodes) addressed by a stable NodeID rather than behind raw
// owning pointers: parent and child links are NodeID indices into the same
// slice. This removes the cyclic-ownership risk of a manually managed
// pointer tree, keeps traversal cache-friendly, and lets the dimension-
// ordered views (package views) store ids instead of aliased pointers.
package simplextree

import (
	"sync"

	"github.com/katalvlaran/bigraded/grade"
)

// NodeID identifies a node within a Tree's arena. The zero value, Root,
// always identifies the tree's rootless root node.
type NodeID int

// Root is the NodeID of the tree's root. The root carries no vertex label,
// no grade, and is never returned by a query method — it exists only as
// the DFS starting point and the parent of every depth-1 node.
const Root NodeID = 0

// unset marks a GlobalIndex, DimIndex, or OrigX field as not yet assigned.
const unset = -1

// node is one entry in the arena. For the root, vertex is zero-valued and
// parent is unset (both meaningless); its children are the depth-1 nodes.
type node struct {
	vertex      int
	grades      grade.List
	globalIndex int
	dimIndex    int
	origX       int // set only by the update_xy_indexes bulk-load path
	depth       int // 0 for root; a depth-k node is a (k-1)-simplex
	parent      NodeID
	children    []NodeID // strictly increasing by vertex (invariant I1)
}

// Tree is a rooted simplex tree built once (via AddSimplex calls or
// BuildBRComplex) and read thereafter. mu serializes the mutating
// operations (AddSimplex, UpdateGlobalIndexes, UpdateXYIndexes,
// BuildBRComplex) against each other and against concurrent readers; once
// construction is finished, callers may invoke every other method from
// multiple goroutines without further synchronization, per spec §5 — the
// mutex here is what actually enforces that rule rather than merely
// documenting it.
type Tree struct {
	mu    sync.RWMutex
	nodes []node
}

// New returns an empty Tree containing only the root.
func New() *Tree {
	return &Tree{
		nodes: []node{newRootNode()},
	}
}

func newRootNode() node {
	return node{
		globalIndex: unset,
		dimIndex:    unset,
		origX:       unset,
		parent:      unset,
	}
}

// reset discards all nodes except the root. Used internally by
// BuildBRComplex, which owns the whole tree's contents from scratch.
func (t *Tree) reset() {
	t.nodes = []node{newRootNode()}
}
