package simplextree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bigraded/grade"
)

// AddSimplex inserts the simplex spelled by vertices (and all of its
// non-empty faces) into the tree, associating grades with every node
// touched along the way. Used by non-Rips bulk loaders; does not assign
// global or dimension indices (call UpdateGlobalIndexes afterward).
//
// Per the add-faces policy (spec §4.1): if a node already exists at a
// given prefix, it is not re-created, and grades is not appended to its
// existing grade list — each simplex is assumed to be inserted at its
// unique grade exactly once (Design Notes open question 1).
func (t *Tree) AddSimplex(vertices []int, grades grade.List) error {
	if len(vertices) == 0 {
		return ErrEmptySimplex
	}
	if !sort.IntsAreSorted(vertices) || hasDuplicate(vertices) {
		return ErrUnsortedVertices
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Every non-empty subset of vertices (bit i of mask selects vertices[i])
	// is a face touched by this insertion; walking a subset's vertices in
	// increasing order walks its root-to-node path, so each step's parent
	// is exactly the previous step's node.
	for mask := 1; mask < 1<<len(vertices); mask++ {
		parent := Root
		for i, v := range vertices {
			if mask&(1<<i) != 0 {
				parent = t.addChild(parent, v, grades)
			}
		}
	}

	return nil
}

// addChild returns the child of parent labeled v, creating it with
// grades (and depth = parent's depth + 1) if it does not already exist.
// Idempotent: a second call with the same (parent, v) returns the
// existing child untouched, per the add-faces policy.
func (t *Tree) addChild(parent NodeID, v int, grades grade.List) NodeID {
	children := t.nodes[parent].children
	i := sort.Search(len(children), func(i int) bool {
		return t.nodes[children[i]].vertex >= v
	})
	if i < len(children) && t.nodes[children[i]].vertex == v {
		return children[i]
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		vertex:      v,
		grades:      cloneGrades(grades),
		globalIndex: unset,
		dimIndex:    unset,
		origX:       unset,
		depth:       t.nodes[parent].depth + 1,
		parent:      parent,
	})

	// Insert id at position i to keep children strictly increasing by
	// vertex (invariant I1); parent's slice header is re-read because
	// append above may have invalidated any earlier copy.
	children = t.nodes[parent].children
	children = append(children, Root)
	copy(children[i+1:], children[i:])
	children[i] = id
	t.nodes[parent].children = children

	return id
}

// addChildWithOrigX behaves like addChild, but additionally stamps the
// newly created node with origX, the "original x-coordinate" later
// consumed by UpdateXYIndexes. Existing nodes are left with whatever
// origX they already carry.
func (t *Tree) addChildWithOrigX(parent NodeID, v, origX int, grades grade.List) NodeID {
	before := len(t.nodes)
	id := t.addChild(parent, v, grades)
	if int(id) >= before {
		t.nodes[id].origX = origX
	}

	return id
}

func cloneGrades(g grade.List) grade.List {
	out := make(grade.List, len(g))
	copy(out, g)

	return out
}

func hasDuplicate(vertices []int) bool {
	for i := 1; i < len(vertices); i++ {
		if vertices[i] == vertices[i-1] {
			return true
		}
	}

	return false
}

// AddSimplexWithOrigin inserts vertices the same way AddSimplex does, but
// stamps every newly created face node with origX — the index
// a subsequent UpdateXYIndexes call will use to look up the node's real
// grade list. This is the entry point non-Rips bulk loaders use; Rips
// construction (BuildBRComplex) never calls it.
func (t *Tree) AddSimplexWithOrigin(vertices []int, origX int, grades grade.List) error {
	if len(vertices) == 0 {
		return ErrEmptySimplex
	}
	if !sort.IntsAreSorted(vertices) || hasDuplicate(vertices) {
		return ErrUnsortedVertices
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for mask := 1; mask < 1<<len(vertices); mask++ {
		parent := Root
		for i, v := range vertices {
			if mask&(1<<i) != 0 {
				parent = t.addChildWithOrigX(parent, v, origX, grades)
			}
		}
	}

	return nil
}

// UpdateXYIndexes replaces every node's grade list with the list found at
// gradesInd[node.origX], for every node stamped with an origX by
// AddSimplexWithOrigin. Nodes never touched by that path (origX unset)
// are left alone. Returns ErrOrigXOutOfRange if any stamped origX falls
// outside gradesInd.
func (t *Tree) UpdateXYIndexes(gradesInd []grade.List) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.nodes {
		if i == int(Root) {
			continue
		}
		ox := t.nodes[i].origX
		if ox == unset {
			continue
		}
		if ox < 0 || ox >= len(gradesInd) {
			return fmt.Errorf("UpdateXYIndexes: node origX=%d: %w", ox, ErrOrigXOutOfRange)
		}
		t.nodes[i].grades = cloneGrades(gradesInd[ox])
	}

	return nil
}
