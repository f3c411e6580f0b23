package simplextree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bigraded/grade"
)

// FindSimplex descends the tree by binary-searching the child list by
// vertex at each level. Returns (id, true) if every vertex in the
// (strictly increasing) sorted list resolves to a node, (zero, false)
// otherwise.
func (t *Tree) FindSimplex(sortedVertices []int) (NodeID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.findSimplexLocked(sortedVertices)
}

func (t *Tree) findSimplexLocked(sortedVertices []int) (NodeID, bool) {
	cur := Root
	for _, v := range sortedVertices {
		children := t.nodes[cur].children
		i := sort.Search(len(children), func(i int) bool {
			return t.nodes[children[i]].vertex >= v
		})
		if i == len(children) || t.nodes[children[i]].vertex != v {
			return Root, false
		}
		cur = children[i]
	}

	return cur, true
}

// FindVertices reconstructs the sorted vertex list for the simplex whose
// GlobalIndex is key, by binary-searching the child list by GlobalIndex
// at each level: an exact match terminates; otherwise recursion follows
// the greatest child whose GlobalIndex <= key, which is correct because
// DFS numbering makes each child's GlobalIndex the minimum GlobalIndex in
// its own subtree (invariant I4).
func (t *Tree) FindVertices(globalIndex int) ([]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out, ok := t.findVerticesLocked(Root, globalIndex, nil)
	if !ok {
		return nil, fmt.Errorf("FindVertices(%d): %w", globalIndex, ErrUnknownGlobalIndex)
	}

	return out, nil
}

func (t *Tree) findVerticesLocked(cur NodeID, key int, acc []int) ([]int, bool) {
	children := t.nodes[cur].children
	if len(children) == 0 {
		return nil, false
	}

	// Greatest child whose GlobalIndex <= key: the first child whose
	// GlobalIndex > key, stepped back by one.
	i := sort.Search(len(children), func(i int) bool {
		return t.nodes[children[i]].globalIndex > key
	})
	if i == 0 {
		return nil, false
	}
	child := children[i-1]
	acc = append(acc, t.nodes[child].vertex)
	if t.nodes[child].globalIndex == key {
		return acc, true
	}

	return t.findVerticesLocked(child, key, acc)
}

// GetSimplexData returns the grade list and dimension ((depth-1)) of the
// simplex identified by globalIndex.
func (t *Tree) GetSimplexData(globalIndex int) (grade.List, int, error) {
	vertices, err := t.FindVertices(globalIndex)
	if err != nil {
		return nil, 0, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.findSimplexLocked(vertices)
	if !ok {
		return nil, 0, fmt.Errorf("GetSimplexData(%d): %w", globalIndex, ErrUnknownGlobalIndex)
	}

	return cloneGrades(t.nodes[id].grades), t.nodes[id].depth - 1, nil
}

// GetSize returns the number of (dim)-simplices in the tree, counted by a
// full scan. For dimensions exercised by the ordered views, views.Views
// reports this in O(1); GetSize is the tree's own, view-independent count.
func (t *Tree) GetSize(dim int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	t.countAtDepth(Root, dim+1, &count)

	return count
}

func (t *Tree) countAtDepth(id NodeID, depth int, count *int) {
	if t.nodes[id].depth == depth {
		*count++
		return
	}
	for _, child := range t.nodes[id].children {
		t.countAtDepth(child, depth, count)
	}
}

// GetNumSimplices returns the largest assigned GlobalIndex plus one, i.e.
// the total simplex count N after UpdateGlobalIndexes has run.
func (t *Tree) GetNumSimplices() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	max := -1
	for i := range t.nodes {
		if i == int(Root) {
			continue
		}
		if gi := t.nodes[i].globalIndex; gi > max {
			max = gi
		}
	}

	return max + 1
}
