package simplextree

import "github.com/katalvlaran/bigraded/grade"

// NodesAtDepth returns the NodeIDs of every node at the given depth, in
// tree-DFS (child-vertex-increasing) order. A depth-k node is a
// (k-1)-simplex; views.Update calls this with depth = dim+1 for
// each of the three dimensions it orders.
func (t *Tree) NodesAtDepth(depth int) []NodeID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []NodeID
	t.collectAtDepth(Root, depth, &out)

	return out
}

func (t *Tree) collectAtDepth(id NodeID, depth int, out *[]NodeID) {
	if t.nodes[id].depth == depth {
		*out = append(*out, id)
		return
	}
	for _, child := range t.nodes[id].children {
		t.collectAtDepth(child, depth, out)
	}
}

// FirstGrade returns the first (and, in this version, only consulted)
// grade of appearance of node id.
func (t *Tree) FirstGrade(id NodeID) grade.Grade {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes[id].grades.First()
}

// GlobalIndexOf returns node id's global index, assigned by
// UpdateGlobalIndexes.
func (t *Tree) GlobalIndexOf(id NodeID) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes[id].globalIndex
}

// DimIndexOf returns node id's dimension index, valid only after
// views.Update has run for the view id belongs to.
func (t *Tree) DimIndexOf(id NodeID) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes[id].dimIndex
}

// SetDimIndex assigns node id's dimension index. Called exclusively by
// views.Update while it holds no lock of its own — simplextree
// owns the node storage, so the mutation happens through this setter
// rather than by exposing node internals directly.
func (t *Tree) SetDimIndex(id NodeID, idx int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nodes[id].dimIndex = idx
}

// DepthOf returns node id's depth (0 for Root; a depth-k node is a
// (k-1)-simplex).
func (t *Tree) DepthOf(id NodeID) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes[id].depth
}

// VertexOf returns the vertex label node id introduces.
func (t *Tree) VertexOf(id NodeID) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes[id].vertex
}

// VerticesOf reconstructs the sorted vertex list of the simplex node id
// represents, by walking id's ancestor chain back to the root.
func (t *Tree) VerticesOf(id NodeID) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.verticesOfLocked(id)
}

func (t *Tree) verticesOfLocked(id NodeID) []int {
	depth := t.nodes[id].depth
	out := make([]int, depth)
	for cur := id; cur != Root; cur = t.nodes[cur].parent {
		out[t.nodes[cur].depth-1] = t.nodes[cur].vertex
	}

	return out
}

// FindFacet looks up the facet of node id obtained by deleting the vertex
// at position k (0-indexed) from id's sorted vertex list. Returns
// ErrMissingFacet if the tree's face closure has been violated.
func (t *Tree) FindFacet(id NodeID, k int) (NodeID, error) {
	t.mu.RLock()
	vertices := t.verticesOfLocked(id)
	t.mu.RUnlock()

	facet := make([]int, 0, len(vertices)-1)
	facet = append(facet, vertices[:k]...)
	facet = append(facet, vertices[k+1:]...)

	t.mu.RLock()
	defer t.mu.RUnlock()
	fid, ok := t.findSimplexLocked(facet)
	if !ok {
		return Root, ErrMissingFacet
	}

	return fid, nil
}
