// Package views builds the three dimension-ordered node sets (spec §4.2)
// that the matrix emitters walk: Low (dimension d-1), Mid (dimension d),
// and High (dimension d+1), each ordered by the reverse-lexicographic
// multi-grade comparator and indexed densely by dim_index.
package views

import (
	"sort"

	"github.com/katalvlaran/bigraded/grade"
	"github.com/katalvlaran/bigraded/simplextree"
)

// Views holds, for a fixed target homology dimension d, the three ordered
// node sets Low/Mid/High and the d value they were built for. Node pointers
// alias into the Tree they were built from and become invalid once that
// Tree is discarded (spec §5).
type Views struct {
	HomDim int
	Low    []simplextree.NodeID // dimension d-1
	Mid    []simplextree.NodeID // dimension d
	High   []simplextree.NodeID // dimension d+1
}

// Update walks tree, routes each node to the view matching its dimension
// (Low/Mid/High for d-1/d/d+1), orders each view by the reverse-lex
// multi-grade comparator with a stable tie-break on GlobalIndex, and
// assigns DimIndex 0, 1, 2, ... within each view (invariant I5).
func Update(tree *simplextree.Tree, homDim int) *Views {
	v := &Views{HomDim: homDim}
	v.Low = sortedView(tree, homDim-1)
	v.Mid = sortedView(tree, homDim)
	v.High = sortedView(tree, homDim+1)

	assignDimIndexes(tree, v.Low)
	assignDimIndexes(tree, v.Mid)
	assignDimIndexes(tree, v.High)

	return v
}

// sortedView returns every node of the given simplex dimension, ordered by
// the reverse-lex multi-grade comparator. A negative dimension (as when
// homDim is 0 and Low is requested) has no nodes by construction, since
// depth = dim+1 would be 0, which is the root and never a real simplex.
func sortedView(tree *simplextree.Tree, dim int) []simplextree.NodeID {
	depth := dim + 1
	if depth < 1 {
		return nil
	}

	nodes := tree.NodesAtDepth(depth)
	sort.SliceStable(nodes, func(i, j int) bool {
		gi, gj := tree.FirstGrade(nodes[i]), tree.FirstGrade(nodes[j])
		if !grade.Equal(gi, gj) {
			return grade.Less(gi, gj)
		}

		return tree.GlobalIndexOf(nodes[i]) < tree.GlobalIndexOf(nodes[j])
	})

	return nodes
}

func assignDimIndexes(tree *simplextree.Tree, view []simplextree.NodeID) {
	for idx, id := range view {
		tree.SetDimIndex(id, idx)
	}
}
