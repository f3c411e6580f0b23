package simplextree

import (
	"fmt"

	"github.com/katalvlaran/bigraded/grade"
)

// NoEdge is the packed-distance sentinel meaning "no edge between these
// two points" (spec §4.1's MAX_UINT). Any distance equal to NoEdge causes
// build_BR_subtree to skip the corresponding coface.
const NoEdge = int(^uint(0) >> 1) // the largest representable int; stands in for MAX_UINT

// errDistanceTableSize is the format string for the size-mismatch error
// BuildBRComplex returns when distances does not have exactly
// n*(n-1)/2 entries for the given times.
const errDistanceTableSize = "simplextree: BuildBRComplex: distances has %d entries, want %d for n=%d"

// packedIndex returns the offset of the distance between points p and j
// (p < j) in the packed upper-triangular distances slice (spec §4.1).
func packedIndex(p, j int) int {
	return j*(j-1)/2 + p
}

// BuildBRComplex builds a bifiltered Vietoris–Rips complex from pointwise
// birth times and pairwise distances, discards any prior contents, and
// assigns global indices in the same DFS pass that creates the nodes
// (spec §4.1). homDim is the target homology dimension d; the resulting
// tree has depth d+2.
//
// times[i] is the discrete birth of point i. distances is the packed
// upper-triangular distance table; distances[packedIndex(p,j)] is the
// distance between points p < j, with NoEdge meaning "no edge."
func (t *Tree) BuildBRComplex(times []int, distances []int, homDim int) error {
	n := len(times)
	wantLen := n * (n - 1) / 2
	if len(distances) != wantLen {
		return fmt.Errorf(errDistanceTableSize, len(distances), wantLen, n)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.reset()
	counter := 0
	for i := 0; i < n; i++ {
		id := t.addChildRips(Root, i, grade.List{{X: times[i], Y: 0}})
		t.nodes[id].globalIndex = counter
		counter++
		t.buildSubtreeLocked(id, []int{i}, times[i], 0, 1, times, distances, n, homDim, &counter)
	}

	return nil
}

// addChildRips inserts a brand-new child of parent labeled v. Unlike
// addChild, it never needs to check for an existing child: BuildBRComplex
// starts from an empty tree and each (parentIndexes, j) pair is visited
// exactly once by construction, so no facet is ever created twice.
func (t *Tree) addChildRips(parent NodeID, v int, g grade.List) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		vertex:      v,
		grades:      g,
		globalIndex: unset,
		dimIndex:    unset,
		origX:       unset,
		depth:       t.nodes[parent].depth + 1,
		parent:      parent,
	})
	t.nodes[parent].children = append(t.nodes[parent].children, id)

	return id
}

// buildSubtreeLocked implements build_BR_subtree (spec §4.1): for each
// j > parentIndexes' last element, compute the coface's grade from the
// running max of birth time and pairwise distance, skip if disconnected,
// and recurse one dimension deeper while curDim <= homDim.
func (t *Tree) buildSubtreeLocked(
	parent NodeID,
	parentIndexes []int,
	prevTime, prevDist, curDim int,
	times []int,
	distances []int,
	n, homDim int,
	counter *int,
) {
	last := parentIndexes[len(parentIndexes)-1]
	for j := last + 1; j < n; j++ {
		curDist := prevDist
		noEdge := false
		for _, p := range parentIndexes {
			d := distances[packedIndex(p, j)]
			if d == NoEdge {
				noEdge = true
				break
			}
			if d > curDist {
				curDist = d
			}
		}
		if noEdge {
			continue
		}

		curTime := prevTime
		if times[j] > curTime {
			curTime = times[j]
		}

		id := t.addChildRips(parent, j, grade.List{{X: curTime, Y: curDist}})
		t.nodes[id].globalIndex = *counter
		*counter++

		if curDim <= homDim {
			nextIndexes := append(append([]int(nil), parentIndexes...), j)
			t.buildSubtreeLocked(id, nextIndexes, curTime, curDist, curDim+1, times, distances, n, homDim, counter)
		}
	}
}
