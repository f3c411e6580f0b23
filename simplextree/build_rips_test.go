package simplextree_test

import (
	"testing"

	"github.com/katalvlaran/bigraded/grade"
	"github.com/katalvlaran/bigraded/simplextree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestThreeCollinearPoints is spec §8 concrete scenario 1.
func TestThreeCollinearPoints(t *testing.T) {
	tr := simplextree.New()
	times := []int{0, 0, 0}
	distances := []int{1, 2, 3} // dist(0,1)=1, dist(0,2)=2, dist(1,2)=3
	require.NoError(t, tr.BuildBRComplex(times, distances, 1))

	assert.Equal(t, 7, tr.GetNumSimplices())
	assert.Equal(t, 3, tr.GetSize(0))
	assert.Equal(t, 3, tr.GetSize(1))
	assert.Equal(t, 1, tr.GetSize(2))

	cases := []struct {
		vertices []int
		want     grade.Grade
	}{
		{[]int{0, 1}, grade.Grade{X: 0, Y: 1}},
		{[]int{0, 2}, grade.Grade{X: 0, Y: 2}},
		{[]int{1, 2}, grade.Grade{X: 0, Y: 3}},
		{[]int{0, 1, 2}, grade.Grade{X: 0, Y: 3}},
	}
	for _, c := range cases {
		id, ok := tr.FindSimplex(c.vertices)
		require.True(t, ok, "expected simplex %v to exist", c.vertices)
		assert.Equal(t, c.want, tr.FirstGrade(id), "grade of %v", c.vertices)
	}
}

// TestDisconnectedPair is spec §8 concrete scenario 2.
func TestDisconnectedPair(t *testing.T) {
	tr := simplextree.New()
	times := []int{0, 0}
	distances := []int{simplextree.NoEdge}
	require.NoError(t, tr.BuildBRComplex(times, distances, 1))

	assert.Equal(t, 2, tr.GetSize(0))
	assert.Equal(t, 0, tr.GetSize(1))
	assert.Equal(t, 2, tr.GetNumSimplices())
}

// TestGlobalIndexBijection is spec §8 property P1.
func TestGlobalIndexBijection(t *testing.T) {
	tr := simplextree.New()
	times := []int{0, 0, 0}
	distances := []int{1, 2, 3}
	require.NoError(t, tr.BuildBRComplex(times, distances, 1))

	n := tr.GetNumSimplices()
	require.Equal(t, 7, n)
	for k := 0; k < n; k++ {
		vertices, err := tr.FindVertices(k)
		require.NoError(t, err)
		id, ok := tr.FindSimplex(vertices)
		require.True(t, ok)
		assert.Equal(t, k, tr.GlobalIndexOf(id))
	}
}

// TestFaceClosure is spec §8 property P2.
func TestFaceClosure(t *testing.T) {
	tr := simplextree.New()
	times := []int{0, 0, 0}
	distances := []int{1, 2, 3}
	require.NoError(t, tr.BuildBRComplex(times, distances, 1))

	triangle := []int{0, 1, 2}
	for k := 0; k < len(triangle); k++ {
		face := append(append([]int(nil), triangle[:k]...), triangle[k+1:]...)
		_, ok := tr.FindSimplex(face)
		assert.True(t, ok, "face %v of triangle must exist", face)
	}
}

// TestGradeMonotonicity is spec §8 property P3.
func TestGradeMonotonicity(t *testing.T) {
	tr := simplextree.New()
	times := []int{0, 0, 0}
	distances := []int{1, 2, 3}
	require.NoError(t, tr.BuildBRComplex(times, distances, 1))

	triangleID, ok := tr.FindSimplex([]int{0, 1, 2})
	require.True(t, ok)
	edgeID, ok := tr.FindSimplex([]int{1, 2})
	require.True(t, ok)
	vertexID, ok := tr.FindSimplex([]int{1})
	require.True(t, ok)

	assert.True(t, tr.FirstGrade(triangleID).Dominates(tr.FirstGrade(edgeID)))
	assert.True(t, tr.FirstGrade(edgeID).Dominates(tr.FirstGrade(vertexID)))
}

func TestBuildBRComplexRejectsBadDistanceTable(t *testing.T) {
	tr := simplextree.New()
	err := tr.BuildBRComplex([]int{0, 0, 0}, []int{1, 2}, 1)
	assert.Error(t, err)
}

func TestFindVerticesUnknownIndex(t *testing.T) {
	tr := simplextree.New()
	require.NoError(t, tr.BuildBRComplex([]int{0, 0}, []int{simplextree.NoEdge}, 1))
	_, err := tr.FindVertices(100)
	assert.ErrorIs(t, err, simplextree.ErrUnknownGlobalIndex)
}
