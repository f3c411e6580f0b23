package bifiltration_test

import (
	"testing"

	"github.com/katalvlaran/bigraded/bifiltration"
	"github.com/katalvlaran/bigraded/emit"
	"github.com/katalvlaran/bigraded/matrix"
	"github.com/katalvlaran/bigraded/simplextree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScenario1(t *testing.T) *bifiltration.Complex {
	t.Helper()
	c, err := bifiltration.NewFromRips([]int{0, 0, 0}, []int{1, 2, 3}, 1, 4, 1, 0)
	require.NoError(t, err)

	return c
}

func TestNewFromRipsScenario1(t *testing.T) {
	c := newScenario1(t)
	assert.Equal(t, 7, c.GetNumSimplices())
	assert.Equal(t, 3, c.GetSize(0))
	assert.Equal(t, 3, c.GetSize(1))
	assert.Equal(t, 1, c.GetSize(2))
}

func TestComplexFindRoundTrip(t *testing.T) {
	c := newScenario1(t)
	for k := 0; k < c.GetNumSimplices(); k++ {
		vertices, err := c.FindVertices(k)
		require.NoError(t, err)
		id, ok := c.FindSimplex(vertices)
		require.True(t, ok)
		_, dim, err := c.GetSimplexData(k)
		require.NoError(t, err)
		assert.Equal(t, len(vertices)-1, dim)
		_ = id
	}
}

func TestComplexBoundarySquareIsZero(t *testing.T) {
	c := newScenario1(t)
	d1, err := c.GetBoundaryMx(1)
	require.NoError(t, err)
	d2, err := c.GetBoundaryMx(2)
	require.NoError(t, err)

	product, err := matrix.MultiplyMod2(d1, d2)
	require.NoError(t, err)
	assert.True(t, product.IsZero())
}

func TestComplexGetBoundaryMxBadDimension(t *testing.T) {
	c := newScenario1(t)
	_, err := c.GetBoundaryMx(99)
	assert.ErrorIs(t, err, emit.ErrBadDimension)
}

func TestComplexMergeColumnCounts(t *testing.T) {
	c := newScenario1(t)
	b, _, endCols, err := c.GetMergeMxs()
	require.NoError(t, err)
	assert.Equal(t, 6, b.Cols())
	got, err := endCols.At(4, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestComplexGetIndexMxBadDimension(t *testing.T) {
	c := newScenario1(t)
	_, err := c.GetIndexMx(99)
	assert.ErrorIs(t, err, emit.ErrBadDimension)
}

func TestComplexDisconnectedPair(t *testing.T) {
	c, err := bifiltration.NewFromRips([]int{0, 0}, []int{simplextree.NoEdge}, 1, 4, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, c.GetSize(0))
	assert.Equal(t, 0, c.GetSize(1))
}
