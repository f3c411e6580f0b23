package emit_test

import (
	"testing"

	"github.com/katalvlaran/bigraded/emit"
	"github.com/katalvlaran/bigraded/grade"
	"github.com/katalvlaran/bigraded/simplextree"
	"github.com/katalvlaran/bigraded/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndexMatrixOfEmptyView is spec §8 concrete scenario 5.
func TestIndexMatrixOfEmptyView(t *testing.T) {
	tr := simplextree.New()
	require.NoError(t, tr.BuildBRComplex([]int{0, 0}, []int{simplextree.NoEdge}, 1))
	v := views.Update(tr, 1) // Mid = dim 1 = edges, empty here

	m, err := emit.GetIndexMx(tr, v.Mid, 1, 4)
	require.NoError(t, err)
	for y := 0; y < m.Rows(); y++ {
		for x := 0; x < m.Cols(); x++ {
			got, err := m.At(y, x)
			require.NoError(t, err)
			assert.Equal(t, -1, got, "(%d,%d)", y, x)
		}
	}
}

// TestIndexMatrixMonotonicity is spec §8 property P6.
func TestIndexMatrixMonotonicity(t *testing.T) {
	tr, v := buildScenario1(t)

	m, err := emit.GetIndexMx(tr, v.Mid, 1, 4)
	require.NoError(t, err)

	prevRowLast := -1
	for y := 0; y < m.Rows(); y++ {
		prev := -1
		for x := 0; x < m.Cols(); x++ {
			cur, err := m.At(y, x)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, cur, prev, "row %d must be weakly increasing", y)
			prev = cur
		}
		assert.GreaterOrEqual(t, prev, prevRowLast, "row-major traversal must be weakly increasing")
		prevRowLast = prev
	}
}

func TestOffsetIndexMxShape(t *testing.T) {
	tr, v := buildScenario1(t)

	m, err := emit.GetOffsetIndexMx(tr, v.Mid, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 2, m.Cols())
}

// TestGetIndexMxRejectsOutOfRangeGrade exercises the BadGrade failure mode
// of spec §7: the edge (1,2) of scenario 1 has grade (0,3), which falls
// outside [0,1) x [0,3) when numY=3.
func TestGetIndexMxRejectsOutOfRangeGrade(t *testing.T) {
	tr, v := buildScenario1(t)

	_, err := emit.GetIndexMx(tr, v.Mid, 1, 3)
	assert.ErrorIs(t, err, grade.ErrBadGrade)
}

func TestGetOffsetIndexMxRejectsOutOfRangeGrade(t *testing.T) {
	tr, v := buildScenario1(t)

	_, err := emit.GetOffsetIndexMx(tr, v.Mid, 1, 3)
	assert.ErrorIs(t, err, grade.ErrBadGrade)
}
