package offsetgrade_test

import (
	"testing"

	"github.com/katalvlaran/bigraded/offsetgrade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGradeOffsetHelper is spec §8 concrete scenario 6.
func TestGradeOffsetHelper(t *testing.T) {
	r, err := offsetgrade.NewRange([]float64{1.0, 3.0}, []float64{-2.0, 0.0})
	require.NoError(t, err)
	assert.Equal(t, -2.0, r.MinOffset)
	assert.Equal(t, 0.0, r.MaxOffset)

	abs, err := r.RelativeOffsetToAbsolute(0.5)
	require.NoError(t, err)
	assert.Equal(t, -1.0, abs)

	_, err = r.RelativeOffsetToAbsolute(1.5)
	assert.ErrorIs(t, err, offsetgrade.ErrBadOffset)
}

func TestNewRangeEmptyGrades(t *testing.T) {
	_, err := offsetgrade.NewRange(nil, []float64{0.0})
	assert.ErrorIs(t, err, offsetgrade.ErrEmptyGrades)
}

func TestRelativeOffsetToAbsoluteNegative(t *testing.T) {
	r, err := offsetgrade.NewRange([]float64{1.0, 3.0}, []float64{-2.0, 0.0})
	require.NoError(t, err)
	_, err = r.RelativeOffsetToAbsolute(-0.1)
	assert.ErrorIs(t, err, offsetgrade.ErrBadOffset)
}
