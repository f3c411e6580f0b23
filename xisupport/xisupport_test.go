package xisupport_test

import (
	"testing"

	"github.com/katalvlaran/bigraded/xisupport"
	"github.com/stretchr/testify/assert"
)

func TestAddPointAssignsIndexesAndClassHeads(t *testing.T) {
	m := xisupport.New()
	a := m.AddPoint(0, 1)
	b := m.AddPoint(2, 1)
	c := m.AddPoint(0, 3)

	assert.Equal(t, []int{a, b}, m.RowHead(1))
	assert.Equal(t, []int{a, c}, m.ColHead(0))
	assert.Equal(t, 3, m.NumPoints())
}

func TestRowColHeadEmptyForUnknownCoordinate(t *testing.T) {
	m := xisupport.New()
	assert.Nil(t, m.RowHead(42))
	assert.Nil(t, m.ColHead(42))
}

func TestPointAt(t *testing.T) {
	m := xisupport.New()
	idx := m.AddPoint(5, 9)
	assert.Equal(t, xisupport.Point{X: 5, Y: 9}, m.PointAt(idx))
}

func TestInfinitySentinel(t *testing.T) {
	assert.Equal(t, -1, xisupport.Infinity)
}
