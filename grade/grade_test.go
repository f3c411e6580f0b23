package grade_test

import (
	"testing"

	"github.com/katalvlaran/bigraded/grade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessReverseLex(t *testing.T) {
	cases := []struct {
		a, b Grade2
		want bool
	}{
		{Grade2{0, 1}, Grade2{0, 2}, true},  // y smaller wins
		{Grade2{0, 2}, Grade2{0, 1}, false}, // y bigger loses
		{Grade2{1, 1}, Grade2{2, 1}, true},  // same y, x breaks tie
		{Grade2{2, 1}, Grade2{1, 1}, false},
		{Grade2{3, 3}, Grade2{3, 3}, false}, // equal grades: neither is less
	}
	for _, c := range cases {
		got := grade.Less(grade.Grade{X: c.a.x, Y: c.a.y}, grade.Grade{X: c.b.x, Y: c.b.y})
		assert.Equal(t, c.want, got, "Less(%v,%v)", c.a, c.b)
	}
}

// Grade2 is a tiny local fixture so the table above reads (x,y) positionally
// without repeating grade.Grade{X: ..., Y: ...} everywhere.
type Grade2 struct{ x, y int }

func TestFirstPanicsOnEmptyList(t *testing.T) {
	require.Panics(t, func() {
		var l grade.List
		_ = l.First()
	})
}

func TestDominates(t *testing.T) {
	parent := grade.Grade{X: 1, Y: 2}
	child := grade.Grade{X: 2, Y: 2}
	assert.True(t, child.Dominates(parent))
	assert.False(t, parent.Dominates(child))
}

func TestInRange(t *testing.T) {
	g := grade.Grade{X: 1, Y: 3}
	assert.True(t, g.InRange(2, 4))
	assert.False(t, g.InRange(1, 4))
	assert.False(t, g.InRange(2, 3))
}
