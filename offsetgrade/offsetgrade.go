// Package offsetgrade implements the grade-normalization collaborator
// described in spec §6: it converts a user-supplied relative offset in
// [0, 1] into an absolute offset within the range spanned by two
// strictly increasing sequences of real grade values. The core
// (simplextree, views, emit, bifiltration) never imports this package —
// spec §6 lists it as out of scope for the combinatorial core itself.
package offsetgrade

import (
	"errors"
	"fmt"
)

// ErrBadOffset is returned when a requested relative offset falls outside
// [0, 1].
var ErrBadOffset = errors.New("offsetgrade: relative offset out of range")

// ErrEmptyGrades is returned when either grade sequence has no entries.
var ErrEmptyGrades = errors.New("offsetgrade: grade sequence is empty")

// Range is the absolute offset range derived from a pair of strictly
// increasing grade-value sequences: both ends take the greater of a
// negated x-bound and the corresponding y-bound — MinOffset =
// max(-xGrades[last], yGrades[0]), MaxOffset = max(-xGrades[0],
// yGrades[last]) (spec §8 concrete scenario 6).
type Range struct {
	MinOffset float64
	MaxOffset float64
}

// NewRange computes the absolute offset range spanned by xGrades and
// yGrades, each assumed strictly increasing.
func NewRange(xGrades, yGrades []float64) (Range, error) {
	if len(xGrades) == 0 || len(yGrades) == 0 {
		return Range{}, ErrEmptyGrades
	}

	negXLast, negXFirst := -xGrades[len(xGrades)-1], -xGrades[0]
	yFirst, yLast := yGrades[0], yGrades[len(yGrades)-1]

	min := negXLast
	if yFirst > min {
		min = yFirst
	}
	max := negXFirst
	if yLast > max {
		max = yLast
	}

	return Range{MinOffset: min, MaxOffset: max}, nil
}

// RelativeOffsetToAbsolute maps rel in [0, 1] onto [r.MinOffset,
// r.MaxOffset] linearly: r.MinOffset + rel*(r.MaxOffset - r.MinOffset).
// Returns ErrBadOffset if rel is outside [0, 1].
func (r Range) RelativeOffsetToAbsolute(rel float64) (float64, error) {
	if rel < 0 || rel > 1 {
		return 0, fmt.Errorf("RelativeOffsetToAbsolute(%v): %w", rel, ErrBadOffset)
	}

	return r.MinOffset + rel*(r.MaxOffset-r.MinOffset), nil
}
