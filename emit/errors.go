// Package emit implements the matrix-emission algorithms of spec §4.3: the
// pure functions that walk a tree's dimension-ordered views and populate
// the boundary, merge/split, and index matrices downstream linear-algebra
// routines consume.
package emit

import "errors"

// ErrBadDimension is returned when a boundary/index query names a
// dimension outside the set the views were built for ({d-1, d, d+1} for
// index queries, {d, d+1} for boundary queries).
var ErrBadDimension = errors.New("emit: dimension out of range")
