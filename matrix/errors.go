// Package matrix provides the mod-2 sparse matrix (MapMatrix,
// MapMatrixPerm) and dense integer index matrix (IndexMatrix) types the
// emitters in package emit populate and return to callers (spec §6).
package matrix

import "errors"

// ErrBadShape is returned when requested matrix dimensions are invalid
// (rows <= 0 or cols <= 0).
var ErrBadShape = errors.New("matrix: invalid shape")

// ErrOutOfRange indicates a row or column index fell outside the matrix's
// bounds.
var ErrOutOfRange = errors.New("matrix: index out of range")
