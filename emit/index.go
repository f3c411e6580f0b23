package emit

import (
	"fmt"

	"github.com/katalvlaran/bigraded/grade"
	"github.com/katalvlaran/bigraded/matrix"
	"github.com/katalvlaran/bigraded/simplextree"
)

// GetIndexMx builds the numY x numX index matrix for the given view: cell
// (y, x) holds the greatest dim-index of a simplex with grade <= (x, y) in
// the view's reverse-lex order, or -1 if none (spec §4.3). The view is
// assumed already ordered and dim-indexed by views.Update. Returns
// grade.ErrBadGrade if any simplex in view carries a grade outside
// [0, numX) x [0, numY).
func GetIndexMx(tree *simplextree.Tree, view []simplextree.NodeID, numX, numY int) (*matrix.IndexMatrix, error) {
	return fillIndexMx(tree, view, numX, numY, 0)
}

// GetOffsetIndexMx is GetIndexMx with every grade shifted by (+1, +1) and
// the output sized (numY+1) x (numX+1), used by the compute_eta pipeline's
// offset boundary-A matrix (spec §4.3). The range check still validates
// each simplex's raw (pre-shift) grade against [0, numX) x [0, numY).
func GetOffsetIndexMx(tree *simplextree.Tree, view []simplextree.NodeID, numX, numY int) (*matrix.IndexMatrix, error) {
	return fillIndexMx(tree, view, numX, numY, 1)
}

// fillIndexMx walks view in order, filling every skipped cell with the
// previous column index and setting each simplex's own cell to its own
// dim-index, then flood-fills the tail with the final column index. numX,
// numY always bound the raw grade range regardless of shift; xSize/ySize
// (the shifted output dimensions) are derived from them.
func fillIndexMx(tree *simplextree.Tree, view []simplextree.NodeID, numX, numY, shift int) (*matrix.IndexMatrix, error) {
	xSize, ySize := numX+shift, numY+shift
	out, err := matrix.NewIndexMatrix(ySize, xSize, -1)
	if err != nil {
		return nil, fmt.Errorf("fillIndexMx: %w", err)
	}

	curEntry := 0
	prevCol := -1
	for _, id := range view {
		g := tree.FirstGrade(id)
		if !g.InRange(numX, numY) {
			return nil, fmt.Errorf("fillIndexMx: grade %v outside [0,%d)x[0,%d): %w", g, numX, numY, grade.ErrBadGrade)
		}
		cx, cy := g.X+shift, g.Y+shift
		target := cy*xSize + cx
		for curEntry < target {
			if err := out.Set(curEntry/xSize, curEntry%xSize, prevCol); err != nil {
				return nil, fmt.Errorf("fillIndexMx: %w", err)
			}
			curEntry++
		}

		col := tree.DimIndexOf(id)
		if err := out.Set(cy, cx, col); err != nil {
			return nil, fmt.Errorf("fillIndexMx: %w", err)
		}
		prevCol = col
		curEntry++
	}

	total := xSize * ySize
	for curEntry < total {
		if err := out.Set(curEntry/xSize, curEntry%xSize, prevCol); err != nil {
			return nil, fmt.Errorf("fillIndexMx: %w", err)
		}
		curEntry++
	}

	return out, nil
}
