package emit

import (
	"fmt"

	"github.com/katalvlaran/bigraded/matrix"
	"github.com/katalvlaran/bigraded/simplextree"
	"github.com/katalvlaran/bigraded/views"
)

// cellSetter is satisfied by both *matrix.MapMatrix and *matrix.MapMatrixPerm;
// writeBoundaryColumn is shared by every boundary emitter below.
type cellSetter interface {
	Set(row, col int) error
}

// writeBoundaryColumn writes the boundary of the simplex at id into column
// col of dst, offsetting every facet row by rowOffset and remapping it
// through rowRemap first (rowRemap may be nil, meaning "no remap"; a
// negative remap result means "omit this row"). A 0-simplex has no facets
// and writes nothing (spec §4.3).
func writeBoundaryColumn(tree *simplextree.Tree, id simplextree.NodeID, dst cellSetter, col, rowOffset int, rowRemap func(int) int) error {
	vertices := tree.VerticesOf(id)
	if len(vertices) < 2 {
		return nil // 0-simplex: empty boundary
	}

	for k := 0; k < len(vertices); k++ {
		facet, err := tree.FindFacet(id, k)
		if err != nil {
			return fmt.Errorf("writeBoundaryColumn: vertices=%v k=%d: %w", vertices, k, err)
		}

		row := tree.DimIndexOf(facet)
		if rowRemap != nil {
			row = rowRemap(row)
			if row < 0 {
				continue
			}
		}
		if err := dst.Set(rowOffset+row, col); err != nil {
			return fmt.Errorf("writeBoundaryColumn: %w", err)
		}
	}

	return nil
}

// BoundaryMatrix produces the boundary matrix between dimension dim and
// dim-1, for dim in {d, d+1}: |low| rows / |mid| columns if dim == d, or
// |mid| rows / |high| columns if dim == d+1 (spec §4.3). Columns are
// written in dim-index order.
func BoundaryMatrix(tree *simplextree.Tree, v *views.Views, dim int) (*matrix.MapMatrix, error) {
	var rows, view []simplextree.NodeID
	switch dim {
	case v.HomDim:
		rows, view = v.Low, v.Mid
	case v.HomDim + 1:
		rows, view = v.Mid, v.High
	default:
		return nil, fmt.Errorf("BoundaryMatrix(dim=%d): %w", dim, ErrBadDimension)
	}

	rowCount := len(rows)
	colCount := len(view)
	if rowCount == 0 || colCount == 0 {
		// An empty boundary is still a legal (possibly zero-sized on one
		// axis) matrix; NewMapMatrix rejects non-positive dimensions, so
		// degrade to the smallest legal shape and leave it all-zero.
		rowCount = maxInt(rowCount, 1)
		colCount = maxInt(colCount, 1)
		out, err := matrix.NewMapMatrix(rowCount, colCount)
		return out, err
	}

	out, err := matrix.NewMapMatrix(rowCount, colCount)
	if err != nil {
		return nil, err
	}
	for col, id := range view {
		if err := writeBoundaryColumn(tree, id, out, col, 0, nil); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// BoundaryMatrixCofaceOrder produces the boundary matrix from |low| rows
// to numSimplices columns, where column cofaceOrder[i] receives the
// boundary of the i-th mid-dimension simplex; entries with
// cofaceOrder[i] == -1 are skipped (spec §4.3's vineyard-style reordering
// variant).
func BoundaryMatrixCofaceOrder(tree *simplextree.Tree, v *views.Views, cofaceOrder []int, numSimplices int) (*matrix.MapMatrixPerm, error) {
	if len(cofaceOrder) != len(v.Mid) {
		return nil, fmt.Errorf("BoundaryMatrixCofaceOrder: len(cofaceOrder)=%d != |mid|=%d", len(cofaceOrder), len(v.Mid))
	}

	rowCount := maxInt(len(v.Low), 1)
	out, err := matrix.NewMapMatrixPerm(rowCount, maxInt(numSimplices, 1))
	if err != nil {
		return nil, err
	}
	for i, id := range v.Mid {
		col := cofaceOrder[i]
		if col == -1 {
			continue
		}
		if err := writeBoundaryColumn(tree, id, out, col, 0, nil); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// BoundaryMatrixFaceCofaceOrder produces the boundary matrix of the
// high-dimension simplices with both row and column indices remapped:
// column cofaceOrder[i] receives the boundary of the i-th high-dimension
// simplex, and each facet's row (its dim-index in the mid view) is
// remapped through faceOrder before being written. Entries with
// cofaceOrder[i] == -1 are skipped.
func BoundaryMatrixFaceCofaceOrder(tree *simplextree.Tree, v *views.Views, faceOrder []int, numFaces int, cofaceOrder []int, numCofaces int) (*matrix.MapMatrixPerm, error) {
	if len(cofaceOrder) != len(v.High) {
		return nil, fmt.Errorf("BoundaryMatrixFaceCofaceOrder: len(cofaceOrder)=%d != |high|=%d", len(cofaceOrder), len(v.High))
	}
	if len(faceOrder) != len(v.Mid) {
		return nil, fmt.Errorf("BoundaryMatrixFaceCofaceOrder: len(faceOrder)=%d != |mid|=%d", len(faceOrder), len(v.Mid))
	}

	out, err := matrix.NewMapMatrixPerm(maxInt(numFaces, 1), maxInt(numCofaces, 1))
	if err != nil {
		return nil, err
	}
	remap := func(row int) int { return faceOrder[row] }
	for i, id := range v.High {
		col := cofaceOrder[i]
		if col == -1 {
			continue
		}
		if err := writeBoundaryColumn(tree, id, out, col, 0, remap); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
