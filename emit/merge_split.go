package emit

import (
	"fmt"

	"github.com/katalvlaran/bigraded/matrix"
	"github.com/katalvlaran/bigraded/simplextree"
	"github.com/katalvlaran/bigraded/views"
)

// GetMergeMxs emits the direct-sum boundary B (2|low| x 2|mid|), the merge
// map M (|mid| x 2|mid|), and the end_cols table ((numY+1) x (numX+1))
// recording the last column written for each multi-grade (spec §4.3).
//
// Two cursors walk v.Mid: it_b fires whenever the cursor sits on a simplex
// graded (x-1, y), writing into B's row-offset-0 half; it_c fires for grade
// (x, y-1), writing into the row-offset-|low| half. Both shifted copies
// share the same running column counter col, which end_cols records per
// multi-grade cell.
func GetMergeMxs(tree *simplextree.Tree, v *views.Views, numX, numY int) (*matrix.MapMatrix, *matrix.MapMatrix, *matrix.IndexMatrix, error) {
	lowLen := len(v.Low)
	midLen := len(v.Mid)

	b, err := matrix.NewMapMatrix(maxInt(2*lowLen, 1), maxInt(2*midLen, 1))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("GetMergeMxs: %w", err)
	}
	m, err := matrix.NewMapMatrix(maxInt(midLen, 1), maxInt(2*midLen, 1))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("GetMergeMxs: %w", err)
	}
	endCols, err := matrix.NewIndexMatrix(numY+1, numX+1, -1)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("GetMergeMxs: %w", err)
	}

	col := -1
	itB, itC := 0, 0
	bCounter, cCounter := 0, 0

	for y := 0; y <= numY; y++ {
		for x := 0; x <= numX; x++ {
			for itB < midLen && tree.FirstGrade(v.Mid[itB]).X == x-1 && tree.FirstGrade(v.Mid[itB]).Y == y {
				col++
				if err := writeBoundaryColumn(tree, v.Mid[itB], b, col, 0, nil); err != nil {
					return nil, nil, nil, fmt.Errorf("GetMergeMxs: %w", err)
				}
				if err := m.Set(bCounter, col); err != nil {
					return nil, nil, nil, fmt.Errorf("GetMergeMxs: %w", err)
				}
				bCounter++
				itB++
			}
			for itC < midLen && tree.FirstGrade(v.Mid[itC]).X == x && tree.FirstGrade(v.Mid[itC]).Y == y-1 {
				col++
				if err := writeBoundaryColumn(tree, v.Mid[itC], b, col, lowLen, nil); err != nil {
					return nil, nil, nil, fmt.Errorf("GetMergeMxs: %w", err)
				}
				if err := m.Set(cCounter, col); err != nil {
					return nil, nil, nil, fmt.Errorf("GetMergeMxs: %w", err)
				}
				cCounter++
				itC++
			}
			if err := endCols.Set(y, x, col); err != nil {
				return nil, nil, nil, fmt.Errorf("GetMergeMxs: %w", err)
			}
		}
	}

	return b, m, endCols, nil
}

// GetSplitMxs emits the direct-sum boundary B (2|mid| x 2|high|) and the
// end_cols table, mirroring GetMergeMxs but cursoring over v.High with the
// second shifted copy row-offset by |mid| instead of |low|, plus the
// split matrix S (2|mid| x |mid|) with S[i,i] = S[i+|mid|,i] = 1 for every
// i < |mid| — a fixed diagonal pairing independent of grade iteration
// (spec §4.3).
func GetSplitMxs(tree *simplextree.Tree, v *views.Views, numX, numY int) (*matrix.MapMatrix, *matrix.MapMatrix, *matrix.IndexMatrix, error) {
	midLen := len(v.Mid)
	highLen := len(v.High)

	b, err := matrix.NewMapMatrix(maxInt(2*midLen, 1), maxInt(2*highLen, 1))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("GetSplitMxs: %w", err)
	}
	s, err := matrix.NewMapMatrix(maxInt(2*midLen, 1), maxInt(midLen, 1))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("GetSplitMxs: %w", err)
	}
	for i := 0; i < midLen; i++ {
		if err := s.Set(i, i); err != nil {
			return nil, nil, nil, fmt.Errorf("GetSplitMxs: %w", err)
		}
		if err := s.Set(i+midLen, i); err != nil {
			return nil, nil, nil, fmt.Errorf("GetSplitMxs: %w", err)
		}
	}

	endCols, err := matrix.NewIndexMatrix(numY+1, numX+1, -1)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("GetSplitMxs: %w", err)
	}

	col := -1
	itB, itC := 0, 0

	for y := 0; y <= numY; y++ {
		for x := 0; x <= numX; x++ {
			for itB < highLen && tree.FirstGrade(v.High[itB]).X == x-1 && tree.FirstGrade(v.High[itB]).Y == y {
				col++
				if err := writeBoundaryColumn(tree, v.High[itB], b, col, 0, nil); err != nil {
					return nil, nil, nil, fmt.Errorf("GetSplitMxs: %w", err)
				}
				itB++
			}
			for itC < highLen && tree.FirstGrade(v.High[itC]).X == x && tree.FirstGrade(v.High[itC]).Y == y-1 {
				col++
				if err := writeBoundaryColumn(tree, v.High[itC], b, col, midLen, nil); err != nil {
					return nil, nil, nil, fmt.Errorf("GetSplitMxs: %w", err)
				}
				itC++
			}
			if err := endCols.Set(y, x, col); err != nil {
				return nil, nil, nil, fmt.Errorf("GetSplitMxs: %w", err)
			}
		}
	}

	return b, s, endCols, nil
}
