// Package bifiltration is the combinatorial core's front door: it wires a
// simplextree.Tree and its views.Views together behind the single
// Complex type, so a caller builds a bifiltered Vietoris-Rips complex and
// drives every downstream emitter (spec §4.3) without touching the
// underlying tree or view types directly.
package bifiltration

import (
	"fmt"
	"os"

	"github.com/katalvlaran/bigraded/emit"
	"github.com/katalvlaran/bigraded/grade"
	"github.com/katalvlaran/bigraded/matrix"
	"github.com/katalvlaran/bigraded/simplextree"
	"github.com/katalvlaran/bigraded/views"
)

// Complex is a bifiltered Vietoris-Rips complex, built once by
// NewFromRips for a fixed target homology dimension and read thereafter.
// Per spec §5 its query methods may be called concurrently from multiple
// goroutines once construction returns; Complex itself adds no further
// synchronization beyond what Tree already provides, since no method here
// mutates the tree again.
type Complex struct {
	tree      *simplextree.Tree
	views     *views.Views
	numX      int
	numY      int
	verbosity int
}

// NewFromRips builds a bifiltered Vietoris-Rips complex from pointwise
// birth times and packed pairwise distances (spec §4.1), then computes the
// dimension-ordered views for homDim (spec §4.2). numX, numY bound the
// discretized grade range the index-matrix emitters will be asked about;
// verbosity gates the diagnostic prints described in spec §9's Design
// Notes (treated as an external logging collaborator the core does not
// itself depend on — see DESIGN.md).
func NewFromRips(times, distances []int, numX, numY, homDim, verbosity int) (*Complex, error) {
	tree := simplextree.New()
	if err := tree.BuildBRComplex(times, distances, homDim); err != nil {
		return nil, fmt.Errorf("NewFromRips: %w", err)
	}

	c := &Complex{
		tree:      tree,
		views:     views.Update(tree, homDim),
		numX:      numX,
		numY:      numY,
		verbosity: verbosity,
	}
	c.logf("NewFromRips: built %d simplices (|low|=%d |mid|=%d |high|=%d)",
		tree.GetNumSimplices(), len(c.views.Low), len(c.views.Mid), len(c.views.High))

	return c, nil
}

// logf prints a diagnostic line to standard error when verbosity is
// positive. Grounded on
// lvlath's flow package, which gates its own fmt.Printf augmentation logs
// behind an Options.Verbose flag rather than a logging library (see
// DESIGN.md for why no third-party logger is wired here).
func (c *Complex) logf(format string, args ...interface{}) {
	if c.verbosity > 0 {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// HomDim returns the target homology dimension this complex was built
// for.
func (c *Complex) HomDim() int { return c.views.HomDim }

// FindSimplex looks up the node whose sorted vertex list is sortedVertices.
func (c *Complex) FindSimplex(sortedVertices []int) (simplextree.NodeID, bool) {
	return c.tree.FindSimplex(sortedVertices)
}

// FindVertices reconstructs the sorted vertex list for global index k.
func (c *Complex) FindVertices(globalIndex int) ([]int, error) {
	return c.tree.FindVertices(globalIndex)
}

// GetSimplexData returns the grade list and dimension of the simplex at
// globalIndex.
func (c *Complex) GetSimplexData(globalIndex int) (grade.List, int, error) {
	return c.tree.GetSimplexData(globalIndex)
}

// GetSize returns the number of dim-simplices in the tree.
func (c *Complex) GetSize(dim int) int { return c.tree.GetSize(dim) }

// GetNumSimplices returns the total simplex count N.
func (c *Complex) GetNumSimplices() int { return c.tree.GetNumSimplices() }

// GetBoundaryMx emits the boundary matrix between dimension dim and
// dim-1, for dim in {HomDim, HomDim+1} (spec §4.3).
func (c *Complex) GetBoundaryMx(dim int) (*matrix.MapMatrix, error) {
	out, err := emit.BoundaryMatrix(c.tree, c.views, dim)
	if err != nil {
		return nil, fmt.Errorf("Complex.GetBoundaryMx: %w", err)
	}
	c.logf("GetBoundaryMx(%d): %dx%d", dim, out.Rows(), out.Cols())

	return out, nil
}

// GetBoundaryMxCofaceOrder emits the vineyard-reordered boundary matrix
// described in spec §4.3's second get_boundary_mx overload.
func (c *Complex) GetBoundaryMxCofaceOrder(cofaceOrder []int, numSimplices int) (*matrix.MapMatrixPerm, error) {
	out, err := emit.BoundaryMatrixCofaceOrder(c.tree, c.views, cofaceOrder, numSimplices)
	if err != nil {
		return nil, fmt.Errorf("Complex.GetBoundaryMxCofaceOrder: %w", err)
	}

	return out, nil
}

// GetBoundaryMxFaceCofaceOrder emits the doubly-reordered boundary matrix
// described in spec §4.3's third get_boundary_mx overload.
func (c *Complex) GetBoundaryMxFaceCofaceOrder(faceOrder []int, numFaces int, cofaceOrder []int, numCofaces int) (*matrix.MapMatrixPerm, error) {
	out, err := emit.BoundaryMatrixFaceCofaceOrder(c.tree, c.views, faceOrder, numFaces, cofaceOrder, numCofaces)
	if err != nil {
		return nil, fmt.Errorf("Complex.GetBoundaryMxFaceCofaceOrder: %w", err)
	}

	return out, nil
}

// GetMergeMxs emits the direct-sum boundary, merge map, and end-column
// table used for multi-graded Betti computation at HomDim (spec §4.3).
func (c *Complex) GetMergeMxs() (*matrix.MapMatrix, *matrix.MapMatrix, *matrix.IndexMatrix, error) {
	b, m, endCols, err := emit.GetMergeMxs(c.tree, c.views, c.numX, c.numY)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Complex.GetMergeMxs: %w", err)
	}
	c.logf("GetMergeMxs: B %dx%d, M %dx%d", b.Rows(), b.Cols(), m.Rows(), m.Cols())

	return b, m, endCols, nil
}

// GetSplitMxs emits the direct-sum boundary, split map, and end-column
// table over HomDim+1 (spec §4.3).
func (c *Complex) GetSplitMxs() (*matrix.MapMatrix, *matrix.MapMatrix, *matrix.IndexMatrix, error) {
	b, s, endCols, err := emit.GetSplitMxs(c.tree, c.views, c.numX, c.numY)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Complex.GetSplitMxs: %w", err)
	}
	c.logf("GetSplitMxs: B %dx%d, S %dx%d", b.Rows(), b.Cols(), s.Rows(), s.Cols())

	return b, s, endCols, nil
}

// GetIndexMx emits the numY x numX index matrix for dim, one of
// {HomDim-1, HomDim, HomDim+1} (spec §4.3).
func (c *Complex) GetIndexMx(dim int) (*matrix.IndexMatrix, error) {
	view, err := c.viewForDim(dim)
	if err != nil {
		return nil, fmt.Errorf("Complex.GetIndexMx: %w", err)
	}

	return emit.GetIndexMx(c.tree, view, c.numX, c.numY)
}

// GetOffsetIndexMx emits the (numY+1) x (numX+1) offset index matrix for
// dim (spec §4.3).
func (c *Complex) GetOffsetIndexMx(dim int) (*matrix.IndexMatrix, error) {
	view, err := c.viewForDim(dim)
	if err != nil {
		return nil, fmt.Errorf("Complex.GetOffsetIndexMx: %w", err)
	}

	return emit.GetOffsetIndexMx(c.tree, view, c.numX, c.numY)
}

func (c *Complex) viewForDim(dim int) ([]simplextree.NodeID, error) {
	switch dim {
	case c.views.HomDim - 1:
		return c.views.Low, nil
	case c.views.HomDim:
		return c.views.Mid, nil
	case c.views.HomDim + 1:
		return c.views.High, nil
	default:
		return nil, fmt.Errorf("dim=%d: %w", dim, emit.ErrBadDimension)
	}
}
