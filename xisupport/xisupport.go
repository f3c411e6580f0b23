// Package xisupport implements the support-point matrix collaborator
// described in spec §6: a sparse row/column index over bi-graded support
// points, populated independently from an already-computed point set and
// never read or written by the combinatorial core (simplextree, views,
// emit, bifiltration). Grounded on the teacher's sparse coordinate-keyed
// storage idiom (gridgraph.GridGraph's CellValues / neighborOffsets) and
// its incidence builder's row-index-map pattern
// (matrix.IncidenceMatrix.VertexIndex).
package xisupport

import "sort"

// Infinity is the sentinel point index representing "this class extends
// unboundedly" — the entry a downstream Betti-number reducer consults
// when a support class never closes.
const Infinity = -1

// Matrix is a sparse row/column index over bi-graded support points. Each
// AddPoint call assigns the next point its own 0-based index and files it
// under both its row (y) and column (x) class heads.
type Matrix struct {
	rowHeads map[int][]int // y -> sorted point indices sharing that row
	colHeads map[int][]int // x -> sorted point indices sharing that column
	points   []Point
}

// Point is one bi-graded support point as recorded by AddPoint.
type Point struct {
	X, Y int
}

// New returns an empty support-point matrix.
func New() *Matrix {
	return &Matrix{
		rowHeads: make(map[int][]int),
		colHeads: make(map[int][]int),
	}
}

// AddPoint records a support point at (x, y) and returns its assigned
// point index.
func (m *Matrix) AddPoint(x, y int) int {
	idx := len(m.points)
	m.points = append(m.points, Point{X: x, Y: y})
	m.rowHeads[y] = insertSorted(m.rowHeads[y], idx)
	m.colHeads[x] = insertSorted(m.colHeads[x], idx)

	return idx
}

// RowHead returns the sorted list of point indices sharing row y, or nil
// if no point was recorded at that row.
func (m *Matrix) RowHead(y int) []int {
	return m.rowHeads[y]
}

// ColHead returns the sorted list of point indices sharing column x, or
// nil if no point was recorded at that column.
func (m *Matrix) ColHead(x int) []int {
	return m.colHeads[x]
}

// PointAt returns the (x, y) coordinates of the point recorded under idx.
func (m *Matrix) PointAt(idx int) Point {
	return m.points[idx]
}

// NumPoints returns the number of points recorded so far.
func (m *Matrix) NumPoints() int {
	return len(m.points)
}

func insertSorted(list []int, idx int) []int {
	i := sort.SearchInts(list, idx)
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = idx

	return list
}
