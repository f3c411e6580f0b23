package matrix

import "fmt"

// IndexMatrix is a dense rows x cols integer matrix. get_index_mx and
// get_offset_index_mx (spec §4.3) populate one of these to record, for
// each multi-grade, the greatest dim-index at or below that grade.
type IndexMatrix struct {
	rows, cols int
	data       []int
}

// NewIndexMatrix allocates a rows x cols IndexMatrix with every cell
// initialized to fill.
func NewIndexMatrix(rows, cols, fill int) (*IndexMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewIndexMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = fill
	}

	return &IndexMatrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *IndexMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *IndexMatrix) Cols() int { return m.cols }

// Set assigns value at (row, col).
func (m *IndexMatrix) Set(row, col, value int) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = value

	return nil
}

// At retrieves the value at (row, col).
func (m *IndexMatrix) At(row, col int) (int, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

func (m *IndexMatrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("IndexMatrix(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}
