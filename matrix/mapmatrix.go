package matrix

import "fmt"

// MapMatrix is a mod-2 sparse matrix: each column stores only the set of
// rows holding a 1. Rows and columns are indexed from zero. Set is
// idempotent (setting an already-set cell is a no-op); there is no Clear,
// since the emitters only ever write boundary/merge/split columns once.
type MapMatrix struct {
	rows, cols int
	col        []map[int]struct{} // col[c] = set of rows with a 1 in column c
}

// NewMapMatrix allocates an all-zero rows x cols MapMatrix.
func NewMapMatrix(rows, cols int) (*MapMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewMapMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &MapMatrix{
		rows: rows,
		cols: cols,
		col:  make([]map[int]struct{}, cols),
	}, nil
}

// Rows returns the number of rows.
func (m *MapMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *MapMatrix) Cols() int { return m.cols }

// Set marks the cell at (row, col) as 1.
func (m *MapMatrix) Set(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("MapMatrix.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if m.col[col] == nil {
		m.col[col] = make(map[int]struct{})
	}
	m.col[col][row] = struct{}{}

	return nil
}

// Get reports whether the cell at (row, col) is 1.
func (m *MapMatrix) Get(row, col int) (bool, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return false, fmt.Errorf("MapMatrix.Get(%d,%d): %w", row, col, ErrOutOfRange)
	}
	_, ok := m.col[col][row]

	return ok, nil
}

// ColumnRows returns the sorted-by-insertion-irrelevant set of row indices
// holding a 1 in column col, as a fresh slice the caller may mutate
// freely. Returns an empty (non-nil) slice for an all-zero column.
func (m *MapMatrix) ColumnRows(col int) []int {
	rows := make([]int, 0, len(m.col[col]))
	for r := range m.col[col] {
		rows = append(rows, r)
	}

	return rows
}

// MultiplyMod2 computes a*b over GF(2): entry (i,j) is 1 iff an odd number
// of k satisfy a[i,k]=1 and b[k,j]=1. Used by tests to check the chain
// complex property (spec §8 P4); not needed by the emitters themselves.
func MultiplyMod2(a, b *MapMatrix) (*MapMatrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("MultiplyMod2: dimension mismatch %dx%d * %dx%d", a.rows, a.cols, b.rows, b.cols)
	}
	out, err := NewMapMatrix(a.rows, b.cols)
	if err != nil {
		return nil, err
	}

	for j := 0; j < b.cols; j++ {
		for k := range b.col[j] {
			for i := range a.col[k] {
				if _, ok := out.col[j][i]; ok {
					delete(out.col[j], i) // mod-2: second 1 cancels the first
				} else {
					if out.col[j] == nil {
						out.col[j] = make(map[int]struct{})
					}
					out.col[j][i] = struct{}{}
				}
			}
		}
	}

	return out, nil
}

// IsZero reports whether every entry of m is 0.
func (m *MapMatrix) IsZero() bool {
	for _, c := range m.col {
		if len(c) > 0 {
			return false
		}
	}

	return true
}
