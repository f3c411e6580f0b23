package matrix

// MapMatrixPerm is a MapMatrix produced by one of the permutation-bearing
// emitters (get_boundary_mx with a coface_order / face_order argument, spec
// §4.3): structurally identical to MapMatrix, but a distinguishable type so
// callers cannot accidentally pass a vineyard-reordered boundary where a
// canonically-ordered one is expected, or vice versa.
type MapMatrixPerm struct {
	MapMatrix
}

// NewMapMatrixPerm allocates an all-zero rows x cols MapMatrixPerm.
func NewMapMatrixPerm(rows, cols int) (*MapMatrixPerm, error) {
	base, err := NewMapMatrix(rows, cols)
	if err != nil {
		return nil, err
	}

	return &MapMatrixPerm{MapMatrix: *base}, nil
}
