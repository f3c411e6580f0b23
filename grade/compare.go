package grade

// Less implements the reverse-lexicographic multi-grade order used by the
// dimension-ordered views (spec §4.2): sort by Y ascending, break ties by
// X ascending. Callers that need a total order (required to produce a
// deterministic dim_index) additionally break ties on a secondary key such
// as global_index; Less itself only encodes the (Y, X) part.
func Less(a, b Grade) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}

// Equal reports whether a and b carry the same (X, Y) coordinates.
func Equal(a, b Grade) bool {
	return a.X == b.X && a.Y == b.Y
}
