// Package grade defines the discrete bigrade value type shared by the
// simplex tree, the dimension-ordered views, and the matrix emitters.
//
// A Grade is a pair of non-negative discrete coordinates (X, Y): indices
// into two separately-maintained sorted real-valued grade lists owned by
// the caller. This package never sees the real values those indices stand
// for — that translation lives outside the core (see offsetgrade).
package grade

import "fmt"

// Grade is a discrete bigrade: an (X, Y) pair of non-negative coordinates.
// X is conventionally the birth-time axis, Y the distance axis, but the
// type itself is axis-agnostic.
type Grade struct {
	X int
	Y int
}

// List is the ordered list of grades of appearance carried by a single
// simplex. It is never empty for a non-root tree node. Every algorithm in
// this version reads only List[0]; see Design Notes open question 1 for
// why the list is kept instead of collapsed to a single Grade.
type List []Grade

// First returns the simplex's primary grade of appearance. Panics if l is
// empty, which would indicate a tree node constructed without a grade —
// an invariant violation the tree itself must prevent.
func (l List) First() Grade {
	return l[0]
}

// String renders a Grade as "(x,y)" for diagnostics and test failure
// messages.
func (g Grade) String() string {
	return fmt.Sprintf("(%d,%d)", g.X, g.Y)
}

// Dominates reports whether g is componentwise >= other, i.e. g could be
// the grade of a simplex whose face has grade other (invariant I3).
func (g Grade) Dominates(other Grade) bool {
	return g.X >= other.X && g.Y >= other.Y
}

// InRange reports whether g lies within [0, numX) x [0, numY).
func (g Grade) InRange(numX, numY int) bool {
	return g.X >= 0 && g.X < numX && g.Y >= 0 && g.Y < numY
}
