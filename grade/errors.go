package grade

import "errors"

// ErrBadGrade is returned when a grade's coordinates fall outside the
// caller-declared range [0, num_x) x [0, num_y).
var ErrBadGrade = errors.New("grade: coordinates out of range")
