package vectors

import "strconv"

// Axis addresses one component of a vector. Named axes and raw indices are
// interchangeable: Axis(2) and Z are the same axis.
type Axis int

const (
	X Axis = iota
	Y
	Z
	W
	V
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case W:
		return "w"
	case V:
		return "v"
	}
	return "axis(" + strconv.Itoa(int(a)) + ")"
}

// InRange reports whether a addresses a component of a vector with size
// components.
func (a Axis) InRange(size int) bool {
	return 0 <= a && int(a) < size
}
