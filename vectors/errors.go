package vectors

import (
	"errors"
	"fmt"
)

var (
	// ErrAxisOutOfRange is matched by every *AxisError.
	ErrAxisOutOfRange = errors.New("axis out of range")
	// ErrSizeMismatch is matched by every *SizeError.
	ErrSizeMismatch = errors.New("vector size mismatch")
)

// AxisError indicates an axis outside [0, Size) was requested from a strict
// accessor or mutator.
type AxisError struct {
	Axis Axis
	Size int
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("vector size is %d, but axis %d was given", e.Size, int(e.Axis))
}

func (e *AxisError) Is(target error) bool { return target == ErrAxisOutOfRange }

// SizeError indicates two vectors whose sizes must agree do not.
type SizeError struct {
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("vector size is %d, but vector with size %d was given", e.Expected, e.Actual)
}

func (e *SizeError) Is(target error) bool { return target == ErrSizeMismatch }
