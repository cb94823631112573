package vectors

import "gonum.org/v1/gonum/floats"

// Array is a dense vector of float64 values whose size is chosen at
// construction and never changes afterwards.
type Array struct {
	values []float64
}

var _ Vector = (*Array)(nil)

// NewArray returns an Array holding a copy of values.
func NewArray(values ...float64) *Array {
	a := NewZeroArray(len(values))
	copy(a.values, values)
	return a
}

// NewZeroArray allocates an Array of the given size initialized with zeros.
func NewZeroArray(size int) *Array {
	return &Array{values: make([]float64, size)}
}

// NewArrayWithValue allocates an Array of the given size and fills it with
// val.
func NewArrayWithValue(size int, val float64) *Array {
	a := NewZeroArray(size)
	for i := range a.values {
		a.values[i] = val
	}
	return a
}

// ArrayFrom returns an Array with the size and components of v.
func ArrayFrom(v Vector) *Array {
	return &Array{values: v.Values()}
}

// Size returns the number of components fixed at construction.
func (a *Array) Size() int { return len(a.values) }

func (a *Array) component(axis Axis) *float64 {
	if !axis.InRange(len(a.values)) {
		return nil
	}
	return &a.values[axis]
}

// Axis returns the component at a, or an *AxisError when a is out of range.
func (a *Array) Axis(axis Axis) (float64, error) {
	if !axis.InRange(len(a.values)) {
		return 0, &AxisError{Axis: axis, Size: len(a.values)}
	}
	return a.values[axis], nil
}

// AxisOrZero returns the component at a, or 0 when a is out of range.
func (a *Array) AxisOrZero(axis Axis) float64 {
	if !axis.InRange(len(a.values)) {
		return 0
	}
	return a.values[axis]
}

// SetAxis sets the component at a.
func (a *Array) SetAxis(axis Axis, value float64) (Vector, error) {
	return applyAxis(a, a.component(axis), axis, value, assign)
}

// AddAxis adds summand to the component at a.
func (a *Array) AddAxis(axis Axis, summand float64) (Vector, error) {
	return applyAxis(a, a.component(axis), axis, summand, plus)
}

// SubtractAxis subtracts subtrahend from the component at a.
func (a *Array) SubtractAxis(axis Axis, subtrahend float64) (Vector, error) {
	return applyAxis(a, a.component(axis), axis, subtrahend, minus)
}

// MultiplyAxis multiplies the component at a by multiplier.
func (a *Array) MultiplyAxis(axis Axis, multiplier float64) (Vector, error) {
	return applyAxis(a, a.component(axis), axis, multiplier, times)
}

// DivideAxis divides the component at a by divisor.
func (a *Array) DivideAxis(axis Axis, divisor float64) (Vector, error) {
	return applyAxis(a, a.component(axis), axis, divisor, over)
}

// Set copies other's axes, reading missing ones as zero.
func (a *Array) Set(other Vector) Vector {
	for i := range a.values {
		a.values[i] = other.AxisOrZero(Axis(i))
	}
	return a
}

// Add adds summand axis by axis.
func (a *Array) Add(summand Vector) Vector {
	for i := range a.values {
		a.values[i] += summand.AxisOrZero(Axis(i))
	}
	return a
}

// Subtract subtracts subtrahend axis by axis.
func (a *Array) Subtract(subtrahend Vector) Vector {
	for i := range a.values {
		a.values[i] -= subtrahend.AxisOrZero(Axis(i))
	}
	return a
}

// Multiply scales every component by multiplier.
func (a *Array) Multiply(multiplier float64) Vector {
	for i := range a.values {
		a.values[i] *= multiplier
	}
	return a
}

// Divide divides every component by divisor.
func (a *Array) Divide(divisor float64) Vector {
	for i := range a.values {
		a.values[i] /= divisor
	}
	return a
}

// Length returns the Euclidean norm (\(\sqrt{\sum_i v_i^2}\)).
func (a *Array) Length() float64 {
	return floats.Norm(a.values, 2)
}

// Distance returns the Euclidean distance to other.
//
// Both vectors must have the same size; otherwise a *SizeError is returned.
func (a *Array) Distance(other Vector) (float64, error) {
	if other.Size() != len(a.values) {
		return 0, &SizeError{Expected: len(a.values), Actual: other.Size()}
	}
	return Distance(a, other), nil
}

// Normalize scales the vector to unit length in place.
func (a *Array) Normalize() Vector {
	length := a.Length()
	for i := range a.values {
		a.values[i] /= length
	}
	return a
}

// ToNormalized returns a unit-length copy.
func (a *Array) ToNormalized() Vector {
	return a.clone().Normalize()
}

// VectorTo returns other - a (element-wise subtraction) as a new Array of
// a's size.
func (a *Array) VectorTo(other Vector) Vector {
	return a.to(other)
}

// DirectionTo returns the unit vector pointing toward other.
func (a *Array) DirectionTo(other Vector) Vector {
	return a.to(other).Normalize()
}

func (a *Array) to(other Vector) *Array {
	result := NewZeroArray(len(a.values))
	for i := range a.values {
		result.values[i] = other.AxisOrZero(Axis(i)) - a.values[i]
	}
	return result
}

// Equal reports whether other has the same size and components.
func (a *Array) Equal(other Vector) bool { return Equal(a, other) }

// Clone returns an independent copy.
func (a *Array) Clone() Vector { return a.clone() }

func (a *Array) clone() *Array {
	return NewArray(a.values...)
}

// Values returns the components in axis order.
func (a *Array) Values() []float64 {
	out := make([]float64, len(a.values))
	copy(out, a.values)
	return out
}

// String formats the components as (a, b, ...).
func (a *Array) String() string { return formatValues(a.values...) }
