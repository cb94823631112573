package vectors

import "gonum.org/v1/gonum/floats"

// Size1D is the number of components of a Vector1D.
const Size1D = 1

// Vector1D is a vector on a line. Its length is the absolute value of X.
type Vector1D struct {
	X float64
}

var _ Vector = (*Vector1D)(nil)

// NewVector1D returns a 1D vector holding x.
func NewVector1D(x float64) *Vector1D {
	return &Vector1D{X: x}
}

// ZeroVector1D returns the 1D zero vector.
func ZeroVector1D() *Vector1D {
	return &Vector1D{}
}

// Vector1DFrom converts v to a Vector1D. Axes v lacks are set to zero and extra
// axes are dropped.
func Vector1DFrom(v Vector) *Vector1D {
	if same, ok := v.(*Vector1D); ok {
		c := *same
		return &c
	}
	return &Vector1D{X: v.AxisOrZero(X)}
}

// Size returns Size1D.
func (v *Vector1D) Size() int { return Size1D }

func (v *Vector1D) component(a Axis) *float64 {
	switch a {
	case X:
		return &v.X
	}
	return nil
}

// Axis returns the component at a, or an *AxisError when a is out of range.
func (v *Vector1D) Axis(a Axis) (float64, error) {
	p := v.component(a)
	if p == nil {
		return 0, &AxisError{Axis: a, Size: Size1D}
	}
	return *p, nil
}

// AxisOrZero returns the component at a, or 0 when a is out of range.
func (v *Vector1D) AxisOrZero(a Axis) float64 {
	if p := v.component(a); p != nil {
		return *p
	}
	return 0
}

// SetAxis sets the component at a.
func (v *Vector1D) SetAxis(a Axis, value float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, value, assign)
}

// AddAxis adds summand to the component at a.
func (v *Vector1D) AddAxis(a Axis, summand float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, summand, plus)
}

// SubtractAxis subtracts subtrahend from the component at a.
func (v *Vector1D) SubtractAxis(a Axis, subtrahend float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, subtrahend, minus)
}

// MultiplyAxis multiplies the component at a by multiplier.
func (v *Vector1D) MultiplyAxis(a Axis, multiplier float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, multiplier, times)
}

// DivideAxis divides the component at a by divisor.
func (v *Vector1D) DivideAxis(a Axis, divisor float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, divisor, over)
}

// SetX sets the x component.
func (v *Vector1D) SetX(value float64) *Vector1D {
	v.X = value
	return v
}

// AddX adds summand to x.
func (v *Vector1D) AddX(summand float64) *Vector1D {
	v.X += summand
	return v
}

// SubtractX subtracts subtrahend from x.
func (v *Vector1D) SubtractX(subtrahend float64) *Vector1D {
	v.X -= subtrahend
	return v
}

// MultiplyX multiplies x by multiplier.
func (v *Vector1D) MultiplyX(multiplier float64) *Vector1D {
	v.X *= multiplier
	return v
}

// DivideX divides x by divisor.
func (v *Vector1D) DivideX(divisor float64) *Vector1D {
	v.X /= divisor
	return v
}

// SetValues replaces every component.
func (v *Vector1D) SetValues(x float64) *Vector1D {
	v.X = x
	return v
}

// AddValues adds each value to its component.
func (v *Vector1D) AddValues(x float64) *Vector1D {
	v.X += x
	return v
}

// SubtractValues subtracts each value from its component.
func (v *Vector1D) SubtractValues(x float64) *Vector1D {
	v.X -= x
	return v
}

// Set copies other's axes, reading missing ones as zero.
func (v *Vector1D) Set(other Vector) Vector {
	v.X = other.AxisOrZero(X)
	return v
}

// Add adds summand's axes; missing ones count as zero.
func (v *Vector1D) Add(summand Vector) Vector {
	v.X += summand.AxisOrZero(X)
	return v
}

// Subtract subtracts subtrahend's axes; missing ones count as zero.
func (v *Vector1D) Subtract(subtrahend Vector) Vector {
	v.X -= subtrahend.AxisOrZero(X)
	return v
}

// Multiply scales every component by multiplier.
func (v *Vector1D) Multiply(multiplier float64) Vector {
	v.X *= multiplier
	return v
}

// Divide divides every component by divisor.
func (v *Vector1D) Divide(divisor float64) Vector {
	v.X /= divisor
	return v
}

// Length returns the Euclidean norm.
func (v *Vector1D) Length() float64 { return floats.Norm(v.Values(), 2) }

// Distance reads only the x axis of other.
func (v *Vector1D) Distance(other Vector) (float64, error) {
	return Distance(v, other), nil
}

// Normalize scales the vector to unit length in place.
func (v *Vector1D) Normalize() Vector {
	length := v.Length()
	v.X /= length
	return v
}

// ToNormalized returns a unit-length copy.
func (v *Vector1D) ToNormalized() Vector {
	length := v.Length()
	return &Vector1D{X: v.X / length}
}

// VectorTo returns other minus v as a new vector.
func (v *Vector1D) VectorTo(other Vector) Vector {
	return v.to(other)
}

// DirectionTo returns the unit vector pointing toward other.
func (v *Vector1D) DirectionTo(other Vector) Vector {
	return v.to(other).Normalize()
}

func (v *Vector1D) to(other Vector) *Vector1D {
	return &Vector1D{X: other.AxisOrZero(X) - v.X}
}

// Equal reports whether other has the same size and components.
func (v *Vector1D) Equal(other Vector) bool { return Equal(v, other) }

// Clone returns an independent copy.
func (v *Vector1D) Clone() Vector {
	c := *v
	return &c
}

// Values returns a new slice of the components.
func (v *Vector1D) Values() []float64 { return []float64{v.X} }

// String formats the components as (x).
func (v *Vector1D) String() string { return formatValues(v.X) }
