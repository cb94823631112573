package vectors

import "gonum.org/v1/gonum/floats"

// Size4D is the number of components of a Vector4D.
const Size4D = 4

// Vector4D is a vector with x, y, z and w components.
type Vector4D struct {
	X, Y, Z, W float64
}

var _ Vector = (*Vector4D)(nil)

// NewVector4D returns a 4D vector with the given components.
func NewVector4D(x, y, z, w float64) *Vector4D {
	return &Vector4D{X: x, Y: y, Z: z, W: w}
}

// ZeroVector4D returns a 4D vector with every component set to zero.
func ZeroVector4D() *Vector4D {
	return &Vector4D{}
}

// Vector4DFrom converts v to a Vector4D. Axes v lacks are set to zero and extra
// axes are dropped.
func Vector4DFrom(v Vector) *Vector4D {
	if same, ok := v.(*Vector4D); ok {
		c := *same
		return &c
	}
	return &Vector4D{X: v.AxisOrZero(X), Y: v.AxisOrZero(Y), Z: v.AxisOrZero(Z), W: v.AxisOrZero(W)}
}

// Size returns Size4D.
func (v *Vector4D) Size() int { return Size4D }

func (v *Vector4D) component(a Axis) *float64 {
	switch a {
	case X:
		return &v.X
	case Y:
		return &v.Y
	case Z:
		return &v.Z
	case W:
		return &v.W
	}
	return nil
}

// Axis returns the component at a, or an *AxisError when a is out of range.
func (v *Vector4D) Axis(a Axis) (float64, error) {
	p := v.component(a)
	if p == nil {
		return 0, &AxisError{Axis: a, Size: Size4D}
	}
	return *p, nil
}

// AxisOrZero returns the component at a, or 0 when a is out of range.
func (v *Vector4D) AxisOrZero(a Axis) float64 {
	if p := v.component(a); p != nil {
		return *p
	}
	return 0
}

// SetAxis sets the component at a.
func (v *Vector4D) SetAxis(a Axis, value float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, value, assign)
}

// AddAxis adds summand to the component at a.
func (v *Vector4D) AddAxis(a Axis, summand float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, summand, plus)
}

// SubtractAxis subtracts subtrahend from the component at a.
func (v *Vector4D) SubtractAxis(a Axis, subtrahend float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, subtrahend, minus)
}

// MultiplyAxis multiplies the component at a by multiplier.
func (v *Vector4D) MultiplyAxis(a Axis, multiplier float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, multiplier, times)
}

// DivideAxis divides the component at a by divisor.
func (v *Vector4D) DivideAxis(a Axis, divisor float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, divisor, over)
}

// SetX sets the x component.
func (v *Vector4D) SetX(value float64) *Vector4D {
	v.X = value
	return v
}

// AddX adds summand to the x component.
func (v *Vector4D) AddX(summand float64) *Vector4D {
	v.X += summand
	return v
}

// SubtractX subtracts subtrahend from the x component.
func (v *Vector4D) SubtractX(subtrahend float64) *Vector4D {
	v.X -= subtrahend
	return v
}

// MultiplyX scales the x component by multiplier.
func (v *Vector4D) MultiplyX(multiplier float64) *Vector4D {
	v.X *= multiplier
	return v
}

// DivideX divides the x component by divisor.
func (v *Vector4D) DivideX(divisor float64) *Vector4D {
	v.X /= divisor
	return v
}

// SetY sets the y component.
func (v *Vector4D) SetY(value float64) *Vector4D {
	v.Y = value
	return v
}

// AddY adds summand to the y component.
func (v *Vector4D) AddY(summand float64) *Vector4D {
	v.Y += summand
	return v
}

// SubtractY subtracts subtrahend from the y component.
func (v *Vector4D) SubtractY(subtrahend float64) *Vector4D {
	v.Y -= subtrahend
	return v
}

// MultiplyY scales the y component by multiplier.
func (v *Vector4D) MultiplyY(multiplier float64) *Vector4D {
	v.Y *= multiplier
	return v
}

// DivideY divides the y component by divisor.
func (v *Vector4D) DivideY(divisor float64) *Vector4D {
	v.Y /= divisor
	return v
}

// SetZ sets the z component.
func (v *Vector4D) SetZ(value float64) *Vector4D {
	v.Z = value
	return v
}

// AddZ adds summand to the z component.
func (v *Vector4D) AddZ(summand float64) *Vector4D {
	v.Z += summand
	return v
}

// SubtractZ subtracts subtrahend from the z component.
func (v *Vector4D) SubtractZ(subtrahend float64) *Vector4D {
	v.Z -= subtrahend
	return v
}

// MultiplyZ scales the z component by multiplier.
func (v *Vector4D) MultiplyZ(multiplier float64) *Vector4D {
	v.Z *= multiplier
	return v
}

// DivideZ divides the z component by divisor.
func (v *Vector4D) DivideZ(divisor float64) *Vector4D {
	v.Z /= divisor
	return v
}

// SetW sets the w component.
func (v *Vector4D) SetW(value float64) *Vector4D {
	v.W = value
	return v
}

// AddW adds summand to the w component.
func (v *Vector4D) AddW(summand float64) *Vector4D {
	v.W += summand
	return v
}

// SubtractW subtracts subtrahend from the w component.
func (v *Vector4D) SubtractW(subtrahend float64) *Vector4D {
	v.W -= subtrahend
	return v
}

// MultiplyW scales the w component by multiplier.
func (v *Vector4D) MultiplyW(multiplier float64) *Vector4D {
	v.W *= multiplier
	return v
}

// DivideW divides the w component by divisor.
func (v *Vector4D) DivideW(divisor float64) *Vector4D {
	v.W /= divisor
	return v
}

// SetValues replaces every component.
func (v *Vector4D) SetValues(x, y, z, w float64) *Vector4D {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
	return v
}

// AddValues adds the given values component-wise.
func (v *Vector4D) AddValues(x, y, z, w float64) *Vector4D {
	v.X += x
	v.Y += y
	v.Z += z
	v.W += w
	return v
}

// SubtractValues subtracts the given values component-wise.
func (v *Vector4D) SubtractValues(x, y, z, w float64) *Vector4D {
	v.X -= x
	v.Y -= y
	v.Z -= z
	v.W -= w
	return v
}

// Set copies other's axes, reading missing ones as zero.
func (v *Vector4D) Set(other Vector) Vector {
	v.X = other.AxisOrZero(X)
	v.Y = other.AxisOrZero(Y)
	v.Z = other.AxisOrZero(Z)
	v.W = other.AxisOrZero(W)
	return v
}

// Add adds summand axis by axis.
func (v *Vector4D) Add(summand Vector) Vector {
	v.X += summand.AxisOrZero(X)
	v.Y += summand.AxisOrZero(Y)
	v.Z += summand.AxisOrZero(Z)
	v.W += summand.AxisOrZero(W)
	return v
}

// Subtract subtracts subtrahend axis by axis.
func (v *Vector4D) Subtract(subtrahend Vector) Vector {
	v.X -= subtrahend.AxisOrZero(X)
	v.Y -= subtrahend.AxisOrZero(Y)
	v.Z -= subtrahend.AxisOrZero(Z)
	v.W -= subtrahend.AxisOrZero(W)
	return v
}

// Multiply scales every component by multiplier.
func (v *Vector4D) Multiply(multiplier float64) Vector {
	v.X *= multiplier
	v.Y *= multiplier
	v.Z *= multiplier
	v.W *= multiplier
	return v
}

// Divide divides every component by divisor.
func (v *Vector4D) Divide(divisor float64) Vector {
	v.X /= divisor
	v.Y /= divisor
	v.Z /= divisor
	v.W /= divisor
	return v
}

// Length returns the Euclidean norm.
func (v *Vector4D) Length() float64 { return floats.Norm(v.Values(), 2) }

// Distance treats axes other lacks as zero and never fails.
func (v *Vector4D) Distance(other Vector) (float64, error) {
	return Distance(v, other), nil
}

// Normalize scales the vector to unit length in place.
func (v *Vector4D) Normalize() Vector {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
	v.W /= length
	return v
}

// ToNormalized returns a unit-length copy.
func (v *Vector4D) ToNormalized() Vector {
	length := v.Length()
	return &Vector4D{X: v.X / length, Y: v.Y / length, Z: v.Z / length, W: v.W / length}
}

// VectorTo returns other minus v as a new vector.
func (v *Vector4D) VectorTo(other Vector) Vector {
	return v.to(other)
}

// DirectionTo returns the unit vector pointing toward other.
func (v *Vector4D) DirectionTo(other Vector) Vector {
	return v.to(other).Normalize()
}

func (v *Vector4D) to(other Vector) *Vector4D {
	return &Vector4D{X: other.AxisOrZero(X) - v.X, Y: other.AxisOrZero(Y) - v.Y, Z: other.AxisOrZero(Z) - v.Z, W: other.AxisOrZero(W) - v.W}
}

// Equal reports whether other has the same size and components.
func (v *Vector4D) Equal(other Vector) bool { return Equal(v, other) }

// Clone returns an independent copy.
func (v *Vector4D) Clone() Vector {
	c := *v
	return &c
}

// Values returns the components in axis order.
func (v *Vector4D) Values() []float64 { return []float64{v.X, v.Y, v.Z, v.W} }

// String formats the components as (x, y, z, w).
func (v *Vector4D) String() string { return formatValues(v.X, v.Y, v.Z, v.W) }
