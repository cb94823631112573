package vectors

import "gonum.org/v1/gonum/floats"

// Size3D is the number of components of a Vector3D.
const Size3D = 3

// Vector3D is a vector in space.
type Vector3D struct {
	X, Y, Z float64
}

var _ Vector = (*Vector3D)(nil)

// NewVector3D returns a 3D vector with the given components.
func NewVector3D(x, y, z float64) *Vector3D {
	return &Vector3D{X: x, Y: y, Z: z}
}

// ZeroVector3D returns a 3D vector with every component set to zero.
func ZeroVector3D() *Vector3D {
	return &Vector3D{}
}

// Vector3DFrom converts v to a Vector3D. Axes v lacks are set to zero and extra
// axes are dropped.
func Vector3DFrom(v Vector) *Vector3D {
	if same, ok := v.(*Vector3D); ok {
		c := *same
		return &c
	}
	return &Vector3D{X: v.AxisOrZero(X), Y: v.AxisOrZero(Y), Z: v.AxisOrZero(Z)}
}

// Size returns Size3D.
func (v *Vector3D) Size() int { return Size3D }

func (v *Vector3D) component(a Axis) *float64 {
	switch a {
	case X:
		return &v.X
	case Y:
		return &v.Y
	case Z:
		return &v.Z
	}
	return nil
}

// Axis returns the component at a, or an *AxisError when a is out of range.
func (v *Vector3D) Axis(a Axis) (float64, error) {
	p := v.component(a)
	if p == nil {
		return 0, &AxisError{Axis: a, Size: Size3D}
	}
	return *p, nil
}

// AxisOrZero returns the component at a, or 0 when a is out of range.
func (v *Vector3D) AxisOrZero(a Axis) float64 {
	if p := v.component(a); p != nil {
		return *p
	}
	return 0
}

// SetAxis sets the component at a.
func (v *Vector3D) SetAxis(a Axis, value float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, value, assign)
}

// AddAxis adds summand to the component at a.
func (v *Vector3D) AddAxis(a Axis, summand float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, summand, plus)
}

// SubtractAxis subtracts subtrahend from the component at a.
func (v *Vector3D) SubtractAxis(a Axis, subtrahend float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, subtrahend, minus)
}

// MultiplyAxis multiplies the component at a by multiplier.
func (v *Vector3D) MultiplyAxis(a Axis, multiplier float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, multiplier, times)
}

// DivideAxis divides the component at a by divisor.
func (v *Vector3D) DivideAxis(a Axis, divisor float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, divisor, over)
}

// SetX sets the x component.
func (v *Vector3D) SetX(value float64) *Vector3D {
	v.X = value
	return v
}

// AddX adds summand to x.
func (v *Vector3D) AddX(summand float64) *Vector3D {
	v.X += summand
	return v
}

// SubtractX subtracts subtrahend from x.
func (v *Vector3D) SubtractX(subtrahend float64) *Vector3D {
	v.X -= subtrahend
	return v
}

// MultiplyX multiplies x by multiplier.
func (v *Vector3D) MultiplyX(multiplier float64) *Vector3D {
	v.X *= multiplier
	return v
}

// DivideX divides x by divisor.
func (v *Vector3D) DivideX(divisor float64) *Vector3D {
	v.X /= divisor
	return v
}

// SetY sets the y component.
func (v *Vector3D) SetY(value float64) *Vector3D {
	v.Y = value
	return v
}

// AddY adds summand to y.
func (v *Vector3D) AddY(summand float64) *Vector3D {
	v.Y += summand
	return v
}

// SubtractY subtracts subtrahend from y.
func (v *Vector3D) SubtractY(subtrahend float64) *Vector3D {
	v.Y -= subtrahend
	return v
}

// MultiplyY multiplies y by multiplier.
func (v *Vector3D) MultiplyY(multiplier float64) *Vector3D {
	v.Y *= multiplier
	return v
}

// DivideY divides y by divisor.
func (v *Vector3D) DivideY(divisor float64) *Vector3D {
	v.Y /= divisor
	return v
}

// SetZ sets the z component.
func (v *Vector3D) SetZ(value float64) *Vector3D {
	v.Z = value
	return v
}

// AddZ adds summand to z.
func (v *Vector3D) AddZ(summand float64) *Vector3D {
	v.Z += summand
	return v
}

// SubtractZ subtracts subtrahend from z.
func (v *Vector3D) SubtractZ(subtrahend float64) *Vector3D {
	v.Z -= subtrahend
	return v
}

// MultiplyZ multiplies z by multiplier.
func (v *Vector3D) MultiplyZ(multiplier float64) *Vector3D {
	v.Z *= multiplier
	return v
}

// DivideZ divides z by divisor.
func (v *Vector3D) DivideZ(divisor float64) *Vector3D {
	v.Z /= divisor
	return v
}

// SetValues replaces every component.
func (v *Vector3D) SetValues(x, y, z float64) *Vector3D {
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

// AddValues adds each value to its component.
func (v *Vector3D) AddValues(x, y, z float64) *Vector3D {
	v.X += x
	v.Y += y
	v.Z += z
	return v
}

// SubtractValues subtracts each value from its component.
func (v *Vector3D) SubtractValues(x, y, z float64) *Vector3D {
	v.X -= x
	v.Y -= y
	v.Z -= z
	return v
}

// Set copies other's axes, reading missing ones as zero.
func (v *Vector3D) Set(other Vector) Vector {
	v.X = other.AxisOrZero(X)
	v.Y = other.AxisOrZero(Y)
	v.Z = other.AxisOrZero(Z)
	return v
}

// Add adds summand's axes; missing ones count as zero.
func (v *Vector3D) Add(summand Vector) Vector {
	v.X += summand.AxisOrZero(X)
	v.Y += summand.AxisOrZero(Y)
	v.Z += summand.AxisOrZero(Z)
	return v
}

// Subtract subtracts subtrahend's axes; missing ones count as zero.
func (v *Vector3D) Subtract(subtrahend Vector) Vector {
	v.X -= subtrahend.AxisOrZero(X)
	v.Y -= subtrahend.AxisOrZero(Y)
	v.Z -= subtrahend.AxisOrZero(Z)
	return v
}

// Multiply scales every component by multiplier.
func (v *Vector3D) Multiply(multiplier float64) Vector {
	v.X *= multiplier
	v.Y *= multiplier
	v.Z *= multiplier
	return v
}

// Divide divides every component by divisor.
func (v *Vector3D) Divide(divisor float64) Vector {
	v.X /= divisor
	v.Y /= divisor
	v.Z /= divisor
	return v
}

// Length returns the Euclidean norm.
func (v *Vector3D) Length() float64 { return floats.Norm(v.Values(), 2) }

// Distance returns the lenient distance to other and never fails.
func (v *Vector3D) Distance(other Vector) (float64, error) {
	return Distance(v, other), nil
}

// Normalize scales the vector to unit length in place.
func (v *Vector3D) Normalize() Vector {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
	return v
}

// ToNormalized returns a unit-length copy.
func (v *Vector3D) ToNormalized() Vector {
	length := v.Length()
	return &Vector3D{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// VectorTo returns other minus v as a new vector.
func (v *Vector3D) VectorTo(other Vector) Vector {
	return v.to(other)
}

// DirectionTo returns the unit vector pointing toward other.
func (v *Vector3D) DirectionTo(other Vector) Vector {
	return v.to(other).Normalize()
}

func (v *Vector3D) to(other Vector) *Vector3D {
	return &Vector3D{X: other.AxisOrZero(X) - v.X, Y: other.AxisOrZero(Y) - v.Y, Z: other.AxisOrZero(Z) - v.Z}
}

// Equal reports whether other has the same size and components.
func (v *Vector3D) Equal(other Vector) bool { return Equal(v, other) }

// Clone returns an independent copy.
func (v *Vector3D) Clone() Vector {
	c := *v
	return &c
}

// Values returns a new slice of the components.
func (v *Vector3D) Values() []float64 { return []float64{v.X, v.Y, v.Z} }

// String formats the components as (x, y, z).
func (v *Vector3D) String() string { return formatValues(v.X, v.Y, v.Z) }
