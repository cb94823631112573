package vectors

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Size2D is the number of components of a Vector2D.
const Size2D = 2

// Vector2D is a vector in the plane. Besides the Vector contract it answers
// heading queries: Angle, AngleTo and their degree variants.
type Vector2D struct {
	X, Y float64
}

var _ Vector = (*Vector2D)(nil)

// NewVector2D returns a 2D vector with the given components.
func NewVector2D(x, y float64) *Vector2D {
	return &Vector2D{X: x, Y: y}
}

// ZeroVector2D returns a 2D vector with every component set to zero.
func ZeroVector2D() *Vector2D {
	return &Vector2D{}
}

// Vector2DFrom converts v to a Vector2D. Axes v lacks are set to zero and extra
// axes are dropped.
func Vector2DFrom(v Vector) *Vector2D {
	if same, ok := v.(*Vector2D); ok {
		c := *same
		return &c
	}
	return &Vector2D{X: v.AxisOrZero(X), Y: v.AxisOrZero(Y)}
}

// FromAngle returns the vector of the given length pointing along the polar
// angle radians, measured counterclockwise from the x axis.
func FromAngle(radians, length float64) *Vector2D {
	return &Vector2D{X: math.Cos(radians) * length, Y: math.Sin(radians) * length}
}

// FromAngleDegrees is FromAngle with the angle given in degrees.
func FromAngleDegrees(degrees, length float64) *Vector2D {
	return FromAngle(toRadians(degrees), length)
}

// Size returns Size2D.
func (v *Vector2D) Size() int { return Size2D }

func (v *Vector2D) component(a Axis) *float64 {
	switch a {
	case X:
		return &v.X
	case Y:
		return &v.Y
	}
	return nil
}

// Axis returns the component at a, or an *AxisError when a is out of range.
func (v *Vector2D) Axis(a Axis) (float64, error) {
	p := v.component(a)
	if p == nil {
		return 0, &AxisError{Axis: a, Size: Size2D}
	}
	return *p, nil
}

// AxisOrZero returns the component at a, or 0 when a is out of range.
func (v *Vector2D) AxisOrZero(a Axis) float64 {
	if p := v.component(a); p != nil {
		return *p
	}
	return 0
}

// SetAxis sets the component at a.
func (v *Vector2D) SetAxis(a Axis, value float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, value, assign)
}

// AddAxis adds summand to the component at a.
func (v *Vector2D) AddAxis(a Axis, summand float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, summand, plus)
}

// SubtractAxis subtracts subtrahend from the component at a.
func (v *Vector2D) SubtractAxis(a Axis, subtrahend float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, subtrahend, minus)
}

// MultiplyAxis multiplies the component at a by multiplier.
func (v *Vector2D) MultiplyAxis(a Axis, multiplier float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, multiplier, times)
}

// DivideAxis divides the component at a by divisor.
func (v *Vector2D) DivideAxis(a Axis, divisor float64) (Vector, error) {
	return applyAxis(v, v.component(a), a, divisor, over)
}

// SetX is the named form of SetAxis(X, value).
func (v *Vector2D) SetX(value float64) *Vector2D {
	v.X = value
	return v
}

// AddX adds summand to the x component.
func (v *Vector2D) AddX(summand float64) *Vector2D {
	v.X += summand
	return v
}

// SubtractX subtracts subtrahend from the x component.
func (v *Vector2D) SubtractX(subtrahend float64) *Vector2D {
	v.X -= subtrahend
	return v
}

// MultiplyX scales the x component by multiplier.
func (v *Vector2D) MultiplyX(multiplier float64) *Vector2D {
	v.X *= multiplier
	return v
}

// DivideX divides the x component by divisor.
func (v *Vector2D) DivideX(divisor float64) *Vector2D {
	v.X /= divisor
	return v
}

// SetY sets the y component.
func (v *Vector2D) SetY(value float64) *Vector2D {
	v.Y = value
	return v
}

// AddY adds summand to the y component.
func (v *Vector2D) AddY(summand float64) *Vector2D {
	v.Y += summand
	return v
}

// SubtractY subtracts subtrahend from the y component.
func (v *Vector2D) SubtractY(subtrahend float64) *Vector2D {
	v.Y -= subtrahend
	return v
}

// MultiplyY scales the y component by multiplier.
func (v *Vector2D) MultiplyY(multiplier float64) *Vector2D {
	v.Y *= multiplier
	return v
}

// DivideY divides the y component by divisor.
func (v *Vector2D) DivideY(divisor float64) *Vector2D {
	v.Y /= divisor
	return v
}

// SetValues overwrites both components at once.
func (v *Vector2D) SetValues(x, y float64) *Vector2D {
	v.X = x
	v.Y = y
	return v
}

// AddValues adds the given values component-wise.
func (v *Vector2D) AddValues(x, y float64) *Vector2D {
	v.X += x
	v.Y += y
	return v
}

// SubtractValues subtracts the given values component-wise.
func (v *Vector2D) SubtractValues(x, y float64) *Vector2D {
	v.X -= x
	v.Y -= y
	return v
}

// Set copies other's axes, reading missing ones as zero.
func (v *Vector2D) Set(other Vector) Vector {
	v.X = other.AxisOrZero(X)
	v.Y = other.AxisOrZero(Y)
	return v
}

// Add adds summand axis by axis.
func (v *Vector2D) Add(summand Vector) Vector {
	v.X += summand.AxisOrZero(X)
	v.Y += summand.AxisOrZero(Y)
	return v
}

// Subtract subtracts subtrahend axis by axis.
func (v *Vector2D) Subtract(subtrahend Vector) Vector {
	v.X -= subtrahend.AxisOrZero(X)
	v.Y -= subtrahend.AxisOrZero(Y)
	return v
}

// Multiply scales every component by multiplier.
func (v *Vector2D) Multiply(multiplier float64) Vector {
	v.X *= multiplier
	v.Y *= multiplier
	return v
}

// Divide divides every component by divisor.
func (v *Vector2D) Divide(divisor float64) Vector {
	v.X /= divisor
	v.Y /= divisor
	return v
}

// Length returns the Euclidean norm, using gonum's scaled sum of squares.
func (v *Vector2D) Length() float64 {
	return floats.Norm(v.Values(), 2)
}

// Distance treats axes other lacks as zero and never fails.
func (v *Vector2D) Distance(other Vector) (float64, error) {
	return Distance(v, other), nil
}

// Normalize scales the vector to unit length in place.
func (v *Vector2D) Normalize() Vector {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

// ToNormalized returns a unit-length copy.
func (v *Vector2D) ToNormalized() Vector {
	length := v.Length()
	return &Vector2D{X: v.X / length, Y: v.Y / length}
}

// VectorTo returns other minus v as a new vector.
func (v *Vector2D) VectorTo(other Vector) Vector {
	return v.to(other)
}

// DirectionTo returns the unit vector pointing toward other.
func (v *Vector2D) DirectionTo(other Vector) Vector {
	return v.to(other).Normalize()
}

func (v *Vector2D) to(other Vector) *Vector2D {
	return &Vector2D{X: other.AxisOrZero(X) - v.X, Y: other.AxisOrZero(Y) - v.Y}
}

// Equal reports whether other has the same size and components.
func (v *Vector2D) Equal(other Vector) bool { return Equal(v, other) }

// Clone returns an independent copy.
func (v *Vector2D) Clone() Vector {
	c := *v
	return &c
}

// Values returns the components in axis order.
func (v *Vector2D) Values() []float64 { return []float64{v.X, v.Y} }

// String formats the components as (x, y).
func (v *Vector2D) String() string { return formatValues(v.X, v.Y) }

// Angle returns the heading of v in radians within [0, 2π). Unlike
// math.Atan2, negative headings are wrapped around the full circle.
func (v *Vector2D) Angle() float64 {
	angle := math.Atan2(v.Y, v.X)
	if angle >= 0 {
		return angle
	}
	return 2*math.Pi + angle
}

// AngleDegrees returns Angle in degrees within [0, 360).
func (v *Vector2D) AngleDegrees() float64 {
	return toDegrees(v.Angle())
}

// AngleTo returns the heading in radians from v toward other, computed as
// π plus the raw atan2 heading of v - other.
//
// Headings that land exactly on the 0/2π seam come out as 2π: from (1, 1)
// toward (100, 1) the result is 2π rather than 0.
func (v *Vector2D) AngleTo(other Vector) float64 {
	dx, dy := v.X-other.AxisOrZero(X), v.Y-other.AxisOrZero(Y)
	return math.Pi + math.Atan2(dy, dx)
}

// AngleDegreesTo is AngleTo in degrees, with the same 360 result on the seam.
func (v *Vector2D) AngleDegreesTo(other Vector) float64 {
	dx, dy := v.X-other.AxisOrZero(X), v.Y-other.AxisOrZero(Y)
	return 180 + toDegrees(math.Atan2(dy, dx))
}

func toRadians(degrees float64) float64 { return degrees * math.Pi / 180 }

func toDegrees(radians float64) float64 { return radians * 180 / math.Pi }
