package vectors

import "gonum.org/v1/gonum/floats"

// Size5D is the number of components of a Vector5D.
const Size5D = 5

// Vector5D is a vector with x, y, z, w and v components.
type Vector5D struct {
	X, Y, Z, W, V float64
}

var _ Vector = (*Vector5D)(nil)

// NewVector5D returns a 5D vector with the given components.
func NewVector5D(x, y, z, w, v float64) *Vector5D {
	return &Vector5D{X: x, Y: y, Z: z, W: w, V: v}
}

// ZeroVector5D returns a 5D vector with every component set to zero.
func ZeroVector5D() *Vector5D {
	return &Vector5D{}
}

// Vector5DFrom converts v to a Vector5D. Axes v lacks are set to zero and extra
// axes are dropped.
func Vector5DFrom(v Vector) *Vector5D {
	if same, ok := v.(*Vector5D); ok {
		c := *same
		return &c
	}
	return &Vector5D{X: v.AxisOrZero(X), Y: v.AxisOrZero(Y), Z: v.AxisOrZero(Z), W: v.AxisOrZero(W), V: v.AxisOrZero(V)}
}

// Size returns Size5D.
func (vec *Vector5D) Size() int { return Size5D }

func (vec *Vector5D) component(a Axis) *float64 {
	switch a {
	case X:
		return &vec.X
	case Y:
		return &vec.Y
	case Z:
		return &vec.Z
	case W:
		return &vec.W
	case V:
		return &vec.V
	}
	return nil
}

// Axis returns the component at a, or an *AxisError when a is out of range.
func (vec *Vector5D) Axis(a Axis) (float64, error) {
	p := vec.component(a)
	if p == nil {
		return 0, &AxisError{Axis: a, Size: Size5D}
	}
	return *p, nil
}

// AxisOrZero returns the component at a, or 0 when a is out of range.
func (vec *Vector5D) AxisOrZero(a Axis) float64 {
	if p := vec.component(a); p != nil {
		return *p
	}
	return 0
}

// SetAxis sets the component at a.
func (vec *Vector5D) SetAxis(a Axis, value float64) (Vector, error) {
	return applyAxis(vec, vec.component(a), a, value, assign)
}

// AddAxis adds summand to the component at a.
func (vec *Vector5D) AddAxis(a Axis, summand float64) (Vector, error) {
	return applyAxis(vec, vec.component(a), a, summand, plus)
}

// SubtractAxis subtracts subtrahend from the component at a.
func (vec *Vector5D) SubtractAxis(a Axis, subtrahend float64) (Vector, error) {
	return applyAxis(vec, vec.component(a), a, subtrahend, minus)
}

// MultiplyAxis multiplies the component at a by multiplier.
func (vec *Vector5D) MultiplyAxis(a Axis, multiplier float64) (Vector, error) {
	return applyAxis(vec, vec.component(a), a, multiplier, times)
}

// DivideAxis divides the component at a by divisor.
func (vec *Vector5D) DivideAxis(a Axis, divisor float64) (Vector, error) {
	return applyAxis(vec, vec.component(a), a, divisor, over)
}

// SetX sets the x component.
func (vec *Vector5D) SetX(value float64) *Vector5D {
	vec.X = value
	return vec
}

// AddX adds summand to x.
func (vec *Vector5D) AddX(summand float64) *Vector5D {
	vec.X += summand
	return vec
}

// SubtractX subtracts subtrahend from x.
func (vec *Vector5D) SubtractX(subtrahend float64) *Vector5D {
	vec.X -= subtrahend
	return vec
}

// MultiplyX multiplies x by multiplier.
func (vec *Vector5D) MultiplyX(multiplier float64) *Vector5D {
	vec.X *= multiplier
	return vec
}

// DivideX divides x by divisor.
func (vec *Vector5D) DivideX(divisor float64) *Vector5D {
	vec.X /= divisor
	return vec
}

// SetY sets the y component.
func (vec *Vector5D) SetY(value float64) *Vector5D {
	vec.Y = value
	return vec
}

// AddY adds summand to y.
func (vec *Vector5D) AddY(summand float64) *Vector5D {
	vec.Y += summand
	return vec
}

// SubtractY subtracts subtrahend from y.
func (vec *Vector5D) SubtractY(subtrahend float64) *Vector5D {
	vec.Y -= subtrahend
	return vec
}

// MultiplyY multiplies y by multiplier.
func (vec *Vector5D) MultiplyY(multiplier float64) *Vector5D {
	vec.Y *= multiplier
	return vec
}

// DivideY divides y by divisor.
func (vec *Vector5D) DivideY(divisor float64) *Vector5D {
	vec.Y /= divisor
	return vec
}

// SetZ sets the z component.
func (vec *Vector5D) SetZ(value float64) *Vector5D {
	vec.Z = value
	return vec
}

// AddZ adds summand to z.
func (vec *Vector5D) AddZ(summand float64) *Vector5D {
	vec.Z += summand
	return vec
}

// SubtractZ subtracts subtrahend from z.
func (vec *Vector5D) SubtractZ(subtrahend float64) *Vector5D {
	vec.Z -= subtrahend
	return vec
}

// MultiplyZ multiplies z by multiplier.
func (vec *Vector5D) MultiplyZ(multiplier float64) *Vector5D {
	vec.Z *= multiplier
	return vec
}

// DivideZ divides z by divisor.
func (vec *Vector5D) DivideZ(divisor float64) *Vector5D {
	vec.Z /= divisor
	return vec
}

// SetW sets the w component.
func (vec *Vector5D) SetW(value float64) *Vector5D {
	vec.W = value
	return vec
}

// AddW adds summand to w.
func (vec *Vector5D) AddW(summand float64) *Vector5D {
	vec.W += summand
	return vec
}

// SubtractW subtracts subtrahend from w.
func (vec *Vector5D) SubtractW(subtrahend float64) *Vector5D {
	vec.W -= subtrahend
	return vec
}

// MultiplyW multiplies w by multiplier.
func (vec *Vector5D) MultiplyW(multiplier float64) *Vector5D {
	vec.W *= multiplier
	return vec
}

// DivideW divides w by divisor.
func (vec *Vector5D) DivideW(divisor float64) *Vector5D {
	vec.W /= divisor
	return vec
}

// SetV sets the v component.
func (vec *Vector5D) SetV(value float64) *Vector5D {
	vec.V = value
	return vec
}

// AddV adds summand to v.
func (vec *Vector5D) AddV(summand float64) *Vector5D {
	vec.V += summand
	return vec
}

// SubtractV subtracts subtrahend from v.
func (vec *Vector5D) SubtractV(subtrahend float64) *Vector5D {
	vec.V -= subtrahend
	return vec
}

// MultiplyV multiplies v by multiplier.
func (vec *Vector5D) MultiplyV(multiplier float64) *Vector5D {
	vec.V *= multiplier
	return vec
}

// DivideV divides v by divisor.
func (vec *Vector5D) DivideV(divisor float64) *Vector5D {
	vec.V /= divisor
	return vec
}

// SetValues replaces every component.
func (vec *Vector5D) SetValues(x, y, z, w, v float64) *Vector5D {
	vec.X = x
	vec.Y = y
	vec.Z = z
	vec.W = w
	vec.V = v
	return vec
}

// AddValues adds each value to its component.
func (vec *Vector5D) AddValues(x, y, z, w, v float64) *Vector5D {
	vec.X += x
	vec.Y += y
	vec.Z += z
	vec.W += w
	vec.V += v
	return vec
}

// SubtractValues subtracts each value from its component.
func (vec *Vector5D) SubtractValues(x, y, z, w, v float64) *Vector5D {
	vec.X -= x
	vec.Y -= y
	vec.Z -= z
	vec.W -= w
	vec.V -= v
	return vec
}

// Set copies other's axes, reading missing ones as zero.
func (vec *Vector5D) Set(other Vector) Vector {
	vec.X = other.AxisOrZero(X)
	vec.Y = other.AxisOrZero(Y)
	vec.Z = other.AxisOrZero(Z)
	vec.W = other.AxisOrZero(W)
	vec.V = other.AxisOrZero(V)
	return vec
}

// Add adds summand's axes; missing ones count as zero.
func (vec *Vector5D) Add(summand Vector) Vector {
	vec.X += summand.AxisOrZero(X)
	vec.Y += summand.AxisOrZero(Y)
	vec.Z += summand.AxisOrZero(Z)
	vec.W += summand.AxisOrZero(W)
	vec.V += summand.AxisOrZero(V)
	return vec
}

// Subtract subtracts subtrahend's axes; missing ones count as zero.
func (vec *Vector5D) Subtract(subtrahend Vector) Vector {
	vec.X -= subtrahend.AxisOrZero(X)
	vec.Y -= subtrahend.AxisOrZero(Y)
	vec.Z -= subtrahend.AxisOrZero(Z)
	vec.W -= subtrahend.AxisOrZero(W)
	vec.V -= subtrahend.AxisOrZero(V)
	return vec
}

// Multiply scales every component by multiplier.
func (vec *Vector5D) Multiply(multiplier float64) Vector {
	vec.X *= multiplier
	vec.Y *= multiplier
	vec.Z *= multiplier
	vec.W *= multiplier
	vec.V *= multiplier
	return vec
}

// Divide divides every component by divisor.
func (vec *Vector5D) Divide(divisor float64) Vector {
	vec.X /= divisor
	vec.Y /= divisor
	vec.Z /= divisor
	vec.W /= divisor
	vec.V /= divisor
	return vec
}

// Length returns the Euclidean norm.
func (vec *Vector5D) Length() float64 { return floats.Norm(vec.Values(), 2) }

// Distance treats axes other lacks as zero and never fails.
func (vec *Vector5D) Distance(other Vector) (float64, error) {
	return Distance(vec, other), nil
}

// Normalize divides every component by Length. A zero vector becomes all NaN.
func (vec *Vector5D) Normalize() Vector {
	length := vec.Length()
	vec.X /= length
	vec.Y /= length
	vec.Z /= length
	vec.W /= length
	vec.V /= length
	return vec
}

// ToNormalized returns a unit-length copy.
func (vec *Vector5D) ToNormalized() Vector {
	length := vec.Length()
	return &Vector5D{X: vec.X / length, Y: vec.Y / length, Z: vec.Z / length, W: vec.W / length, V: vec.V / length}
}

// VectorTo returns other minus vec as a new vector.
func (vec *Vector5D) VectorTo(other Vector) Vector {
	return vec.to(other)
}

// DirectionTo returns the unit vector pointing toward other.
func (vec *Vector5D) DirectionTo(other Vector) Vector {
	return vec.to(other).Normalize()
}

func (vec *Vector5D) to(other Vector) *Vector5D {
	return &Vector5D{X: other.AxisOrZero(X) - vec.X, Y: other.AxisOrZero(Y) - vec.Y, Z: other.AxisOrZero(Z) - vec.Z, W: other.AxisOrZero(W) - vec.W, V: other.AxisOrZero(V) - vec.V}
}

// Equal reports whether other has the same size and components.
func (vec *Vector5D) Equal(other Vector) bool { return Equal(vec, other) }

// Clone returns an independent copy.
func (vec *Vector5D) Clone() Vector {
	c := *vec
	return &c
}

// Values returns a new slice of the components.
func (vec *Vector5D) Values() []float64 { return []float64{vec.X, vec.Y, vec.Z, vec.W, vec.V} }

// String formats the components as (x, y, z, w, v).
func (vec *Vector5D) String() string { return formatValues(vec.X, vec.Y, vec.Z, vec.W, vec.V) }
