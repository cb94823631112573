// Package vectors provides small mutable Euclidean vectors of fixed
// dimension (Vector1D through Vector5D) and a variable-length Array, all
// behind a single Vector contract.
//
// Operations that combine two vectors are sized by the receiver. When the
// operand is shorter, its missing axes read as zero; when it is longer, its
// extra axes are ignored. A Vector2D added to a Vector5D consumes only the
// first two axes of the 5D vector, and the receiver never changes size.
//
// Mutators work in place and return the receiver so calls can be chained:
//
//	v := vectors.NewVector3D(1, 2, 3)
//	v.Add(vectors.NewVector1D(4)).Multiply(2)
//
// Division by zero is not checked and follows IEEE-754, yielding Inf or NaN
// components. Normalizing a zero-length vector yields NaN components.
//
// Vectors are not safe for concurrent mutation.
package vectors

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is implemented by every vector type in this package.
type Vector interface {
	// Size returns the number of components. It never changes.
	Size() int

	// Axis returns the component at a, or an *AxisError when a is out of range.
	Axis(a Axis) (float64, error)
	// AxisOrZero returns the component at a, or 0 when a is out of range.
	AxisOrZero(a Axis) float64

	SetAxis(a Axis, value float64) (Vector, error)
	AddAxis(a Axis, summand float64) (Vector, error)
	SubtractAxis(a Axis, subtrahend float64) (Vector, error)
	MultiplyAxis(a Axis, multiplier float64) (Vector, error)
	DivideAxis(a Axis, divisor float64) (Vector, error)

	Set(other Vector) Vector
	Add(summand Vector) Vector
	Subtract(subtrahend Vector) Vector
	Multiply(multiplier float64) Vector
	Divide(divisor float64) Vector

	// Length returns the Euclidean norm.
	Length() float64
	// Distance returns the Euclidean distance to other. Fixed-size vectors
	// never fail; Array returns a *SizeError when the sizes differ.
	Distance(other Vector) (float64, error)

	// Normalize scales the vector in place to unit length.
	Normalize() Vector
	// ToNormalized returns a unit-length copy, leaving the receiver unchanged.
	ToNormalized() Vector
	// VectorTo returns other minus the receiver, sized like the receiver.
	VectorTo(other Vector) Vector
	// DirectionTo returns VectorTo(other) normalized.
	DirectionTo(other Vector) Vector

	Equal(other Vector) bool
	Clone() Vector
	// Values returns a fresh slice holding every component in axis order.
	Values() []float64
	String() string
}

// Values returns the components of v, reading them through the contract.
func Values(v Vector) []float64 {
	return sized(v, v.Size())
}

// sized reads the first n axes of v, with axes v lacks as zero.
func sized(v Vector, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v.AxisOrZero(Axis(i))
	}
	return out
}

// Equal reports whether a and b have the same size and identical components.
// Comparison is exact, so NaN components never compare equal.
func Equal(a, b Vector) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		av, err := a.Axis(Axis(i))
		if err != nil {
			return false
		}
		bv, err := b.Axis(Axis(i))
		if err != nil {
			return false
		}
		if av != bv {
			return false
		}
	}
	return true
}

// Length returns the Euclidean norm of v. Every vector type computes its
// Length the same way, with gonum's scaled sum of squares.
func Length(v Vector) float64 {
	return floats.Norm(Values(v), 2)
}

// Distance returns the Euclidean distance from a to b over the axes of a.
// Axes missing from b read as zero and extra axes of b are ignored.
func Distance(a, b Vector) float64 {
	return floats.Distance(Values(a), sized(b, a.Size()), 2)
}

// StrictDistance is Distance for vectors that must have the same size.
func StrictDistance(a, b Vector) (float64, error) {
	if a.Size() != b.Size() {
		return 0, &SizeError{Expected: a.Size(), Actual: b.Size()}
	}
	return Distance(a, b), nil
}

// applyAxis applies op to the component p points at. A nil p means the axis
// is outside v.
func applyAxis(v Vector, p *float64, a Axis, operand float64, op func(cur, operand float64) float64) (Vector, error) {
	if p == nil {
		return nil, &AxisError{Axis: a, Size: v.Size()}
	}
	*p = op(*p, operand)
	return v, nil
}

func assign(_, value float64) float64 { return value }
func plus(cur, operand float64) float64 { return cur + operand }
func minus(cur, operand float64) float64 { return cur - operand }
func times(cur, operand float64) float64 { return cur * operand }
func over(cur, operand float64) float64 { return cur / operand }

func formatValues(values ...float64) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, val := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
