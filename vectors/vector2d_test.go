package vectors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAngle(t *testing.T) {
	v := FromAngleDegrees(45, 2)
	assert.InDelta(t, 2.0, v.Length(), 1e-12)
	assert.InDelta(t, math.Sqrt2, v.X, 1e-12)
	assert.InDelta(t, math.Sqrt2, v.Y, 1e-12)

	u := FromAngle(math.Pi/2, 1)
	assert.InDelta(t, 0.0, u.X, 1e-12)
	assert.InDelta(t, 1.0, u.Y, 1e-12)

	back := FromAngle(4, 3)
	assert.InDelta(t, 4.0, back.Angle(), 1e-12)
	assert.InDelta(t, 3.0, back.Length(), 1e-12)
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name    string
		v       *Vector2D
		radians float64
	}{
		{"PositiveX", NewVector2D(1, 0), 0},
		{"PositiveY", NewVector2D(0, 1), math.Pi / 2},
		{"NegativeX", NewVector2D(-1, 0), math.Pi},
		{"NegativeY", NewVector2D(0, -1), 3 * math.Pi / 2},
		{"FourthQuadrant", NewVector2D(1, -1), 7 * math.Pi / 4},
		{"ThirdQuadrant", NewVector2D(-1, -1), 5 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Angle()
			assert.InDelta(t, tt.radians, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 2*math.Pi)
			assert.InDelta(t, tt.radians*180/math.Pi, tt.v.AngleDegrees(), 1e-9)
		})
	}
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name     string
		from     *Vector2D
		to       Vector
		expected float64
	}{
		{"Up", NewVector2D(0, 0), NewVector2D(0, 5), 90},
		{"Left", NewVector2D(3, 3), NewVector2D(1, 3), 180},
		{"Down", NewVector2D(0, 0), NewVector2D(0, -2), 270},
		{"Diagonal", NewVector2D(1, 1), NewVector2D(2, 2), 45},
		{"FromOneDimension", NewVector2D(0, 1), NewVector1D(1), 315},
		// The seam case reports 360 rather than 0.
		{"SeamReportsFullTurn", NewVector2D(1, 1), NewVector2D(100, 1), 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.from.AngleDegreesTo(tt.to), 1e-9)
			assert.InDelta(t, tt.expected*math.Pi/180, tt.from.AngleTo(tt.to), 1e-12)
		})
	}
}

func TestVector2DFrom(t *testing.T) {
	src := NewVector2D(1, 2)
	c := Vector2DFrom(src)
	assert.Equal(t, src, c)
	assert.NotSame(t, src, c)

	assert.Equal(t, NewVector2D(7, 0), Vector2DFrom(NewVector1D(7)))
	assert.Equal(t, NewVector2D(7, 8), Vector2DFrom(NewArray(7, 8, 9)))
	assert.Equal(t, NewVector2D(0, 0), ZeroVector2D())
}

func TestVector2DValueHelpers(t *testing.T) {
	v := NewVector2D(1, 2)
	v.SetValues(3, 4).AddValues(1, 1).SubtractValues(2, 3)
	assert.Equal(t, NewVector2D(2, 2), v)
}
