package vectors

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayConstructors(t *testing.T) {
	src := []float64{1, 2, 3}
	a := NewArray(src...)
	src[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, a.Values())

	assert.Equal(t, []float64{0, 0, 0, 0}, NewZeroArray(4).Values())
	assert.Equal(t, []float64{2.5, 2.5}, NewArrayWithValue(2, 2.5).Values())
	assert.Equal(t, 0, NewArray().Size())

	from := ArrayFrom(NewVector4D(1, 2, 3, 4))
	assert.Equal(t, 4, from.Size())
	assert.Equal(t, []float64{1, 2, 3, 4}, from.Values())
}

func TestArrayLengthAndDistance(t *testing.T) {
	a := NewArray(1, 2, 3)
	assert.InDelta(t, math.Sqrt(14), a.Length(), 1e-12)

	d, err := a.Distance(NewArray(4, 5, 6))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(27), d, 1e-12)

	d, err = a.Distance(NewVector3D(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	assert.Equal(t, 0.0, NewArray().Length())
}

func TestArrayDistanceIsStrict(t *testing.T) {
	tests := []struct {
		name  string
		other Vector
	}{
		{"Shorter", NewVector2D(4, 5)},
		{"Longer", NewArray(4, 5, 6, 7)},
		{"Empty", NewArray()},
	}

	a := NewArray(1, 2, 3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Distance(tt.other)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSizeMismatch)

			var sizeErr *SizeError
			require.True(t, errors.As(err, &sizeErr))
			assert.Equal(t, 3, sizeErr.Expected)
			assert.Equal(t, tt.other.Size(), sizeErr.Actual)
		})
	}
}

func TestArraySizeNeverChanges(t *testing.T) {
	a := NewArray(1, 2)
	a.Set(NewVector5D(9, 8, 7, 6, 5))
	assert.Equal(t, []float64{9, 8}, a.Values())

	a.Add(NewArray(1, 1, 1, 1))
	assert.Equal(t, []float64{10, 9}, a.Values())

	a.Subtract(NewVector1D(10))
	assert.Equal(t, []float64{0, 9}, a.Values())

	assert.Equal(t, 2, a.VectorTo(NewVector3D(1, 1, 1)).Size())
	assert.Equal(t, 2, a.Size())
}

func TestArrayClone(t *testing.T) {
	a := NewArray(1, 2, 3)
	c := a.Clone().(*Array)
	c.values[0] = 42
	assert.Equal(t, 1.0, a.AxisOrZero(X))
	assert.Equal(t, 42.0, c.AxisOrZero(X))
}

func TestArrayScalingInPlace(t *testing.T) {
	a := NewArray(1, -2, 0, 4)
	got := a.Multiply(3).Divide(2)
	assert.Same(t, a, got)
	assert.Equal(t, []float64{1.5, -3, 0, 6}, a.Values())

	a.Multiply(0)
	assert.Equal(t, 4, a.Size())
	for _, val := range a.Values() {
		assert.Zero(t, val)
	}

	empty := NewZeroArray(0)
	assert.Same(t, empty, empty.Multiply(5))
	assert.Zero(t, empty.Size())
}
