package vectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisNames(t *testing.T) {
	tests := []struct {
		axis Axis
		name string
	}{
		{X, "x"},
		{Y, "y"},
		{Z, "z"},
		{W, "w"},
		{V, "v"},
		{Axis(2), "z"},
		{Axis(7), "axis(7)"},
		{Axis(-1), "axis(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.axis.String())
		})
	}
}

func TestAxisInRange(t *testing.T) {
	tests := []struct {
		axis     Axis
		size     int
		expected bool
	}{
		{X, 1, true},
		{X, 0, false},
		{Y, 1, false},
		{V, 5, true},
		{V, 4, false},
		{Axis(5), 6, true},
		{Axis(-1), 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.axis.InRange(tt.size), "size %d", tt.size)
		})
	}

	for _, tt := range variants {
		v := tt.make()
		for a := Axis(-1); a <= Axis(v.Size()); a++ {
			_, err := v.Axis(a)
			assert.Equal(t, a.InRange(v.Size()), err == nil, "%s axis %s", tt.name, a)
		}
	}
}

func TestAxisErrorMessage(t *testing.T) {
	err := &AxisError{Axis: Z, Size: 2}
	assert.EqualError(t, err, "vector size is 2, but axis 2 was given")
	assert.ErrorIs(t, err, ErrAxisOutOfRange)
	assert.NotErrorIs(t, err, ErrSizeMismatch)
}
