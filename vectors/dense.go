package vectors

import "gonum.org/v1/gonum/mat"

// ToVecDense copies v into a gonum column vector.
func ToVecDense(v Vector) *mat.VecDense {
	if v.Size() == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(v.Size(), v.Values())
}

// ArrayFromVecDense copies a gonum vector into a new Array of the same length.
func ArrayFromVecDense(d mat.Vector) *Array {
	a := NewZeroArray(d.Len())
	for i := range a.values {
		a.values[i] = d.AtVec(i)
	}
	return a
}
