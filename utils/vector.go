package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			panic(fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v", n, len(dataO[0])))
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	return Vector{v}
}

// NewLinspace returns n equally spaced values on [min, max], both ends included.
func NewLinspace(min, max float64, n int) (R Vector) {
	R = NewVector(n)
	floats.Span(R.DataP(), min, max)
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)    { return v.V.Dims() }
func (v Vector) At(i, j int) float64 { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix       { return v.V.T() }
func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }
func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) DataP() []float64    { return v.V.RawVector().Data }

func (v Vector) Copy() (R Vector) { // Does not change receiver
	data := make([]float64, v.Len())
	copy(data, v.DataP())
	return NewVector(len(data), data)
}

// Chainable, changes the receiver
func (v Vector) Scale(a float64) Vector {
	floats.Scale(a, v.DataP())
	return v
}

// MaxAbsDiff is max |v_i - a_i|.
func (v Vector) MaxAbsDiff(a Vector) float64 {
	return floats.Distance(v.DataP(), a.DataP(), math.Inf(1))
}
