package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

/*
	Circulant matrices are built from a generating vector v of length N.
	Row r is v cyclically shifted right by r positions:

		C[r][c] = v[(c - r) mod N]

	so that (C u)[r] = sum_k v[k] u[(r + k) mod N]. A stencil coefficient at
	offset k therefore lands in v[k mod N], and negative offsets fill the tail.
*/

// WrapStencil folds coefficients at offsets minOffset, minOffset+1, ... into
// a generating vector of length N. Offsets that land on the same slot add.
func WrapStencil(N, minOffset int, coeffs []float64) (v []float64, err error) {
	if N < 1 {
		err = fmt.Errorf("circulant size must be positive, have %d", N)
		return
	}
	v = make([]float64, N)
	for i, c := range coeffs {
		v[ModInt(minOffset+i, N)] += c
	}
	return
}

func NewCirculant(v []float64) (C Matrix) {
	var (
		N = len(v)
	)
	C = NewMatrix(N, N)
	data := C.DataP()
	for r := 0; r < N; r++ {
		row := data[r*N : (r+1)*N]
		for c := 0; c < N; c++ {
			row[c] = v[ModInt(c-r, N)]
		}
	}
	return
}

// NewCirculantCSR stores only the nonzero band of the circulant matrix.
func NewCirculantCSR(v []float64) (C *sparse.CSR) {
	var (
		N  = len(v)
		nz []int
	)
	for k, val := range v {
		if val != 0 {
			nz = append(nz, k)
		}
	}
	dok := sparse.NewDOK(N, N)
	for r := 0; r < N; r++ {
		for _, k := range nz {
			dok.Set(r, ModInt(r+k, N), v[k])
		}
	}
	return dok.ToCSR()
}
