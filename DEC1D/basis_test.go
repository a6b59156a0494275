package DEC1D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidDegree(t *testing.T) {
	for _, degree := range []int{-3, -1, 0, 2, 4, MaxDegree + 2} {
		_, err := NewLagrangeBasis1D(degree)
		assert.True(t, errors.Is(err, ErrInvalidDegree), "degree %d", degree)
		_, err = NewHistopolationBasis1D(degree)
		assert.True(t, errors.Is(err, ErrInvalidDegree), "degree %d", degree)
		_, err = NewBasis1D(V1, degree)
		assert.ErrorIs(t, err, ErrInvalidDegree)
	}
	_, err := NewBasis1D(BasisType(7), 1)
	assert.Error(t, err)
}

func TestLagrangeBasis1D(t *testing.T) {
	for degree := 1; degree <= MaxDegree; degree += 2 {
		lb, err := NewLagrangeBasis1D(degree)
		require.NoError(t, err)
		P := degree / 2
		assert.Equal(t, V0, lb.Type)
		assert.Equal(t, -P, lb.MinOffset)
		assert.Equal(t, P+1, lb.MaxOffset)
		assert.Equal(t, degree+1, lb.Size())
		// Kronecker property on the sample offsets, the monomial coefficients
		// lose accuracy with degree
		kronTol := 1.e-10
		if degree > 9 {
			kronTol = 1.e-8
		}
		for j := lb.MinOffset; j <= lb.MaxOffset; j++ {
			assert.Equal(t, degree, lb.At(j).Degree())
			for k := lb.MinOffset; k <= lb.MaxOffset; k++ {
				if j == k {
					assert.InDelta(t, 1., lb.Eval(j, float64(k)), kronTol, "degree %d", degree)
				} else {
					assert.InDelta(t, 0., lb.Eval(j, float64(k)), kronTol, "degree %d", degree)
				}
			}
		}
		// Partition of unity, including points outside [0,1]
		for _, xi := range []float64{-1.3, 0, 0.1, 0.5, 0.77, 1, 2.4} {
			assert.InDelta(t, 1., lb.Sum(xi), 1.e-9, "degree %d, xi %f", degree, xi)
		}
		// Derivatives of a partition of unity sum to zero
		for _, xi := range []float64{0.2, 0.5, 0.9} {
			var sum float64
			for _, d := range lb.EvalAllDeriv(xi) {
				sum += d
			}
			assert.InDelta(t, 0., sum, 1.e-9)
		}
	}
	assert.Panics(t, func() {
		lb, _ := NewLagrangeBasis1D(1)
		lb.At(2)
	})
}

func TestLagrangeBasisLinear(t *testing.T) {
	lb, err := NewLagrangeBasis1D(1)
	require.NoError(t, err)
	// l_0 = 1 - xi, l_1 = xi
	assert.Equal(t, []float64{1, -1}, lb.At(0).C)
	assert.Equal(t, []float64{0, 1}, lb.At(1).C)
	assert.Equal(t, []float64{0.75, 0.25}, lb.EvalAll(0.25))
}

func TestHistopolationBasis1D(t *testing.T) {
	for degree := 1; degree <= MaxDegree; degree += 2 {
		eb, err := NewHistopolationBasis1D(degree)
		require.NoError(t, err)
		P := degree / 2
		assert.Equal(t, V1, eb.Type)
		assert.Equal(t, -P, eb.MinOffset)
		assert.Equal(t, P, eb.MaxOffset)
		assert.Equal(t, degree, eb.Size())
		for i := eb.MinOffset; i <= eb.MaxOffset; i++ {
			assert.True(t, eb.At(i).Degree() <= degree-1)
			// Histopolation property on the reference cell
			if i == 0 {
				assert.InDelta(t, 1., eb.Integral(i, 0, 1), 1.e-10)
			} else {
				assert.InDelta(t, 0., eb.Integral(i, 0, 1), 1.e-10)
			}
			// Symmetry e_i(xi) = e_-i(1-xi)
			assert.InDelta(t, eb.Eval(i, 0.3), eb.Eval(-i, 0.7), 1.e-10)
		}
		for _, xi := range []float64{-0.5, 0, 0.25, 0.5, 0.9, 1, 1.7} {
			assert.InDelta(t, 1., eb.Sum(xi), 1.e-9, "degree %d, xi %f", degree, xi)
		}
	}
	// The Lagrange degree 3 basis is cubic, the edge functions quadratic
	eb, err := NewHistopolationBasis1D(3)
	require.NoError(t, err)
	assert.Equal(t, 2, eb.At(0).Degree())
	// Degree 1 edge function is the constant 1
	eb, err = NewHistopolationBasis1D(1)
	require.NoError(t, err)
	assert.InDelta(t, 1., eb.Eval(0, 0.1), 1.e-15)
	assert.InDelta(t, 1., eb.Eval(0, 0.9), 1.e-15)
}

func TestHistopolationDerivativeRelation(t *testing.T) {
	// e_{i-1} - e_i = l'_i with e_{-p-1} = e_{p+1} = 0
	for degree := 1; degree <= MaxDegree; degree += 2 {
		lb, err := NewLagrangeBasis1D(degree)
		require.NoError(t, err)
		eb, err := NewHistopolationBasis1D(degree)
		require.NoError(t, err)
		e := func(i int, xi float64) float64 {
			if i < eb.MinOffset || i > eb.MaxOffset {
				return 0
			}
			return eb.Eval(i, xi)
		}
		for _, xi := range []float64{0.1, 0.5, 0.8} {
			for i := lb.MinOffset; i <= lb.MaxOffset; i++ {
				assert.InDelta(t, lb.EvalDeriv(i, xi), e(i-1, xi)-e(i, xi), 1.e-9)
			}
		}
	}
}

func TestBasisStrings(t *testing.T) {
	lb, _ := NewLagrangeBasis1D(3)
	assert.Equal(t, "V0 basis, degree 3, offsets [-1,2]", lb.String())
	assert.Equal(t, "V1", V1.String())
	assert.False(t, math.IsNaN(lb.Eval(0, 0.5)))
}
