package DEC1D

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/godec/utils"
)

func TestHodgeStencils(t *testing.T) {
	s, err := HodgeStencilH0(1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.MinOffset)
	assert.InDeltaSlice(t, []float64{1}, s.C, 1.e-14)

	s, err = HodgeStencilH0(3)
	require.NoError(t, err)
	assert.Equal(t, -1, s.MinOffset)
	assert.Equal(t, 1, s.MaxOffset())
	assert.InDeltaSlice(t, []float64{-1. / 24, 26. / 24, -1. / 24}, s.C, 1.e-14)
	assert.Equal(t, 0., s.At(2))

	s, err = HodgeStencilH0(5)
	require.NoError(t, err)
	assert.InDeltaSlice(t,
		[]float64{3. / 640, -29. / 480, 1067. / 960, -29. / 480, 3. / 640}, s.C, 1.e-13)

	s, err = HodgeStencilH1(1)
	require.NoError(t, err)
	assert.Equal(t, -1, s.MinOffset)
	assert.InDeltaSlice(t, []float64{1. / 8, 6. / 8, 1. / 8}, s.C, 1.e-14)

	s, err = HodgeStencilH1(3)
	require.NoError(t, err)
	assert.Equal(t, -2, s.MinOffset)
	assert.InDeltaSlice(t,
		[]float64{-7. / 384, 11. / 96, 155. / 192, 11. / 96, -7. / 384}, s.C, 1.e-14)

	// Both stencils preserve constants: H0 sums to 1/dx, H1 to dx
	for degree := 1; degree <= MaxDegree; degree += 2 {
		s0, err := HodgeStencilH0(degree, 0.5)
		require.NoError(t, err)
		s1, err := HodgeStencilH1(degree, 0.5)
		require.NoError(t, err)
		var sum0, sum1 float64
		for _, c := range s0.C {
			sum0 += c
		}
		for _, c := range s1.C {
			sum1 += c
		}
		assert.InDelta(t, 2., sum0, 1.e-10)
		assert.InDelta(t, 0.5, sum1, 1.e-10)
	}
}

func TestHodgeErrors(t *testing.T) {
	_, err := HodgeH0(8, 2)
	assert.ErrorIs(t, err, ErrInvalidDegree)
	_, err = HodgeH1(8, 0)
	assert.ErrorIs(t, err, ErrInvalidDegree)
	_, err = HodgeH0(8, 3, 0)
	assert.Error(t, err)
	_, err = HodgeH1(8, 3, -1)
	assert.Error(t, err)
	_, err = HodgeH0(0, 3)
	assert.Error(t, err)
	_, err = HodgeStencil(HodgeType(5), 1)
	assert.Error(t, err)
	_, err = HodgeSparse(H1, 8, 4)
	assert.Error(t, err)
	assert.Equal(t, "H1", H1.String())
}

func TestHodgeMatrices(t *testing.T) {
	H, err := HodgeH0(6, 3)
	require.NoError(t, err)
	r, c := H.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 6, c)
	// Row 0: -1/24 at columns 5 and 1, 26/24 on the diagonal
	assert.InDeltaSlice(t, []float64{26. / 24, -1. / 24, 0, 0, 0, -1. / 24}, mat.Row(nil, 0, H), 1.e-14)
	assert.InDeltaSlice(t, []float64{0, 0, -1. / 24, 26. / 24, -1. / 24, 0}, mat.Row(nil, 3, H), 1.e-14)

	// Aliased offsets accumulate when K is smaller than the stencil
	H, err = HodgeH1(2, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{6. / 8, 2. / 8}, mat.Row(nil, 0, H), 1.e-14)

	// dx scaling
	H, err = HodgeH1(6, 3, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.25*155./192, H.At(2, 2), 1.e-14)
	H, err = HodgeH0(6, 3, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 4*26./24, H.At(2, 2), 1.e-14)
}

func TestHodgeRepresentationsAgree(t *testing.T) {
	K := 13
	u := make([]float64, K)
	for i := range u {
		u[i] = math.Cos(0.7*float64(i)) + 0.1*float64(i)
	}
	for _, ht := range []HodgeType{H0, H1} {
		for degree := 1; degree <= 7; degree += 2 {
			Hd, err := HodgeStencil(ht, degree)
			require.NoError(t, err)
			var H utils.Matrix
			if ht == H0 {
				H, err = HodgeH0(K, degree)
			} else {
				H, err = HodgeH1(K, degree)
			}
			require.NoError(t, err)
			Hs, err := HodgeSparse(ht, K, degree)
			require.NoError(t, err)
			for i := 0; i < K; i++ {
				for j := 0; j < K; j++ {
					assert.InDelta(t, H.At(i, j), Hs.At(i, j), 1.e-15)
				}
			}
			dense := H.MulVec(utils.NewVector(K, u)).DataP()
			assert.InDeltaSlice(t, dense, Hd.Apply(u), 1.e-13)
			banded, err := applyHodge(ht, u, degree, 1)
			require.NoError(t, err)
			assert.InDeltaSlice(t, dense, banded, 1.e-13)
		}
	}
}

func TestApplyHodgeBanded(t *testing.T) {
	// K smaller than the stencil, the aliased coefficients fold together
	u := []float64{1, 10}
	R, err := applyHodge(H1, u, 1, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{6./8 + 20./8, 60./8 + 2./8}, R, 1.e-14)

	// dx scaling reaches the banded operator
	u = []float64{1, 2, 3, 4, 5, 6}
	R, err = applyHodge(H0, u, 3, 0.25)
	require.NoError(t, err)
	s, err := HodgeStencilH0(3, 0.25)
	require.NoError(t, err)
	assert.InDeltaSlice(t, s.Apply(u), R, 1.e-13)

	_, err = applyHodge(H0, u, 4, 1)
	assert.ErrorIs(t, err, ErrInvalidDegree)
	_, err = applyHodge(H0, nil, 3, 1)
	assert.Error(t, err)
}

func TestHodgeRoundTrip(t *testing.T) {
	K := 64
	u := make([]float64, K)
	for i := range u {
		u[i] = math.Sin(2 * math.Pi * float64(i) / float64(K))
	}
	tols := map[int][2]float64{
		1: {1.e-4, 2.e-3},
		3: {1.e-7, 1.e-5},
		5: {1.e-10, 1.e-7},
	}
	for degree, tol := range tols {
		R, err := HodgeRoundTrip(u, degree)
		require.NoError(t, err)
		defect := MaxErrorVec(R, u)
		// H1 is an approximate inverse of H0 only, with a defect that shrinks
		// with degree
		assert.Greater(t, defect, tol[0], "degree %d", degree)
		assert.Less(t, defect, tol[1], "degree %d", degree)
	}
	// Constants are preserved exactly
	ones := make([]float64, K)
	for i := range ones {
		ones[i] = 1
	}
	R, err := HodgeRoundTrip(ones, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, ones, R, 1.e-12)
}

func TestHodgeInverseDefect(t *testing.T) {
	// Degree 1: H0 = I and H1 has 3/4 on the diagonal
	identity, inverse, err := HodgeInverseDefect(8, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, identity, 1.e-14)
	assert.InDelta(t, 0.25, inverse, 1.e-14)

	// The defect shrinks with degree but never vanishes
	for degree := 3; degree <= 7; degree += 2 {
		prevIdentity, prevInverse := identity, inverse
		identity, inverse, err = HodgeInverseDefect(16, degree)
		require.NoError(t, err)
		assert.Greater(t, identity, 0.05)
		assert.Less(t, identity, prevIdentity)
		assert.Greater(t, inverse, 0.05)
		assert.Less(t, inverse, prevInverse)
	}
	_, _, err = HodgeInverseDefect(16, 4)
	assert.ErrorIs(t, err, ErrInvalidDegree)
}

func TestHodgeOperatorsAreCached(t *testing.T) {
	n := DefaultHodgeCache.Len()
	u := make([]float64, 23)
	for i := range u {
		u[i] = float64(i % 5)
	}
	R1, err := HodgeRoundTrip(u, 7, 0.125)
	require.NoError(t, err)
	assert.Equal(t, n+2, DefaultHodgeCache.Len())
	_, _, err = HodgeInverseDefect(23, 7, 0.125)
	require.NoError(t, err)
	R2, err := HodgeRoundTrip(u, 7, 0.125)
	require.NoError(t, err)
	assert.Equal(t, n+2, DefaultHodgeCache.Len())
	assert.Equal(t, R1, R2)

	// The shared matrices stay read only
	H, err := DefaultHodgeCache.Get(H1, 23, 7, 0.125)
	require.NoError(t, err)
	assert.Panics(t, func() { H.Set(0, 0, 0) })
}

func TestHodgeCache(t *testing.T) {
	hc := NewHodgeCache()
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := hc.Get(H0, 16, 3)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, hc.Len())

	H, err := hc.Get(H0, 16, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, hc.Len())
	assert.True(t, H.IsReadOnly())
	assert.Panics(t, func() { H.Set(0, 0, 1) })

	_, err = hc.Get(H0, 16, 3, 0.5)
	require.NoError(t, err)
	_, err = hc.Get(H1, 16, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, hc.Len())

	_, err = hc.Get(H1, 16, 2)
	assert.Error(t, err)
	assert.Equal(t, 3, hc.Len())

	Hc := H.Copy()
	assert.False(t, Hc.IsReadOnly())
	Hc.Set(0, 0, 5)
	assert.InDelta(t, 26./24, H.At(0, 0), 1.e-14)
}
