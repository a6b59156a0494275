package DEC1D

import (
	"fmt"
	"sync"

	"github.com/james-bowman/sparse"

	"github.com/notargets/godec/utils"
)

/*
Hodge operators between the primal and dual grids, as circulant matrices.

	H0: dual 1-forms (integrals over the dual cells centered on primal nodes)
	    -> primal 0-forms (values at primal nodes)
	H1: primal 0-forms -> dual 1-forms

Row r of each matrix is the stencil applied around primal node r, so that
(H u)[r] = sum_k c[k] u[r+k]. With dx = 1 the matrices are the reference
(dimensionless) operators; H1 * H0 approximates the identity for smooth data.
*/

type HodgeType uint8

const (
	H0 HodgeType = iota
	H1
)

func (ht HodgeType) String() string {
	switch ht {
	case H0:
		return "H0"
	case H1:
		return "H1"
	}
	return fmt.Sprintf("HodgeType(%d)", uint8(ht))
}

// Stencil holds coefficients for offsets MinOffset..MinOffset+len(C)-1.
type Stencil struct {
	MinOffset int
	C         []float64
}

func (s Stencil) MaxOffset() int { return s.MinOffset + len(s.C) - 1 }

// At returns the coefficient at offset k, zero outside the stencil.
func (s Stencil) At(k int) float64 {
	if k < s.MinOffset || k > s.MaxOffset() {
		return 0
	}
	return s.C[k-s.MinOffset]
}

func getDx(dxO []float64) (dx float64, err error) {
	dx = 1
	if len(dxO) != 0 {
		dx = dxO[0]
	}
	if !(dx > 0) {
		err = fmt.Errorf("cell width must be positive, have %g", dx)
	}
	return
}

// HodgeStencilH0 is c[k] = e_k(1/2)/dx for k in -p..p.
func HodgeStencilH0(degree int, dxO ...float64) (s Stencil, err error) {
	var (
		eb *Basis1D
		dx float64
	)
	if dx, err = getDx(dxO); err != nil {
		return
	}
	if eb, err = NewHistopolationBasis1D(degree); err != nil {
		return
	}
	s = Stencil{MinOffset: eb.MinOffset, C: make([]float64, eb.Size())}
	for k := eb.MinOffset; k <= eb.MaxOffset; k++ {
		s.C[k-s.MinOffset] = eb.Eval(k, 0.5) / dx
	}
	return
}

/*
HodgeStencilH1 integrates the V0 interpolant over the dual cell around node r.
The left half lies in primal cell r-1 (xi from 1/2 to 1), the right half in
primal cell r (xi from 0 to 1/2):

	a[k] = dx * int_{1/2}^{1} l_{k+1},  k in -p-1..p
	b[k] = dx * int_0^{1/2}   l_k,      k in -p..p+1
	c[k] = a[k] + b[k],                 k in -p-1..p+1
*/
func HodgeStencilH1(degree int, dxO ...float64) (s Stencil, err error) {
	var (
		lb *Basis1D
		dx float64
	)
	if dx, err = getDx(dxO); err != nil {
		return
	}
	if lb, err = NewLagrangeBasis1D(degree); err != nil {
		return
	}
	P := lb.P
	s = Stencil{MinOffset: -P - 1, C: make([]float64, 2*P+3)}
	for k := -P - 1; k <= P; k++ {
		s.C[k-s.MinOffset] += dx * lb.Integral(k+1, 0.5, 1)
	}
	for k := -P; k <= P+1; k++ {
		s.C[k-s.MinOffset] += dx * lb.Integral(k, 0, 0.5)
	}
	return
}

func HodgeStencil(ht HodgeType, degree int, dxO ...float64) (Stencil, error) {
	switch ht {
	case H0:
		return HodgeStencilH0(degree, dxO...)
	case H1:
		return HodgeStencilH1(degree, dxO...)
	}
	return Stencil{}, fmt.Errorf("unknown hodge operator: %v", ht)
}

// Apply computes (H u)[r] = sum_k c[k] u[(r+k) mod K] without forming H.
func (s Stencil) Apply(u []float64) (R []float64) {
	K := len(u)
	R = make([]float64, K)
	for r := range R {
		for i, c := range s.C {
			R[r] += c * u[utils.ModInt(r+s.MinOffset+i, K)]
		}
	}
	return
}

// GeneratingVector wraps the stencil into the first row of a K x K circulant.
func (s Stencil) GeneratingVector(K int) ([]float64, error) {
	return utils.WrapStencil(K, s.MinOffset, s.C)
}

func hodgeVector(ht HodgeType, K, degree int, dxO []float64) (v []float64, err error) {
	var s Stencil
	if s, err = HodgeStencil(ht, degree, dxO...); err != nil {
		return
	}
	return s.GeneratingVector(K)
}

// HodgeH0 maps dual-cell integrals to primal nodal values, K x K.
func HodgeH0(K, degree int, dxO ...float64) (H utils.Matrix, err error) {
	var v []float64
	if v, err = hodgeVector(H0, K, degree, dxO); err != nil {
		return
	}
	H = utils.NewCirculant(v)
	return
}

// HodgeH1 maps primal nodal values to dual-cell integrals, K x K.
func HodgeH1(K, degree int, dxO ...float64) (H utils.Matrix, err error) {
	var v []float64
	if v, err = hodgeVector(H1, K, degree, dxO); err != nil {
		return
	}
	H = utils.NewCirculant(v)
	return
}

// HodgeSparse is the banded CSR form of H0 or H1, for large K.
func HodgeSparse(ht HodgeType, K, degree int, dxO ...float64) (H *sparse.CSR, err error) {
	var v []float64
	if v, err = hodgeVector(ht, K, degree, dxO); err != nil {
		return
	}
	H = utils.NewCirculantCSR(v)
	return
}

// hodgePair fetches H0 and H1 on K cells from DefaultHodgeCache.
func hodgePair(K, degree int, dxO []float64) (h0, h1 utils.Matrix, err error) {
	if h0, err = DefaultHodgeCache.Get(H0, K, degree, dxO...); err != nil {
		return
	}
	h1, err = DefaultHodgeCache.Get(H1, K, degree, dxO...)
	return
}

// HodgeRoundTrip applies H1 after H0 to the dual 1-form u.
func HodgeRoundTrip(u []float64, degree int, dxO ...float64) (R []float64, err error) {
	var (
		K      = len(u)
		h0, h1 utils.Matrix
	)
	if h0, h1, err = hodgePair(K, degree, dxO); err != nil {
		return
	}
	R = h1.MulVec(h0.MulVec(utils.NewVector(K, u))).DataP()
	return
}

// HodgeInverseDefect measures how far H1 is from inverting H0 on K cells, as
// the largest entries of H1*H0 - I and of inv(H0) - H1.
func HodgeInverseDefect(K, degree int, dxO ...float64) (identity, inverse float64, err error) {
	var h0, h1, h0Inv utils.Matrix
	if h0, h1, err = hodgePair(K, degree, dxO); err != nil {
		return
	}
	identity = h1.Mul(h0).MaxAbsDiff(utils.NewIdentity(K))
	if h0Inv, err = h0.Inverse(); err != nil {
		return
	}
	inverse = h0Inv.MaxAbsDiff(h1)
	return
}

type hodgeKey struct {
	ht        HodgeType
	K, degree int
	dx        float64
}

// HodgeCache memoizes dense Hodge matrices by (type, K, degree, dx). The
// cached matrices are read only; Copy() them before modifying.
type HodgeCache struct {
	mu    sync.Mutex
	cache map[hodgeKey]utils.Matrix
}

// DefaultHodgeCache backs HodgeRoundTrip and HodgeInverseDefect.
var DefaultHodgeCache = NewHodgeCache()

func NewHodgeCache() *HodgeCache {
	return &HodgeCache{cache: make(map[hodgeKey]utils.Matrix)}
}

func (hc *HodgeCache) Get(ht HodgeType, K, degree int, dxO ...float64) (H utils.Matrix, err error) {
	var (
		dx float64
		ok bool
	)
	if dx, err = getDx(dxO); err != nil {
		return
	}
	key := hodgeKey{ht, K, degree, dx}
	hc.mu.Lock()
	defer hc.mu.Unlock()
	if H, ok = hc.cache[key]; ok {
		return
	}
	var v []float64
	if v, err = hodgeVector(ht, K, degree, []float64{dx}); err != nil {
		return
	}
	H = utils.NewCirculant(v)
	H.SetReadOnly(fmt.Sprintf("%v[K=%d,N=%d]", ht, K, degree))
	hc.cache[key] = H
	return
}

func (hc *HodgeCache) Len() int {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	return len(hc.cache)
}
