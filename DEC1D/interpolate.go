package DEC1D

import (
	"fmt"
	"math"

	"github.com/notargets/godec/utils"
)

/*
Interpolator reconstructs periodic piecewise polynomials on a uniform node set.

For a query point x in cell i, xi = (x - x0)/Dx - i and

	u(x) = Scale * sum_j C[(i+j) mod N] * psi_j(xi)

With a V0 basis the coefficients are nodal values and Scale = 1. With a V1
basis they are cell integrals (cell average * Dx) and Scale = 1/Dx.
*/
type Interpolator struct {
	X0, Dx float64
	N      int
	Basis  *Basis1D
	Scale  float64
}

func NewInterpolator(nodes []float64, basis *Basis1D) (ip *Interpolator, err error) {
	var (
		N = len(nodes)
	)
	if basis == nil {
		err = fmt.Errorf("nil basis")
		return
	}
	if N < 2 {
		err = fmt.Errorf("need at least 2 nodes for a periodic grid, have %d", N)
		return
	}
	dx := nodes[1] - nodes[0]
	if !(dx > 0) {
		err = fmt.Errorf("nodes must be increasing, have spacing %g", dx)
		return
	}
	for i := 1; i < N; i++ {
		if math.Abs(nodes[i]-nodes[i-1]-dx) > 1.e-9*dx {
			err = fmt.Errorf("nodes are not uniformly spaced at index %d", i)
			return
		}
	}
	ip = &Interpolator{
		X0:    nodes[0],
		Dx:    dx,
		N:     N,
		Basis: basis,
		Scale: 1,
	}
	if basis.Type == V1 {
		ip.Scale = 1 / dx
	}
	return
}

// NewC0Interpolator interpolates nodal values at the grid's primal nodes.
func NewC0Interpolator(g *Grid1D, degree int) (ip *Interpolator, err error) {
	var b *Basis1D
	if b, err = NewLagrangeBasis1D(degree); err != nil {
		return
	}
	return newGridInterpolator(g, b)
}

// NewC1Interpolator histopolates the integrals over the grid's primal cells.
func NewC1Interpolator(g *Grid1D, degree int) (ip *Interpolator, err error) {
	var b *Basis1D
	if b, err = NewHistopolationBasis1D(degree); err != nil {
		return
	}
	return newGridInterpolator(g, b)
}

func newGridInterpolator(g *Grid1D, b *Basis1D) (ip *Interpolator, err error) {
	if g.K < 2 {
		err = fmt.Errorf("need at least 2 cells, have %d", g.K)
		return
	}
	// Dx from the grid, not from node differences, keeps the period exact
	ip = &Interpolator{
		X0:    g.XMin,
		Dx:    g.Dx,
		N:     g.K,
		Basis: b,
		Scale: 1,
	}
	if b.Type == V1 {
		ip.Scale = 1 / g.Dx
	}
	return
}

// Locate wraps x onto the period and returns the owning cell and local coordinate.
func (ip *Interpolator) Locate(x float64) (i int, xi float64) {
	L := float64(ip.N) * ip.Dx
	s := (utils.WrapPeriodic(x, ip.X0, ip.X0+L) - ip.X0) / ip.Dx
	fi := math.Floor(s)
	i = utils.ModInt(int(fi), ip.N)
	xi = s - fi
	return
}

func (ip *Interpolator) Interpolant(coeffs []float64) (u *Interpolant, err error) {
	if len(coeffs) != ip.N {
		err = fmt.Errorf("coefficient length %d does not match %d nodes", len(coeffs), ip.N)
		return
	}
	C := make([]float64, ip.N)
	copy(C, coeffs)
	u = &Interpolant{ip: ip, C: C}
	return
}

// Interpolant is an immutable periodic piecewise polynomial.
type Interpolant struct {
	ip *Interpolator
	C  []float64
}

func (u *Interpolant) Coefficients() []float64 {
	C := make([]float64, len(u.C))
	copy(C, u.C)
	return C
}

func (u *Interpolant) sum(x float64, deriv bool) (val float64) {
	var (
		ip    = u.ip
		b     = ip.Basis
		i, xi = ip.Locate(x)
		psi   []float64
	)
	if deriv {
		psi = b.EvalAllDeriv(xi)
	} else {
		psi = b.EvalAll(xi)
	}
	for jj, p := range psi {
		j := jj + b.MinOffset
		val += u.C[utils.ModInt(i+j, ip.N)] * p
	}
	val *= ip.Scale
	if deriv {
		val /= ip.Dx
	}
	return
}

func (u *Interpolant) At(x float64) float64 { return u.sum(x, false) }

// DerivAt is du/dx, evaluated from the cell that owns x.
func (u *Interpolant) DerivAt(x float64) float64 { return u.sum(x, true) }

func (u *Interpolant) Eval(X []float64) (Y []float64) {
	Y = make([]float64, len(X))
	for i, x := range X {
		Y[i] = u.At(x)
	}
	return
}

func (u *Interpolant) DerivEval(X []float64) (Y []float64) {
	Y = make([]float64, len(X))
	for i, x := range X {
		Y[i] = u.DerivAt(x)
	}
	return
}

// CellIntegral integrates the interpolant exactly over cell i.
func (u *Interpolant) CellIntegral(i int) (val float64) {
	var (
		ip = u.ip
		b  = ip.Basis
	)
	for j := b.MinOffset; j <= b.MaxOffset; j++ {
		val += u.C[utils.ModInt(i+j, ip.N)] * b.Integral(j, 0, 1)
	}
	return val * ip.Scale * ip.Dx
}
