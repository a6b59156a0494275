package DEC1D

import (
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/godec/utils"
)

// DefaultQuadratureOrder is exact for polynomials up to degree 19.
const DefaultQuadratureOrder = 10

// Reduce0Form samples f at the points X.
func Reduce0Form(f func(float64) float64, X []float64) (u []float64) {
	u = make([]float64, len(X))
	for i, x := range X {
		u[i] = f(x)
	}
	return
}

// Reduce1Form integrates f over [a, b] with an order-point Gauss-Legendre rule.
func Reduce1Form(f func(float64) float64, a, b float64, order int) float64 {
	if order < 1 {
		order = DefaultQuadratureOrder
	}
	return quad.Fixed(f, a, b, order, quad.Legendre{}, 0)
}

func (g *Grid1D) PrimalNodeValues(f func(float64) float64) []float64 {
	return Reduce0Form(f, g.XP.DataP())
}

func (g *Grid1D) DualNodeValues(f func(float64) float64) []float64 {
	return Reduce0Form(f, g.XD.DataP())
}

// PrimalCellIntegrals are the integrals of f over [XP[i], XP[i]+Dx].
func (g *Grid1D) PrimalCellIntegrals(f func(float64) float64, order int) (u []float64) {
	u = make([]float64, g.K)
	for i := range u {
		a, b := g.PrimalCell(i)
		u[i] = Reduce1Form(f, a, b, order)
	}
	return
}

// DualCellIntegrals are the integrals of f over the dual cell centered on XP[i].
func (g *Grid1D) DualCellIntegrals(f func(float64) float64, order int) (u []float64) {
	u = make([]float64, g.K)
	for i := range u {
		a, b := g.DualCell(i)
		u[i] = Reduce1Form(f, a, b, order)
	}
	return
}

// CellAverages divides cell integrals by the cell width.
func (g *Grid1D) CellAverages(integrals []float64) (avg []float64) {
	if len(integrals) == 0 {
		return
	}
	return utils.NewVector(len(integrals), integrals).Copy().Scale(1 / g.Dx).DataP()
}

// ForwardDifference is u[i+1] - u[i] with periodic wrap, the exact 1-form
// (cell integral of the derivative) of a 0-form.
func ForwardDifference(u []float64) (d []float64) {
	N := len(u)
	d = make([]float64, N)
	for i := range u {
		d[i] = u[(i+1)%N] - u[i]
	}
	return
}
