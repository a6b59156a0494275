package DEC1D

import (
	"fmt"

	"github.com/notargets/godec/utils"
)

// Grid1D is a periodic, uniform, staggered grid on [XMin, XMax).
// Primal node i sits at XMin + i*Dx, dual node i at the midpoint of primal cell i.
type Grid1D struct {
	XMin, XMax float64
	K          int // Number of cells
	Dx         float64
	XP, XD     utils.Vector
}

func NewGrid1D(xmin, xmax float64, K int) (g *Grid1D, err error) {
	if K < 1 {
		err = fmt.Errorf("number of cells must be positive, have %d", K)
		return
	}
	if !(xmax > xmin) {
		err = fmt.Errorf("empty domain [%g,%g]", xmin, xmax)
		return
	}
	g = &Grid1D{
		XMin: xmin,
		XMax: xmax,
		K:    K,
		Dx:   (xmax - xmin) / float64(K),
		XP:   utils.NewVector(K),
		XD:   utils.NewVector(K),
	}
	xp, xd := g.XP.DataP(), g.XD.DataP()
	for i := 0; i < K; i++ {
		xp[i] = xmin + float64(i)*g.Dx
		xd[i] = xp[i] + 0.5*g.Dx
	}
	return
}

// Length of the periodic domain
func (g *Grid1D) Length() float64 { return g.XMax - g.XMin }

// PrimalCell returns the bounds of primal cell i, [XP[i], XP[i+1]].
func (g *Grid1D) PrimalCell(i int) (a, b float64) {
	a = g.XP.AtVec(utils.ModInt(i, g.K))
	return a, a + g.Dx
}

// DualCell returns the bounds of the dual cell centered on primal node i,
// [XD[i-1], XD[i]] unwrapped so that a < b.
func (g *Grid1D) DualCell(i int) (a, b float64) {
	x := g.XP.AtVec(utils.ModInt(i, g.K))
	return x - 0.5*g.Dx, x + 0.5*g.Dx
}

// SamplePoints returns n equispaced points covering [XMin, XMax) without the
// right endpoint, used as a fixed fine evaluation set.
func (g *Grid1D) SamplePoints(n int) (X []float64) {
	if n < 2 {
		return []float64{g.XMin}
	}
	h := g.Length() / float64(n)
	return utils.NewLinspace(g.XMin, g.XMax-h, n).DataP()
}
