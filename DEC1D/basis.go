package DEC1D

import (
	"errors"
	"fmt"

	"github.com/notargets/godec/utils"
)

var ErrInvalidDegree = errors.New("invalid basis degree")

// MaxDegree bounds the supported family; equispaced Lagrange bases beyond this
// are too badly conditioned to be useful.
const MaxDegree = 15

type BasisType uint8

const (
	V0 BasisType = iota // Lagrange interpolation basis, from 0-forms
	V1                  // Histopolation basis, from 1-forms
)

func (bt BasisType) String() string {
	switch bt {
	case V0:
		return "V0"
	case V1:
		return "V1"
	}
	return fmt.Sprintf("BasisType(%d)", uint8(bt))
}

/*
Basis1D maps an integer offset j in [MinOffset, MaxOffset] to a polynomial in
the cell coordinate xi. Offsets are stored in a fixed slice, Polys[j-MinOffset].

	V0, degree d = 2p+1: offsets -p..p+1, polynomials of degree d
	V1, degree d = 2p+1: offsets -p..p,   polynomials of degree d-1
*/
type Basis1D struct {
	Type      BasisType
	Degree    int // Degree of the V0 basis this family is built from
	P         int // Half width, Degree = 2P+1
	MinOffset int
	MaxOffset int
	Polys     []Polynomial
	dPolys    []Polynomial
}

func CheckDegree(degree int) (P int, err error) {
	if degree < 1 || degree%2 == 0 || degree > MaxDegree {
		err = fmt.Errorf("%w: %d, must be odd and in [1,%d]", ErrInvalidDegree, degree, MaxDegree)
		return
	}
	P = degree / 2
	return
}

// NewLagrangeBasis1D builds l_j(xi) = prod_{k != j} (xi - k)/(j - k) for
// j, k in -p..p+1.
func NewLagrangeBasis1D(degree int) (b *Basis1D, err error) {
	var P int
	if P, err = CheckDegree(degree); err != nil {
		return
	}
	b = &Basis1D{
		Type:      V0,
		Degree:    degree,
		P:         P,
		MinOffset: -P,
		MaxOffset: P + 1,
	}
	b.Polys = make([]Polynomial, degree+1)
	for j := b.MinOffset; j <= b.MaxOffset; j++ {
		lj := NewPolynomial(1)
		for k := b.MinOffset; k <= b.MaxOffset; k++ {
			if k == j {
				continue
			}
			den := float64(j - k)
			lj = lj.Mul(NewPolynomial(-float64(k)/den, 1/den))
		}
		b.Polys[j-b.MinOffset] = lj
	}
	b.computeDerivatives()
	return
}

/*
NewHistopolationBasis1D derives the edge functions from the Lagrange basis:

	e_i = 1/2 * sum_{j=-p}^{p+1} sgn(j - i - 1/2) * l'_j,   i in -p..p

The system e_{i-1} - e_i = l'_i has one redundant equation, since the l'_j sum
to zero. Averaging the left and right cumulative sums keeps the stencil
symmetric.
*/
func NewHistopolationBasis1D(degree int) (b *Basis1D, err error) {
	var lb *Basis1D
	if lb, err = NewLagrangeBasis1D(degree); err != nil {
		return
	}
	b = &Basis1D{
		Type:      V1,
		Degree:    degree,
		P:         lb.P,
		MinOffset: -lb.P,
		MaxOffset: lb.P,
	}
	b.Polys = make([]Polynomial, b.Size())
	for i := b.MinOffset; i <= b.MaxOffset; i++ {
		ei := NewPolynomial(0)
		for j := lb.MinOffset; j <= lb.MaxOffset; j++ {
			sgn := utils.Sign(float64(j-i) - 0.5)
			ei = ei.Add(lb.DerivAt(j).Scale(0.5 * sgn))
		}
		b.Polys[i-b.MinOffset] = ei
	}
	b.computeDerivatives()
	return
}

func NewBasis1D(bt BasisType, degree int) (*Basis1D, error) {
	switch bt {
	case V0:
		return NewLagrangeBasis1D(degree)
	case V1:
		return NewHistopolationBasis1D(degree)
	}
	return nil, fmt.Errorf("unknown basis type: %v", bt)
}

func (b *Basis1D) computeDerivatives() {
	b.dPolys = make([]Polynomial, len(b.Polys))
	for i, p := range b.Polys {
		b.dPolys[i] = p.Deriv()
	}
}

func (b *Basis1D) Size() int { return b.MaxOffset - b.MinOffset + 1 }

func (b *Basis1D) index(j int) int {
	if j < b.MinOffset || j > b.MaxOffset {
		panic(fmt.Errorf("basis offset %d out of range [%d,%d]", j, b.MinOffset, b.MaxOffset))
	}
	return j - b.MinOffset
}

// At returns the basis polynomial for offset j
func (b *Basis1D) At(j int) Polynomial { return b.Polys[b.index(j)] }

func (b *Basis1D) DerivAt(j int) Polynomial { return b.dPolys[b.index(j)] }

func (b *Basis1D) Eval(j int, xi float64) float64 { return b.At(j).Eval(xi) }

func (b *Basis1D) EvalDeriv(j int, xi float64) float64 { return b.DerivAt(j).Eval(xi) }

// EvalAll returns every basis function at xi, ordered by offset.
func (b *Basis1D) EvalAll(xi float64) (psi []float64) {
	psi = make([]float64, len(b.Polys))
	for i, p := range b.Polys {
		psi[i] = p.Eval(xi)
	}
	return
}

func (b *Basis1D) EvalAllDeriv(xi float64) (dpsi []float64) {
	dpsi = make([]float64, len(b.dPolys))
	for i, p := range b.dPolys {
		dpsi[i] = p.Eval(xi)
	}
	return
}

// Sum is sum_j psi_j(xi), identically one for both families.
func (b *Basis1D) Sum(xi float64) (s float64) {
	for _, p := range b.Polys {
		s += p.Eval(xi)
	}
	return
}

// Integral returns int_a^b psi_j(xi) dxi
func (b *Basis1D) Integral(j int, a, c float64) float64 {
	return b.At(j).DefiniteIntegral(a, c)
}

func (b *Basis1D) String() string {
	return fmt.Sprintf("%v basis, degree %d, offsets [%d,%d]", b.Type, b.Degree, b.MinOffset, b.MaxOffset)
}
