package DEC1D

import (
	"fmt"
	"strings"
)

// Polynomial holds ascending coefficients: p(x) = C[0] + C[1]*x + C[2]*x^2 + ...
type Polynomial struct {
	C []float64
}

func NewPolynomial(coeffs ...float64) (p Polynomial) {
	p.C = make([]float64, len(coeffs))
	copy(p.C, coeffs)
	return
}

// Degree of the zero polynomial is -1
func (p Polynomial) Degree() int {
	for i := len(p.C) - 1; i >= 0; i-- {
		if p.C[i] != 0 {
			return i
		}
	}
	return -1
}

func (p Polynomial) Eval(x float64) (y float64) {
	for i := len(p.C) - 1; i >= 0; i-- {
		y = y*x + p.C[i]
	}
	return
}

func (p Polynomial) EvalVec(X []float64) (Y []float64) {
	Y = make([]float64, len(X))
	for i, x := range X {
		Y[i] = p.Eval(x)
	}
	return
}

func (p Polynomial) Deriv() (d Polynomial) {
	if len(p.C) <= 1 {
		return NewPolynomial(0)
	}
	d.C = make([]float64, len(p.C)-1)
	for i := 1; i < len(p.C); i++ {
		d.C[i-1] = float64(i) * p.C[i]
	}
	return
}

// Integ is the antiderivative with zero constant term.
func (p Polynomial) Integ() (I Polynomial) {
	I.C = make([]float64, len(p.C)+1)
	for i, c := range p.C {
		I.C[i+1] = c / float64(i+1)
	}
	return
}

func (p Polynomial) DefiniteIntegral(a, b float64) float64 {
	I := p.Integ()
	return I.Eval(b) - I.Eval(a)
}

func (p Polynomial) Add(q Polynomial) (r Polynomial) {
	n := max(len(p.C), len(q.C))
	r.C = make([]float64, n)
	copy(r.C, p.C)
	for i, c := range q.C {
		r.C[i] += c
	}
	return
}

func (p Polynomial) Scale(a float64) (r Polynomial) {
	r.C = make([]float64, len(p.C))
	for i, c := range p.C {
		r.C[i] = a * c
	}
	return
}

func (p Polynomial) Mul(q Polynomial) (r Polynomial) {
	if len(p.C) == 0 || len(q.C) == 0 {
		return NewPolynomial(0)
	}
	r.C = make([]float64, len(p.C)+len(q.C)-1)
	for i, a := range p.C {
		for j, b := range q.C {
			r.C[i+j] += a * b
		}
	}
	return
}

func (p Polynomial) String() string {
	var terms []string
	for i, c := range p.C {
		if c == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%g", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%g*x", c))
		default:
			terms = append(terms, fmt.Sprintf("%g*x^%d", c, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
