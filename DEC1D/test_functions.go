package DEC1D

import (
	"fmt"
	"math"
	"strings"
)

type TestFunction interface {
	F(x float64) float64
	Deriv(x float64) float64
	Integral(a, b float64) float64
	String() string
}

// SinWave is sin(2*pi*Freq*x), periodic on any interval of integer length
type SinWave struct {
	Freq float64
}

func (sw SinWave) String() string { return fmt.Sprintf("sin(2*pi*%g*x)", sw.Freq) }

func (sw SinWave) F(x float64) float64 { return math.Sin(2 * math.Pi * sw.Freq * x) }

func (sw SinWave) Deriv(x float64) float64 {
	w := 2 * math.Pi * sw.Freq
	return w * math.Cos(w*x)
}

func (sw SinWave) Integral(a, b float64) float64 {
	w := 2 * math.Pi * sw.Freq
	return (math.Cos(w*a) - math.Cos(w*b)) / w
}

// ExpSinWave is exp(sin(2*pi*x)), smooth and periodic with all Fourier modes present
type ExpSinWave struct{}

func (ExpSinWave) String() string { return "exp(sin(2*pi*x))" }

func (ExpSinWave) F(x float64) float64 { return math.Exp(math.Sin(2 * math.Pi * x)) }

func (ExpSinWave) Deriv(x float64) float64 {
	w := 2 * math.Pi
	return w * math.Cos(w*x) * math.Exp(math.Sin(w*x))
}

// No closed form
func (e ExpSinWave) Integral(a, b float64) float64 {
	return Reduce1Form(e.F, a, b, 2*DefaultQuadratureOrder)
}

func NewTestFunction(name string) (tf TestFunction, err error) {
	switch strings.ToLower(name) {
	case "", "sin4pi":
		tf = SinWave{Freq: 2}
	case "sin2pi":
		tf = SinWave{Freq: 1}
	case "expsin":
		tf = ExpSinWave{}
	default:
		err = fmt.Errorf("unknown test function: %q, want one of sin4pi, sin2pi, expsin", name)
	}
	return
}
