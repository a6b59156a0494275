package DEC1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/james-bowman/sparse"

	"github.com/notargets/godec/utils"
)

type ConvergenceStudy struct {
	Title  string
	Type   StudyType
	Degree int
	K      []int
	MaxErr []float64
}

func NewConvergenceStudy(title string, st StudyType, degree int) *ConvergenceStudy {
	return &ConvergenceStudy{
		Title:  title,
		Type:   st,
		Degree: degree,
	}
}

func (cs *ConvergenceStudy) Add(K int, maxErr float64) {
	cs.K = append(cs.K, K)
	cs.MaxErr = append(cs.MaxErr, maxErr)
}

// Orders returns the observed order between consecutive refinements; the
// first entry is NaN.
func (cs *ConvergenceStudy) Orders() (orders []float64) {
	orders = make([]float64, len(cs.K))
	for i := range orders {
		if i == 0 {
			orders[i] = math.NaN()
			continue
		}
		ratio := float64(cs.K[i]) / float64(cs.K[i-1])
		orders[i] = math.Log(cs.MaxErr[i-1]/cs.MaxErr[i]) / math.Log(ratio)
	}
	return
}

// ExpectedOrder is degree+1, except for histopolation whose polynomials are
// one degree lower. The Hodge midpoint values are superconvergent.
func (cs *ConvergenceStudy) ExpectedOrder() int {
	if cs.Type == Histopolation {
		return cs.Degree
	}
	return cs.Degree + 1
}

func (cs *ConvergenceStudy) Print(w io.Writer) {
	orders := cs.Orders()
	fmt.Fprintf(w, "%s, Degree = %d, expected order = %d\n", cs.Title, cs.Degree, cs.ExpectedOrder())
	fmt.Fprintf(w, "%8s %14s %8s\n", "K", "max error", "order")
	for i, K := range cs.K {
		if i == 0 {
			fmt.Fprintf(w, "%8d %14.6e %8s\n", K, cs.MaxErr[i], "-")
			continue
		}
		fmt.Fprintf(w, "%8d %14.6e %8.3f\n", K, cs.MaxErr[i], orders[i])
	}
}

var CSVHeader = []string{"title", "K", "degree", "maxErr", "order"}

func (cs *ConvergenceStudy) Records() (records [][]string) {
	orders := cs.Orders()
	for i, K := range cs.K {
		records = append(records, []string{
			cs.Title,
			strconv.Itoa(K),
			strconv.Itoa(cs.Degree),
			strconv.FormatFloat(cs.MaxErr[i], 'e', 10, 64),
			strconv.FormatFloat(orders[i], 'f', 4, 64),
		})
	}
	return
}

// WriteCSV writes a header followed by every study's records.
func WriteCSV(w io.Writer, studies ...*ConvergenceStudy) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write(CSVHeader); err != nil {
		return
	}
	for _, cs := range studies {
		if err = cw.WriteAll(cs.Records()); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// MaxError is max |u(x) - f(x)| over X.
func MaxError(u *Interpolant, f func(float64) float64, X []float64) (maxErr float64) {
	for _, x := range X {
		maxErr = math.Max(maxErr, math.Abs(u.At(x)-f(x)))
	}
	return
}

func MaxErrorVec(u, v []float64) float64 {
	return utils.NewVector(len(u), u).MaxAbsDiff(utils.NewVector(len(v), v))
}

// StudyType selects which reconstruction a convergence study measures.
type StudyType uint8

const (
	Interpolation StudyType = iota // V0 interpolant of nodal values
	Histopolation                  // V1 interpolant of primal cell integrals
	HodgeStar                      // H0 applied to exact dual cell integrals
)

var studyNames = map[StudyType]string{
	Interpolation: "Interpolation",
	Histopolation: "Histopolation",
	HodgeStar:     "Hodge",
}

func (st StudyType) String() string {
	if name, ok := studyNames[st]; ok {
		return name
	}
	return fmt.Sprintf("StudyType(%d)", uint8(st))
}

func NewStudyType(name string) (st StudyType, err error) {
	for key, val := range studyNames {
		if val == name {
			return key, nil
		}
	}
	err = fmt.Errorf("unknown study type: %q", name)
	return
}

/*
RunConvergenceStudy measures the maximum error of one reconstruction of tf on
[xmin, xmax] for each cell count in Ks. Interpolation and histopolation are
measured on numSamples fixed points; the Hodge study compares H0 applied to
exact dual cell integrals against nodal values.
*/
func RunConvergenceStudy(st StudyType, tf TestFunction, xmin, xmax float64,
	degree int, Ks []int, numSamples int) (cs *ConvergenceStudy, err error) {
	if _, err = CheckDegree(degree); err != nil {
		return
	}
	cs = NewConvergenceStudy(fmt.Sprintf("%v %v", st, tf), st, degree)
	for _, K := range Ks {
		var (
			g      *Grid1D
			ip     *Interpolator
			u      *Interpolant
			maxErr float64
		)
		if g, err = NewGrid1D(xmin, xmax, K); err != nil {
			return
		}
		X := g.SamplePoints(numSamples)
		switch st {
		case Interpolation:
			if ip, err = NewC0Interpolator(g, degree); err != nil {
				return
			}
			if u, err = ip.Interpolant(g.PrimalNodeValues(tf.F)); err != nil {
				return
			}
			maxErr = MaxError(u, tf.F, X)
		case Histopolation:
			if ip, err = NewC1Interpolator(g, degree); err != nil {
				return
			}
			integrals := make([]float64, K)
			for i := range integrals {
				a, b := g.PrimalCell(i)
				integrals[i] = tf.Integral(a, b)
			}
			if u, err = ip.Interpolant(integrals); err != nil {
				return
			}
			maxErr = MaxError(u, tf.F, X)
		case HodgeStar:
			var h0 []float64
			integrals := make([]float64, K)
			for i := range integrals {
				a, b := g.DualCell(i)
				integrals[i] = tf.Integral(a, b)
			}
			if h0, err = applyHodge(H0, integrals, degree, g.Dx); err != nil {
				return
			}
			maxErr = MaxErrorVec(h0, g.PrimalNodeValues(tf.F))
		default:
			err = fmt.Errorf("unknown study type: %v", st)
			return
		}
		cs.Add(K, maxErr)
	}
	return
}

// applyHodge multiplies u by the banded CSR form of H0 or H1.
func applyHodge(ht HodgeType, u []float64, degree int, dx float64) (R []float64, err error) {
	var Hs *sparse.CSR
	if Hs, err = HodgeSparse(ht, len(u), degree, dx); err != nil {
		return
	}
	R = make([]float64, len(u))
	Hs.MulVecTo(R, false, u) // accumulates into R
	return
}
