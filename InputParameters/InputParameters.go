package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. The YAML is converted to
// JSON before decoding, so keys match the json tags case insensitively.
type InputParametersDEC1D struct {
	Title        string   `json:"Title"`
	XMin         float64  `json:"XMin"`
	XMax         float64  `json:"XMax"`
	Degrees      []int    `json:"Degrees"`
	CellCounts   []int    `json:"CellCounts"`
	TestFunction string   `json:"TestFunction"` // sin4pi, sin2pi or expsin
	Samples      int      `json:"Samples"`      // Fixed evaluation points for the max error
	Studies      []string `json:"Studies"`      // Interpolation, Histopolation, Hodge
}

var (
	DefaultDegrees    = []int{1, 3, 5}
	DefaultCellCounts = []int{20, 40, 80}
	DefaultStudies    = []string{"Interpolation", "Histopolation", "Hodge"}
)

const ExampleFile = `
########################################
Title: "Periodic sine"
XMin: 0
XMax: 1
Degrees: [1, 3, 5]
CellCounts: [20, 40, 80]
TestFunction: sin4pi # Can be sin2pi or expsin
Samples: 1000
Studies: [Interpolation, Histopolation, Hodge]
########################################
`

func NewInputParametersDEC1D() (ip *InputParametersDEC1D) {
	ip = &InputParametersDEC1D{}
	ip.SetDefaults()
	return
}

func (ip *InputParametersDEC1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// SetDefaults fills every unset field.
func (ip *InputParametersDEC1D) SetDefaults() {
	if len(ip.Title) == 0 {
		ip.Title = "DEC1D convergence"
	}
	if ip.XMax == ip.XMin {
		ip.XMin, ip.XMax = 0, 1
	}
	if len(ip.Degrees) == 0 {
		ip.Degrees = append([]int{}, DefaultDegrees...)
	}
	if len(ip.CellCounts) == 0 {
		ip.CellCounts = append([]int{}, DefaultCellCounts...)
	}
	if len(ip.TestFunction) == 0 {
		ip.TestFunction = "sin4pi"
	}
	if ip.Samples == 0 {
		ip.Samples = 1000
	}
	if len(ip.Studies) == 0 {
		ip.Studies = append([]string{}, DefaultStudies...)
	}
}

func (ip *InputParametersDEC1D) Validate() (err error) {
	switch {
	case !(ip.XMax > ip.XMin):
		err = fmt.Errorf("XMax must be greater than XMin, have [%g,%g]", ip.XMin, ip.XMax)
	case ip.Samples < 1:
		err = fmt.Errorf("Samples must be positive, have %d", ip.Samples)
	default:
		for _, K := range ip.CellCounts {
			if K < 2 {
				err = fmt.Errorf("CellCounts must be at least 2, have %d", K)
				return
			}
		}
	}
	return
}

func (ip *InputParametersDEC1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%8.5f,%8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("%v\t\t\t= Degrees\n", ip.Degrees)
	fmt.Printf("%v\t\t= Cell Counts\n", ip.CellCounts)
	fmt.Printf("[%s]\t\t\t= Test Function\n", ip.TestFunction)
	fmt.Printf("%d\t\t\t\t= Samples\n", ip.Samples)
	fmt.Printf("%v\t= Studies\n", ip.Studies)
}
