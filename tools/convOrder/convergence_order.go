package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/notargets/godec/DEC1D"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		panic(err)
	}
	for _, cs := range studies {
		cs.Print(os.Stdout)
		fmt.Println()
	}
}

// readCSV groups the records written by DEC1D.WriteCSV back into studies,
// one per title and degree, in the order they first appear. Orders are
// recomputed from K and the max error.
func readCSV(r io.Reader) (studies []*DEC1D.ConvergenceStudy, err error) {
	var (
		records [][]string
		index   = make(map[string]*DEC1D.ConvergenceStudy)
	)
	cr := csv.NewReader(r)
	if records, err = cr.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 4 {
			err = fmt.Errorf("record %d: want at least 4 fields, have %d", i, len(rec))
			return
		}
		var (
			title, ktxt, ntxt, errtxt = rec[0], rec[1], rec[2], rec[3]
			K, n                      int
			maxErr                    float64
		)
		if K, err = strconv.Atoi(ktxt); err != nil {
			return
		}
		if n, err = strconv.Atoi(ntxt); err != nil {
			return
		}
		if maxErr, err = strconv.ParseFloat(errtxt, 64); err != nil {
			return
		}
		combTitle := title + ntxt
		cs, ok := index[combTitle]
		if !ok {
			cs = DEC1D.NewConvergenceStudy(title, studyType(title), n)
			index[combTitle] = cs
			studies = append(studies, cs)
		}
		cs.Add(K, maxErr)
	}
	for _, cs := range studies {
		sortByK(cs)
	}
	return
}

// The study type is the first word of the title, after any "run title: "
// prefix
func studyType(title string) DEC1D.StudyType {
	if i := strings.LastIndex(title, ": "); i >= 0 {
		title = title[i+2:]
	}
	if fields := strings.Fields(title); len(fields) != 0 {
		if st, err := DEC1D.NewStudyType(fields[0]); err == nil {
			return st
		}
	}
	return DEC1D.Interpolation
}

func sortByK(cs *DEC1D.ConvergenceStudy) {
	idx := make([]int, len(cs.K))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return cs.K[idx[a]] < cs.K[idx[b]] })
	K, maxErr := make([]int, len(idx)), make([]float64, len(idx))
	for i, j := range idx {
		K[i], maxErr[i] = cs.K[j], cs.MaxErr[j]
	}
	cs.K, cs.MaxErr = K, maxErr
}
