package engine

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// chiSquareBinary tests a 2x3 contingency table of case/control status
// against dosage class (0, 1, 2 alt alleles). Returns ok=false when no
// complete observations remain.
func chiSquareBinary(dosages []int, phenotypes []float64) (float64, float64, bool) {
	var observed [2][3]float64
	grand := 0.0
	for i, d := range dosages {
		p := phenotypes[i]
		if math.IsNaN(p) {
			continue
		}
		group := 0
		if p > 0.5 {
			group = 1
		}
		observed[group][d]++
		grand++
	}
	if grand == 0 {
		return 0, 0, false
	}

	var rowTotal [2]float64
	var colTotal [3]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			rowTotal[i] += observed[i][j]
			colTotal[j] += observed[i][j]
		}
	}

	chi := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			expected := rowTotal[i] * colTotal[j] / grand
			if expected > 0 {
				diff := observed[i][j] - expected
				chi += diff * diff / expected
			}
		}
	}

	// df = (rows-1) * (cols-1) = 2
	chiDist := distuv.ChiSquared{K: 2}
	pValue := chiDist.Survival(chi)
	return chi, pValue, true
}

// medianSplit dichotomizes a quantitative phenotype at its median so
// the contingency test applies; NaN entries stay NaN and are dropped
// downstream.
func medianSplit(phenotypes []float64) []float64 {
	valid := make([]float64, 0, len(phenotypes))
	for _, p := range phenotypes {
		if !math.IsNaN(p) {
			valid = append(valid, p)
		}
	}
	median, err := stats.Median(valid)
	if err != nil {
		return phenotypes
	}

	binary := make([]float64, len(phenotypes))
	for i, p := range phenotypes {
		switch {
		case math.IsNaN(p):
			binary[i] = math.NaN()
		case p > median:
			binary[i] = 1.0
		default:
			binary[i] = 0.0
		}
	}
	return binary
}
